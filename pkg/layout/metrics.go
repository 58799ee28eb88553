package layout

import "math"

// Metrics estimates or measures the on-screen footprint of a label at a
// given nesting depth, in pixel-equivalent units. Implementations must not
// fail: when accurate measurement is impossible they return a conservative
// estimate instead.
type Metrics interface {
	Measure(label string, depth int) (width, height float64)
}

// FontSizeFor returns the label font size used at a nesting depth. Sizes
// shrink by 6 per level from a base of 42, floored at 24.
func FontSizeFor(depth int) float64 {
	return math.Max(42-float64(depth)*6, 24)
}

// PaddingFor returns the box padding applied on each side of a label at a
// nesting depth.
func PaddingFor(depth int) float64 {
	return math.Max(18-float64(depth)*2, 10)
}

// CharEstimator is the measurement fallback: a rough character-count
// estimate that degrades precision but never errors.
type CharEstimator struct{}

// Measure estimates a label box from its rune count and the depth-scaled
// font size.
func (CharEstimator) Measure(label string, depth int) (float64, float64) {
	size := FontSizeFor(depth)
	n := len([]rune(label))
	if n == 0 {
		n = 1
	}
	return float64(n)*size*0.6 + 20, size + 20
}
