// Package fonts provides the typeface used for measuring and rasterizing
// labels.
//
// The Go Regular face ships embedded in its upstream package, so accurate
// text measurement works without any system font lookup. When face
// construction fails the measurer degrades to a character-count estimate
// instead of returning an error.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/mindweave/mindweave/pkg/layout"
)

// FontFamily is the CSS font-family name matching the embedded face.
const FontFamily = "Go"

// FallbackFontFamily provides the SVG font stack for viewers without the
// embedded face installed.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

// Regular returns the raw TTF bytes of the embedded face.
func Regular() []byte {
	return goregular.TTF
}

var (
	parsedFont *opentype.Font
	parseErr   error
	parseOnce  sync.Once
)

func parsed() (*opentype.Font, error) {
	parseOnce.Do(func() {
		parsedFont, parseErr = opentype.Parse(goregular.TTF)
	})
	return parsedFont, parseErr
}

// Face constructs a font.Face at the given size in points (72 DPI, so
// points equal pixels).
func Face(size float64) (font.Face, error) {
	f, err := parsed()
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face at %gpt: %w", size, err)
	}
	return face, nil
}

// Measurer measures labels with the embedded face, caching one face per
// font size. It implements layout.Metrics and never fails: if a face
// cannot be built it falls back to the character-count estimate.
type Measurer struct {
	mu    sync.Mutex
	faces map[float64]font.Face

	fallback layout.CharEstimator
}

// NewMeasurer returns a ready-to-use label measurer.
func NewMeasurer() *Measurer {
	return &Measurer{faces: make(map[float64]font.Face)}
}

// Measure returns the label's box size at the given depth: the advance
// width of the string plus depth-scaled padding on each side, and the face
// line height plus the same padding.
func (m *Measurer) Measure(label string, depth int) (float64, float64) {
	size := layout.FontSizeFor(depth)
	pad := layout.PaddingFor(depth)

	face := m.face(size)
	if face == nil {
		return m.fallback.Measure(label, depth)
	}

	adv := font.MeasureString(face, label)
	height := face.Metrics().Height

	w := fixedToFloat(adv) + 2*pad
	h := fixedToFloat(height) + 2*pad
	return w, h
}

func (m *Measurer) face(size float64) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()

	if f, ok := m.faces[size]; ok {
		return f
	}
	f, err := Face(size)
	if err != nil {
		// Cache the miss so we do not retry per label.
		m.faces[size] = nil
		return nil
	}
	m.faces[size] = f
	return f
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
