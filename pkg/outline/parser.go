package outline

import (
	"regexp"
	"strings"
)

var (
	numberedRe = regexp.MustCompile(`^\s*\d+\.\s+`)
	numMarkRe  = regexp.MustCompile(`^\s*\d+\.\s*`)
	bulletRe   = regexp.MustCompile(`^\s*[-*+]\s+`)
	bulletMkRe = regexp.MustCompile(`^\s*[-*+]\s*`)
)

// parsedLine is the intermediate form of one outline line. The level is used
// only while the tree is assembled and is not retained on the final nodes.
type parsedLine struct {
	node  *Node
	level int
}

// Parse converts raw outline text into a single-rooted tree. It never fails:
// unusable input produces a default root labeled [DefaultRootLabel].
//
// Levels are assigned per line:
//   - "# Heading" lines use the length of the leading '#' run.
//   - Numbered list lines ("1. item") use floor(indent/2)+2.
//   - Bullet lines ("- item") at column zero directly under a heading attach
//     one level below that heading; indented bullets use floor(indent/2)+2.
//
// Fenced code blocks and lines that yield no content are skipped. If the
// text produces multiple top-level nodes they are wrapped under a synthetic
// root so the result is always a single tree.
func Parse(text string) *Node {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var roots []*Node
	var stack []parsedLine
	lastHeadingLevel := 0
	inFence := false

	for _, raw := range lines {
		line := strings.TrimRight(raw, " \t\r")
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "```") {
			inFence = !inFence
			continue
		}
		if line == "" || inFence {
			continue
		}

		var (
			level    int
			content  string
			isHeader bool
			isBullet bool
		)

		switch {
		case strings.HasPrefix(line, "#"):
			k := 0
			for k < len(line) && line[k] == '#' {
				k++
			}
			level = k
			content = strings.TrimSpace(line[k:])
			isHeader = true
			lastHeadingLevel = level

		case numberedRe.MatchString(line):
			level = indentLevel(line)
			content = CleanText(numMarkRe.ReplaceAllString(line, ""))

		case bulletRe.MatchString(line):
			isBullet = true
			if leadingSpaces(line) == 0 && lastHeadingLevel > 0 {
				level = lastHeadingLevel + 1
			} else {
				level = indentLevel(line)
			}
			content = CleanText(bulletMkRe.ReplaceAllString(line, ""))

		default:
			continue
		}

		if content == "" {
			continue
		}

		// Numbered lines break the heading association; bullets and further
		// headings keep it alive.
		if !isHeader && !isBullet {
			lastHeadingLevel = 0
		}

		node := &Node{Label: content}

		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			top := stack[len(stack)-1].node
			top.Children = append(top.Children, node)
		} else {
			roots = append(roots, node)
		}
		stack = append(stack, parsedLine{node: node, level: level})
	}

	switch len(roots) {
	case 0:
		return &Node{Label: DefaultRootLabel}
	case 1:
		return roots[0]
	default:
		return &Node{Label: DefaultRootLabel, Children: roots}
	}
}

// leadingSpaces counts the whitespace prefix of a line.
func leadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// indentLevel maps a list line's indentation to a nesting level. Two spaces
// of indentation equal one level, offset so column-zero items sit at level 2
// (below a level-1 root heading).
func indentLevel(line string) int {
	return leadingSpaces(line)/2 + 2
}
