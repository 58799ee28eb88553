package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette & Styles
// =============================================================================

var (
	colorAccent = lipgloss.Color("36")  // teal, primary accent
	colorGood   = lipgloss.Color("35")  // green, success and cache hits
	colorBad    = lipgloss.Color("167") // soft red, errors
	colorLink   = lipgloss.Color("75")  // light blue, commands
	colorBright = lipgloss.Color("255") // bright white, file paths
	colorMuted  = lipgloss.Color("245") // gray, secondary text
	colorFaint  = lipgloss.Color("240") // dim gray, separators
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleDim     = lipgloss.NewStyle().Foreground(colorFaint)
	stylePath    = lipgloss.NewStyle().Foreground(colorBright)
	styleGood    = lipgloss.NewStyle().Foreground(colorGood)
	styleBad     = lipgloss.NewStyle().Foreground(colorBad)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleSpin    = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleGood.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleBad.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleMuted.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints one produced output file.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + stylePath.Render(path))
}

// printStats prints one summary line for a computed map, e.g.
// "7 nodes · depth 3 · radial · fresh".
func printStats(nodeCount, maxDepth int, kind string, cached bool) {
	var parts []string
	if nodeCount > 0 {
		parts = append(parts, fmt.Sprintf("%d nodes", nodeCount))
	}
	if maxDepth > 0 {
		parts = append(parts, fmt.Sprintf("depth %d", maxDepth))
	}
	if kind != "" {
		parts = append(parts, kind)
	}

	if cached {
		parts = append(parts, styleGood.Render("cached"))
	} else {
		parts = append(parts, styleMuted.Render("fresh"))
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += styleDim.Render(" · ")
		}
		line += styleDim.Render(part)
	}
	fmt.Println(line)
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(styleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
