package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorBright)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorFaint)
)

// outlineExtensions are the file extensions offered by the picker.
var outlineExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// =============================================================================
// OutlinePickerModel - Interactive outline file selection
// =============================================================================

// OutlinePickerModel is the bubbletea model for picking an outline file when
// the generate command is run without an argument.
type OutlinePickerModel struct {
	Files    []string
	Cursor   int
	Selected string
}

// NewOutlinePickerModel creates a picker over the given file names.
func NewOutlinePickerModel(files []string) OutlinePickerModel {
	return OutlinePickerModel{Files: files}
}

func (m OutlinePickerModel) Init() tea.Cmd {
	return nil
}

func (m OutlinePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Files)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Files[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m OutlinePickerModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select Outline"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.Files {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := cursor + f
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Files))))

	return b.String()
}

// =============================================================================
// Picker Entry Point
// =============================================================================

// pickOutlineFile lists outline files in dir and runs the interactive
// picker. It returns "" when the user quits without selecting.
func pickOutlineFile(dir string) (string, error) {
	files, err := listOutlineFiles(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no outline files (*.md, *.markdown, *.txt) in %s; pass a file argument", dir)
	}

	p := tea.NewProgram(NewOutlinePickerModel(files), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}

	model, ok := final.(OutlinePickerModel)
	if !ok {
		return "", nil
	}
	return model.Selected, nil
}

// listOutlineFiles returns the outline candidates in dir, sorted by name.
func listOutlineFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if outlineExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
