package cli

import (
	"io"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"generate":   false,
		"layout":     false,
		"render":     false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != "svg" {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
	got := parseFormats("svg,png,dot")
	if len(got) != 3 || got[0] != "svg" || got[1] != "png" || got[2] != "dot" {
		t.Errorf("parseFormats = %v", got)
	}
}

func TestArtifactBase(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "notes.md", "notes"},
		{"", "-", "mindmap"},
		{"", "", "mindmap"},
		{"out.svg", "notes.md", "out"},
		{"dir/out", "notes.md", "dir/out"},
	}
	for _, tt := range tests {
		if got := artifactBase(tt.output, tt.input); got != tt.want {
			t.Errorf("artifactBase(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}
