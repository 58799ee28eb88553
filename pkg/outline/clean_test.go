package outline

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "hello world", want: "hello world"},
		{name: "bold", input: "**bold** text", want: "bold text"},
		{name: "italic", input: "*italic* text", want: "italic text"},
		{name: "bold and italic", input: "**a** and *b*", want: "a and b"},
		{name: "quotation glyphs", input: "《Title》 here", want: "Title here"},
		{name: "bold prefix", input: "**label**: rest", want: "label: rest"},
		{name: "surrounding whitespace", input: "  padded  ", want: "padded"},
		{name: "empty", input: "", want: ""},
		{name: "unicode", input: "**目标**与计划", want: "目标与计划"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"plain",
		"**bold** and *italic*",
		"《quoted》",
		"**label**: value",
		"混合 **内容** here",
	}

	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Errorf("CleanText not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
