package outline

import (
	"regexp"
	"strings"
)

var (
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.*?)\*`)
	boldPrefixRe = regexp.MustCompile(`\*\*(.*?)\*\*:\s*`)
)

// CleanText strips inline emphasis markup from list-derived label text:
// bold and italic asterisk markers, the CJK title quotation glyphs 《 and 》,
// and the "**label**: " bold-prefix idiom (collapsed to "label: ").
//
// Cleaning is idempotent: applying it to already-clean text is a no-op.
func CleanText(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "《", "")
	text = strings.ReplaceAll(text, "》", "")
	text = boldPrefixRe.ReplaceAllString(text, "$1: ")
	return strings.TrimSpace(text)
}
