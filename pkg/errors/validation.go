package errors

import (
	"strings"
	"unicode/utf8"
)

// MaxOutlineBytes bounds accepted outline text. One megabyte of outline is
// far beyond any real document and keeps hostile inputs cheap to reject.
const MaxOutlineBytes = 1 << 20

// ValidateOutlineText validates raw outline text before it enters the
// pipeline. Empty text is accepted: the parser degrades it to a default
// single-node tree rather than failing. Only text that cannot be processed
// safely is rejected.
//
// Validation rules:
//   - Maximum size of MaxOutlineBytes
//   - Must be valid UTF-8
//   - No null bytes
func ValidateOutlineText(text string) error {
	if len(text) > MaxOutlineBytes {
		return New(ErrCodeInvalidInput, "outline text too large (max %d bytes)", MaxOutlineBytes)
	}

	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidInput, "outline text is not valid UTF-8")
	}

	if strings.ContainsRune(text, '\x00') {
		return New(ErrCodeInvalidInput, "outline text contains null bytes")
	}

	return nil
}

// ValidateLayoutKind validates a user-supplied layout kind string.
// The empty string and "auto" are accepted; the pipeline resolves them.
func ValidateLayoutKind(kind string) error {
	switch kind {
	case "", "auto", "radial", "horizontal":
		return nil
	default:
		return New(ErrCodeInvalidLayoutKind,
			"unknown layout kind %q (supported: radial, horizontal, auto)", kind)
	}
}
