package textquote

import (
	"fmt"
	"unicode/utf8"
)

// Extract builds a selector for r in text. The prefix and suffix hold up to
// contextLength bytes on either side of the range, clamped at the document
// boundaries and shrunk so that no UTF-8 sequence is split. A negative
// contextLength is treated as zero. Empty ranges are rejected since a quote
// with no exact text cannot be resolved.
func Extract(text string, r Range, contextLength int) (Selector, error) {
	if err := validateRange(text, r); err != nil {
		return Selector{}, err
	}
	if contextLength < 0 {
		contextLength = 0
	}

	prefixStart := max(0, r.Start-contextLength)
	for prefixStart < r.Start && !isRuneStart(text, prefixStart) {
		prefixStart++
	}

	suffixEnd := min(len(text), r.End+contextLength)
	for suffixEnd > r.End && !isRuneStart(text, suffixEnd) {
		suffixEnd--
	}

	prefix := text[prefixStart:r.Start]
	suffix := text[r.End:suffixEnd]
	return Selector{
		Type:   SelectorType,
		Exact:  text[r.Start:r.End],
		Prefix: &prefix,
		Suffix: &suffix,
	}, nil
}

func validateRange(text string, r Range) error {
	switch {
	case r.Start < 0:
		return fmt.Errorf("%w: start %d must be non-negative", ErrInvalidRange, r.Start)
	case r.End < 0:
		return fmt.Errorf("%w: end %d must be non-negative", ErrInvalidRange, r.End)
	case r.Start > r.End:
		return fmt.Errorf("%w: start %d is after end %d", ErrInvalidRange, r.Start, r.End)
	case r.End > len(text):
		return fmt.Errorf("%w: end %d is past the text length %d", ErrInvalidRange, r.End, len(text))
	case r.Start == r.End:
		return fmt.Errorf("%w: empty range at %d", ErrInvalidRange, r.Start)
	}
	return nil
}

// isRuneStart reports whether byte offset i of s begins a rune. The end of
// the string counts as a boundary.
func isRuneStart(s string, i int) bool {
	return i >= len(s) || utf8.RuneStart(s[i])
}
