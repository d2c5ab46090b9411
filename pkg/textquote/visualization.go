package textquote

import (
	"slices"
	"strings"
)

// ANSI color codes
const (
	red   = "\033[31m"
	reset = "\033[0m"
)

// Highlight wraps each range of text in ANSI red. Ranges are applied in
// ascending start order; a range that overlaps an earlier one or falls
// outside the text is skipped.
func Highlight(text string, ranges []Range) string {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		return a.Start - b.Start
	})

	var builder strings.Builder
	lastPos := 0

	for _, r := range sorted {
		if r.Start < lastPos || r.End > len(text) || r.Start > r.End {
			continue
		}

		// Text before the range
		builder.WriteString(text[lastPos:r.Start])

		builder.WriteString(red)
		builder.WriteString(text[r.Start:r.End])
		builder.WriteString(reset)

		lastPos = r.End
	}

	if lastPos < len(text) {
		builder.WriteString(text[lastPos:])
	}

	return builder.String()
}
