package textquote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const foxText = "The quick brown fox jumps over the lazy dog"

func TestExtract(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		r             Range
		contextLength int
		wantExact     string
		wantPrefix    string
		wantSuffix    string
	}{
		{
			name:          "Mid-text with short context",
			text:          foxText,
			r:             Range{Start: 4, End: 9},
			contextLength: 3,
			wantExact:     "quick",
			wantPrefix:    "he ",
			wantSuffix:    " br",
		},
		{
			name:          "Prefix clamped at document start",
			text:          foxText,
			r:             Range{Start: 4, End: 9},
			contextLength: 32,
			wantExact:     "quick",
			wantPrefix:    "The ",
			wantSuffix:    " brown fox jumps over the lazy d",
		},
		{
			name:          "Suffix clamped at document end",
			text:          foxText,
			r:             Range{Start: 40, End: 43},
			contextLength: 8,
			wantExact:     "dog",
			wantPrefix:    "he lazy ",
			wantSuffix:    "",
		},
		{
			name:          "Zero context",
			text:          foxText,
			r:             Range{Start: 16, End: 19},
			contextLength: 0,
			wantExact:     "fox",
			wantPrefix:    "",
			wantSuffix:    "",
		},
		{
			name:          "Negative context treated as zero",
			text:          foxText,
			r:             Range{Start: 16, End: 19},
			contextLength: -5,
			wantExact:     "fox",
			wantPrefix:    "",
			wantSuffix:    "",
		},
		{
			name:          "Whole document",
			text:          foxText,
			r:             Range{Start: 0, End: len(foxText)},
			contextLength: 32,
			wantExact:     foxText,
			wantPrefix:    "",
			wantSuffix:    "",
		},
		{
			name: "Context shrinks to rune boundaries",
			// "é" is two bytes; a 2-byte window would cut one in half.
			text:          "éé-x-éé",
			r:             Range{Start: 5, End: 6},
			contextLength: 2,
			wantExact:     "x",
			wantPrefix:    "-",
			wantSuffix:    "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Extract(tt.text, tt.r, tt.contextLength)
			require.NoError(t, err)
			assert.Equal(t, SelectorType, sel.Type)
			assert.Equal(t, tt.wantExact, sel.Exact)

			prefix, ok := sel.PrefixValue()
			assert.True(t, ok)
			assert.Equal(t, tt.wantPrefix, prefix)

			suffix, ok := sel.SuffixValue()
			assert.True(t, ok)
			assert.Equal(t, tt.wantSuffix, suffix)
		})
	}
}

func TestExtractBoundaryClamping(t *testing.T) {
	for start := 0; start < 10; start++ {
		sel, err := Extract(foxText, Range{Start: start, End: start + 1}, 10)
		require.NoError(t, err)
		assert.Len(t, *sel.Prefix, start)
	}

	for end := len(foxText) - 9; end <= len(foxText); end++ {
		sel, err := Extract(foxText, Range{Start: end - 1, End: end}, 10)
		require.NoError(t, err)
		assert.Len(t, *sel.Suffix, len(foxText)-end)
	}
}

func TestExtractInvalidRange(t *testing.T) {
	tests := []struct {
		name string
		r    Range
	}{
		{name: "Negative start", r: Range{Start: -1, End: 3}},
		{name: "Negative end", r: Range{Start: 0, End: -3}},
		{name: "Start after end", r: Range{Start: 9, End: 4}},
		{name: "End past text", r: Range{Start: 40, End: 100}},
		{name: "Empty range", r: Range{Start: 4, End: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(foxText, tt.r, 32)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}
