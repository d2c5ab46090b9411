package textquote

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	tests := []struct {
		name       string
		exact      string
		size       int
		wantLens   []int
		wantSlices []string
	}{
		{
			name:       "Empty input",
			exact:      "",
			size:       32,
			wantSlices: nil,
		},
		{
			name:       "Shorter than size",
			exact:      "quick",
			size:       32,
			wantSlices: []string{"quick"},
		},
		{
			name:     "Exactly size",
			exact:    strings.Repeat("a", 32),
			size:     32,
			wantLens: []int{32},
		},
		{
			name:     "Several full slices and a remainder",
			exact:    strings.Repeat("a", 70),
			size:     32,
			wantLens: []int{32, 32, 6},
		},
		{
			name:       "Newlines are kept",
			exact:      "ab\r\ncd\nef",
			size:       4,
			wantSlices: []string{"ab\r\n", "cd\ne", "f"},
		},
		{
			name:     "Zero size falls back to the ceiling",
			exact:    strings.Repeat("b", 40),
			size:     0,
			wantLens: []int{32, 8},
		},
		{
			name:     "Size above the ceiling is clamped",
			exact:    strings.Repeat("c", 40),
			size:     100,
			wantLens: []int{32, 8},
		},
		{
			name:     "Boundary pulled back to a rune start",
			exact:    strings.Repeat("é", 5), // 2 bytes each
			size:     5,
			wantLens: []int{4, 4, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(tt.exact, tt.size)
			if tt.wantSlices != nil || tt.wantLens == nil {
				assert.Equal(t, tt.wantSlices, got)
			}
			if tt.wantLens != nil {
				lens := make([]int, len(got))
				for i, s := range got {
					lens[i] = len(s)
				}
				assert.Equal(t, tt.wantLens, lens)
			}
			assert.Equal(t, tt.exact, strings.Join(got, ""))
		})
	}
}

func TestSliceNeverSplitsRunes(t *testing.T) {
	exact := strings.Repeat("日本語のテキスト、", 10)
	for _, s := range Slice(exact, MaxPatternLength) {
		assert.LessOrEqual(t, len(s), MaxPatternLength)
		assert.True(t, utf8.ValidString(s), "slice %q is not valid UTF-8", s)
	}
}
