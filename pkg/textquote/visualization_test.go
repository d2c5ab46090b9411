package textquote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		ranges []Range
		want   string
	}{
		{
			name: "No ranges",
			text: foxText,
			want: foxText,
		},
		{
			name:   "Single range",
			text:   "The quick brown fox",
			ranges: []Range{{Start: 4, End: 9}},
			want:   "The " + red + "quick" + reset + " brown fox",
		},
		{
			name:   "Ranges applied in order",
			text:   "The quick brown fox",
			ranges: []Range{{Start: 16, End: 19}, {Start: 4, End: 9}},
			want:   "The " + red + "quick" + reset + " brown " + red + "fox" + reset,
		},
		{
			name:   "Overlapping range skipped",
			text:   "The quick brown fox",
			ranges: []Range{{Start: 4, End: 9}, {Start: 6, End: 12}},
			want:   "The " + red + "quick" + reset + " brown fox",
		},
		{
			name:   "Out of bounds range skipped",
			text:   "The quick",
			ranges: []Range{{Start: 4, End: 40}},
			want:   "The quick",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.ranges))
		})
	}
}
