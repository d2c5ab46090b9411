package textposition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const text = "line one\nline two\n\nlast"

func TestOffsetToPoint(t *testing.T) {
	ix := NewIndex(text)
	require.Equal(t, 4, ix.LineCount())

	tests := []struct {
		offset int
		want   Point
	}{
		{offset: 0, want: Point{Line: 0, Column: 0}},
		{offset: 5, want: Point{Line: 0, Column: 5}},
		{offset: 8, want: Point{Line: 0, Column: 8}}, // the newline itself
		{offset: 9, want: Point{Line: 1, Column: 0}},
		{offset: 18, want: Point{Line: 2, Column: 0}},
		{offset: 19, want: Point{Line: 3, Column: 0}},
		{offset: 23, want: Point{Line: 3, Column: 4}}, // end of text
	}

	for _, tt := range tests {
		got, err := ix.OffsetToPoint(tt.offset)
		require.NoError(t, err, "offset %d", tt.offset)
		assert.Equal(t, tt.want, got, "offset %d", tt.offset)

		back, err := ix.PointToOffset(got)
		require.NoError(t, err)
		assert.Equal(t, tt.offset, back)
	}
}

func TestOutOfBounds(t *testing.T) {
	ix := NewIndex(text)

	_, err := ix.OffsetToPoint(-1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = ix.OffsetToPoint(len(text) + 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	for _, p := range []Point{
		{Line: -1, Column: 0},
		{Line: 4, Column: 0},
		{Line: 0, Column: 9}, // past the newline of line 0
		{Line: 2, Column: 1}, // empty line
		{Line: 3, Column: 5},
		{Line: 0, Column: -1},
	} {
		_, err := ix.PointToOffset(p)
		assert.ErrorIs(t, err, ErrOutOfBounds, "point %s", p)
	}
}

func TestSpanConversion(t *testing.T) {
	ix := NewIndex(text)

	span, err := ix.OffsetsToSpan(5, 13)
	require.NoError(t, err)
	assert.Equal(t, Span{Start: Point{Line: 0, Column: 5}, End: Point{Line: 1, Column: 4}}, span)
	assert.Equal(t, "[(0:5)-(1:4))", span.String())

	start, end, err := ix.SpanToOffsets(span)
	require.NoError(t, err)
	assert.Equal(t, 5, start)
	assert.Equal(t, 13, end)

	_, _, err = ix.SpanToOffsets(Span{End: Point{Line: 7}})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestEmptyText(t *testing.T) {
	ix := NewIndex("")
	assert.Equal(t, 1, ix.LineCount())

	p, err := ix.OffsetToPoint(0)
	require.NoError(t, err)
	assert.Equal(t, Point{}, p)
}

func TestPointCompare(t *testing.T) {
	a := Point{Line: 1, Column: 4}
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(Point{Line: 2}))
	assert.Equal(t, 1, a.Compare(Point{Line: 1, Column: 2}))
	assert.Equal(t, 1, a.Compare(Point{Line: 0, Column: 40}))
}
