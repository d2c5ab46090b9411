// Package textposition converts between byte offsets into a document's text
// and line/column points. It is the positional view that quote anchors are
// turned into and built from.
package textposition

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrOutOfBounds is returned for offsets or points outside the text.
var ErrOutOfBounds = errors.New("position out of bounds")

// Point is a line and column position. Both are 0-indexed and the column is
// measured in bytes from the start of the line.
type Point struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	}
	return 0
}

// Span is a half-open range of points [Start, End).
type Span struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%s-%s)", s.Start, s.End)
}

// Index maps offsets to points for one snapshot of text.
type Index struct {
	length     int
	lineStarts []int
}

// NewIndex records the line starts of text.
func NewIndex(text string) *Index {
	starts := make([]int, 1, strings.Count(text, "\n")+1)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Index{length: len(text), lineStarts: starts}
}

// LineCount returns the number of lines. An empty text has one line.
func (ix *Index) LineCount() int {
	return len(ix.lineStarts)
}

// lineEnd returns the offset just past the last column of line, excluding
// the newline.
func (ix *Index) lineEnd(line int) int {
	if line+1 < len(ix.lineStarts) {
		return ix.lineStarts[line+1] - 1
	}
	return ix.length
}

// OffsetToPoint converts a byte offset to a point.
func (ix *Index) OffsetToPoint(offset int) (Point, error) {
	if offset < 0 || offset > ix.length {
		return Point{}, fmt.Errorf("%w: offset %d (length %d)", ErrOutOfBounds, offset, ix.length)
	}
	line := sort.Search(len(ix.lineStarts), func(i int) bool {
		return ix.lineStarts[i] > offset
	}) - 1
	return Point{Line: line, Column: offset - ix.lineStarts[line]}, nil
}

// PointToOffset converts a point to a byte offset. The column may address
// the position just before the line's newline but not beyond it.
func (ix *Index) PointToOffset(p Point) (int, error) {
	if p.Line < 0 || p.Line >= len(ix.lineStarts) || p.Column < 0 {
		return 0, fmt.Errorf("%w: point %s", ErrOutOfBounds, p)
	}
	offset := ix.lineStarts[p.Line] + p.Column
	if offset > ix.lineEnd(p.Line) {
		return 0, fmt.Errorf("%w: point %s", ErrOutOfBounds, p)
	}
	return offset, nil
}

// SpanToOffsets converts a span to start and end byte offsets.
func (ix *Index) SpanToOffsets(s Span) (start, end int, err error) {
	if start, err = ix.PointToOffset(s.Start); err != nil {
		return 0, 0, err
	}
	if end, err = ix.PointToOffset(s.End); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// OffsetsToSpan converts start and end byte offsets to a span.
func (ix *Index) OffsetsToSpan(start, end int) (Span, error) {
	sp, err := ix.OffsetToPoint(start)
	if err != nil {
		return Span{}, err
	}
	ep, err := ix.OffsetToPoint(end)
	if err != nil {
		return Span{}, err
	}
	return Span{Start: sp, End: ep}, nil
}
