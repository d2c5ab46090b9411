package textquote

import "fmt"

const (
	// MaxPatternLength is the longest pattern the bitap matcher accepts.
	MaxPatternLength = 32
	// DefaultContextLength is the prefix/suffix size captured by Extract.
	DefaultContextLength = MaxPatternLength
	// DefaultFoldDistance is the match distance used while folding the
	// remaining slices of an exact quote.
	DefaultFoldDistance = 64
	// SelectorType is the literal type tag of a serialized selector.
	SelectorType = "TextQuoteSelector"
)

// Range is a half-open byte range [Start, End) into a document's text.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// Document is anything that exposes flattened text content.
type Document interface {
	TextContent() string
}

// Text is a Document backed by a plain string.
type Text string

// TextContent returns the string itself.
func (t Text) TextContent() string {
	return string(t)
}

// foldAccumulator is the running extent threaded through slice folding.
type foldAccumulator struct {
	start int
	end   int
	loc   int // Where the next slice is expected
}
