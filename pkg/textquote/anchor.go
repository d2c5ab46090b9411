package textquote

import (
	"fmt"

	"github.com/jsnanigans/textquote/pkg/textposition"
)

// Anchor ties a quote to the document it was taken from. It never mutates
// the document and is immutable once built.
type Anchor struct {
	doc    Document
	exact  string
	prefix *string
	suffix *string
}

// New builds an anchor from its parts. prefix and suffix may be nil.
func New(doc Document, exact string, prefix, suffix *string) (*Anchor, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document", ErrMissingParameter)
	}
	if exact == "" {
		return nil, fmt.Errorf("%w: exact", ErrMissingParameter)
	}
	return &Anchor{
		doc:    doc,
		exact:  exact,
		prefix: clone(prefix),
		suffix: clone(suffix),
	}, nil
}

// FromSelector wraps an existing selector. No search is performed until the
// anchor is resolved.
func FromSelector(doc Document, sel Selector) (*Anchor, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	return New(doc, sel.Exact, sel.Prefix, sel.Suffix)
}

// ExtractOption configures quote extraction.
type ExtractOption func(*extractOptions)

type extractOptions struct {
	contextLength int
}

// WithContextLength sets how many bytes of prefix and suffix are captured.
func WithContextLength(n int) ExtractOption {
	return func(o *extractOptions) {
		o.contextLength = n
	}
}

// FromPosition quotes the text at r.
func FromPosition(doc Document, r Range, opts ...ExtractOption) (*Anchor, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document", ErrMissingParameter)
	}
	o := extractOptions{contextLength: DefaultContextLength}
	for _, opt := range opts {
		opt(&o)
	}

	sel, err := Extract(doc.TextContent(), r, o.contextLength)
	if err != nil {
		return nil, err
	}
	return New(doc, sel.Exact, sel.Prefix, sel.Suffix)
}

// FromRange quotes the text covered by a line/column span.
func FromRange(doc Document, span textposition.Span, opts ...ExtractOption) (*Anchor, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document", ErrMissingParameter)
	}
	ix := textposition.NewIndex(doc.TextContent())
	start, end, err := ix.SpanToOffsets(span)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	return FromPosition(doc, Range{Start: start, End: end}, opts...)
}

// Exact returns the quoted text.
func (a *Anchor) Exact() string {
	return a.exact
}

// Prefix returns the leading context and whether it is present.
func (a *Anchor) Prefix() (string, bool) {
	if a.prefix == nil {
		return "", false
	}
	return *a.prefix, true
}

// Suffix returns the trailing context and whether it is present.
func (a *Anchor) Suffix() (string, bool) {
	if a.suffix == nil {
		return "", false
	}
	return *a.suffix, true
}

// ToSelector returns the serializable selector for the anchor.
func (a *Anchor) ToSelector() Selector {
	return Selector{
		Type:   SelectorType,
		Exact:  a.exact,
		Prefix: clone(a.prefix),
		Suffix: clone(a.suffix),
	}
}

// ToPosition resolves the anchor against the current document text.
func (a *Anchor) ToPosition(opts ...ResolveOption) (Range, error) {
	return Resolve(a.doc.TextContent(), a.ToSelector(), opts...)
}

// ToRange resolves the anchor and converts the result to a line/column span.
func (a *Anchor) ToRange(opts ...ResolveOption) (textposition.Span, error) {
	text := a.doc.TextContent()
	r, err := Resolve(text, a.ToSelector(), opts...)
	if err != nil {
		return textposition.Span{}, err
	}
	span, err := textposition.NewIndex(text).OffsetsToSpan(r.Start, r.End)
	if err != nil {
		return textposition.Span{}, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	return span, nil
}

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
