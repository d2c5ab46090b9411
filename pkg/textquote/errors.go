package textquote

import "errors"

var (
	// ErrMissingParameter is returned when a required argument or selector
	// field is absent.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrInvalidRange is returned for negative or out-of-bounds offsets.
	ErrInvalidRange = errors.New("invalid range")
	// ErrNoMatch is returned when the exact text, or one of its slices,
	// cannot be located in the document.
	ErrNoMatch = errors.New("no match found")
	// ErrInvalidSelector is returned for a serialized selector that cannot be
	// decoded or carries a foreign type tag.
	ErrInvalidSelector = errors.New("invalid selector")
)
