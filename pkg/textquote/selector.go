package textquote

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Selector identifies a span of text by its content. Prefix and Suffix are
// optional: nil means absent, while a pointer to "" is present but empty.
type Selector struct {
	Type   string  `json:"type" validate:"omitempty,eq=TextQuoteSelector"`
	Exact  string  `json:"exact" validate:"required"`
	Prefix *string `json:"prefix,omitempty"`
	Suffix *string `json:"suffix,omitempty"`
}

// NewSelector returns a selector for exact with no context.
func NewSelector(exact string) Selector {
	return Selector{Type: SelectorType, Exact: exact}
}

// WithPrefix returns a copy of s with the prefix set.
func (s Selector) WithPrefix(prefix string) Selector {
	s.Prefix = &prefix
	return s
}

// WithSuffix returns a copy of s with the suffix set.
func (s Selector) WithSuffix(suffix string) Selector {
	s.Suffix = &suffix
	return s
}

// PrefixValue returns the prefix and whether it is present.
func (s Selector) PrefixValue() (string, bool) {
	if s.Prefix == nil {
		return "", false
	}
	return *s.Prefix, true
}

// SuffixValue returns the suffix and whether it is present.
func (s Selector) SuffixValue() (string, bool) {
	if s.Suffix == nil {
		return "", false
	}
	return *s.Suffix, true
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that exact is present and that the type tag, if set, is
// SelectorType.
func (s Selector) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSelector, err)
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return fmt.Errorf("%w: selector %s", ErrMissingParameter, fe.Field())
		}
	}
	return fmt.Errorf("%w: field %s failed %s", ErrInvalidSelector, verrs[0].Field(), verrs[0].Tag())
}

// MarshalJSON writes the selector with its type tag always set.
func (s Selector) MarshalJSON() ([]byte, error) {
	type wire Selector
	w := wire(s)
	w.Type = SelectorType
	return json.Marshal(w)
}

// ParseSelector decodes and validates a serialized selector.
func ParseSelector(data []byte) (Selector, error) {
	var s Selector
	if err := json.Unmarshal(data, &s); err != nil {
		return Selector{}, fmt.Errorf("%w: %v", ErrInvalidSelector, err)
	}
	if err := s.Validate(); err != nil {
		return Selector{}, err
	}
	if s.Type == "" {
		s.Type = SelectorType
	}
	return s, nil
}
