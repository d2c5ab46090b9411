package textquote

import (
	"fmt"

	"go.uber.org/zap"
)

// Resolver re-anchors quote selectors in document text. A Resolver is
// immutable once built and safe for concurrent use as long as its Matcher is.
type Resolver struct {
	matcher      Matcher
	logger       *zap.Logger
	sliceLength  int
	foldDistance int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMatcher replaces the default BitapMatcher.
func WithMatcher(m Matcher) Option {
	return func(r *Resolver) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithLogger sets the logger used for per-phase debug output.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSliceLength sets the size of the exact-text slices. Values outside
// (0, MaxPatternLength] are ignored.
func WithSliceLength(n int) Option {
	return func(r *Resolver) {
		if n > 0 && n <= MaxPatternLength {
			r.sliceLength = n
		}
	}
}

// WithFoldDistance sets the match distance used between consecutive slices.
func WithFoldDistance(d int) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.foldDistance = d
		}
	}
}

// NewResolver returns a Resolver with the given options applied over the
// defaults.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		matcher:      BitapMatcher{},
		logger:       zap.NewNop(),
		sliceLength:  MaxPatternLength,
		foldDistance: DefaultFoldDistance,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// ResolveOption configures a single resolution.
type ResolveOption func(*resolveOptions)

type resolveOptions struct {
	hint     *int
	resolver *Resolver
}

// WithHint starts the search at offset instead of the middle of the text.
func WithHint(offset int) ResolveOption {
	return func(o *resolveOptions) {
		o.hint = &offset
	}
}

// WithResolver makes Anchor methods resolve through r instead of the default
// resolver.
func WithResolver(r *Resolver) ResolveOption {
	return func(o *resolveOptions) {
		if r != nil {
			o.resolver = r
		}
	}
}

func buildResolveOptions(opts []ResolveOption) resolveOptions {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Resolve locates sel in text using the default resolver.
func Resolve(text string, sel Selector, opts ...ResolveOption) (Range, error) {
	o := buildResolveOptions(opts)
	r := defaultResolver
	if o.resolver != nil {
		r = o.resolver
	}
	return r.Resolve(text, sel, opts...)
}

// Resolve finds the range of text that best matches sel.
//
// The prefix is searched first and, when found, pins the start of the exact
// text. The suffix is only consulted when the prefix is absent or missing.
// The exact text is then searched slice by slice, each slice expected close
// to the end of the previous one, and the union of all slice matches is
// returned. Under edits the returned range may be longer or shorter than the
// exact text.
func (r *Resolver) Resolve(text string, sel Selector, opts ...ResolveOption) (Range, error) {
	if sel.Exact == "" {
		return Range{}, fmt.Errorf("%w: selector exact", ErrMissingParameter)
	}
	o := buildResolveOptions(opts)

	loc := len(text) / 2
	if o.hint != nil {
		if *o.hint < 0 {
			return Range{}, fmt.Errorf("%w: hint %d must be non-negative", ErrInvalidRange, *o.hint)
		}
		loc = *o.hint
	}

	// Context may legitimately be anywhere when the hint is poor.
	distance := len(text) * 2
	foundPrefix := false

	if sel.Prefix != nil {
		prefix := r.trimPrefix(*sel.Prefix)
		if p := r.matcher.Match(text, prefix, loc, distance); p > -1 {
			loc = p + len(prefix)
			foundPrefix = true
		}
		r.logger.Debug("prefix search",
			zap.String("prefix", prefix),
			zap.Bool("found", foundPrefix),
			zap.Int("loc", loc),
		)
	}

	if sel.Suffix != nil && !foundPrefix {
		suffix := r.trimSuffix(*sel.Suffix)
		s := r.matcher.Match(text, suffix, loc+len(sel.Exact), distance)
		if s > -1 {
			loc = s - len(sel.Exact)
		}
		r.logger.Debug("suffix search",
			zap.String("suffix", suffix),
			zap.Bool("found", s > -1),
			zap.Int("loc", loc),
		)
	}

	slices := Slice(sel.Exact, r.sliceLength)

	first := slices[0]
	start := r.matcher.Match(text, first, loc, distance)
	if start == -1 {
		r.logger.Debug("first slice not found", zap.String("slice", first), zap.Int("loc", loc))
		return Range{}, fmt.Errorf("%w: slice 1 of %d", ErrNoMatch, len(slices))
	}
	acc := foldAccumulator{
		start: start,
		end:   start + len(first),
		loc:   start + len(first),
	}

	// Slices of one quote sit next to each other; a wide distance here would
	// let the fold wander onto similar text elsewhere.
	for i, slice := range slices[1:] {
		found := r.matcher.Match(text, slice, acc.loc, r.foldDistance)
		if found == -1 {
			r.logger.Debug("slice not found",
				zap.Int("slice", i+2),
				zap.Int("loc", acc.loc),
			)
			return Range{}, fmt.Errorf("%w: slice %d of %d", ErrNoMatch, i+2, len(slices))
		}
		acc.loc = found + len(slice)
		acc.start = min(acc.start, found)
		acc.end = max(acc.end, found+len(slice))
	}

	r.logger.Debug("resolved quote",
		zap.Int("start", acc.start),
		zap.Int("end", acc.end),
		zap.Int("slices", len(slices)),
	)
	return Range{Start: acc.start, End: acc.end}, nil
}

// trimPrefix keeps the tail of an over-long prefix, the part adjacent to the
// exact text, so it fits in one matcher call.
func (r *Resolver) trimPrefix(prefix string) string {
	if len(prefix) <= r.sliceLength {
		return prefix
	}
	return reverseCut(prefix, r.sliceLength)
}

// trimSuffix keeps the head of an over-long suffix.
func (r *Resolver) trimSuffix(suffix string) string {
	if len(suffix) <= r.sliceLength {
		return suffix
	}
	return Slice(suffix, r.sliceLength)[0]
}

// reverseCut returns the last n bytes of s, moved forward to a rune start.
func reverseCut(s string, n int) string {
	i := len(s) - n
	for i < len(s) && !isRuneStart(s, i) {
		i++
	}
	return s[i:]
}
