package textquote

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Matcher locates the best approximate occurrence of pattern in text near
// loc. distance controls how strongly matches far from loc are penalized:
// a larger distance widens the search. Match returns -1 when nothing clears
// the matcher's score threshold.
//
// Implementations must not retain per-call state; the distance of one call
// never leaks into the next.
type Matcher interface {
	Match(text, pattern string, loc, distance int) int
}

// BitapMatcher is the diff-match-patch bitap matcher. The zero value uses the
// library's default score threshold (0.5).
type BitapMatcher struct {
	// Threshold overrides diffmatchpatch.MatchThreshold when > 0. Lower is
	// stricter.
	Threshold float64
}

// Match runs diffmatchpatch.MatchMain with a fresh instance configured for
// this call only. Patterns longer than MaxPatternLength are refused.
func (m BitapMatcher) Match(text, pattern string, loc, distance int) int {
	if len(pattern) > MaxPatternLength {
		return -1
	}

	dmp := diffmatchpatch.New()
	dmp.MatchDistance = distance
	if m.Threshold > 0 {
		dmp.MatchThreshold = m.Threshold
	}
	return dmp.MatchMain(text, pattern, loc)
}
