package textquote

import "unicode/utf8"

// Slice splits exact into ordered chunks of at most size bytes so that each
// chunk can be handed to the bitap matcher in a single call. Chunks always
// concatenate back to exact. A chunk boundary that would land inside a UTF-8
// sequence is pulled back to the start of that rune.
//
// A size outside (0, MaxPatternLength] is treated as MaxPatternLength.
// Empty input yields no slices.
func Slice(exact string, size int) []string {
	if size <= 0 || size > MaxPatternLength {
		size = MaxPatternLength
	}

	var slices []string
	for len(exact) > 0 {
		if len(exact) <= size {
			slices = append(slices, exact)
			break
		}

		n := size
		for n > 0 && !utf8.RuneStart(exact[n]) {
			n--
		}
		if n == 0 {
			// No rune start within reach (size smaller than the rune or
			// invalid UTF-8); cut at the fixed width instead.
			n = size
		}

		slices = append(slices, exact[:n])
		exact = exact[n:]
	}
	return slices
}
