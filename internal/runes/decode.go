// Package runes decodes UTF-8 text one codepoint at a time.
//
// The decoder is permissive: it never fails and never looks back. A broken
// sequence is reported as [RuneError] after consuming exactly the bytes that
// were read while trying to decode it, so the caller always makes progress
// and resynchronizes on the next byte.
package runes

// RuneError is returned for every malformed, overlong or out-of-range
// sequence.
const RuneError = '�'

const (
	contMask  = 0xC0
	contValue = 0x80
	contBits  = 0x3F

	maxRune      = 0x10FFFF
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Decode decodes the first codepoint in b and returns it together with the
// number of bytes consumed.
//
// For a non-empty b the returned size is always at least 1. An empty b
// yields (RuneError, 0).
func Decode(b []byte) (rune, int) {
	return decode(b)
}

// DecodeString is like Decode but reads from a string without converting it.
func DecodeString(s string) (rune, int) {
	return decode(s)
}

// Next decodes the first codepoint of either a byte slice or a string.
// Callers that are generic over their text type use it to avoid converting.
func Next[T []byte | string](s T) (rune, int) {
	return decode(s)
}

func decode[T []byte | string](s T) (rune, int) {
	if len(s) == 0 {
		return RuneError, 0
	}

	c := s[0]
	switch {
	case c&0x80 == 0:
		return rune(c), 1

	case c&0xE0 == 0xC0:
		r, n, ok := continuation(s, rune(c&0x1F), 1)
		if !ok || r < 0x80 {
			return RuneError, n
		}
		return r, n

	case c&0xF0 == 0xE0:
		r, n, ok := continuation(s, rune(c&0x0F), 2)
		if !ok || r < 0x800 || (r >= surrogateMin && r <= surrogateMax) {
			return RuneError, n
		}
		return r, n

	case c&0xF8 == 0xF0:
		r, n, ok := continuation(s, rune(c&0x07), 3)
		if !ok || r < 0x10000 || r > maxRune {
			return RuneError, n
		}
		return r, n
	}

	// Stray continuation byte or an invalid lead byte.
	return RuneError, 1
}

// continuation folds up to count continuation bytes following the lead byte
// into r. It stops at the first byte that is not a continuation byte; that
// byte has already been read and counts as consumed. Input that ends early
// consumes what is left.
func continuation[T []byte | string](s T, r rune, count int) (rune, int, bool) {
	n := 1
	for range count {
		if n >= len(s) {
			return RuneError, n, false
		}
		b := s[n]
		n++
		if b&contMask != contValue {
			return RuneError, n, false
		}
		r = r<<6 | rune(b&contBits)
	}
	return r, n, true
}
