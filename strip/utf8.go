package strip

import (
	"bytes"

	"github.com/randalmurphal/strkit/chunk"
)

// token returns the width of the set token starting at j and whether it can
// match at all. A malformed lead byte, or a chunk cut short by the end of the
// set, yields a token that never matches.
func token(set []byte, j int) (int, bool) {
	n := chunk.Len(set[j])
	if n == chunk.Invalid {
		return 1, false
	}
	if j+n > len(set) {
		return len(set) - j, false
	}
	return n, true
}

// singleChunk reports whether set is exactly one well-formed chunk.
func singleChunk(set []byte) bool {
	return chunk.Len(set[0]) == len(set)
}

// utf8Start returns the offset of the first chunk of s that matches no token
// in set. After every match the set is searched from its first token again,
// since tokens may repeat in any order.
func utf8Start(s, set []byte) int {
	i := 0
	if singleChunk(set) {
		n := len(set)
		for i+n <= len(s) && bytes.Equal(s[i:i+n], set) {
			i += n
		}
		return i
	}

	j := 0
	for i < len(s) && j < len(set) {
		n, ok := token(set, j)
		if ok && i+n <= len(s) && bytes.Equal(s[i:i+n], set[j:j+n]) {
			i += n
			j = 0
			continue
		}
		j += n
	}
	return i
}

// utf8Stop mirrors utf8Start from the end of s, comparing each candidate
// chunk against the bytes that end at the current cursor.
func utf8Stop(s, set []byte) int {
	i := len(s)
	if singleChunk(set) {
		n := len(set)
		for i >= n && bytes.Equal(s[i-n:i], set) {
			i -= n
		}
		return i
	}

	j := 0
	for i > 0 && j < len(set) {
		n, ok := token(set, j)
		if ok && i >= n && bytes.Equal(s[i-n:i], set[j:j+n]) {
			i -= n
			j = 0
			continue
		}
		j += n
	}
	return i
}
