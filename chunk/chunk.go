// Package chunk classifies bytes by the length of the UTF-8 chunk they lead.
//
// A chunk is one encoded code point: an ASCII byte on its own, or a lead byte
// followed by one to three continuation bytes. Continuation bytes and lead
// bytes that can never start valid UTF-8 (0xC0, 0xC1, 0xF5-0xFF) classify as
// Invalid.
package chunk

// Invalid is the length reported for bytes that cannot lead a chunk.
const Invalid = -1

// followers maps a byte to the total length of the chunk it leads.
var followers = [256]int8{
	/*       0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F */
	/* 0 */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* 1 */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* 2 */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* 3 */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* 4 */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* 5 */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* 6 */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* 7 */ 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	/* 8 */ -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	/* 9 */ -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	/* A */ -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	/* B */ -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	/* C */ -1, -1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	/* D */ 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	/* E */ 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	/* F */ 4, 4, 4, 4, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// Len returns the length of the chunk led by b (1 to 4), or Invalid.
func Len(b byte) int {
	return int(followers[b])
}

// IsLead reports whether b can start a chunk.
func IsLead(b byte) bool {
	return followers[b] != Invalid
}

// HasMultibyte reports whether s contains any byte above 0x7F.
func HasMultibyte(s []byte) bool {
	for _, b := range s {
		if b > 0x7F {
			return true
		}
	}
	return false
}

// Split breaks s into its chunks. A malformed lead byte, or a chunk that
// would run past the end of s, is returned as a single-byte chunk so that
// the pieces always cover s exactly.
func Split(s []byte) [][]byte {
	var out [][]byte
	for i := 0; i < len(s); {
		n := Len(s[i])
		if n == Invalid || i+n > len(s) {
			n = 1
		}
		out = append(out, s[i:i+n])
		i += n
	}
	return out
}
