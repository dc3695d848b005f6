package strip

// asciiStart returns the offset of the first byte of s that is not in set.
func asciiStart(s, set []byte) int {
	i := 0
	if len(set) == 1 {
		c := set[0]
		for i < len(s) && s[i] == c {
			i++
		}
		return i
	}
	for i < len(s) && member(set, s[i]) {
		i++
	}
	return i
}

// asciiStop returns the offset just past the last byte of s that is not in
// set.
func asciiStop(s, set []byte) int {
	i := len(s)
	if len(set) == 1 {
		c := set[0]
		for i > 0 && s[i-1] == c {
			i--
		}
		return i
	}
	for i > 0 && member(set, s[i-1]) {
		i--
	}
	return i
}

func member(set []byte, c byte) bool {
	for _, b := range set {
		if b == c {
			return true
		}
	}
	return false
}
