// Package search answers substring and anchoring questions about string
// values. All comparisons are byte-wise.
package search

import "github.com/randalmurphal/strkit/strval"

// NotFound is returned by Find when the needle does not occur.
const NotFound = -1

// Find returns the lowest offset at which needle occurs in input, or
// NotFound. An empty needle matches at offset 0, including in an empty input.
func Find(input, needle *strval.Value) (int, error) {
	if input == nil {
		return 0, strval.BadValue("find", "Input is nil.")
	}
	if needle == nil {
		return 0, strval.BadValue("find", "Find str is nil.")
	}
	return Index(input.Bytes(), needle.Bytes()), nil
}

// Index is the byte-level search behind Find.
func Index(s, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(s) {
		return NotFound
	}

	first := needle[0]
	last := len(s) - len(needle)
	for i := 0; i <= last; i++ {
		if s[i] != first {
			continue
		}
		if matchAt(s, i, needle) {
			return i
		}
	}
	return NotFound
}

// StartsWith reports whether input begins with prefix.
func StartsWith(input, prefix *strval.Value) (bool, error) {
	if input == nil {
		return false, strval.BadValue("startswith", "Input is nil.")
	}
	if prefix == nil {
		return false, strval.BadValue("startswith", "Prefix is nil.")
	}
	s, p := input.Bytes(), prefix.Bytes()
	if len(p) > len(s) {
		return false, nil
	}
	return matchAt(s, 0, p), nil
}

// EndsWith reports whether input ends with suffix.
func EndsWith(input, suffix *strval.Value) (bool, error) {
	if input == nil {
		return false, strval.BadValue("endswith", "Input is nil.")
	}
	if suffix == nil {
		return false, strval.BadValue("endswith", "Suffix is nil.")
	}
	s, p := input.Bytes(), suffix.Bytes()
	if len(p) > len(s) {
		return false, nil
	}
	return matchAt(s, len(s)-len(p), p), nil
}

// matchAt compares needle against s starting at offset i. The caller
// guarantees i+len(needle) <= len(s).
func matchAt(s []byte, i int, needle []byte) bool {
	for k := range needle {
		if s[i+k] != needle[k] {
			return false
		}
	}
	return true
}
