package ascii

import "github.com/randalmurphal/strkit/strval"

// IsDigitByte reports whether c is 0-9.
func IsDigitByte(c byte) bool { return '0' <= c && c <= '9' }

// IsAlphaByte reports whether c is an ASCII letter.
func IsAlphaByte(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

// IsSpaceByte reports whether c is space, \t, \n, \v, \f or \r.
func IsSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsAlnumByte reports whether c is a letter or a digit.
func IsAlnumByte(c byte) bool { return IsAlphaByte(c) || IsDigitByte(c) }

// IsDigit reports whether input is non-empty and made only of digits.
// A nil input yields false.
func IsDigit(input *strval.Value) bool { return all(input, IsDigitByte) }

// IsAlpha reports whether input is non-empty and made only of letters.
func IsAlpha(input *strval.Value) bool { return all(input, IsAlphaByte) }

// IsSpace reports whether input is non-empty and made only of whitespace.
func IsSpace(input *strval.Value) bool { return all(input, IsSpaceByte) }

// IsAlnum reports whether input is non-empty and made only of letters and
// digits.
func IsAlnum(input *strval.Value) bool { return all(input, IsAlnumByte) }

func all(input *strval.Value, class func(byte) bool) bool {
	if input == nil || input.Len() == 0 {
		return false
	}
	for _, c := range input.Bytes() {
		if !class(c) {
			return false
		}
	}
	return true
}
