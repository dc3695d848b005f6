// Package ascii converts case and classifies characters using the ASCII
// (C locale) rules only. Bytes above 0x7F pass through case conversion
// untouched and never belong to any class.
package ascii

import "github.com/randalmurphal/strkit/strval"

// Upper returns a copy of input with a-z mapped to A-Z.
func Upper(a strval.Allocator, input *strval.Value) (*strval.Value, error) {
	return mapBytes(a, "upper", input, ToUpper)
}

// Lower returns a copy of input with A-Z mapped to a-z.
func Lower(a strval.Allocator, input *strval.Value) (*strval.Value, error) {
	return mapBytes(a, "lower", input, ToLower)
}

func mapBytes(a strval.Allocator, op string, input *strval.Value, conv func(byte) byte) (*strval.Value, error) {
	if input == nil {
		return nil, strval.BadValue(op, "Input is nil.")
	}
	src := input.Bytes()
	v, err := strval.Make(a, len(src), func(dst []byte) {
		for i, c := range src {
			dst[i] = conv(c)
		}
	})
	if err != nil {
		return nil, strval.NoMemory(op)
	}
	return v, nil
}

// ToUpper maps a single ASCII lowercase letter to uppercase.
func ToUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// ToLower maps a single ASCII uppercase letter to lowercase.
func ToLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
