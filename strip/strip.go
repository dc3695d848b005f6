package strip

import (
	"github.com/randalmurphal/strkit/chunk"
	"github.com/randalmurphal/strkit/strval"
)

// Whitespace is the set removed by Trim.
const Whitespace = " \t\r\n"

var whitespace = []byte(Whitespace)

// scanner computes a cut offset from one end of a subject.
type scanner func(s, set []byte) int

// scannersFor picks the byte-wise scanners for an all-ASCII set and the
// chunk-wise ones otherwise.
func scannersFor(set []byte) (start, stop scanner) {
	if chunk.HasMultibyte(set) {
		return utf8Start, utf8Stop
	}
	return asciiStart, asciiStop
}

// Bounds returns the half-open range of s left after stripping set from both
// ends. When every token of s is strippable, from == to == len(s).
func Bounds(s, set []byte) (from, to int) {
	if len(s) == 0 || len(set) == 0 {
		return 0, len(s)
	}
	start, stop := scannersFor(set)
	from = start(s, set)
	if from == len(s) {
		return from, from
	}
	to = stop(s, set)
	// Malformed subjects can make the two scanners disagree.
	if to < from {
		to = from
	}
	return from, to
}

// Left returns the offset where content starts once set is stripped from the
// front of s.
func Left(s, set []byte) int {
	if len(s) == 0 || len(set) == 0 {
		return 0
	}
	start, _ := scannersFor(set)
	return start(s, set)
}

// Right returns the offset where content ends once set is stripped from the
// back of s.
func Right(s, set []byte) int {
	if len(s) == 0 || len(set) == 0 {
		return len(s)
	}
	_, stop := scannersFor(set)
	return stop(s, set)
}

// Strip removes tokens of set from both ends of input.
func Strip(a strval.Allocator, input, set *strval.Value) (*strval.Value, error) {
	if err := checkArgs("strip", input, set); err != nil {
		return nil, err
	}
	if input.Len() == 0 || set.Len() == 0 {
		return input.Retain(), nil
	}
	from, to := Bounds(input.Bytes(), set.Bytes())
	return cut(a, "strip", input, from, to)
}

// LStrip removes tokens of set from the front of input.
func LStrip(a strval.Allocator, input, set *strval.Value) (*strval.Value, error) {
	if err := checkArgs("lstrip", input, set); err != nil {
		return nil, err
	}
	if input.Len() == 0 || set.Len() == 0 {
		return input.Retain(), nil
	}
	from := Left(input.Bytes(), set.Bytes())
	return cut(a, "lstrip", input, from, input.Len())
}

// RStrip removes tokens of set from the back of input.
func RStrip(a strval.Allocator, input, set *strval.Value) (*strval.Value, error) {
	if err := checkArgs("rstrip", input, set); err != nil {
		return nil, err
	}
	if input.Len() == 0 || set.Len() == 0 {
		return input.Retain(), nil
	}
	to := Right(input.Bytes(), set.Bytes())
	return cut(a, "rstrip", input, 0, to)
}

// Trim removes spaces, tabs, carriage returns and newlines from both ends of
// input. It always returns a new value.
func Trim(a strval.Allocator, input *strval.Value) (*strval.Value, error) {
	if input == nil {
		return nil, strval.BadValue("trim", "Input is nil.")
	}
	s := input.Bytes()
	from := asciiStart(s, whitespace)
	to := from
	if from < len(s) {
		to = asciiStop(s, whitespace)
	}
	return cut(a, "trim", input, from, to)
}

func checkArgs(op string, input, set *strval.Value) error {
	if input == nil {
		return strval.BadValue(op, "Input string is nil.")
	}
	if set == nil {
		return strval.BadValue(op, "Cannot strip nil value.")
	}
	return nil
}

// cut copies input[from:to] into a new value.
func cut(a strval.Allocator, op string, input *strval.Value, from, to int) (*strval.Value, error) {
	part := input.Bytes()[from:to]
	v, err := strval.FromBytes(a, part)
	if err != nil {
		return nil, strval.NoMemory(op)
	}
	return v, nil
}
