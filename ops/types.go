package ops

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/strkit/strval"
)

// Kind is the type of an operation argument or result.
type Kind int

// Value kinds seen at the operation boundary.
const (
	KindString Kind = iota
	KindInteger
	KindBoolean
)

// String returns the kind's name as scripts see it.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Signature describes what an operation takes and returns.
type Signature struct {
	Params []Kind
	Result Kind
}

// Arity returns the number of parameters.
func (s Signature) Arity() int {
	return len(s.Params)
}

// String formats the signature as "(string, string) -> string".
func (s Signature) String() string {
	names := make([]string, len(s.Params))
	for i, p := range s.Params {
		names[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(names, ", "), s.Result)
}

// Handler implements an operation. args has already been checked against
// the signature's arity.
type Handler func(ctx *Context, args []*strval.Value) (Result, error)

// Op is one entry in the operation table.
type Op struct {
	Name        string
	Sig         Signature
	Handler     Handler
	Description string
	Example     string
}

// Result is the outcome of a successful call. Booleans are reported as the
// integers 0 and 1.
type Result struct {
	Kind Kind
	Str  *strval.Value
	Int  int
}

// StringResult wraps a new string value.
func StringResult(v *strval.Value) Result {
	return Result{Kind: KindString, Str: v}
}

// IntResult wraps an integer.
func IntResult(n int) Result {
	return Result{Kind: KindInteger, Int: n}
}

// BoolResult wraps a boolean as 0 or 1.
func BoolResult(b bool) Result {
	if b {
		return Result{Kind: KindBoolean, Int: 1}
	}
	return Result{Kind: KindBoolean}
}

// Bool reports whether the result is a true boolean or a non-zero integer.
func (r Result) Bool() bool {
	return r.Kind != KindString && r.Int != 0
}

// String formats the result for display.
func (r Result) String() string {
	switch r.Kind {
	case KindString:
		if r.Str == nil {
			return ""
		}
		return r.Str.String()
	case KindBoolean:
		if r.Int != 0 {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%d", r.Int)
	}
}

// AssignTo moves a string result into dst, releasing what dst held.
// Non-string results leave dst untouched.
func (r Result) AssignTo(dst *strval.Slot) {
	if r.Kind == KindString {
		dst.Assign(r.Str)
	}
}

// Release drops the result's reference to its string value, if any.
func (r Result) Release() {
	if r.Kind == KindString && r.Str != nil {
		r.Str.Release()
	}
}
