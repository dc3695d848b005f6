package ops

import (
	"github.com/randalmurphal/strkit/ascii"
	"github.com/randalmurphal/strkit/build"
	"github.com/randalmurphal/strkit/search"
	"github.com/randalmurphal/strkit/strip"
	"github.com/randalmurphal/strkit/strval"
)

var (
	sigS   = Signature{Params: []Kind{KindString}, Result: KindString}
	sigSS  = Signature{Params: []Kind{KindString, KindString}, Result: KindString}
	sigSB  = Signature{Params: []Kind{KindString}, Result: KindBoolean}
	sigSSB = Signature{Params: []Kind{KindString, KindString}, Result: KindBoolean}
	sigSSI = Signature{Params: []Kind{KindString, KindString}, Result: KindInteger}
)

func init() {
	registerBuiltins()
}

// builtins is the fixed operation table, in the order scripts document it.
func builtins() []Op {
	return []Op{
		{
			Name: "concat", Sig: sigSS,
			Handler:     binaryString(build.Concat),
			Description: "Join two strings",
			Example:     `concat("ab", "cd") -> "abcd"`,
		},
		{
			Name: "lstrip", Sig: sigSS,
			Handler:     binaryString(strip.LStrip),
			Description: "Remove characters of a set from the front",
			Example:     `lstrip("ééhello", "é") -> "hello"`,
		},
		{
			Name: "rstrip", Sig: sigSS,
			Handler:     binaryString(strip.RStrip),
			Description: "Remove characters of a set from the back",
			Example:     `rstrip("hello!!", "!") -> "hello"`,
		},
		{
			Name: "strip", Sig: sigSS,
			Handler:     binaryString(strip.Strip),
			Description: "Remove characters of a set from both ends",
			Example:     `strip("--hi--", "-") -> "hi"`,
		},
		{
			Name: "trim", Sig: sigS,
			Handler:     unaryString(strip.Trim),
			Description: "Remove spaces, tabs, CR and LF from both ends",
			Example:     `trim("  hi\n") -> "hi"`,
		},
		{
			Name: "startswith", Sig: sigSSB,
			Handler:     binaryBool(search.StartsWith),
			Description: "Test for a prefix",
			Example:     `startswith("hello", "he") -> true`,
		},
		{
			Name: "endswith", Sig: sigSSB,
			Handler:     binaryBool(search.EndsWith),
			Description: "Test for a suffix",
			Example:     `endswith("hello", "lo") -> true`,
		},
		{
			Name: "find", Sig: sigSSI,
			Handler:     find,
			Description: "Offset of the first occurrence, or -1",
			Example:     `find("abcdef", "cd") -> 2`,
		},
		{
			Name: "upper", Sig: sigS,
			Handler:     unaryString(ascii.Upper),
			Description: "Map a-z to A-Z",
			Example:     `upper("abc") -> "ABC"`,
		},
		{
			Name: "lower", Sig: sigS,
			Handler:     unaryString(ascii.Lower),
			Description: "Map A-Z to a-z",
			Example:     `lower("ABC") -> "abc"`,
		},
		{
			Name: "htmlencode", Sig: sigS,
			Handler:     htmlencode,
			Description: "Escape &, < and >",
			Example:     `htmlencode("a<b") -> "a&lt;b"`,
		},
		{
			Name: "isdigit", Sig: sigSB,
			Handler:     predicate(ascii.IsDigit),
			Description: "All bytes are 0-9",
			Example:     `isdigit("123") -> true`,
		},
		{
			Name: "isalpha", Sig: sigSB,
			Handler:     predicate(ascii.IsAlpha),
			Description: "All bytes are ASCII letters",
			Example:     `isalpha("abc") -> true`,
		},
		{
			Name: "isspace", Sig: sigSB,
			Handler:     predicate(ascii.IsSpace),
			Description: "All bytes are whitespace",
			Example:     `isspace(" \t") -> true`,
		},
		{
			Name: "isalnum", Sig: sigSB,
			Handler:     predicate(ascii.IsAlnum),
			Description: "All bytes are letters or digits",
			Example:     `isalnum("a1") -> true`,
		},
	}
}

func registerBuiltins() {
	for _, op := range builtins() {
		Register(op)
	}
}

func unaryString(fn func(strval.Allocator, *strval.Value) (*strval.Value, error)) Handler {
	return func(ctx *Context, args []*strval.Value) (Result, error) {
		v, err := fn(ctx.Alloc, args[0])
		if err != nil {
			return Result{}, err
		}
		return StringResult(v), nil
	}
}

func binaryString(fn func(strval.Allocator, *strval.Value, *strval.Value) (*strval.Value, error)) Handler {
	return func(ctx *Context, args []*strval.Value) (Result, error) {
		v, err := fn(ctx.Alloc, args[0], args[1])
		if err != nil {
			return Result{}, err
		}
		return StringResult(v), nil
	}
}

func binaryBool(fn func(*strval.Value, *strval.Value) (bool, error)) Handler {
	return func(_ *Context, args []*strval.Value) (Result, error) {
		ok, err := fn(args[0], args[1])
		if err != nil {
			return Result{}, err
		}
		return BoolResult(ok), nil
	}
}

func predicate(fn func(*strval.Value) bool) Handler {
	return func(_ *Context, args []*strval.Value) (Result, error) {
		return BoolResult(fn(args[0])), nil
	}
}

func find(_ *Context, args []*strval.Value) (Result, error) {
	n, err := search.Find(args[0], args[1])
	if err != nil {
		return Result{}, err
	}
	return IntResult(n), nil
}

func htmlencode(ctx *Context, args []*strval.Value) (Result, error) {
	v, err := build.HTMLEncode(ctx.Alloc, ctx.Scratch, args[0])
	if err != nil {
		return Result{}, err
	}
	return StringResult(v), nil
}
