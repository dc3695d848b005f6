// Package strkit provides immutable, reference-counted byte strings and the
// operations scripts run on them.
//
// strkit is a set of small packages designed to be imported à la carte:
//
//   - strval: the string value, its allocator and destination slots
//   - chunk: UTF-8 lead-byte classification
//   - strip: strip, lstrip, rstrip and trim with UTF-8 aware sets
//   - search: find, startswith and endswith
//   - ascii: upper, lower and the character class predicates
//   - build: concat and htmlencode with a reusable scratch buffer
//   - ops: the named operation table and execution context
//   - template: text templates with every operation as a helper
//   - config: YAML, TOML and JSON settings with file watching
//
// # Quick Start
//
// Calling an operation by name:
//
//	import "github.com/randalmurphal/strkit/ops"
//	ctx, _ := ops.NewContext(config.Default(), nil)
//	defer ctx.Close()
//	s, _ := ctx.NewString("  hello  ")
//	res, _ := ctx.Call("trim", s)
//	fmt.Println(res) // hello
//
// Using a package directly:
//
//	import "github.com/randalmurphal/strkit/strip"
//	in, _ := strval.FromString(nil, "ééhelloé")
//	set, _ := strval.FromString(nil, "é")
//	out, _ := strip.Strip(nil, in, set)
//	fmt.Println(out) // hello
//
// Template rendering:
//
//	import "github.com/randalmurphal/strkit/template"
//	engine := template.NewEngine(ctx)
//	result, _ := engine.Render("<b>{{htmlencode name}}</b>", map[string]any{"name": "a&b"})
//
// # Design Philosophy
//
//   - Values never change after creation; operations return new values
//   - Failures are error returns; only reference-count misuse panics
//   - Each package usable independently
//   - Allocation goes through an Allocator so memory limits are testable
package strkit
