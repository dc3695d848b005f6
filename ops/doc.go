// Package ops exposes the string operations to a host runtime under stable
// names, the way a script calls them.
//
// # Operations
//
//	concat(a, b) -> string        lstrip(s, set) -> string
//	rstrip(s, set) -> string      strip(s, set) -> string
//	trim(s) -> string             startswith(s, prefix) -> boolean
//	endswith(s, suffix) -> boolean
//	find(s, needle) -> integer    upper(s) -> string
//	lower(s) -> string            htmlencode(s) -> string
//	isdigit, isalpha, isspace, isalnum (s) -> boolean
//
// # Usage
//
//	ctx, err := ops.NewContext(config.Default(), nil)
//	defer ctx.Close()
//
//	s, _ := ctx.NewString("  hi  ")
//	res, err := ctx.Call("trim", s)
//	if err != nil {
//	    // strval.IsBadValue(err) or strval.IsOutOfMemory(err)
//	}
//	var dst strval.Slot
//	res.AssignTo(&dst)
//
// Hosts may add their own operations with Register.
package ops
