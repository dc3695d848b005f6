package template

import (
	"text/template"

	"github.com/randalmurphal/strkit/ops"
	"github.com/randalmurphal/strkit/strval"
)

// opFuncs returns one template function per registered operation.
func opFuncs(ctx *ops.Context) template.FuncMap {
	funcs := template.FuncMap{}
	for _, name := range ops.Available() {
		op, ok := ops.Lookup(name)
		if !ok {
			continue
		}
		if fn := bridge(ctx, op); fn != nil {
			funcs[name] = fn
		}
	}
	return funcs
}

// bridge adapts an operation to a function text/template can call.
// Operations of other arities are not exposed.
func bridge(ctx *ops.Context, op ops.Op) any {
	name := op.Name
	switch op.Sig.Arity() {
	case 1:
		return func(a string) (any, error) {
			return invoke(ctx, name, a)
		}
	case 2:
		return func(a, b string) (any, error) {
			return invoke(ctx, name, a, b)
		}
	default:
		return nil
	}
}

// invoke copies args into values, runs the operation and converts the result
// back to a Go value. Every reference taken here is released before return.
func invoke(ctx *ops.Context, name string, args ...string) (any, error) {
	vals := make([]*strval.Value, 0, len(args))
	defer func() {
		for _, v := range vals {
			v.Release()
		}
	}()

	for _, a := range args {
		v, err := ctx.NewString(a)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}

	res, err := ctx.Call(name, vals...)
	if err != nil {
		return nil, err
	}
	defer res.Release()

	switch res.Kind {
	case ops.KindString:
		return res.Str.String(), nil
	case ops.KindBoolean:
		return res.Bool(), nil
	default:
		return res.Int, nil
	}
}
