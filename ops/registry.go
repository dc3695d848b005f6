package ops

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/randalmurphal/strkit/strval"
)

// registry stores the operation table.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Op)
)

// Register adds an operation to the table.
// Panics if an operation with the same name is already registered, or if the
// op has no name or handler.
//
// Example:
//
//	ops.Register(ops.Op{
//	    Name: "shout",
//	    Sig:  ops.Signature{Params: []ops.Kind{ops.KindString}, Result: ops.KindString},
//	    Handler: func(ctx *ops.Context, args []*strval.Value) (ops.Result, error) {
//	        v, err := ascii.Upper(ctx.Alloc, args[0])
//	        if err != nil {
//	            return ops.Result{}, err
//	        }
//	        return ops.StringResult(v), nil
//	    },
//	})
func Register(op Op) {
	if op.Name == "" || op.Handler == nil {
		panic("ops.Register: op needs a name and a handler")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[op.Name]; exists {
		panic(fmt.Sprintf("operation %q already registered", op.Name))
	}
	registry[op.Name] = op
}

// Lookup returns the named operation.
func Lookup(name string) (Op, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	op, ok := registry[name]
	return op, ok
}

// Available returns the names of all registered operations, sorted
// alphabetically.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if an operation is registered.
func IsRegistered(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Unregister removes an operation from the table.
// This is primarily useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, name)
}

// ResetRegistry drops every host-registered operation and restores the
// built-in table.
// This is primarily useful for testing.
func ResetRegistry() {
	registryMu.Lock()
	registry = make(map[string]Op)
	registryMu.Unlock()

	registerBuiltins()
}

// Call runs the named operation with args. A nil ctx runs on the Go heap
// without a scratch buffer.
//
// A string result carries a reference the caller owns and must release (or
// hand to a Slot with Result.AssignTo).
func Call(ctx *Context, name string, args ...*strval.Value) (Result, error) {
	if ctx == nil {
		ctx = defaultContext()
	}

	op, ok := Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}
	if len(args) != op.Sig.Arity() {
		return Result{}, fmt.Errorf("%w: %s expects %d, got %d",
			ErrArity, name, op.Sig.Arity(), len(args))
	}

	res, err := op.Handler(ctx, args)
	if err != nil {
		ctx.Logger.Debug("operation failed",
			slog.String("op", name),
			slog.String("kind", strval.Kind(err)),
			slog.Any("error", err))
		return Result{}, err
	}
	return res, nil
}
