package event

import (
	"fmt"
	"reflect"
)

// Handler is anything that can be registered as a listener. Arity is the
// number of arguments the handler declares; -1 means it takes any number.
type Handler interface {
	Invoke(args ...any) error
	Arity() int
}

// Func adapts a plain Go function to Handler. Always use it through a
// pointer so handlers can be compared for removal.
type Func struct {
	arity int
	fn    func(args []any) error
}

func (f *Func) Invoke(args ...any) error {
	return f.fn(args)
}

func (f *Func) Arity() int {
	return f.arity
}

func Func0(fn func() error) *Func {
	if fn == nil {
		return nil
	}

	return &Func{arity: 0, fn: func([]any) error { return fn() }}
}

func Func1(fn func(a any) error) *Func {
	if fn == nil {
		return nil
	}

	return &Func{arity: 1, fn: func(args []any) error {
		args = fit(args, 1)
		return fn(args[0])
	}}
}

func Func2(fn func(a, b any) error) *Func {
	if fn == nil {
		return nil
	}

	return &Func{arity: 2, fn: func(args []any) error {
		args = fit(args, 2)
		return fn(args[0], args[1])
	}}
}

func Func3(fn func(a, b, c any) error) *Func {
	if fn == nil {
		return nil
	}

	return &Func{arity: 3, fn: func(args []any) error {
		args = fit(args, 3)
		return fn(args[0], args[1], args[2])
	}}
}

// FuncN wraps a variadic function but declares arity n. The function always
// receives exactly n arguments.
func FuncN(n int, fn func(args ...any) error) *Func {
	if fn == nil {
		return nil
	}

	return &Func{arity: n, fn: func(args []any) error {
		return fn(fit(args, n)...)
	}}
}

// Variadic wraps a function that accepts any number of arguments. Its
// arity is -1, which only matches an Exact(-1) policy.
func Variadic(fn func(args ...any) error) *Func {
	if fn == nil {
		return nil
	}

	return &Func{arity: -1, fn: func(args []any) error {
		return fn(args...)
	}}
}

// Typed1 wraps a single-argument function with a concrete parameter type.
// A nil payload is passed as the zero value of T.
func Typed1[T any](fn func(v T) error) *Func {
	if fn == nil {
		return nil
	}

	return &Func{arity: 1, fn: func(args []any) error {
		args = fit(args, 1)

		var v T
		if args[0] != nil {
			var ok bool
			if v, ok = args[0].(T); !ok {
				return &PayloadTypeError{Index: 0, Expected: typeString[T](), Got: args[0]}
			}
		}

		return fn(v)
	}}
}

// fit pads args with nil or truncates it to n values. Unconstrained events
// may deliver any payload length to a fixed-arity handler.
func fit(args []any, n int) []any {
	if n < 0 || len(args) == n {
		return args
	}

	out := make([]any, n)
	copy(out, args)

	return out
}

func typeString[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func invocable(h Handler) bool {
	if h == nil {
		return false
	}
	if f, ok := h.(*Func); ok {
		return f != nil && f.fn != nil
	}
	if c, ok := h.(*Callable); ok {
		return c != nil && c.target != nil
	}

	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return !v.IsNil()
	}

	return true
}

// sameHandler compares handlers by identity. Handlers holding values that
// cannot be compared, such as a slice behind an interface field, never match.
func sameHandler(a, b Handler) bool {
	if a == nil || b == nil {
		return false
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}

	return a == b
}

func describe(h Handler) string {
	return fmt.Sprintf("%T/%d", h, h.Arity())
}
