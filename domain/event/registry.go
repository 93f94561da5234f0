package event

import (
	"reflect"
	"sync"
)

// DefaultRegistry holds the declarations used by For.
var DefaultRegistry = NewRegistry()

// Registry maps Go types to their Declaration.
type Registry struct {
	mu    sync.RWMutex
	decls map[reflect.Type]*Declaration
	order []reflect.Type
}

func NewRegistry() *Registry {
	return &Registry{
		decls: make(map[reflect.Type]*Declaration),
	}
}

// For returns the declaration of T from DefaultRegistry, creating it on
// first use. T and *T share a declaration.
func For[T any]() *Declaration {
	return ForIn[T](DefaultRegistry)
}

func ForIn[T any](r *Registry) *Declaration {
	return r.Of(reflect.TypeOf((*T)(nil)).Elem())
}

// Of returns the declaration for typ, creating it on first use.
func (r *Registry) Of(typ reflect.Type) *Declaration {
	typ = baseType(typ)

	r.mu.RLock()
	d, ok := r.decls[typ]
	r.mu.RUnlock()
	if ok {
		return d
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.decls[typ]; ok {
		return d
	}
	d = NewDeclaration(typeName(typ))
	r.decls[typ] = d
	r.order = append(r.order, typ)

	return d
}

// Lookup finds a declaration by type name.
func (r *Registry) Lookup(name string) (*Declaration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, typ := range r.order {
		if d := r.decls[typ]; d.Name() == name {
			return d, true
		}
	}

	return nil, false
}

// All returns every declaration in creation order.
func (r *Registry) All() []*Declaration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	decls := make([]*Declaration, 0, len(r.order))
	for _, typ := range r.order {
		decls = append(decls, r.decls[typ])
	}

	return decls
}

// Reset drops the declaration of typ. Emitters already bound to it keep
// their reference.
func (r *Registry) Reset(typ reflect.Type) {
	typ = baseType(typ)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.decls[typ]; !ok {
		return
	}
	delete(r.decls, typ)

	for i, t := range r.order {
		if t == typ {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func baseType(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	return typ
}

func typeName(typ reflect.Type) string {
	if name := typ.Name(); name != "" {
		return name
	}

	return typ.String()
}
