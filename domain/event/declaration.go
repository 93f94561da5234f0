package event

import "sync"

const (
	// ListenerAdded is declared on every type and fires with the new
	// *Callable whenever a listener is registered.
	ListenerAdded = "listener_added"

	DefaultMaxListeners = 10
)

// Declaration is the per-type table of emittable events. One Declaration is
// shared by every emitter of a type; it is expected to be configured at
// definition time and read afterwards.
type Declaration struct {
	mu sync.RWMutex

	name         string
	order        []string
	policies     map[string]ArityPolicy
	strict       bool
	maxListeners int
}

// NewDeclaration creates a declaration for the named type with
// listener_added already declared.
func NewDeclaration(name string) *Declaration {
	d := &Declaration{
		name:         name,
		policies:     make(map[string]ArityPolicy),
		maxListeners: DefaultMaxListeners,
	}
	d.Declare(ListenerAdded, Exact(1))

	return d
}

func (d *Declaration) Name() string {
	return d.name
}

// Emits declares each name without an arity constraint.
func (d *Declaration) Emits(names ...string) {
	for _, name := range names {
		d.Declare(name, Unconstrained())
	}
}

// EmitsArity declares a single event whose listeners and payloads must have
// exactly n arguments.
func (d *Declaration) EmitsArity(name string, n int) {
	d.Declare(name, Exact(n))
}

// Declare sets the policy for name. A re-declared name keeps its original
// position in Events.
func (d *Declaration) Declare(name string, policy ArityPolicy) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.policies[name]; !ok {
		d.order = append(d.order, name)
	}
	d.policies[name] = policy
}

// Events returns the declared names in declaration order.
func (d *Declaration) Events() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, len(d.order))
	copy(names, d.order)

	return names
}

func (d *Declaration) IsDeclared(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.policies[name]
	return ok
}

// PolicyOf returns the policy of a declared event. ok is false when the
// event was never declared.
func (d *Declaration) PolicyOf(name string) (policy ArityPolicy, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	policy, ok = d.policies[name]
	return
}

func (d *Declaration) HasArityConstraint(name string) bool {
	policy, ok := d.PolicyOf(name)
	return ok && policy.IsExact()
}

func (d *Declaration) EnableStrict() {
	d.SetStrict(true)
}

func (d *Declaration) DisableStrict() {
	d.SetStrict(false)
}

func (d *Declaration) SetStrict(strict bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.strict = strict
}

func (d *Declaration) IsStrict() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.strict
}

// SetMaxListeners sets the per-instance leak warning threshold. 0 disables
// the warning.
func (d *Declaration) SetMaxListeners(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.maxListeners = n
}

func (d *Declaration) MaxListeners() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.maxListeners
}

// Clear forgets every declared event, listener_added included. Strict mode
// and the listener threshold are left alone.
func (d *Declaration) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.order = nil
	d.policies = make(map[string]ArityPolicy)
}

// CanRegisterOrEmit is the single gate shared by registration and emission.
func (d *Declaration) CanRegisterOrEmit(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.strict {
		return true
	}
	_, ok := d.policies[name]

	return ok
}
