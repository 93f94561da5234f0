package validation

import (
	"fmt"
	"io"

	"github.com/SeaCloudHub/eventually/domain/event"
)

// ListenerCounter is implemented by emitters.
type ListenerCounter interface {
	NumListeners() int
}

// MaxListeners is the leak heuristic: more listeners on one instance than
// the type allows is suspicious but never fatal.
type MaxListeners struct {
	decl    *event.Declaration
	counter ListenerCounter
}

func NewMaxListeners(decl *event.Declaration, counter ListenerCounter) MaxListeners {
	return MaxListeners{decl: decl, counter: counter}
}

func (m MaxListeners) Valid() bool {
	limit := m.decl.MaxListeners()
	return limit == 0 || m.counter.NumListeners() <= limit
}

func (m MaxListeners) Warning() string {
	return fmt.Sprintf("Warning: %s has more than %d registered listeners.", m.decl.Name(), m.decl.MaxListeners())
}

// WarnUnlessValid writes one warning line to w when the check fails and
// reports whether it did.
func (m MaxListeners) WarnUnlessValid(w io.Writer) bool {
	if m.Valid() {
		return false
	}
	if w != nil {
		_, _ = fmt.Fprintln(w, m.Warning())
	}

	return true
}
