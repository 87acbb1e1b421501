// Package origin tracks which numeric backend produced an array.
//
// Every array entering the library is tagged with an origin: a small stable
// id assigned to the backend's identity string on first sight. The tag is
// what lets a tensor map reject a mix of, say, CPU-resident and
// GPU-resident buffers at construction time instead of failing deep inside
// a later operation.
//
// The registry is process-wide shared state. Ids are assigned monotonically
// starting at 1 and never change or collide for the lifetime of the
// process; None (0) is reserved for "no origin constraint", the origin of
// an empty map.
//
// # Thread Safety
//
// Register and NameOf are safe for concurrent use. The lock is held only
// around the identity table lookup-or-insert, never across block or map
// construction.
package origin

import (
	"fmt"
	"sync"

	"github.com/arloliu/tensormap/errs"
)

// ID identifies the backend that produced an array. The zero value None
// means "no origin constraint" and is never assigned to a backend.
type ID int32

// None is the origin of an empty map: no backend constraint.
const None ID = 0

type registry struct {
	mu    sync.RWMutex
	ids   map[string]ID
	names []string // names[i] is the identity of ID(i+1)
}

var global = &registry{ids: make(map[string]ID)}

// Register returns the id for the given backend identity, allocating the
// next id if the identity was never seen before. Registering the same
// identity any number of times, from any number of goroutines, yields the
// same id. It never fails.
func Register(identity string) ID {
	return global.register(identity)
}

// NameOf returns the identity string registered for the given id, for use
// in diagnostics. It fails with errs.ErrUnknownOrigin for ids that were
// never returned by Register, including None.
func NameOf(id ID) (string, error) {
	return global.nameOf(id)
}

// ResetForTesting clears the process-wide registry so tests can observe
// deterministic id assignment. It must not be called from production code.
func ResetForTesting() {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.ids = make(map[string]ID)
	global.names = global.names[:0]
}

func (r *registry) register(identity string) ID {
	// Fast path: identity already known.
	r.mu.RLock()
	id, ok := r.ids[identity]
	r.mu.RUnlock()
	if ok {
		return id
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock, another goroutine may have won.
	if id, ok := r.ids[identity]; ok {
		return id
	}

	r.names = append(r.names, identity)
	id = ID(len(r.names)) //nolint:gosec
	r.ids[identity] = id

	return id
}

func (r *registry) nameOf(id ID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id <= None || int(id) > len(r.names) {
		return "", fmt.Errorf("%w: id %d was never registered", errs.ErrUnknownOrigin, id)
	}

	return r.names[id-1], nil
}
