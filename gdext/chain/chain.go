// Package chain is the per-base-type inheritance registration facility.
//
// Generated bindings call the function named after their base type
// (chain.Node2D, chain.RefCounted, ...) once per class, which records the
// class's full ancestor chain for the host to query at load time. A base
// type without a function here cannot be extended; the generated call
// simply fails to compile, which is the intended signal.
package chain

import "sync"

// catalog maps every supported engine type to its ancestors, nearest
// first, ending at Object.
var catalog = map[string][]string{
	"Object":     {},
	"RefCounted": {"Object"},
	"Resource":   {"RefCounted", "Object"},
	"Node":       {"Object"},
	"CanvasItem": {"Node", "Object"},
	"Node2D":     {"CanvasItem", "Node", "Object"},
	"Node3D":     {"Node", "Object"},
	"Control":    {"CanvasItem", "Node", "Object"},
}

var (
	mu     sync.RWMutex
	chains = map[string][]string{}
)

// Object records class as extending Object directly.
func Object(class string) { record(class, "Object") }

// RefCounted records class as extending RefCounted.
func RefCounted(class string) { record(class, "RefCounted") }

// Resource records class as extending Resource.
func Resource(class string) { record(class, "Resource") }

// Node records class as extending Node.
func Node(class string) { record(class, "Node") }

// CanvasItem records class as extending CanvasItem.
func CanvasItem(class string) { record(class, "CanvasItem") }

// Node2D records class as extending Node2D.
func Node2D(class string) { record(class, "Node2D") }

// Node3D records class as extending Node3D.
func Node3D(class string) { record(class, "Node3D") }

// Control records class as extending Control.
func Control(class string) { record(class, "Control") }

func record(class, base string) {
	mu.Lock()
	defer mu.Unlock()
	chain := make([]string, 0, len(catalog[base])+1)
	chain = append(chain, base)
	chain = append(chain, catalog[base]...)
	chains[class] = chain
}

// Of returns the recorded ancestor chain for a registered class, nearest
// base first, or nil when the class was never recorded.
func Of(class string) []string {
	mu.RLock()
	defer mu.RUnlock()
	chain, ok := chains[class]
	if !ok {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}

// Ancestry returns the ancestor chain of an engine type from the static
// catalog, or nil for types the facility does not know.
func Ancestry(engineType string) []string {
	chain, ok := catalog[engineType]
	if !ok {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}

// Known reports whether engineType can serve as a base type.
func Known(engineType string) bool {
	_, ok := catalog[engineType]
	return ok
}

// Reset drops all recorded chains. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	chains = map[string][]string{}
}
