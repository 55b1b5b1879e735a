package gdext

import (
	"fmt"
	"sync"
)

// ClassPlugin is one class's registration record. Generated init
// functions append one per class; the host replays the accumulated
// records into a ClassDB via Load.
type ClassPlugin struct {
	ClassName     string
	BaseClassName string
	// CreateFn is nil for classes generated without a constructor; such
	// classes register but cannot be instantiated by the host.
	CreateFn CreateFunc
	FreeFn   FreeFunc
}

var (
	registryMu sync.Mutex
	registry   []ClassPlugin
)

// Register appends a class record to the process-wide registry. Records
// are kept in registration order and never overwritten; a class name
// colliding with an earlier record is caught later by ClassDB.AddClass.
func Register(p ClassPlugin) error {
	if p.ClassName == "" {
		return fmt.Errorf("gdext: register: empty class name")
	}
	if p.BaseClassName == "" {
		return fmt.Errorf("gdext: register %s: empty base class name", p.ClassName)
	}
	if p.FreeFn == nil {
		return fmt.Errorf("gdext: register %s: nil free function", p.ClassName)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, p)
	return nil
}

// MustRegister is Register for init-time use in generated code, where a
// malformed record is a generator bug rather than a runtime condition.
func MustRegister(p ClassPlugin) {
	if err := Register(p); err != nil {
		panic(err)
	}
}

// Snapshot returns a copy of the registry in registration order.
func Snapshot() []ClassPlugin {
	registryMu.Lock()
	defer registryMu.Unlock()
	out := make([]ClassPlugin, len(registry))
	copy(out, registry)
	return out
}

// ResetRegistry empties the registry. Intended for tests.
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = nil
}
