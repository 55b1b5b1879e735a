// Package gdext defines the runtime contracts that generated class
// bindings compile against: the Class interface, the base-object handle,
// the process-wide class plugin registry, and the ClassDB the host feeds
// from that registry at startup.
package gdext

import "github.com/seitarof/gdclassgen/gdext/chain"

// Class is implemented by every extension class binding. The generated
// code provides ClassName, BaseName and Memory; user code provides the
// struct itself.
type Class interface {
	// ClassName returns the name the class is registered under.
	ClassName() string
	// BaseName returns the engine type the class extends.
	BaseName() string
	// Memory returns the lifecycle policy inherited from the base type.
	Memory() Memory
}

// CreateFunc constructs a fresh instance of a class around the engine
// base object handed in by the host.
type CreateFunc func(Base) Class

// FreeFunc releases an instance previously produced by the matching
// CreateFunc.
type FreeFunc func(Class)

// PropertyRegistrar is implemented by class bindings that declare
// editor-visible properties. The host invokes it once per class while
// loading the registry.
type PropertyRegistrar interface {
	RegisterProperties(db *ClassDB) error
}

// BaseHolder gives the host uniform access to the base object embedded
// in a class instance.
type BaseHolder interface {
	Base() *Base
	SetBase(b Base)
}

// Memory is the lifecycle policy of a class, derived from its base type.
type Memory int

const (
	// MemManual instances are owned by the scene tree or the host and
	// freed explicitly.
	MemManual Memory = iota
	// MemRefCounted instances are released when their reference count
	// drops to zero.
	MemRefCounted
)

func (m Memory) String() string {
	switch m {
	case MemManual:
		return "manual"
	case MemRefCounted:
		return "ref-counted"
	default:
		return "unknown"
	}
}

// MemoryOf derives the lifecycle policy for a class extending the given
// engine type. Types descending from RefCounted are reference counted,
// everything else is managed manually.
func MemoryOf(base string) Memory {
	if base == "RefCounted" {
		return MemRefCounted
	}
	for _, ancestor := range chain.Ancestry(base) {
		if ancestor == "RefCounted" {
			return MemRefCounted
		}
	}
	return MemManual
}
