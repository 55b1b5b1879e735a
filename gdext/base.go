package gdext

// InstanceID identifies an engine-side object. The zero value is never a
// live object.
type InstanceID uint64

// Base is the opaque handle to the engine-side base object of a class
// instance. Generated bindings store one per instance and expose it
// through Base and SetBase accessors.
type Base struct {
	id InstanceID
}

// NewBase wraps an engine instance id in a handle.
func NewBase(id InstanceID) Base {
	return Base{id: id}
}

// ID returns the engine instance id, or zero for a released or
// never-attached handle.
func (b Base) ID() InstanceID {
	return b.id
}

// Valid reports whether the handle still points at a live engine object.
func (b Base) Valid() bool {
	return b.id != 0
}

// Release detaches the handle from its engine object. Further Valid
// calls report false.
func (b *Base) Release() {
	b.id = 0
}
