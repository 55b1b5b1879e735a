package gdext

// VariantType enumerates the engine-side value types a property can
// carry across the binding boundary.
type VariantType int

const (
	VariantNil VariantType = iota
	VariantBool
	VariantInt
	VariantFloat
	VariantString
	VariantVector2
	VariantVector3
	VariantColor
	VariantStringName
	VariantNodePath
	VariantDictionary
	VariantArray
	VariantPackedByteArray
	VariantObject
)

var variantNames = [...]string{
	VariantNil:             "Nil",
	VariantBool:            "Bool",
	VariantInt:             "Int",
	VariantFloat:           "Float",
	VariantString:          "String",
	VariantVector2:         "Vector2",
	VariantVector3:         "Vector3",
	VariantColor:           "Color",
	VariantStringName:      "StringName",
	VariantNodePath:        "NodePath",
	VariantDictionary:      "Dictionary",
	VariantArray:           "Array",
	VariantPackedByteArray: "PackedByteArray",
	VariantObject:          "Object",
}

var variantByName = func() map[string]VariantType {
	m := make(map[string]VariantType, len(variantNames))
	for t, name := range variantNames {
		m[name] = VariantType(t)
	}
	return m
}()

// String returns the canonical spelling of the type, matching the
// suffix of its constant name.
func (t VariantType) String() string {
	if t < 0 || int(t) >= len(variantNames) {
		return "Nil"
	}
	return variantNames[t]
}

// ParseVariantType maps a canonical spelling back to its type. The
// second result is false for spellings the enum does not carry.
func ParseVariantType(s string) (VariantType, bool) {
	t, ok := variantByName[s]
	return t, ok
}
