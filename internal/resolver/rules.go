package resolver

import (
	"github.com/seitarof/gdclassgen/gdext"
	"github.com/seitarof/gdclassgen/internal/classifier"
	"github.com/seitarof/gdclassgen/internal/parser"
)

// DefaultRules returns the standard chain. Every property registers as
// Int; the declared variant type stays in the descriptor only.
func DefaultRules() []Rule {
	return []Rule{&PlaceholderRule{}}
}

// PropagateRules returns the chain used when variant types flow into
// registrations: the declared variant_type decides when its spelling is
// known, the backing field's Go type covers the rest.
func PropagateRules() []Rule {
	return []Rule{
		&DeclaredRule{},
		&FieldTypeRule{},
	}
}

// PlaceholderRule registers every property as Int.
type PlaceholderRule struct{}

func (r *PlaceholderRule) Name() string { return "placeholder-int" }

func (r *PlaceholderRule) Try(classifier.PropertyField) (gdext.VariantType, bool) {
	return gdext.VariantInt, true
}

// DeclaredRule uses the variant_type written in the descriptor, when
// its spelling names a known variant.
type DeclaredRule struct{}

func (r *DeclaredRule) Name() string { return "declared" }

func (r *DeclaredRule) Try(prop classifier.PropertyField) (gdext.VariantType, bool) {
	return gdext.ParseVariantType(prop.Property.VariantTag)
}

// FieldTypeRule infers the variant from the backing field's Go type.
// A descriptor without a backing field has nothing to infer from.
type FieldTypeRule struct{}

func (r *FieldTypeRule) Name() string { return "field-type" }

func (r *FieldTypeRule) Try(prop classifier.PropertyField) (gdext.VariantType, bool) {
	if prop.Field == "" {
		return 0, false
	}
	return variantForType(prop.Type)
}

func variantForType(t parser.TypeDetail) (gdext.VariantType, bool) {
	switch t.Kind {
	case parser.TypeKindBasic:
		return variantForBasic(t.BasicKind)
	case parser.TypeKindNamed:
		if v, ok := variantForNamed(t.Name); ok {
			return v, true
		}
		if t.BasicKind != "" {
			return variantForBasic(t.BasicKind)
		}
		return 0, false
	case parser.TypeKindSlice:
		if t.ElemType != nil && isByteKind(t.ElemType.BasicKind) {
			return gdext.VariantPackedByteArray, true
		}
		return gdext.VariantArray, true
	case parser.TypeKindMap:
		return gdext.VariantDictionary, true
	case parser.TypeKindPointer:
		return gdext.VariantObject, true
	default:
		return 0, false
	}
}

func variantForBasic(kind string) (gdext.VariantType, bool) {
	switch kind {
	case "bool":
		return gdext.VariantBool, true
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "byte", "rune":
		return gdext.VariantInt, true
	case "float32", "float64":
		return gdext.VariantFloat, true
	case "string":
		return gdext.VariantString, true
	default:
		return 0, false
	}
}

var namedVariants = map[string]gdext.VariantType{
	"Vector2":    gdext.VariantVector2,
	"Vector3":    gdext.VariantVector3,
	"Color":      gdext.VariantColor,
	"StringName": gdext.VariantStringName,
	"NodePath":   gdext.VariantNodePath,
}

func variantForNamed(name string) (gdext.VariantType, bool) {
	v, ok := namedVariants[name]
	return v, ok
}

func isByteKind(kind string) bool {
	return kind == "byte" || kind == "uint8"
}
