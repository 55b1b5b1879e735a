package parser

import (
	"fmt"
	"go/types"
)

// TypeDetail keeps simplified type metadata for field classification,
// variant resolution and zero-value rendering.
type TypeDetail struct {
	Kind    TypeKind
	PkgPath string
	// Name is the unqualified type name for basic and named types.
	Name string
	// BasicKind is the underlying basic kind for basic types and named
	// types with a basic underlying type.
	BasicKind string
	// Underlying categorizes what a named type is defined as.
	Underlying TypeKind
	ElemType   *TypeDetail
	// TypeName is the rendered form, qualified with the package name only
	// for types from other packages.
	TypeName string
}

// TypeKind is coarse-grained type category.
type TypeKind int

const (
	TypeKindBasic TypeKind = iota
	TypeKindNamed
	TypeKindPointer
	TypeKindSlice
	TypeKindMap
	TypeKindArray
	TypeKindStruct
	TypeKindOther
)

// analyzeType flattens a go/types type. Named types belonging to self
// render unqualified so generated code in the same package can use the
// rendered form directly.
func analyzeType(t types.Type, self *types.Package) TypeDetail {
	switch v := t.(type) {
	case *types.Alias:
		return analyzeType(v.Rhs(), self)
	case *types.Basic:
		return TypeDetail{
			Kind:      TypeKindBasic,
			Name:      v.Name(),
			BasicKind: v.Name(),
			TypeName:  v.Name(),
		}
	case *types.Pointer:
		elem := analyzeType(v.Elem(), self)
		return TypeDetail{
			Kind:     TypeKindPointer,
			ElemType: &elem,
			TypeName: "*" + elem.TypeName,
		}
	case *types.Slice:
		elem := analyzeType(v.Elem(), self)
		return TypeDetail{
			Kind:     TypeKindSlice,
			ElemType: &elem,
			TypeName: "[]" + elem.TypeName,
		}
	case *types.Array:
		elem := analyzeType(v.Elem(), self)
		return TypeDetail{
			Kind:     TypeKindArray,
			ElemType: &elem,
			TypeName: fmt.Sprintf("[%d]%s", v.Len(), elem.TypeName),
		}
	case *types.Map:
		key := analyzeType(v.Key(), self)
		elem := analyzeType(v.Elem(), self)
		return TypeDetail{
			Kind:     TypeKindMap,
			ElemType: &elem,
			TypeName: "map[" + key.TypeName + "]" + elem.TypeName,
		}
	case *types.Named:
		obj := v.Obj()
		detail := TypeDetail{
			Kind:       TypeKindNamed,
			Name:       obj.Name(),
			TypeName:   obj.Name(),
			Underlying: underlyingKind(v.Underlying()),
		}
		if obj.Pkg() != nil {
			detail.PkgPath = obj.Pkg().Path()
			if obj.Pkg() != self {
				detail.TypeName = obj.Pkg().Name() + "." + obj.Name()
			}
		}
		if basic, ok := v.Underlying().(*types.Basic); ok {
			detail.BasicKind = basic.Name()
		}
		return detail
	case *types.Struct:
		return TypeDetail{
			Kind:     TypeKindStruct,
			TypeName: types.TypeString(t, selfQualifier(self)),
		}
	default:
		return TypeDetail{
			Kind:     TypeKindOther,
			TypeName: types.TypeString(t, selfQualifier(self)),
		}
	}
}

func underlyingKind(t types.Type) TypeKind {
	switch t.(type) {
	case *types.Basic:
		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Pointer:
		return TypeKindPointer
	case *types.Slice:
		return TypeKindSlice
	case *types.Map:
		return TypeKindMap
	case *types.Array:
		return TypeKindArray
	default:
		return TypeKindOther
	}
}

func selfQualifier(self *types.Package) types.Qualifier {
	return func(p *types.Package) string {
		if p == self {
			return ""
		}
		return p.Name()
	}
}
