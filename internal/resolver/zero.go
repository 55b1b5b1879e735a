package resolver

import "github.com/seitarof/gdclassgen/internal/parser"

// ZeroExpr renders the explicit zero value a constructor assigns to a
// field of the given type. Named types follow their underlying type, so
// a defined slice gets nil and a defined struct gets a composite
// literal.
func ZeroExpr(t parser.TypeDetail) string {
	switch t.Kind {
	case parser.TypeKindBasic:
		return zeroBasic(t.BasicKind)
	case parser.TypeKindNamed:
		if t.BasicKind != "" {
			return zeroBasic(t.BasicKind)
		}
		switch t.Underlying {
		case parser.TypeKindStruct, parser.TypeKindArray:
			return t.TypeName + "{}"
		default:
			return "nil"
		}
	case parser.TypeKindPointer, parser.TypeKindSlice, parser.TypeKindMap:
		return "nil"
	case parser.TypeKindStruct, parser.TypeKindArray:
		return t.TypeName + "{}"
	default:
		return "nil"
	}
}

func zeroBasic(kind string) string {
	switch kind {
	case "bool":
		return "false"
	case "string":
		return `""`
	default:
		return "0"
	}
}
