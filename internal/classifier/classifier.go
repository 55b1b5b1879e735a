// Package classifier interprets a declaration's directives and buckets
// its fields by marker role.
package classifier

import (
	"go/ast"

	"github.com/seitarof/gdclassgen/internal/attrs"
	"github.com/seitarof/gdclassgen/internal/diag"
	"github.com/seitarof/gdclassgen/internal/parser"
)

const gdextPkgPath = "github.com/seitarof/gdclassgen/gdext"

// generatedMethods are the method names an emitted binding declares on
// the class type. A field sharing one would leave the annotated package
// uncompilable.
var generatedMethods = map[string]bool{
	"ClassName":          true,
	"BaseName":           true,
	"Memory":             true,
	"Base":               true,
	"SetBase":            true,
	"RegisterProperties": true,
}

// Layout is the classified view of one class declaration.
type Layout struct {
	Decl  *parser.ClassDecl
	Attrs attrs.ClassAttrs
	// BaseField names the field holding the engine base object, empty
	// when the class declares none.
	BaseField string
	// Plain lists every named non-base field in declaration order,
	// export-marked fields included. The constructor initializes them in
	// this order.
	Plain []PlainField
	// Properties holds declared property descriptors in directive order.
	Properties []PropertyField
	// Exports names fields carrying the export marker. Nothing consumes
	// them yet.
	Exports []string
}

// PlainField is one constructor-initialized field.
type PlainField struct {
	Name string
	Type parser.TypeDetail
}

// PropertyField joins a property descriptor with the struct field of the
// same name. Field stays empty when the descriptor names none.
type PropertyField struct {
	Property attrs.Property
	Field    string
	Type     parser.TypeDetail
}

// Classifier turns scanned declarations into validated layouts.
type Classifier interface {
	Classify(decl *parser.ClassDecl, defaultBase string) (*Layout, diag.List)
}

type classifierImpl struct {
	marker string
}

// New returns a classifier reading directives and field markers from
// the given namespace.
func New(marker string) Classifier {
	return &classifierImpl{marker: marker}
}

func (c *classifierImpl) Classify(decl *parser.ClassDecl, defaultBase string) (*Layout, diag.List) {
	var diags diag.List

	if !ast.IsExported(decl.Name) {
		diags.Add(decl.Pos, "class type %s is not exported", decl.Name)
		return nil, diags
	}

	layout := &Layout{Decl: decl, Attrs: attrs.ClassAttrs{Base: defaultBase}}

	seenClass := false
	for _, d := range decl.Directives {
		switch d.Name {
		case "class":
			if seenClass {
				diags.Add(d.Pos, "only one %s:class directive per type allowed", c.marker)
				continue
			}
			seenClass = true
			classAttrs, err := attrs.ParseClass(c.marker, d.Args, defaultBase)
			if err != nil {
				diags.Add(d.Pos, "%v", err)
				continue
			}
			layout.Attrs = classAttrs
		case "property":
			prop, err := attrs.ParseProperty(c.marker, d.Args)
			if err != nil {
				diags.Add(d.Pos, "%v", err)
				continue
			}
			layout.Properties = append(layout.Properties, pairField(decl, prop))
		default:
			diags.Add(d.Pos, "unknown directive %q", c.marker+":"+d.Name)
		}
	}

	for _, f := range decl.Fields {
		if f.Embedded {
			diags.Add(f.Pos, "anonymous (embedded) fields are not supported")
			continue
		}
		if generatedMethods[f.Name] {
			diags.Add(f.Pos, "field name %s collides with a generated method", f.Name)
			continue
		}

		value, tagged := f.Tag.Lookup(c.marker)
		if !tagged {
			layout.Plain = append(layout.Plain, PlainField{Name: f.Name, Type: f.Type})
			continue
		}

		markers, err := attrs.ParseMarkers(c.marker, value)
		if err != nil {
			diags.Add(f.Pos, "%v", err)
			continue
		}

		if markers.Base {
			if layout.BaseField != "" {
				diags.Add(f.Pos, "marker %q allowed for at most 1 field, already applied to %q", "base", layout.BaseField)
				continue
			}
			if !isBaseHandle(f.Type) {
				diags.Add(f.Pos, "base field %s must have type gdext.Base, found %s", f.Name, f.Type.TypeName)
				continue
			}
			layout.BaseField = f.Name
			if markers.Export {
				layout.Exports = append(layout.Exports, f.Name)
			}
			continue
		}

		if markers.Export {
			layout.Exports = append(layout.Exports, f.Name)
		}
		layout.Plain = append(layout.Plain, PlainField{Name: f.Name, Type: f.Type})
	}

	if len(diags) > 0 {
		return nil, diags
	}
	return layout, nil
}

// pairField finds the struct field a descriptor names. Descriptors may
// describe engine-side state with no backing field, so a miss is fine.
func pairField(decl *parser.ClassDecl, prop attrs.Property) PropertyField {
	for _, f := range decl.Fields {
		if !f.Embedded && f.Name == prop.Name {
			return PropertyField{Property: prop, Field: f.Name, Type: f.Type}
		}
	}
	return PropertyField{Property: prop}
}

func isBaseHandle(t parser.TypeDetail) bool {
	return t.Kind == parser.TypeKindNamed && t.Name == "Base" && t.PkgPath == gdextPkgPath
}
