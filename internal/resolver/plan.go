package resolver

import "github.com/seitarof/gdclassgen/internal/classifier"

// FieldInit is one constructor assignment. Inits follow field
// declaration order; the base handle is always assigned after them.
type FieldInit struct {
	Name string
	Expr string
}

// ClassPlan bundles a classified declaration with its constructor
// assignments and resolved property plans, ready for emission.
type ClassPlan struct {
	Layout     *classifier.Layout
	Inits      []FieldInit
	Properties []PropertyPlan
}
