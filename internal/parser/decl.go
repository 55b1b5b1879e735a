package parser

import (
	"go/token"
	"reflect"
)

// ClassDecl holds one annotated struct declaration as found in source.
type ClassDecl struct {
	Name    string
	PkgPath string
	PkgName string
	// Dir is the directory of the declaring file, where generated output
	// for the package belongs.
	Dir string
	// Directives lists the declaration's marker comment lines in source
	// order, class and property directives alike.
	Directives []Directive
	Pos        token.Position
	Fields     []FieldDecl
}

// Directive is one //<marker>:<name> comment line. Args carries the
// text after the directive name, trimmed but otherwise unparsed.
type Directive struct {
	Name string
	Args string
	Pos  token.Position
}

// FieldDecl stores one struct field in declaration order. An embedded
// field carries its type name as Name.
type FieldDecl struct {
	Name     string
	Embedded bool
	Tag      reflect.StructTag
	Type     TypeDetail
	Pos      token.Position
}
