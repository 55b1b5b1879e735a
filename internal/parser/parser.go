package parser

import (
	"fmt"
	"go/ast"
	"go/token"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/seitarof/gdclassgen/internal/diag"
)

// Parser discovers annotated struct declarations in Go packages.
type Parser interface {
	Scan(patterns ...string) ([]*ClassDecl, diag.List, error)
}

type parserImpl struct {
	marker string
	prefix string
}

// New returns a parser recognizing //<marker>:<name> directives.
func New(marker string) Parser {
	return &parserImpl{
		marker: marker,
		prefix: "//" + marker + ":",
	}
}

func (p *parserImpl) Scan(patterns ...string) ([]*ClassDecl, diag.List, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedSyntax,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, nil, fmt.Errorf("load packages %v: %w", patterns, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, nil, fmt.Errorf("packages matching %v have compilation errors", patterns)
	}
	if len(pkgs) == 0 {
		return nil, nil, fmt.Errorf("no packages matched %v", patterns)
	}

	var decls []*ClassDecl
	var diags diag.List
	for _, pkg := range pkgs {
		p.scanPackage(pkg, &decls, &diags)
	}
	return decls, diags, nil
}

func (p *parserImpl) scanPackage(pkg *packages.Package, decls *[]*ClassDecl, diags *diag.List) {
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gen, ok := d.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				directives := p.directivesFor(pkg.Fset, gen, ts)
				if len(directives) == 0 {
					continue
				}
				pos := pkg.Fset.Position(ts.Pos())
				if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
					diags.Add(pos, "generic types are not supported")
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					diags.Add(pos, "%s directives are not allowed on %s %s; not a valid struct type",
						p.marker, typeKindName(ts.Type), ts.Name.Name)
					continue
				}
				*decls = append(*decls, p.buildDecl(pkg, ts, st, directives, pos))
			}
		}
	}
}

// directivesFor collects directive lines attached to a type declaration.
// Directive comments are excluded from ast doc text, so the raw comment
// list is scanned instead. For a single-spec declaration the doc usually
// sits on the GenDecl; grouped declarations carry it per spec.
func (p *parserImpl) directivesFor(fset *token.FileSet, gen *ast.GenDecl, ts *ast.TypeSpec) []Directive {
	var dirs []Directive
	if gen.Doc != nil && len(gen.Specs) == 1 {
		dirs = append(dirs, p.directivesOf(fset, gen.Doc)...)
	}
	if ts.Doc != nil {
		dirs = append(dirs, p.directivesOf(fset, ts.Doc)...)
	}
	return dirs
}

// directivesOf splits every //<marker>:<name> line of a comment group
// into its name and argument text. A line whose name is not an
// identifier belongs to some other tool and is skipped.
func (p *parserImpl) directivesOf(fset *token.FileSet, doc *ast.CommentGroup) []Directive {
	var dirs []Directive
	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, p.prefix) {
			continue
		}
		rest := c.Text[len(p.prefix):]
		name, args := rest, ""
		if i := strings.IndexAny(rest, " \t"); i >= 0 {
			name, args = rest[:i], strings.TrimSpace(rest[i+1:])
		}
		if !token.IsIdentifier(name) {
			continue
		}
		dirs = append(dirs, Directive{Name: name, Args: args, Pos: fset.Position(c.Pos())})
	}
	return dirs
}

func typeKindName(e ast.Expr) string {
	switch e.(type) {
	case *ast.InterfaceType:
		return "interface"
	case *ast.MapType:
		return "map"
	case *ast.ArrayType:
		return "array"
	case *ast.FuncType:
		return "func"
	case *ast.ChanType:
		return "chan"
	default:
		return "type"
	}
}

func (p *parserImpl) buildDecl(pkg *packages.Package, ts *ast.TypeSpec, st *ast.StructType, directives []Directive, pos token.Position) *ClassDecl {
	decl := &ClassDecl{
		Name:       ts.Name.Name,
		PkgPath:    pkg.PkgPath,
		PkgName:    pkg.Name,
		Dir:        filepath.Dir(pos.Filename),
		Directives: directives,
		Pos:        pos,
	}

	for _, field := range st.Fields.List {
		tag := fieldTag(field)
		detail := TypeDetail{Kind: TypeKindOther}
		if pkg.TypesInfo != nil {
			if t := pkg.TypesInfo.TypeOf(field.Type); t != nil {
				detail = analyzeType(t, pkg.Types)
			}
		}

		if len(field.Names) == 0 {
			decl.Fields = append(decl.Fields, FieldDecl{
				Name:     detail.Name,
				Embedded: true,
				Tag:      tag,
				Type:     detail,
				Pos:      pkg.Fset.Position(field.Pos()),
			})
			continue
		}
		for _, name := range field.Names {
			decl.Fields = append(decl.Fields, FieldDecl{
				Name: name.Name,
				Tag:  tag,
				Type: detail,
				Pos:  pkg.Fset.Position(name.Pos()),
			})
		}
	}
	return decl
}

func fieldTag(field *ast.Field) reflect.StructTag {
	if field.Tag == nil {
		return ""
	}
	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return ""
	}
	return reflect.StructTag(raw)
}
