package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/seitarof/gdclassgen/gdext"
	"github.com/seitarof/gdclassgen/internal/resolver"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Generator emits the registration file for one package's classes.
type Generator interface {
	Generate(cfg Config, plans []resolver.ClassPlan) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

type templateData struct {
	Package string
	Classes []classTemplateData
}

type classTemplateData struct {
	Name       string
	Base       string
	HasInit    bool
	BaseField  string
	Inits      []fieldInitTemplateData
	Properties []propertyTemplateData
}

type fieldInitTemplateData struct {
	Name string
	Expr string
}

type propertyTemplateData struct {
	Name    string
	Variant gdext.VariantType
	Getter  string
	Setter  string
}

// New creates a code generator.
func New(f Formatter, w FileWriter) Generator {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"variantExpr": variantExpr,
	}).ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(cfg Config, plans []resolver.ClassPlan) error {
	if len(plans) == 0 {
		return fmt.Errorf("no class plans")
	}

	data := buildTemplateData(plans)
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "class.go.tmpl", data); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	formatted, err := g.formatter.Format(cfg.OutputFilename(), buf.Bytes())
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if err := g.writer.Write(cfg.OutputFilename(), formatted); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

func buildTemplateData(plans []resolver.ClassPlan) templateData {
	classes := make([]classTemplateData, 0, len(plans))
	for _, p := range plans {
		class := classTemplateData{
			Name:      p.Layout.Decl.Name,
			Base:      p.Layout.Attrs.Base,
			HasInit:   p.Layout.Attrs.HasInit,
			BaseField: p.Layout.BaseField,
		}
		for _, init := range p.Inits {
			class.Inits = append(class.Inits, fieldInitTemplateData{Name: init.Name, Expr: init.Expr})
		}
		for _, prop := range p.Properties {
			class.Properties = append(class.Properties, propertyTemplateData{
				Name:    prop.Field.Property.Name,
				Variant: prop.Variant,
				Getter:  prop.Field.Property.Getter,
				Setter:  prop.Field.Property.Setter,
			})
		}
		classes = append(classes, class)
	}

	return templateData{
		Package: plans[0].Layout.Decl.PkgName,
		Classes: classes,
	}
}

func variantExpr(v gdext.VariantType) string {
	return "gdext.Variant" + v.String()
}
