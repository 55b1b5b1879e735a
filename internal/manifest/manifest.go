// Package manifest renders a summary of generated classes for host
// tooling that loads the extension.
package manifest

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/seitarof/gdclassgen/gdext"
	"github.com/seitarof/gdclassgen/internal/resolver"
)

// Manifest is the generation summary.
type Manifest struct {
	Generator string  `yaml:"generator"`
	Classes   []Class `yaml:"classes"`
}

// Class is one generated class entry.
type Class struct {
	Name        string     `yaml:"name"`
	Base        string     `yaml:"base"`
	Memory      string     `yaml:"memory"`
	Package     string     `yaml:"package"`
	Constructor bool       `yaml:"constructor"`
	BaseField   string     `yaml:"base_field,omitempty"`
	Properties  []Property `yaml:"properties,omitempty"`
}

// Property is one registered property entry.
type Property struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
	Getter  string `yaml:"getter"`
	Setter  string `yaml:"setter"`
}

// Writer renders manifests to disk.
type Writer interface {
	Write(path string, plans []resolver.ClassPlan) error
}

type writerImpl struct {
	version string
}

// New creates a manifest writer stamping the given tool version.
func New(version string) Writer {
	return &writerImpl{version: version}
}

func (w *writerImpl) Write(path string, plans []resolver.ClassPlan) error {
	data, err := yaml.Marshal(Build(plans, w.version))
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	return nil
}

// Build assembles the manifest from class plans in generation order.
func Build(plans []resolver.ClassPlan, version string) Manifest {
	m := Manifest{Generator: "gdclassgen " + version}
	for _, p := range plans {
		class := Class{
			Name:        p.Layout.Decl.Name,
			Base:        p.Layout.Attrs.Base,
			Memory:      gdext.MemoryOf(p.Layout.Attrs.Base).String(),
			Package:     p.Layout.Decl.PkgPath,
			Constructor: p.Layout.Attrs.HasInit,
			BaseField:   p.Layout.BaseField,
		}
		for _, prop := range p.Properties {
			class.Properties = append(class.Properties, Property{
				Name:    prop.Field.Property.Name,
				Variant: prop.Variant.String(),
				Getter:  prop.Field.Property.Getter,
				Setter:  prop.Field.Property.Setter,
			})
		}
		m.Classes = append(m.Classes, class)
	}
	return m
}
