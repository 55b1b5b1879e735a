package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seitarof/gdclassgen/gdext"
	"github.com/seitarof/gdclassgen/internal/attrs"
	"github.com/seitarof/gdclassgen/internal/classifier"
	"github.com/seitarof/gdclassgen/internal/parser"
	"github.com/seitarof/gdclassgen/internal/resolver"
)

type testConfig struct {
	filename string
}

func (c testConfig) OutputFilename() string { return c.filename }

type errFormatter struct{}

func (errFormatter) Format(string, []byte) ([]byte, error) {
	return nil, errors.New("boom")
}

type nopWriter struct{}

func (nopWriter) Write(string, []byte) error { return nil }

func classPlan(name, base string, hasInit bool, baseField string, props ...resolver.PropertyPlan) resolver.ClassPlan {
	return resolver.ClassPlan{
		Layout: &classifier.Layout{
			Decl:      &parser.ClassDecl{Name: name, PkgName: "game", PkgPath: "example.com/game"},
			Attrs:     attrs.ClassAttrs{Base: base, HasInit: hasInit},
			BaseField: baseField,
		},
		Properties: props,
	}
}

func propPlan(name string, v gdext.VariantType, getter, setter string) resolver.PropertyPlan {
	return resolver.PropertyPlan{
		Field: classifier.PropertyField{
			Field:    name,
			Property: attrs.Property{Name: name, VariantTag: v.String(), Getter: getter, Setter: setter},
		},
		Variant: v,
	}
}

func withInits(plan resolver.ClassPlan, inits ...resolver.FieldInit) resolver.ClassPlan {
	plan.Inits = inits
	return plan
}

func generate(t *testing.T, plans []resolver.ClassPlan) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "gdclass_gen.go")
	g := New(NewGoimportsFormatter(), NewFileWriter())
	if err := g.Generate(testConfig{filename: filename}, plans); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(b)
}

func TestGenerate_FullClass(t *testing.T) {
	got := generate(t, []resolver.ClassPlan{
		withInits(
			classPlan("Player", "Node2D", true, "base",
				propPlan("health", gdext.VariantInt, "GetHealth", "SetHealth"),
			),
			resolver.FieldInit{Name: "health", Expr: "0"},
			resolver.FieldInit{Name: "name", Expr: `""`},
		),
	})

	wantSubstrings := []string{
		"// Code generated by gdclassgen. DO NOT EDIT.",
		"package game",
		`func (c *Player) ClassName() string { return "Player" }`,
		`func (c *Player) BaseName() string { return "Node2D" }`,
		`gdext.MemoryOf("Node2D")`,
		"func NewPlayer(base gdext.Base) *Player",
		"c.health = 0",
		`c.name = ""`,
		"c.SetBase(base)",
		"// RegisterProperties declares Player's properties in db.",
		`db.RegisterProperty("Player", "health", gdext.VariantInt, "GetHealth", "SetHealth")`,
		"func (c *Player) Base() *gdext.Base { return &c.base }",
		"func (c *Player) SetBase(b gdext.Base) { c.base = b }",
		"func freePlayer(obj gdext.Class)",
		"return NewPlayer(base)",
		`chain.Node2D("Player")`,
	}
	for _, want := range wantSubstrings {
		if !strings.Contains(got, want) {
			t.Errorf("generated code missing %q:\n%s", want, got)
		}
	}
}

func TestGenerate_InitAssignmentOrder(t *testing.T) {
	got := generate(t, []resolver.ClassPlan{
		withInits(
			classPlan("Player", "Node2D", true, "base"),
			resolver.FieldInit{Name: "health", Expr: "0"},
			resolver.FieldInit{Name: "spawn", Expr: "Vector2{}"},
			resolver.FieldInit{Name: "name", Expr: `""`},
		),
	})

	offsets := []int{
		strings.Index(got, "c.health = 0"),
		strings.Index(got, "c.spawn = Vector2{}"),
		strings.Index(got, `c.name = ""`),
		strings.Index(got, "c.SetBase(base)"),
	}
	for i, off := range offsets {
		if off < 0 {
			t.Fatalf("assignment %d missing:\n%s", i, got)
		}
		if i > 0 && offsets[i-1] > off {
			t.Fatalf("assignments out of order at %d:\n%s", i, got)
		}
	}
}

func TestGenerate_InitWithoutBaseField(t *testing.T) {
	got := generate(t, []resolver.ClassPlan{
		withInits(
			classPlan("Cooldown", "RefCounted", true, ""),
			resolver.FieldInit{Name: "Remaining", Expr: "0"},
		),
	})

	if !strings.Contains(got, "func NewCooldown(_ gdext.Base) *Cooldown") {
		t.Fatalf("constructor should ignore the base argument:\n%s", got)
	}
	if !strings.Contains(got, "c.Remaining = 0") {
		t.Fatalf("field assignment missing:\n%s", got)
	}
	if strings.Contains(got, "SetBase") {
		t.Fatalf("no delegation expected without a base field:\n%s", got)
	}
	if !strings.Contains(got, `chain.RefCounted("Cooldown")`) {
		t.Fatalf("chain registration missing:\n%s", got)
	}
}

func TestGenerate_NoConstructor(t *testing.T) {
	got := generate(t, []resolver.ClassPlan{
		classPlan("SaveSlot", "RefCounted", false, ""),
	})

	if strings.Contains(got, "func NewSaveSlot") {
		t.Fatalf("constructor generated without init:\n%s", got)
	}
	if strings.Contains(got, "CreateFn:") {
		t.Fatalf("CreateFn generated without init:\n%s", got)
	}
	if !strings.Contains(got, "FreeFn:") {
		t.Fatalf("FreeFn missing:\n%s", got)
	}
	if !strings.Contains(got, "func freeSaveSlot(obj gdext.Class)") {
		t.Fatalf("free function missing:\n%s", got)
	}
}

func TestGenerate_DelegationWithoutInit(t *testing.T) {
	got := generate(t, []resolver.ClassPlan{
		classPlan("Panel", "Control", false, "body"),
	})

	if strings.Contains(got, "func NewPanel") {
		t.Fatalf("constructor generated without init:\n%s", got)
	}
	if !strings.Contains(got, "func (c *Panel) Base() *gdext.Base { return &c.body }") {
		t.Fatalf("read delegation missing:\n%s", got)
	}
	if !strings.Contains(got, "func (c *Panel) SetBase(b gdext.Base) { c.body = b }") {
		t.Fatalf("write delegation missing:\n%s", got)
	}
}

func TestGenerate_MultipleClassesOneFile(t *testing.T) {
	got := generate(t, []resolver.ClassPlan{
		classPlan("Player", "Node2D", true, "base"),
		classPlan("Enemy", "Node2D", true, ""),
	})

	if count := strings.Count(got, "package game"); count != 1 {
		t.Fatalf("package clause appears %d times:\n%s", count, got)
	}
	if count := strings.Count(got, "func init() {"); count != 2 {
		t.Fatalf("expected one init per class, found %d:\n%s", count, got)
	}
	if !strings.Contains(got, `chain.Node2D("Player")`) || !strings.Contains(got, `chain.Node2D("Enemy")`) {
		t.Fatalf("chain registrations missing:\n%s", got)
	}
}

func TestGenerate_PropagatedVariant(t *testing.T) {
	got := generate(t, []resolver.ClassPlan{
		classPlan("Hud", "Control", true, "",
			propPlan("ratio", gdext.VariantFloat, "GetRatio", "SetRatio"),
		),
	})

	if !strings.Contains(got, "gdext.VariantFloat") {
		t.Fatalf("resolved variant not rendered:\n%s", got)
	}
}

func TestGenerate_EmptyPlans(t *testing.T) {
	g := New(NewGoimportsFormatter(), NewFileWriter())

	err := g.Generate(testConfig{filename: "unused.go"}, nil)
	if err == nil || !strings.Contains(err.Error(), "no class plans") {
		t.Fatalf("Generate() error = %v, want no class plans", err)
	}
}

func TestGenerate_FormatterError(t *testing.T) {
	g := New(errFormatter{}, nopWriter{})

	err := g.Generate(testConfig{filename: "unused.go"}, []resolver.ClassPlan{
		classPlan("Player", "Node2D", true, "base"),
	})
	if err == nil || !strings.Contains(err.Error(), "format: boom") {
		t.Fatalf("Generate() error = %v, want wrapped formatter error", err)
	}
}
