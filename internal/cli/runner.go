package cli

import (
	"fmt"
	"log"
	"strings"

	"github.com/seitarof/gdclassgen/gdext/chain"
	"github.com/seitarof/gdclassgen/internal/classifier"
	"github.com/seitarof/gdclassgen/internal/diag"
	"github.com/seitarof/gdclassgen/internal/generator"
	"github.com/seitarof/gdclassgen/internal/manifest"
	"github.com/seitarof/gdclassgen/internal/parser"
	"github.com/seitarof/gdclassgen/internal/resolver"
)

// Runner orchestrates parser/classifier/resolver/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	parser     parser.Parser
	classifier classifier.Classifier
	resolver   resolver.Resolver
	generator  generator.Generator
	manifest   manifest.Writer
	printer    *diag.Printer
}

// NewRunner creates a default runner implementation.
func NewRunner(
	p parser.Parser,
	c classifier.Classifier,
	r resolver.Resolver,
	g generator.Generator,
	m manifest.Writer,
	pr *diag.Printer,
) Runner {
	return &runnerImpl{
		parser:     p,
		classifier: c,
		resolver:   r,
		generator:  g,
		manifest:   m,
		printer:    pr,
	}
}

// outputTarget adapts one resolved output path to the generator config
// contract.
type outputTarget string

func (t outputTarget) OutputFilename() string { return string(t) }

// pkgGroup collects the declarations of one package in scan order.
type pkgGroup struct {
	pkgPath string
	pkgName string
	dir     string
	decls   []*parser.ClassDecl
}

// Run executes a single generation cycle. Declarations with errors are
// reported and skipped; the remaining classes still generate, and the
// run fails afterwards so builds do not silently lose classes.
func (r *runnerImpl) Run(cfg *Config) error {
	decls, diags, err := r.parser.Scan(cfg.Patterns...)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if len(decls) == 0 && len(diags) == 0 {
		log.Printf("gdclassgen: no annotated structs found in %s", strings.Join(cfg.Patterns, " "))
		return nil
	}

	allPlans := make([]resolver.ClassPlan, 0, len(decls))
	for _, grp := range groupByPackage(decls) {
		plans := make([]resolver.ClassPlan, 0, len(grp.decls))
		for _, decl := range grp.decls {
			layout, declDiags := r.classifier.Classify(decl, cfg.DefaultBase)
			if len(declDiags) > 0 {
				diags.Append(declDiags)
				log.Printf("gdclassgen: warning: class %s skipped, declaration has errors", decl.Name)
				continue
			}
			plan := r.resolver.Resolve(layout)
			if !chain.Known(layout.Attrs.Base) {
				log.Printf("gdclassgen: warning: class %s: unknown base type %s, the generated registration will not compile",
					layout.Decl.Name, layout.Attrs.Base)
			}
			for _, prop := range plan.Properties {
				if prop.Rule == resolver.FallbackRule {
					log.Printf("gdclassgen: warning: class %s property %q: no variant type decided, registering as Int",
						layout.Decl.Name, prop.Field.Property.Name)
				}
			}
			plans = append(plans, plan)
		}
		if len(plans) == 0 {
			continue
		}

		target := outputTarget(cfg.OutputFileFor(grp.pkgName, grp.dir))
		if err := r.generator.Generate(target, plans); err != nil {
			r.printer.PrintAll(diags)
			return fmt.Errorf("generate %s: %w", target, err)
		}
		allPlans = append(allPlans, plans...)
	}

	if cfg.Manifest != "" && len(allPlans) > 0 {
		if err := r.manifest.Write(cfg.Manifest, allPlans); err != nil {
			r.printer.PrintAll(diags)
			return err
		}
	}

	if len(diags) > 0 {
		r.printer.PrintAll(diags)
		return fmt.Errorf("%d error(s) in annotated class declarations", len(diags))
	}
	return nil
}

func groupByPackage(decls []*parser.ClassDecl) []*pkgGroup {
	byPath := map[string]*pkgGroup{}
	groups := make([]*pkgGroup, 0, 1)
	for _, decl := range decls {
		grp, ok := byPath[decl.PkgPath]
		if !ok {
			grp = &pkgGroup{pkgPath: decl.PkgPath, pkgName: decl.PkgName, dir: decl.Dir}
			byPath[decl.PkgPath] = grp
			groups = append(groups, grp)
		}
		grp.decls = append(grp.decls, decl)
	}
	return groups
}
