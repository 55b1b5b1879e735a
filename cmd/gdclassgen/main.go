package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/seitarof/gdclassgen/internal/classifier"
	"github.com/seitarof/gdclassgen/internal/cli"
	"github.com/seitarof/gdclassgen/internal/diag"
	"github.com/seitarof/gdclassgen/internal/generator"
	"github.com/seitarof/gdclassgen/internal/manifest"
	"github.com/seitarof/gdclassgen/internal/parser"
	"github.com/seitarof/gdclassgen/internal/resolver"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	rules := resolver.DefaultRules()
	if cfg.PropagateVariantTypes {
		rules = resolver.PropagateRules()
	}

	colored := !cfg.NoColor && isatty.IsTerminal(os.Stderr.Fd())
	if !colored {
		color.NoColor = true
	}

	p := parser.New(cfg.Marker)
	c := classifier.New(cfg.Marker)
	r := resolver.New(rules...)
	f := generator.NewGoimportsFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w)
	m := manifest.New(version)
	pr := diag.NewPrinter(colorable.NewColorableStderr(), colored)

	runner := cli.NewRunner(p, c, r, g, m, pr)
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
