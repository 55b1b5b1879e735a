package cli

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config, layering them
// over the config file and environment.
func ParseArgs(args []string) (*Config, error) {
	cfg := DefaultConfig()

	fs := pflag.NewFlagSet("gdclassgen", pflag.ContinueOnError)
	out := fs.StringP("out", "o", cfg.Out, "generated file name per package")
	outDir := fs.String("out-dir", "", "write all generated files into this directory")
	marker := fs.String("tag", cfg.Marker, "directive and struct tag marker")
	defaultBase := fs.String("default-base", cfg.DefaultBase, "base type for directives without base=")
	manifestPath := fs.String("manifest", "", "write a YAML class manifest to this path")
	propagate := fs.Bool("propagate-variant-types", false, "register declared or inferred variant types instead of Int")
	noColor := fs.Bool("no-color", false, "disable colored diagnostics")
	configFile := fs.String("config", "", "config file path (default "+defaultConfigFile+")")
	showVersion := fs.BoolP("version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *showVersion {
		cfg.ShowVersion = true
		return cfg, nil
	}

	cfg.ConfigFile = *configFile
	if err := applyFile(cfg, cfg.ConfigFile); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if fs.Changed("out") {
		cfg.Out = *out
	}
	if fs.Changed("out-dir") {
		cfg.OutDir = *outDir
	}
	if fs.Changed("tag") {
		cfg.Marker = *marker
	}
	if fs.Changed("default-base") {
		cfg.DefaultBase = *defaultBase
	}
	if fs.Changed("manifest") {
		cfg.Manifest = *manifestPath
	}
	if fs.Changed("propagate-variant-types") {
		cfg.PropagateVariantTypes = *propagate
	}
	if fs.Changed("no-color") {
		cfg.NoColor = *noColor
	}

	cfg.Patterns = fs.Args()
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = []string{"./..."}
	}

	if strings.TrimSpace(cfg.Out) == "" {
		return nil, fmt.Errorf("--out is required")
	}
	if !token.IsIdentifier(cfg.Marker) {
		return nil, fmt.Errorf("--tag must be an identifier, got %q", cfg.Marker)
	}
	if !token.IsIdentifier(cfg.DefaultBase) {
		return nil, fmt.Errorf("--default-base must be an identifier, got %q", cfg.DefaultBase)
	}
	return cfg, nil
}
