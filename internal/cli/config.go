package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config stores options for a single generation run. Values are layered
// in order: defaults, config file, environment, flags.
type Config struct {
	// Patterns are the package patterns to scan.
	Patterns []string `yaml:"-"`

	// Out is the generated file name placed in each package directory.
	Out string `yaml:"out" env:"GDCLASSGEN_OUT"`
	// OutDir redirects all generated files into one directory; files are
	// then prefixed with their package name.
	OutDir string `yaml:"out_dir" env:"GDCLASSGEN_OUT_DIR"`
	// Marker is the directive and struct tag key.
	Marker string `yaml:"tag" env:"GDCLASSGEN_TAG"`
	// DefaultBase is the base type for directives without base=.
	DefaultBase string `yaml:"default_base" env:"GDCLASSGEN_DEFAULT_BASE"`
	// Manifest, when set, is where the YAML class manifest is written.
	Manifest string `yaml:"manifest" env:"GDCLASSGEN_MANIFEST"`
	// PropagateVariantTypes registers declared or inferred variant types
	// instead of the fixed Int placeholder.
	PropagateVariantTypes bool `yaml:"propagate_variant_types" env:"GDCLASSGEN_PROPAGATE_VARIANT_TYPES"`
	// NoColor disables colored diagnostics.
	NoColor bool `yaml:"no_color" env:"GDCLASSGEN_NO_COLOR"`

	ShowVersion bool   `yaml:"-"`
	ConfigFile  string `yaml:"-"`
}

const defaultConfigFile = ".gdclassgen.yaml"

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Out:         "gdclass_gen.go",
		Marker:      "gdclass",
		DefaultBase: "RefCounted",
	}
}

// OutputFileFor returns the output path for one scanned package.
func (c *Config) OutputFileFor(pkgName, pkgDir string) string {
	if c.OutDir != "" {
		return filepath.Join(c.OutDir, pkgName+"_"+c.Out)
	}
	return filepath.Join(pkgDir, c.Out)
}

// applyFile layers a YAML config file onto cfg. A missing file is only
// an error when the path was given explicitly.
func applyFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}
