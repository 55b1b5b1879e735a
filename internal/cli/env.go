package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// applyEnv layers GDCLASSGEN_* environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}
