// Package gen emits the per-arity source files of the root arity package.
//
// Go generics cannot range over array lengths, so each operation family is
// stamped out once per arity from 0 to the configured ceiling. The output
// is deterministic: the same Config always yields byte-identical files, so
// regeneration never produces spurious diffs.
//
// Configuration is a small YAML document (gen.yaml at the repository root)
// naming the target package, the arity ceiling, and which file families to
// emit. Validation ensures the ceiling is sane and every family is known.
package gen

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives a generation run.
type Config struct {
	Package  string   `yaml:"package"`
	MaxArity int      `yaml:"max_arity"`
	Families []string `yaml:"families"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the configuration:
// - Non-empty package name
// - MaxArity in 1..64
// - At least one family, all of them known, no duplicates
func (c Config) Validate() error {
	if c.Package == "" {
		return errors.New("package name is required")
	}
	if c.MaxArity < 1 || c.MaxArity > 64 {
		return fmt.Errorf("max_arity %d out of range 1..64", c.MaxArity)
	}
	if len(c.Families) == 0 {
		return errors.New("at least one family is required")
	}
	seen := make(map[string]bool, len(c.Families))
	for _, f := range c.Families {
		if _, ok := emitters[f]; !ok {
			return fmt.Errorf("unknown family %q", f)
		}
		if seen[f] {
			return fmt.Errorf("duplicate family %q", f)
		}
		seen[f] = true
	}
	return nil
}
