package check

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"sigs.k8s.io/yaml"
)

// configFile is the on-disk shape of a check configuration source. Entries
// are an ordered list so that merge order stays deterministic.
type configFile struct {
	Checks []configEntry `json:"checks" toml:"checks"`
}

// configEntry maps a check name to a declarative check kind plus its
// parameters.
type configEntry struct {
	Name   string         `json:"name"   toml:"name"`
	Doc    string         `json:"doc"    toml:"doc"`
	Kind   string         `json:"kind"   toml:"kind"`
	Params map[string]any `json:"params" toml:"params"`
}

// LoadConfig merges check definitions from a configuration source into the
// registry. The format is chosen by file extension: .yaml/.yml or .toml.
//
// Entries are registered in document order, overwriting existing entries on
// name collision, so a configuration source can both add checks and override
// built-ins. A missing file, an unsupported extension, a parse failure, or an
// invalid entry all fail with a *ConfigError before anything is registered.
func (r *Registry) LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}

	var cfg configFile

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return &ConfigError{Path: path, Err: err}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return &ConfigError{Path: path, Err: err}
		}
	default:
		return &ConfigError{Path: path, Err: fmt.Errorf("unsupported format %q (expected .yaml, .yml, or .toml)", filepath.Ext(path))}
	}

	// Build every factory up front so a bad entry aborts the whole source
	// before the registry is touched.
	factories := make([]Factory, 0, len(cfg.Checks))

	for i := range cfg.Checks {
		entry := cfg.Checks[i]

		if entry.Name == "" {
			return &ConfigError{Path: path, Err: fmt.Errorf("entry %d: check name cannot be empty", i)}
		}

		factory, err := buildConfiguredCheck(entry)
		if err != nil {
			return &ConfigError{Path: path, Err: fmt.Errorf("check %q: %w", entry.Name, err)}
		}

		factories = append(factories, factory)
	}

	for i := range cfg.Checks {
		if err := r.Register(cfg.Checks[i].Name, cfg.Checks[i].Doc, factories[i]); err != nil {
			return &ConfigError{Path: path, Err: err}
		}
	}

	return nil
}
