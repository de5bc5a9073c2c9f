// Package config loads the CLI configuration: named readability coefficient
// revisions. Published revisions of the formula differ slightly, so the
// coefficient set in use is configuration, not code.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanboefer/lint-ii/analysis"
)

// ErrUnknownRevision is returned when the selected coefficient revision is
// not defined in the config.
var ErrUnknownRevision = errors.New("unknown coefficient revision")

// Config is the top-level configuration.
type Config struct {
	// Revision selects a coefficient set by name. Empty means the built-in
	// default set.
	Revision string `yaml:"revision"`
	// Coefficients maps revision names to coefficient sets.
	Coefficients map[string]CoefficientSet `yaml:"coefficients"`
}

// CoefficientSet is a YAML union: either a mapping with named terms or a
// sequence of the five values in formula order (constant, frequency,
// max-sdl, density, concrete).
type CoefficientSet struct {
	Constant  float64
	Frequency float64
	MaxSDL    float64
	Density   float64
	Concrete  float64
}

// UnmarshalYAML implements custom YAML unmarshalling for CoefficientSet.
func (c *CoefficientSet) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var vals []float64
		if err := value.Decode(&vals); err != nil {
			return fmt.Errorf("invalid coefficient list: %w", err)
		}
		if len(vals) != 5 {
			return fmt.Errorf("coefficient list needs 5 values, got %d", len(vals))
		}
		c.Constant, c.Frequency, c.MaxSDL, c.Density, c.Concrete =
			vals[0], vals[1], vals[2], vals[3], vals[4]
		return nil
	}

	if value.Kind == yaml.MappingNode {
		var m struct {
			Constant  float64 `yaml:"constant"`
			Frequency float64 `yaml:"frequency"`
			MaxSDL    float64 `yaml:"max-sdl"`
			Density   float64 `yaml:"density"`
			Concrete  float64 `yaml:"concrete"`
		}
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid coefficient mapping: %w", err)
		}
		*c = CoefficientSet(m)
		return nil
	}

	return fmt.Errorf("coefficients must be a mapping or a 5-value list, got %v", value.Kind)
}

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Resolve returns the coefficient set selected by the config. A nil config
// or empty revision yields the built-in default set.
func Resolve(cfg *Config) (analysis.Coefficients, error) {
	if cfg == nil || cfg.Revision == "" {
		return analysis.DefaultCoefficients, nil
	}

	set, ok := cfg.Coefficients[cfg.Revision]
	if !ok {
		names := make([]string, 0, len(cfg.Coefficients))
		for name := range cfg.Coefficients {
			names = append(names, name)
		}
		sort.Strings(names)
		return analysis.Coefficients{}, fmt.Errorf("%w %q (available: %s)",
			ErrUnknownRevision, cfg.Revision, strings.Join(names, ", "))
	}

	return analysis.Coefficients{
		Constant:  set.Constant,
		Frequency: set.Frequency,
		MaxSDL:    set.MaxSDL,
		Density:   set.Density,
		Concrete:  set.Concrete,
	}, nil
}
