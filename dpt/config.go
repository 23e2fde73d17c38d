package dpt

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Operator selects which sub-operator runs first at each area, per
// spec.md §4.5: LU removes local minima before local maxima at every
// area, UL does the opposite. Both reconstruct the input exactly
// (scenario 5), though the pulses they extract generally differ.
type Operator int

const (
	LU Operator = iota
	UL
)

func (o Operator) String() string {
	switch o {
	case LU:
		return "LU"
	case UL:
		return "UL"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// MarshalYAML renders Operator the way a lulu2d config file names it,
// rather than as a bare integer.
func (o Operator) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML parses "LU"/"UL" back into an Operator.
func (o *Operator) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch s {
	case "LU":
		*o = LU
	case "UL":
		*o = UL
	default:
		return fmt.Errorf("dpt: unknown operator %q, want LU or UL", s)
	}
	return nil
}

// Config holds the parameters a Decompose run is driven by. Zero value
// is a valid, ready-to-use LU configuration.
type Config struct {
	// Operator chooses the sub-operator order applied at every area.
	Operator Operator `yaml:"operator"`
}

// LoadConfig parses a yaml-encoded Config, the same gopkg.in/yaml.v2
// round-trip the CLI's "config" subcommand uses to persist flags
// between invocations.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("dpt: parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal renders cfg back to yaml.
func (cfg Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}
