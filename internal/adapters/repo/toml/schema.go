package toml

import "fmt"

const currentSchemaVersion = 1

type planSchema struct {
	Version int           `toml:"version"`
	Pool    string        `toml:"pool,omitempty"`
	Limits  []limitSchema `toml:"limits"`
}

func (s *planSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s planSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported plan schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type limitSchema struct {
	Resource string `toml:"resource"`
	// Value holds an int64 or a float64; TOML distinguishes "8" from "8.0".
	Value any `toml:"value"`
}
