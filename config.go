package main

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Config holds the solver options that can be loaded from a JSON file instead
// of being passed as flags.
type Config struct {
	Verbose      bool `mapstructure:"verbose"`
	MaxConflicts int  `mapstructure:"maxConflicts"`
}

// LoadConfig reads and decodes the JSON config file at the given path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read config %q", path)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrapf(err, "could not parse config %q", path)
	}
	var cfg Config
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %q", path)
	}
	return cfg, nil
}
