package ast

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	errInvalidPageSize = errors.New("ast: page_size must be >= 0")
	errInvalidMaxPages = errors.New("ast: max_pages must be >= 0")
)

// LoadConfig reads a yaml-encoded Config from path. Use Config{} (the zero
// value) directly when no override file is needed.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "ast: reading config")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "ast: parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "ast: validating config")
	}
	return cfg, nil
}
