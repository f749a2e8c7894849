// Package config loads, normalizes and validates the site navigation
// configuration and writes it back in its declarative YAML form.
package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "sitenav.yaml"

// Load reads the configuration at path, expands ${VAR} references and runs
// the full parse pipeline.
func Load(path string) (*site.Config, error) {
	if err := loadEnvFile(filepath.Dir(path)); err != nil {
		slog.Debug("No .env file loaded", logfields.Path(filepath.Dir(path)), logfields.Error(err))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ferrors.NotFoundError("configuration file not found").
				WithPath(path).WithCause(err).Build()
		}
		return nil, ferrors.ConfigError("failed to read config file").
			WithPath(path).WithCause(err).Build()
	}

	cfg, err := Parse(expandEnv(data))
	if err != nil {
		if ce, ok := ferrors.AsClassified(err); ok {
			return nil, ce.WithContext(ferrors.ContextPath, path)
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes, normalizes, applies defaults to and validates raw YAML.
// JSON input is accepted as YAML. Unknown keys are rejected.
func Parse(data []byte) (*site.Config, error) {
	var cfg site.Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, ferrors.ConfigError("failed to decode config").WithCause(err).Build()
	}

	res, err := NormalizeConfig(&cfg)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		slog.Warn("Config normalization", slog.String("warning", w))
	}

	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate runs the validation pass on a hand-built configuration.
func Validate(cfg *site.Config) error {
	return ValidateConfig(cfg)
}
