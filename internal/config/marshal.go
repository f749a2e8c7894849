package config

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

// Marshal writes cfg in its declarative YAML form. Parse(Marshal(cfg))
// yields a configuration equal to a normalized cfg.
func Marshal(cfg *site.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, ferrors.InternalError("failed to encode config").WithCause(err).Build()
	}
	if err := enc.Close(); err != nil {
		return nil, ferrors.InternalError("failed to encode config").WithCause(err).Build()
	}
	return buf.Bytes(), nil
}

// Snapshot returns a stable SHA-256 fingerprint of the canonical form of cfg.
// Order is significant: reordering nav or sidebar entries changes the snapshot.
func Snapshot(cfg *site.Config) (string, error) {
	if cfg == nil {
		return "", nil
	}
	data, err := Marshal(cfg)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
