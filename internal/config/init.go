package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitenav/internal/editlink"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

const initHeader = "# Site navigation for the GyroCycle documentation.\n# Validate with: sitenav validate\n"

// Init writes the canonical configuration to path. An existing file is only
// replaced when force is set. When path lies in a git working tree the edit
// link pattern is derived from its origin remote, for files under docsDir.
func Init(path, docsDir string, force bool) (*site.Config, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return nil, ferrors.AlreadyExistsError("configuration file already exists (use --force to overwrite)").
			WithPath(path).Build()
	}

	cfg := Default()
	pattern, err := editlink.Detect(filepath.Dir(path), docsDir)
	switch {
	case err == nil && pattern != "":
		cfg.ThemeConfig.EditLink.Pattern = pattern
	case err != nil:
		slog.Debug("Keeping default edit link", logfields.Error(err))
	}

	data, err := Marshal(cfg)
	if err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, ferrors.FileSystemError("failed to create config directory").
				WithPath(dir).WithCause(err).Build()
		}
	}
	if err := os.WriteFile(path, append([]byte(initHeader), data...), 0o644); err != nil {
		return nil, ferrors.FileSystemError("failed to write config file").WithPath(path).WithCause(err).Build()
	}
	slog.Info("Configuration written", logfields.Path(path))
	return cfg, nil
}
