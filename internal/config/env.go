package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/sitenav/internal/logfields"
)

var envFileNames = []string{".env", ".env.local"}

// loadEnvFile loads the first of .env and .env.local found in dir.
// godotenv.Load never overrides variables already set in the process.
func loadEnvFile(dir string) error {
	for _, name := range envFileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
		slog.Debug("Loaded environment variables", logfields.Path(p))
		return nil
	}
	return errors.New("no .env file found")
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${NAME} references. Bare $NAME is left alone so that
// dollar signs in labels survive.
func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(m []byte) []byte {
		name := envRef.FindSubmatch(m)[1]
		return []byte(os.Getenv(string(name)))
	})
}
