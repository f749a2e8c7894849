package config

import (
	_ "embed"
	"fmt"

	"git.home.luguber.info/inful/sitenav/internal/site"
)

//go:embed gyrocycle.yaml
var gyrocycleYAML []byte

// Default returns the canonical GyroCycle documentation site configuration.
// Each call returns a fresh copy.
func Default() *site.Config {
	cfg, err := Parse(gyrocycleYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return cfg
}
