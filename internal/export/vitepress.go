package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

const generatedBanner = "Generated by sitenav. Do not edit; change sitenav.yaml and re-export."

// VitePress writes cfg as a VitePress config module. Keys keep their
// declaration order.
func VitePress(w io.Writer, cfg *site.Config) error {
	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(withSanitizedFooter(cfg)); err != nil {
		return ferrors.ExportError("failed to encode vitepress config").
			WithContext("format", string(FormatVitePress)).WithCause(err).Build()
	}

	_, err := fmt.Fprintf(w, "// %s\nimport { defineConfig } from 'vitepress'\n\nexport default defineConfig(%s)\n",
		generatedBanner, bytes.TrimRight(body.Bytes(), "\n"))
	if err != nil {
		return ferrors.ExportError("failed to write vitepress config").WithCause(err).Build()
	}
	return nil
}
