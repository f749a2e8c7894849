package export

import (
	"io"

	"git.home.luguber.info/inful/sitenav/internal/config"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

// YAML writes the canonical declarative form, identical to config.Marshal.
func YAML(w io.Writer, cfg *site.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return ferrors.ExportError("failed to write yaml config").WithCause(err).Build()
	}
	return nil
}
