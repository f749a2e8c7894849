package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitenav/internal/export"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Format string `short:"f" help:"Target format (vitepress, hugo, yaml)" default:"vitepress"`
	Output string `short:"o" help:"Output directory; stdout when empty"`
}

func (e *ExportCmd) Run(g *Global, root *CLI) error {
	format, err := export.ParseFormat(e.Format)
	if err != nil {
		return ferrors.ValidationError(err.Error()).WithField("format").Build()
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if e.Output == "" {
		return export.To(g.out(), format, cfg)
	}
	written, err := export.Write(e.Output, format, cfg)
	if err != nil {
		return err
	}
	for _, p := range written {
		if _, err := fmt.Fprintln(g.out(), p); err != nil {
			return err
		}
	}
	return nil
}
