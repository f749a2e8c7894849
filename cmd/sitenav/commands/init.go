package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/sitenav/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Docs   string `help:"Docs directory relative to the repository root, used for the edit link" default:"docs"`
	Output string `short:"o" name:"output" help:"Directory to place sitenav.yaml in (overrides --config)"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if i.Output != "" {
		path = filepath.Join(i.Output, config.DefaultPath)
	}
	cfg, err := config.Init(path, i.Docs, i.Force)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.out(), "Wrote %s (edit link: %s)\n", path, cfg.ThemeConfig.EditLink.Pattern)
	return err
}
