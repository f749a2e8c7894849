package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitenav/internal/content"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
)

// LinksCmd implements the 'links' command.
type LinksCmd struct {
	Content string `help:"Docs directory holding the Markdown pages" default:"docs"`
}

func (l *LinksCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	idx, err := content.Build(l.Content)
	if err != nil {
		return err
	}
	problems := content.CheckLinks(cfg, idx)
	for _, p := range problems {
		if _, err := fmt.Fprintln(g.out(), p.String()); err != nil {
			return err
		}
	}
	if len(problems) > 0 {
		return ferrors.ValidationError(fmt.Sprintf("%d navigation link(s) have no document", len(problems))).
			WithPath(l.Content).Build()
	}
	_, err = fmt.Fprintf(g.out(), "all navigation links resolve (%d documents)\n", idx.Len())
	return err
}
