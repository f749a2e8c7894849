package commands

import "fmt"

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	s := cfg.Stats()
	_, err = fmt.Fprintf(g.out(), "%s: valid (%d nav entries, %d sidebar groups, %d sidebar links, depth %d)\n",
		root.Config, s.NavItems, s.SidebarGroups, s.SidebarLinks, s.SidebarDepth)
	return err
}
