package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"git.home.luguber.info/inful/sitenav/internal/site"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	JSON bool `help:"Print the loaded model as JSON"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if s.JSON {
		enc := json.NewEncoder(g.out())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}
	return printTree(g.out(), cfg)
}

func printTree(w io.Writer, cfg *site.Config) error {
	var b strings.Builder
	b.WriteString(cfg.Title)
	if cfg.Description != "" {
		b.WriteString(": " + cfg.Description)
	}
	b.WriteString("\n\nnav\n")
	var nav func(items []site.NavItem, depth int)
	nav = func(items []site.NavItem, depth int) {
		for _, it := range items {
			writeEntry(&b, depth, it.Text, it.Link)
			nav(it.Items, depth+1)
		}
	}
	nav(cfg.ThemeConfig.Nav, 1)

	if len(cfg.ThemeConfig.Sidebar) > 0 {
		b.WriteString("\nsidebar\n")
		_ = site.WalkSidebar(cfg.ThemeConfig.Sidebar, func(_ string, depth int, it *site.SidebarItem) error {
			writeEntry(&b, depth, it.Text, it.Link)
			return nil
		})
	}
	if len(cfg.ThemeConfig.SocialLinks) > 0 {
		b.WriteString("\nsocial\n")
		for _, sl := range cfg.ThemeConfig.SocialLinks {
			writeEntry(&b, 1, string(sl.Icon), sl.Link)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeEntry(b *strings.Builder, depth int, text, link string) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(text)
	if link != "" {
		fmt.Fprintf(b, " (%s)", link)
	}
	b.WriteByte('\n')
}
