package site

import (
	"fmt"
	"net/url"
	"strings"
)

// LinkKind classifies a link target.
type LinkKind int

const (
	LinkInvalid LinkKind = iota
	LinkInternal
	LinkAnchor
	LinkExternal
	LinkRelative
)

// ClassifyLink reports how a link is resolved by the generator.
func ClassifyLink(link string) LinkKind {
	switch {
	case link == "":
		return LinkInvalid
	case strings.HasPrefix(link, "#"):
		return LinkAnchor
	case strings.HasPrefix(link, "//"):
		return LinkInvalid
	case strings.HasPrefix(link, "/"):
		return LinkInternal
	}
	u, err := url.Parse(link)
	if err != nil {
		return LinkInvalid
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return LinkInvalid
		}
		return LinkExternal
	case "mailto":
		return LinkExternal
	case "":
		return LinkRelative
	default:
		return LinkInvalid
	}
}

// LinkRef is a nav or sidebar link with its field path in the config.
type LinkRef struct {
	Field string
	Text  string
	Link  string
}

// Links returns every nav and sidebar link in declaration order, nav first.
// Entries without a link (dropdowns, plain groups) are skipped.
func (c *Config) Links() []LinkRef {
	var out []LinkRef
	var walkNav func(prefix string, items []NavItem)
	walkNav = func(prefix string, items []NavItem) {
		for i, it := range items {
			field := fmt.Sprintf("%s[%d]", prefix, i)
			if it.Link != "" {
				out = append(out, LinkRef{Field: field + ".link", Text: it.Text, Link: it.Link})
			}
			walkNav(field+".items", it.Items)
		}
	}
	walkNav("themeConfig.nav", c.ThemeConfig.Nav)
	_ = WalkSidebar(c.ThemeConfig.Sidebar, func(field string, _ int, it *SidebarItem) error {
		if it.Link != "" {
			out = append(out, LinkRef{Field: field + ".link", Text: it.Text, Link: it.Link})
		}
		return nil
	})
	return out
}

// WalkSidebar visits the sidebar tree depth-first in declaration order.
// depth is 1 for top-level groups. Returning an error stops the walk.
func WalkSidebar(items []SidebarItem, fn func(field string, depth int, item *SidebarItem) error) error {
	return walkSidebar("themeConfig.sidebar", 1, items, fn)
}

func walkSidebar(prefix string, depth int, items []SidebarItem, fn func(string, int, *SidebarItem) error) error {
	for i := range items {
		field := fmt.Sprintf("%s[%d]", prefix, i)
		if err := fn(field, depth, &items[i]); err != nil {
			return err
		}
		if err := walkSidebar(field+".items", depth+1, items[i].Items, fn); err != nil {
			return err
		}
	}
	return nil
}

// Depth is 1 for a leaf and one more than the deepest child for a group.
func (s SidebarItem) Depth() int {
	return 1 + SidebarDepth(s.Items)
}

// SidebarDepth returns the nesting depth of a sidebar list; 0 when empty.
func SidebarDepth(items []SidebarItem) int {
	deepest := 0
	for _, it := range items {
		if d := it.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest
}

// Stats summarizes the navigation model.
type Stats struct {
	NavItems      int
	SidebarGroups int
	SidebarLinks  int
	SidebarDepth  int
	SocialLinks   int
}

// Stats counts nav entries (including dropdown children) and sidebar nodes.
func (c *Config) Stats() Stats {
	s := Stats{
		SidebarDepth: SidebarDepth(c.ThemeConfig.Sidebar),
		SocialLinks:  len(c.ThemeConfig.SocialLinks),
	}
	var countNav func(items []NavItem)
	countNav = func(items []NavItem) {
		for _, it := range items {
			s.NavItems++
			countNav(it.Items)
		}
	}
	countNav(c.ThemeConfig.Nav)
	_ = WalkSidebar(c.ThemeConfig.Sidebar, func(_ string, depth int, it *SidebarItem) error {
		if depth == 1 || it.IsGroup() {
			s.SidebarGroups++
		} else {
			s.SidebarLinks++
		}
		return nil
	})
	return s
}

// IconPaths returns the href of every icon head tag, in declaration order.
func (c *Config) IconPaths() []string {
	var out []string
	for _, h := range c.Head {
		if h.IsIcon() {
			if href := h.Attr("href"); href != "" {
				out = append(out, href)
			}
		}
	}
	return out
}
