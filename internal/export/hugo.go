package export

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitenav/internal/editlink"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

// HextraModule is the Hugo module path of the Hextra theme.
const HextraModule = "github.com/imfing/hextra"

const weightStep = 10

// Hugo writes cfg as a hugo.yaml for the Hextra theme. Menu weights follow
// declaration order.
func Hugo(w io.Writer, cfg *site.Config) error {
	var body bytes.Buffer
	enc := yaml.NewEncoder(&body)
	enc.SetIndent(2)
	if err := enc.Encode(hugoRoot(cfg)); err != nil {
		return ferrors.ExportError("failed to marshal hugo config").
			WithContext("format", string(FormatHugo)).WithCause(err).Build()
	}
	if err := enc.Close(); err != nil {
		return ferrors.ExportError("failed to marshal hugo config").
			WithContext("format", string(FormatHugo)).WithCause(err).Build()
	}
	if _, err := fmt.Fprintf(w, "# %s\n", generatedBanner); err != nil {
		return ferrors.ExportError("failed to write hugo config").WithCause(err).Build()
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return ferrors.ExportError("failed to write hugo config").WithCause(err).Build()
	}
	return nil
}

func hugoRoot(cfg *site.Config) map[string]any {
	tc := cfg.ThemeConfig
	params := map[string]any{
		"theme": map[string]any{"default": "system", "displayToggle": true},
	}
	root := map[string]any{
		"title":        cfg.Title,
		"languageCode": cfg.Lang,
		"module":       map[string]any{"imports": []map[string]any{{"path": HextraModule}}},
		"menu": map[string]any{
			"main": mainMenu(tc),
		},
		"params": params,
	}
	if cfg.Description != "" {
		params["description"] = cfg.Description
	}
	if cfg.Base != "" {
		root["baseURL"] = cfg.Base
	}
	if sb := sidebarMenu(tc.Sidebar); len(sb) > 0 {
		root["menu"].(map[string]any)["sidebar"] = sb
	}

	navbar := map[string]any{"width": "normal", "displayTitle": true}
	if tc.Logo != nil {
		logo := map[string]any{"path": tc.Logo.ForScheme(false)}
		if dark := tc.Logo.ForScheme(true); dark != logo["path"] {
			logo["dark"] = dark
		}
		navbar["displayLogo"] = true
		navbar["logo"] = logo
	}
	params["navbar"] = navbar

	if tc.Search != nil {
		if tc.Search.Provider == site.SearchAlgolia {
			slog.Warn("Hextra has no algolia integration, using flexsearch", logfields.Format(string(FormatHugo)))
		}
		params["search"] = map[string]any{
			"enable":     true,
			"type":       "flexsearch",
			"flexsearch": map[string]any{"index": "content", "tokenize": "forward"},
		}
	} else {
		params["search"] = map[string]any{"enable": false}
	}

	if tc.EditLink != nil {
		if base, ok := editBase(tc.EditLink.Pattern); ok {
			params["editURL"] = map[string]any{"enable": true, "base": base}
		} else {
			slog.Warn("Edit link pattern does not end in :path, edit links disabled",
				logfields.Field("themeConfig.editLink.pattern"))
		}
	}
	if tc.Footer != nil {
		footer := map[string]any{"enable": true, "displayCopyright": tc.Footer.Copyright != ""}
		params["footer"] = footer
		if tc.Footer.Copyright != "" {
			root["copyright"] = sanitizeHTML(tc.Footer.Copyright)
		}
	}
	if tc.LastUpdated {
		root["enableGitInfo"] = true
		params["displayUpdatedDate"] = true
	}

	if cfg.Markdown.Math {
		root["markup"] = map[string]any{
			"goldmark": map[string]any{
				"extensions": map[string]any{
					"passthrough": map[string]any{
						"delimiters": map[string]any{
							"block":  [][]string{{"\\[", "\\]"}, {"$$", "$$"}},
							"inline": [][]string{{"\\(", "\\)"}},
						},
						"enable": true,
					},
				},
			},
		}
	}
	return root
}

// mainMenu builds menu.main: nav entries (dropdown children get a parent),
// then search, social links and the theme toggle.
func mainMenu(tc site.ThemeConfig) []map[string]any {
	var entries []map[string]any
	weight := 0
	next := func() int { weight += weightStep; return weight }

	var add func(parent string, items []site.NavItem, prefix string)
	add = func(parent string, items []site.NavItem, prefix string) {
		for i, it := range items {
			id := fmt.Sprintf("%s%d", prefix, i)
			e := menuEntry(it.Text, it.Link, next())
			if parent != "" {
				e["parent"] = parent
			}
			if it.IsDropdown() {
				e["identifier"] = id
			}
			entries = append(entries, e)
			add(id, it.Items, id+"-")
		}
	}
	add("", tc.Nav, "nav-")

	if tc.Search != nil {
		entries = append(entries, map[string]any{"name": "Search", "weight": next(), "params": map[string]any{"type": "search"}})
	}
	for _, sl := range tc.SocialLinks {
		name := sl.AriaLabel
		if name == "" {
			name = string(sl.Icon)
		}
		entries = append(entries, map[string]any{
			"name":   name,
			"weight": next(),
			"url":    sl.Link,
			"params": map[string]any{"icon": string(sl.Icon)},
		})
	}
	entries = append(entries, map[string]any{
		"name":   "Theme",
		"weight": next(),
		"params": map[string]any{"type": "theme-toggle", "label": false},
	})
	return entries
}

// sidebarMenu flattens the sidebar tree into menu.sidebar entries linked by
// parent identifiers.
func sidebarMenu(items []site.SidebarItem) []map[string]any {
	var entries []map[string]any
	weight := 0
	_ = site.WalkSidebar(items, func(field string, _ int, it *site.SidebarItem) error {
		weight += weightStep
		e := menuEntry(it.Text, it.Link, weight)
		if it.IsGroup() {
			e["identifier"] = sidebarID(field)
			if it.Collapsed != nil && *it.Collapsed {
				e["params"] = map[string]any{"collapsed": true}
			}
		}
		if parent := parentField(field); parent != "" {
			e["parent"] = sidebarID(parent)
		}
		entries = append(entries, e)
		return nil
	})
	return entries
}

func menuEntry(name, link string, weight int) map[string]any {
	e := map[string]any{"name": name, "weight": weight}
	switch site.ClassifyLink(link) {
	case site.LinkInternal:
		e["pageRef"] = link
	case site.LinkExternal, site.LinkAnchor:
		e["url"] = link
	}
	return e
}

// parentField returns the field path of the enclosing group, or "" for a
// top-level entry.
func parentField(field string) string {
	i := strings.LastIndex(field, ".items[")
	if i < 0 {
		return ""
	}
	return field[:i]
}

// sidebarID turns "themeConfig.sidebar[1].items[0]" into "sidebar-1-0".
func sidebarID(field string) string {
	s := strings.TrimPrefix(field, "themeConfig.")
	s = strings.NewReplacer(".items[", "-", "[", "-", "]", "").Replace(s)
	return s
}

// editBase returns the pattern prefix before a trailing :path.
func editBase(pattern string) (string, bool) {
	if !strings.HasSuffix(pattern, editlink.Placeholder) || strings.Count(pattern, editlink.Placeholder) != 1 {
		return "", false
	}
	return strings.TrimSuffix(pattern, editlink.Placeholder), true
}
