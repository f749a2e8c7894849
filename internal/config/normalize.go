package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitenav/internal/site"
)

// NormalizationResult captures adjustments made during normalization.
type NormalizationResult struct {
	Warnings []string
}

// NormalizeConfig canonicalizes labels, links and enum values in place.
// Unknown enum values are left as-is for validation to reject.
func NormalizeConfig(c *site.Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}

	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.Lang = strings.TrimSpace(c.Lang)
	c.Base = strings.TrimSpace(c.Base)
	if len(c.Head) == 0 {
		c.Head = nil
	}

	tc := &c.ThemeConfig
	normalizeNav(tc.Nav)
	seen := map[string]string{}
	for _, ref := range (&site.Config{ThemeConfig: site.ThemeConfig{Nav: tc.Nav}}).Links() {
		if prev, ok := seen[ref.Link]; ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("duplicate nav link '%s' at %s (first at %s)", ref.Link, ref.Field, prev))
			continue
		}
		seen[ref.Link] = ref.Field
	}
	normalizeSidebar(tc.Sidebar)

	if len(tc.SocialLinks) == 0 {
		tc.SocialLinks = nil
	}
	for i := range tc.SocialLinks {
		sl := &tc.SocialLinks[i]
		sl.Link = strings.TrimSpace(sl.Link)
		sl.AriaLabel = strings.TrimSpace(sl.AriaLabel)
		if icon, err := site.ParseSocialIcon(string(sl.Icon)); err == nil && icon != sl.Icon {
			res.warnChanged(fmt.Sprintf("themeConfig.socialLinks[%d].icon", i), sl.Icon, icon)
			sl.Icon = icon
		}
	}

	if tc.Logo != nil {
		tc.Logo.Src = strings.TrimSpace(tc.Logo.Src)
		tc.Logo.Light = strings.TrimSpace(tc.Logo.Light)
		tc.Logo.Dark = strings.TrimSpace(tc.Logo.Dark)
		tc.Logo.Alt = strings.TrimSpace(tc.Logo.Alt)
	}
	if tc.Search != nil {
		if p, err := site.ParseSearchProvider(string(tc.Search.Provider)); err == nil && p != tc.Search.Provider {
			res.warnChanged("themeConfig.search.provider", tc.Search.Provider, p)
			tc.Search.Provider = p
		}
		if o := tc.Search.Options; o != nil {
			o.AppID = strings.TrimSpace(o.AppID)
			o.APIKey = strings.TrimSpace(o.APIKey)
			o.IndexName = strings.TrimSpace(o.IndexName)
		}
	}
	if tc.EditLink != nil {
		tc.EditLink.Pattern = strings.TrimSpace(tc.EditLink.Pattern)
		tc.EditLink.Text = strings.TrimSpace(tc.EditLink.Text)
	}
	if tc.Footer != nil {
		tc.Footer.Message = strings.TrimSpace(tc.Footer.Message)
		tc.Footer.Copyright = strings.TrimSpace(tc.Footer.Copyright)
	}
	return res, nil
}

func normalizeNav(items []site.NavItem) {
	for i := range items {
		items[i].Text = strings.TrimSpace(items[i].Text)
		items[i].Link = strings.TrimSpace(items[i].Link)
		items[i].ActiveMatch = strings.TrimSpace(items[i].ActiveMatch)
		normalizeNav(items[i].Items)
	}
}

// normalizeSidebar trims labels and links. Items slices are never replaced:
// an empty group must stay a group so validation can reject it.
func normalizeSidebar(items []site.SidebarItem) {
	for i := range items {
		items[i].Text = strings.TrimSpace(items[i].Text)
		items[i].Link = strings.TrimSpace(items[i].Link)
		normalizeSidebar(items[i].Items)
	}
}

func (r *NormalizationResult) warnChanged(field string, from, to any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to))
}
