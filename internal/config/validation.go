package config

import (
	"fmt"
	"net/url"
	"strings"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

const (
	// MaxSidebarDepth bounds sidebar nesting; top-level groups are depth 1.
	MaxSidebarDepth = 6
	// MaxNavDepth bounds dropdown nesting in the navigation bar.
	MaxNavDepth = 3
	// PathPlaceholder is substituted with the page path in edit links.
	PathPlaceholder = ":path"
)

// ValidateConfig validates the complete configuration. The first failure is
// returned as a validation ClassifiedError carrying the offending field.
func ValidateConfig(cfg *site.Config) error {
	if cfg == nil {
		return ferrors.ValidationError("configuration is nil").Build()
	}
	return newConfigurationValidator(cfg).validate()
}

// configurationValidator coordinates validation across all configuration domains.
type configurationValidator struct {
	config *site.Config
}

func newConfigurationValidator(config *site.Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	steps := []func() error{
		cv.validateMetadata,
		cv.validateHead,
		cv.validateNav,
		cv.validateSidebar,
		cv.validateSocialLinks,
		cv.validateLogo,
		cv.validateSearch,
		cv.validateEditLink,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

type namedValue struct {
	name  string
	value string
}

func invalid(field, format string, args ...any) error {
	return ferrors.ValidationError(fmt.Sprintf(format, args...)).WithField(field).Build()
}

func (cv *configurationValidator) validateMetadata() error {
	if strings.TrimSpace(cv.config.Title) == "" {
		return invalid("title", "title is required")
	}
	if b := cv.config.Base; b != "" && (!strings.HasPrefix(b, "/") || !strings.HasSuffix(b, "/")) {
		return invalid("base", "base must start and end with '/', got %q", b)
	}
	return nil
}

func (cv *configurationValidator) validateHead() error {
	for i, h := range cv.config.Head {
		if strings.TrimSpace(h.Tag) == "" {
			return invalid(fmt.Sprintf("head[%d]", i), "head tag name is required")
		}
	}
	return nil
}

func (cv *configurationValidator) validateNav() error {
	nav := cv.config.ThemeConfig.Nav
	if len(nav) == 0 {
		return invalid("themeConfig.nav", "at least one nav entry is required")
	}
	return cv.validateNavItems("themeConfig.nav", 1, nav)
}

func (cv *configurationValidator) validateNavItems(prefix string, depth int, items []site.NavItem) error {
	for i, it := range items {
		field := fmt.Sprintf("%s[%d]", prefix, i)
		if it.Text == "" {
			return invalid(field+".text", "nav entry text is required")
		}
		if it.IsDropdown() {
			if len(it.Items) == 0 {
				return invalid(field+".items", "nav dropdown %q has no items", it.Text)
			}
			if depth >= MaxNavDepth {
				return invalid(field+".items", "nav nesting exceeds %d levels", MaxNavDepth)
			}
			if it.Link != "" {
				if err := validateLink(field+".link", it.Link); err != nil {
					return err
				}
			}
			if err := cv.validateNavItems(field+".items", depth+1, it.Items); err != nil {
				return err
			}
			continue
		}
		if it.Link == "" {
			return invalid(field+".link", "nav entry %q has no link", it.Text)
		}
		if err := validateLink(field+".link", it.Link); err != nil {
			return err
		}
	}
	return nil
}

func (cv *configurationValidator) validateSidebar() error {
	return site.WalkSidebar(cv.config.ThemeConfig.Sidebar, func(field string, depth int, it *site.SidebarItem) error {
		if it.Text == "" {
			return invalid(field+".text", "sidebar entry text is required")
		}
		if depth > MaxSidebarDepth {
			return invalid(field, "sidebar nesting exceeds %d levels", MaxSidebarDepth)
		}
		if depth == 1 || it.IsGroup() {
			if len(it.Items) == 0 {
				return invalid(field+".items", "sidebar group %q has no items", it.Text)
			}
		} else if it.Link == "" {
			return invalid(field+".link", "sidebar entry %q has no link", it.Text)
		}
		if it.Link != "" {
			return validateLink(field+".link", it.Link)
		}
		return nil
	})
}

func (cv *configurationValidator) validateSocialLinks() error {
	for i, sl := range cv.config.ThemeConfig.SocialLinks {
		field := fmt.Sprintf("themeConfig.socialLinks[%d]", i)
		if _, err := site.ParseSocialIcon(string(sl.Icon)); err != nil {
			return ferrors.ValidationError(err.Error()).WithField(field + ".icon").Build()
		}
		if !isAbsoluteHTTP(sl.Link) {
			return invalid(field+".link", "social link must be an absolute http(s) URL, got %q", sl.Link)
		}
	}
	return nil
}

func (cv *configurationValidator) validateLogo() error {
	logo := cv.config.ThemeConfig.Logo
	if logo == nil {
		return nil
	}
	if logo.IsZero() {
		return invalid("themeConfig.logo", "logo needs src, light or dark")
	}
	for _, f := range []namedValue{{"src", logo.Src}, {"light", logo.Light}, {"dark", logo.Dark}} {
		if f.value == "" {
			continue
		}
		if k := site.ClassifyLink(f.value); k != site.LinkInternal && k != site.LinkExternal {
			return invalid("themeConfig.logo."+f.name, "logo path must be absolute, got %q", f.value)
		}
	}
	return nil
}

func (cv *configurationValidator) validateSearch() error {
	s := cv.config.ThemeConfig.Search
	if s == nil {
		return nil
	}
	provider, err := site.ParseSearchProvider(string(s.Provider))
	if err != nil {
		return ferrors.ValidationError(err.Error()).WithField("themeConfig.search.provider").Build()
	}
	switch provider {
	case site.SearchAlgolia:
		o := s.Options
		if o == nil {
			return invalid("themeConfig.search.options", "algolia search requires options")
		}
		for _, f := range []namedValue{{"appId", o.AppID}, {"apiKey", o.APIKey}, {"indexName", o.IndexName}} {
			if f.value == "" {
				return invalid("themeConfig.search.options."+f.name, "algolia search requires %s", f.name)
			}
		}
	case site.SearchLocal:
		if s.Options != nil {
			return invalid("themeConfig.search.options", "local search takes no options")
		}
	}
	return nil
}

func (cv *configurationValidator) validateEditLink() error {
	el := cv.config.ThemeConfig.EditLink
	if el == nil {
		return nil
	}
	const field = "themeConfig.editLink.pattern"
	if el.Pattern == "" {
		return invalid(field, "edit link pattern is required")
	}
	if !strings.Contains(el.Pattern, PathPlaceholder) {
		return invalid(field, "edit link pattern must contain %s", PathPlaceholder)
	}
	if !isAbsoluteHTTP(el.Pattern) {
		return invalid(field, "edit link pattern must be an absolute http(s) URL, got %q", el.Pattern)
	}
	return nil
}

// validateLink accepts internal paths, anchors and absolute external URLs.
func validateLink(field, link string) error {
	switch site.ClassifyLink(link) {
	case site.LinkInternal, site.LinkAnchor, site.LinkExternal:
		return nil
	case site.LinkRelative:
		return invalid(field, "relative link %q must start with '/'", link)
	default:
		return invalid(field, "invalid link %q", link)
	}
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
