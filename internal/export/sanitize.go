package export

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"git.home.luguber.info/inful/sitenav/internal/site"
)

// Footer message and copyright are injected as raw HTML by both generators.
var footerHTMLPolicy = newFooterHTMLPolicy()

func newFooterHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("span", "a")
	policy.RequireNoFollowOnLinks(false)
	return policy
}

func sanitizeHTML(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(footerHTMLPolicy.Sanitize(raw))
}

// withSanitizedFooter returns cfg itself when there is no footer, otherwise a
// shallow copy whose footer has been sanitized. cfg is never modified.
func withSanitizedFooter(cfg *site.Config) *site.Config {
	if cfg.ThemeConfig.Footer == nil {
		return cfg
	}
	out := *cfg
	out.ThemeConfig.Footer = &site.Footer{
		Message:   sanitizeHTML(cfg.ThemeConfig.Footer.Message),
		Copyright: sanitizeHTML(cfg.ThemeConfig.Footer.Copyright),
	}
	return &out
}
