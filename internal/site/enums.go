package site

import "git.home.luguber.info/inful/sitenav/internal/foundation/normalization"

// SocialIcon identifies a built-in social icon.
type SocialIcon string

const (
	IconGitHub    SocialIcon = "github"
	IconGitLab    SocialIcon = "gitlab"
	IconDiscord   SocialIcon = "discord"
	IconTwitter   SocialIcon = "twitter"
	IconX         SocialIcon = "x"
	IconMastodon  SocialIcon = "mastodon"
	IconYouTube   SocialIcon = "youtube"
	IconLinkedIn  SocialIcon = "linkedin"
	IconInstagram SocialIcon = "instagram"
	IconFacebook  SocialIcon = "facebook"
	IconSlack     SocialIcon = "slack"
	IconNPM       SocialIcon = "npm"
)

var socialIconNormalizer = normalization.NewEnumNormalizer("social icon", map[string]SocialIcon{
	"github":    IconGitHub,
	"gitlab":    IconGitLab,
	"discord":   IconDiscord,
	"twitter":   IconTwitter,
	"x":         IconX,
	"mastodon":  IconMastodon,
	"youtube":   IconYouTube,
	"linkedin":  IconLinkedIn,
	"instagram": IconInstagram,
	"facebook":  IconFacebook,
	"slack":     IconSlack,
	"npm":       IconNPM,
}, "")

// ParseSocialIcon resolves raw to a known icon.
func ParseSocialIcon(raw string) (SocialIcon, error) {
	return socialIconNormalizer.Parse(raw)
}

// SocialIcons lists accepted icon names.
func SocialIcons() []string { return socialIconNormalizer.ValidValues() }

// SearchProvider selects the search backend.
type SearchProvider string

const (
	SearchLocal   SearchProvider = "local"
	SearchAlgolia SearchProvider = "algolia"
)

var searchProviderNormalizer = normalization.NewEnumNormalizer("search provider", map[string]SearchProvider{
	"local":   SearchLocal,
	"algolia": SearchAlgolia,
}, "")

// ParseSearchProvider resolves raw to a known provider.
func ParseSearchProvider(raw string) (SearchProvider, error) {
	return searchProviderNormalizer.Parse(raw)
}
