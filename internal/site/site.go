// Package site defines the navigation model of a documentation site: metadata,
// navigation bar, sidebar tree and theme settings handed to the external
// site generator.
//
// Every ordered collection (nav, sidebar, nested items, social links, head
// tags) keeps declaration order; nothing in this package sorts them.
package site

// Config is the root of the model: site metadata plus theme configuration.
type Config struct {
	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Lang        string      `yaml:"lang,omitempty" json:"lang,omitempty"`
	Base        string      `yaml:"base,omitempty" json:"base,omitempty"`
	Head        []HeadTag   `yaml:"head,omitempty" json:"head,omitempty"`
	Markdown    Markdown    `yaml:"markdown,omitempty" json:"markdown"`
	ThemeConfig ThemeConfig `yaml:"themeConfig" json:"themeConfig"`
}

// Markdown holds renderer switches.
type Markdown struct {
	Math bool `yaml:"math,omitempty" json:"math"`
}

// ThemeConfig aggregates everything the theme renders around page content.
type ThemeConfig struct {
	Logo        *Logo         `yaml:"logo,omitempty" json:"logo,omitempty"`
	Nav         []NavItem     `yaml:"nav" json:"nav"`
	Sidebar     []SidebarItem `yaml:"sidebar,omitempty" json:"sidebar,omitempty"`
	SocialLinks []SocialLink  `yaml:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	Search      *Search       `yaml:"search,omitempty" json:"search,omitempty"`
	EditLink    *EditLink     `yaml:"editLink,omitempty" json:"editLink,omitempty"`
	Footer      *Footer       `yaml:"footer,omitempty" json:"footer,omitempty"`
	LastUpdated bool          `yaml:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

// NavItem is an entry of the top navigation bar. An item with Items is a
// dropdown; otherwise it is a leaf and needs a Link.
type NavItem struct {
	Text        string    `yaml:"text" json:"text"`
	Link        string    `yaml:"link,omitempty" json:"link,omitempty"`
	ActiveMatch string    `yaml:"activeMatch,omitempty" json:"activeMatch,omitempty"`
	Items       []NavItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// IsDropdown reports whether the entry groups further nav items.
func (n NavItem) IsDropdown() bool { return n.Items != nil }

// SidebarItem is either a leaf link or a group of further items.
// A group is any item whose Items slice is non-nil, even when it is empty.
type SidebarItem struct {
	Text      string        `yaml:"text" json:"text"`
	Link      string        `yaml:"link,omitempty" json:"link,omitempty"`
	Collapsed *bool         `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []SidebarItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// SidebarGroup names a SidebarItem used as a group.
type SidebarGroup = SidebarItem

// IsGroup reports whether the item holds nested items.
func (s SidebarItem) IsGroup() bool { return s.Items != nil }

// SocialLink is an icon link rendered in the navigation bar.
type SocialLink struct {
	Icon      SocialIcon `yaml:"icon" json:"icon"`
	Link      string     `yaml:"link" json:"link"`
	AriaLabel string     `yaml:"ariaLabel,omitempty" json:"ariaLabel,omitempty"`
}

// Search selects the search provider.
type Search struct {
	Provider SearchProvider  `yaml:"provider" json:"provider"`
	Options  *AlgoliaOptions `yaml:"options,omitempty" json:"options,omitempty"`
}

// AlgoliaOptions are the DocSearch credentials.
type AlgoliaOptions struct {
	AppID     string `yaml:"appId" json:"appId"`
	APIKey    string `yaml:"apiKey" json:"apiKey"`
	IndexName string `yaml:"indexName" json:"indexName"`
}

// EditLink lets readers jump to the page source. Pattern contains the
// :path placeholder, replaced by the page's path relative to the docs root.
type EditLink struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Text    string `yaml:"text,omitempty" json:"text,omitempty"`
}

// Footer is rendered at the bottom of every page.
type Footer struct {
	Message   string `yaml:"message,omitempty" json:"message,omitempty"`
	Copyright string `yaml:"copyright,omitempty" json:"copyright,omitempty"`
}
