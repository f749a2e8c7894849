package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

func writeDoc(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
}

func buildDocs(t *testing.T) *Index {
	t.Helper()
	root := t.TempDir()
	writeDoc(t, root, "index.md", "---\ntitle: GyroCycle\n---\n\n# Welcome\n")
	writeDoc(t, root, "guide/getting-started.md", "# Getting *Started*\n\nBody.\n")
	writeDoc(t, root, "hardware/index.md", "No heading here.\n")
	writeDoc(t, root, "hardware/reaction-wheel.md", "## Only a subheading\n")
	writeDoc(t, root, "software/balance.md", "---\ndraft: true\n---\n# Balance\n")
	writeDoc(t, root, "software/broken.md", "---\ntitle: [unclosed\n---\n# Broken Frontmatter\n")
	writeDoc(t, root, ".vitepress/theme/notes.md", "# Hidden\n")
	writeDoc(t, root, "node_modules/pkg/README.md", "# Vendored\n")
	writeDoc(t, root, "guide/diagram.png", "not markdown")

	idx, err := Build(root)
	require.NoError(t, err)
	return idx
}

func TestBuildIndex(t *testing.T) {
	idx := buildDocs(t)

	assert.Equal(t, []string{
		"/",
		"/guide/getting-started",
		"/hardware/",
		"/hardware/reaction-wheel",
		"/software/balance",
		"/software/broken",
	}, idx.Routes())
	assert.Equal(t, 6, idx.Len())

	tests := []struct {
		route string
		title string
	}{
		{"/", "GyroCycle"},
		{"/guide/getting-started", "Getting Started"},
		{"/hardware/", "Hardware"},
		{"/hardware/reaction-wheel", "Reaction Wheel"},
		{"/software/broken", "Broken Frontmatter"},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			doc, ok := idx.Lookup(tt.route)
			require.True(t, ok)
			assert.Equal(t, tt.title, doc.Title)
		})
	}

	doc, ok := idx.Lookup("/software/balance")
	require.True(t, ok)
	assert.True(t, doc.Draft)
	assert.Equal(t, "software/balance.md", doc.Path)
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))

	f := filepath.Join(t.TempDir(), "file.md")
	require.NoError(t, os.WriteFile(f, []byte("# x"), 0o600))
	_, err = Build(f)
	assert.Error(t, err)
}

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		fm      string
		body    string
		wantErr bool
	}{
		{name: "no frontmatter", in: "# Title\n", body: "# Title\n"},
		{name: "block and body", in: "---\ntitle: A\n---\n# B\n", fm: "title: A\n", body: "# B\n"},
		{name: "empty block", in: "---\n---\nbody", body: "body"},
		{name: "empty block at EOF", in: "---\n---"},
		{name: "block closed at EOF", in: "---\ntitle: A\n---", fm: "title: A"},
		{name: "blank block closed at EOF", in: "---\n\n---"},
		{name: "CRLF", in: "---\r\ntitle: A\r\n---\r\nbody", fm: "title: A\r\n", body: "body"},
		{name: "CRLF empty block at EOF", in: "---\r\n---"},
		{name: "unclosed", in: "---\ntitle: A\n", wantErr: true},
		{name: "opener only", in: "---\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := splitFrontmatter([]byte(tt.in))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMissingClosingDelimiter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fm, string(fm))
			assert.Equal(t, tt.body, string(body))
		})
	}
}

func TestBuildEmptyFrontmatterAtEOF(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "index.md", "---\n---")
	writeDoc(t, root, "guide/README.md", "---\n---")

	idx, err := Build(root)
	require.NoError(t, err)

	doc, ok := idx.Lookup("/")
	require.True(t, ok)
	assert.Equal(t, "Home", doc.Title)
	doc, ok = idx.Lookup("/guide/")
	require.True(t, ok)
	assert.Equal(t, "Guide", doc.Title)
}

func TestRouteFor(t *testing.T) {
	tests := map[string]string{
		"index.md":             "/",
		"guide/index.md":       "/guide/",
		"guide/intro.md":       "/guide/intro",
		"/hardware/imu.md":     "/hardware/imu",
		"a/b/c/deep-page.md":   "/a/b/c/deep-page",
		"software/index.MD":    "/software/",
		"README.md":            "/",
		"guide/README.md":      "/guide/",
		"guide/README-old.md":  "/guide/README-old",
	}
	for in, want := range tests {
		assert.Equal(t, want, RouteFor(in), in)
	}
}

func TestResolve(t *testing.T) {
	idx := buildDocs(t)

	tests := []struct {
		link  string
		route string
		ok    bool
	}{
		{"/", "/", true},
		{"/index.md", "/", true},
		{"/guide/getting-started", "/guide/getting-started", true},
		{"/guide/getting-started.md", "/guide/getting-started", true},
		{"/guide/getting-started.html#install", "/guide/getting-started", true},
		{"/guide/getting-started/", "/guide/getting-started", true},
		{"/hardware", "/hardware/", true},
		{"/hardware/?tab=1", "/hardware/", true},
		{"/hardware/index", "/hardware/", true},
		{"/guide/missing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			doc, ok := idx.Resolve(tt.link)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.route, doc.Route)
		})
	}
}

func TestCheckLinks(t *testing.T) {
	idx := buildDocs(t)
	cfg := &site.Config{
		Title: "GyroCycle",
		ThemeConfig: site.ThemeConfig{
			Nav: []site.NavItem{
				{Text: "Home", Link: "/"},
				{Text: "Guide", Link: "/guide/getting-started"},
				{Text: "More", Items: []site.NavItem{
					{Text: "Forum", Link: "https://forum.example.com"},
					{Text: "Changelog", Link: "/changelog"},
				}},
			},
			Sidebar: []site.SidebarItem{
				{Text: "Hardware", Items: []site.SidebarItem{
					{Text: "Overview", Link: "/hardware/"},
					{Text: "Top", Link: "#top"},
				}},
				{Text: "Software", Items: []site.SidebarItem{
					{Text: "Balance", Link: "/software/balance"},
					{Text: "Motors", Link: "/software/motors"},
				}},
			},
		},
	}

	problems := CheckLinks(cfg, idx)
	require.Len(t, problems, 3)
	assert.Equal(t, Problem{Field: "themeConfig.nav[2].items[1].link", Text: "Changelog", Link: "/changelog", Reason: "no document for route"}, problems[0])
	assert.Equal(t, "themeConfig.sidebar[1].items[0].link", problems[1].Field)
	assert.Equal(t, "document is a draft", problems[1].Reason)
	assert.Equal(t, "themeConfig.sidebar[1].items[1].link: /software/motors (no document for route)", problems[2].String())
}

func TestCheckLinksStripsBase(t *testing.T) {
	idx := buildDocs(t)
	cfg := &site.Config{
		Title: "GyroCycle",
		Base:  "/gyrocycle/",
		ThemeConfig: site.ThemeConfig{
			Nav: []site.NavItem{{Text: "Guide", Link: "/gyrocycle/guide/getting-started"}},
		},
	}
	assert.Empty(t, CheckLinks(cfg, idx))
}
