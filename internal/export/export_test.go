package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitenav/internal/config"
	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/site"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" Hextra ")
	require.NoError(t, err)
	assert.Equal(t, FormatHugo, f)

	_, err = ParseFormat("docusaurus")
	assert.Error(t, err)
	assert.Contains(t, Formats(), "vitepress")
}

func vitepressObject(t *testing.T, out string) map[string]any {
	t.Helper()
	start := strings.Index(out, "defineConfig(")
	require.GreaterOrEqual(t, start, 0)
	body := strings.TrimSuffix(strings.TrimSpace(out[start+len("defineConfig("):]), ")")
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &obj))
	return obj
}

func TestVitePress(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, VitePress(&buf, config.Default()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "// Generated by sitenav"))
	assert.Contains(t, out, "import { defineConfig } from 'vitepress'")

	// Declaration order of keys and nav entries survives.
	assert.Less(t, strings.Index(out, `"title"`), strings.Index(out, `"description"`))
	assert.Less(t, strings.Index(out, `"head"`), strings.Index(out, `"themeConfig"`))
	assert.Less(t, strings.Index(out, `"text": "Guide"`), strings.Index(out, `"text": "Hardware"`))

	obj := vitepressObject(t, out)
	assert.Equal(t, "GyroCycle", obj["title"])
	assert.Equal(t, map[string]any{"math": true}, obj["markdown"])

	head := obj["head"].([]any)
	assert.Equal(t, []any{"link", map[string]any{"rel": "icon", "type": "image/svg+xml", "href": "/favicon.svg"}}, head[0])

	tc := obj["themeConfig"].(map[string]any)
	sidebar := tc["sidebar"].([]any)
	require.Len(t, sidebar, 3)
	hardware := sidebar[1].(map[string]any)
	assert.Equal(t, "Hardware", hardware["text"])
	electronics := hardware["items"].([]any)[2].(map[string]any)
	assert.Equal(t, "Electronics", electronics["text"])
	assert.Len(t, electronics["items"], 3)

	assert.Equal(t, map[string]any{"provider": "local"}, tc["search"])
	assert.Equal(t, map[string]any{"light": "/logo-light.svg", "dark": "/logo-dark.svg", "alt": "GyroCycle"}, tc["logo"])
}

func TestVitePressShortLogoAndNoHTMLEscaping(t *testing.T) {
	cfg := &site.Config{
		Title: "Gyro <Cycle> & Co",
		ThemeConfig: site.ThemeConfig{
			Logo: &site.Logo{Src: "/logo.svg"},
			Nav:  []site.NavItem{{Text: "Home", Link: "/"}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, VitePress(&buf, cfg))
	assert.Contains(t, buf.String(), `"title": "Gyro <Cycle> & Co"`)
	assert.Contains(t, buf.String(), `"logo": "/logo.svg"`)
}

func hugoConfig(t *testing.T, cfg *site.Config) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Hugo(&buf, cfg))
	assert.True(t, strings.HasPrefix(buf.String(), "# Generated by sitenav"))
	var out map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestHugo(t *testing.T) {
	out := hugoConfig(t, config.Default())

	assert.Equal(t, "GyroCycle", out["title"])
	assert.Equal(t, "en-US", out["languageCode"])
	assert.Equal(t, HextraModule, out["module"].(map[string]any)["imports"].([]any)[0].(map[string]any)["path"])

	menu := out["menu"].(map[string]any)
	main := menu["main"].([]any)
	var names []string
	lastWeight := 0
	for _, e := range main {
		m := e.(map[string]any)
		names = append(names, m["name"].(string))
		w := m["weight"].(int)
		assert.Greater(t, w, lastWeight)
		lastWeight = w
	}
	assert.Equal(t, []string{"Home", "Guide", "Hardware", "Software", "Search", "github", "Theme"}, names)
	assert.Equal(t, "/guide/getting-started", main[1].(map[string]any)["pageRef"])
	gh := main[5].(map[string]any)
	assert.Equal(t, "https://github.com/gyrocycle/gyrocycle", gh["url"])
	assert.Equal(t, map[string]any{"icon": "github"}, gh["params"])

	sidebar := menu["sidebar"].([]any)
	byName := map[string]map[string]any{}
	for _, e := range sidebar {
		m := e.(map[string]any)
		byName[m["name"].(string)] = m
	}
	assert.Equal(t, "sidebar-1", byName["Hardware"]["identifier"])
	assert.Equal(t, "sidebar-1-2", byName["Electronics"]["identifier"])
	assert.Equal(t, "sidebar-1", byName["Electronics"]["parent"])
	assert.Equal(t, "sidebar-1-2", byName["IMU"]["parent"])
	assert.Equal(t, "/hardware/electronics/imu", byName["IMU"]["pageRef"])

	params := out["params"].(map[string]any)
	assert.Equal(t, map[string]any{"enable": true, "base": "https://github.com/gyrocycle/gyrocycle/edit/main/docs/"}, params["editURL"])
	navbar := params["navbar"].(map[string]any)
	assert.Equal(t, true, navbar["displayLogo"])
	assert.Equal(t, map[string]any{"path": "/logo-light.svg", "dark": "/logo-dark.svg"}, navbar["logo"])
	assert.Equal(t, "flexsearch", params["search"].(map[string]any)["type"])

	_, hasMarkup := out["markup"]
	assert.True(t, hasMarkup, "math enables goldmark passthrough")
}

func TestHugoDropdownAndOptionalSections(t *testing.T) {
	cfg := &site.Config{
		Title: "GyroCycle",
		Base:  "/docs/",
		ThemeConfig: site.ThemeConfig{
			Nav: []site.NavItem{
				{Text: "More", Items: []site.NavItem{
					{Text: "Changelog", Link: "/changelog"},
					{Text: "Forum", Link: "https://forum.example.com"},
				}},
			},
			EditLink:    &site.EditLink{Pattern: "https://example.com/edit?file=:path&ref=main"},
			Footer:      &site.Footer{Copyright: "Copyright 2024 GyroCycle"},
			LastUpdated: true,
		},
	}
	out := hugoConfig(t, cfg)

	main := out["menu"].(map[string]any)["main"].([]any)
	require.Len(t, main, 4)
	more := main[0].(map[string]any)
	assert.Equal(t, "nav-0", more["identifier"])
	assert.Equal(t, "nav-0", main[1].(map[string]any)["parent"])
	assert.Equal(t, "https://forum.example.com", main[2].(map[string]any)["url"])

	assert.Equal(t, "/docs/", out["baseURL"])
	assert.Equal(t, true, out["enableGitInfo"])
	assert.Equal(t, "Copyright 2024 GyroCycle", out["copyright"])
	params := out["params"].(map[string]any)
	_, hasEdit := params["editURL"]
	assert.False(t, hasEdit, "pattern with :path in the middle cannot map to a base")
	assert.Equal(t, map[string]any{"enable": false}, params["search"])
	_, hasMarkup := out["markup"]
	assert.False(t, hasMarkup)
	_, hasSidebar := out["menu"].(map[string]any)["sidebar"]
	assert.False(t, hasSidebar)
}

func TestYAMLMatchesMarshal(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, cfg))
	want, err := config.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())
}

func TestTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, To(&buf, FormatYAML, config.Default()))
	assert.NotEmpty(t, buf.String())

	err := To(&buf, Format("docusaurus"), config.Default())
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
}

func TestWrite(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		format Format
		files  []string
	}{
		{FormatVitePress, []string{VitePressFile}},
		{FormatHugo, []string{HugoFile, HugoHeadFile}},
		{FormatYAML, []string{YAMLFile}},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			dir := t.TempDir()
			written, err := Write(dir, tt.format, cfg)
			require.NoError(t, err)
			require.Len(t, written, len(tt.files))
			for i, name := range tt.files {
				want := filepath.Join(dir, filepath.FromSlash(name))
				assert.Equal(t, want, written[i])
				_, err := os.Stat(want)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteHugoHead(t *testing.T) {
	dir := t.TempDir()
	_, err := Write(dir, FormatHugo, config.Default())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(HugoHeadFile)))
	require.NoError(t, err)
	assert.Equal(t,
		`<link href="/favicon.svg" rel="icon" type="image/svg+xml"/>`+"\n"+
			`<link href="/favicon.png" rel="icon" type="image/png"/>`+"\n",
		string(data))

	yamlOut, err := Write(t.TempDir(), FormatYAML, config.Default())
	require.NoError(t, err)
	loaded, err := config.Load(yamlOut[0])
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestHugoUsesTwoSpaceIndent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Hugo(&buf, config.Default()))
	out := buf.String()
	assert.Contains(t, out, "\nmenu:\n  main:\n")
	assert.NotContains(t, out, "\n    main:")
}

func TestWriteHugoFooter(t *testing.T) {
	cfg := config.Default()
	cfg.ThemeConfig.Footer = &site.Footer{
		Message:   `Released under <a href="/license">MIT</a>.<script>alert(1)</script>`,
		Copyright: "Copyright 2024 GyroCycle",
	}
	dir := t.TempDir()
	written, err := Write(dir, FormatHugo, cfg)
	require.NoError(t, err)
	require.Len(t, written, 3)
	assert.Equal(t, filepath.Join(dir, filepath.FromSlash(HugoFooterFile)), written[2])

	data, err := os.ReadFile(written[2])
	require.NoError(t, err)
	assert.Equal(t, `Released under <a href="/license">MIT</a>.`+"\n", string(data))

	cfg.ThemeConfig.Footer.Message = ""
	written, err = Write(t.TempDir(), FormatHugo, cfg)
	require.NoError(t, err)
	assert.Len(t, written, 2, "no partial without a message")
}

func TestFooterHTMLIsSanitized(t *testing.T) {
	msg := `Released under MIT. <a href="/license">License</a><script>alert(1)</script>`
	cfg := config.Default()
	cfg.ThemeConfig.Footer = &site.Footer{Message: msg, Copyright: `<b onclick="x()">GyroCycle</b>`}

	var buf bytes.Buffer
	require.NoError(t, VitePress(&buf, cfg))
	out := buf.String()
	assert.Contains(t, out, "License</a>")
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "onclick")
	assert.Equal(t, msg, cfg.ThemeConfig.Footer.Message, "input is not modified")

	hugo := hugoConfig(t, cfg)
	assert.Equal(t, "<b>GyroCycle</b>", hugo["copyright"])
}
