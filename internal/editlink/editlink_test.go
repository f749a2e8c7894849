package editlink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	pattern := "https://github.com/gyrocycle/gyrocycle/edit/main/docs/:path"

	tests := []struct {
		name string
		rel  string
		want string
	}{
		{"plain", "guide/intro.md", "https://github.com/gyrocycle/gyrocycle/edit/main/docs/guide/intro.md"},
		{"leading slash", "/index.md", "https://github.com/gyrocycle/gyrocycle/edit/main/docs/index.md"},
		{"windows separators", `hardware\imu.md`, "https://github.com/gyrocycle/gyrocycle/edit/main/docs/hardware/imu.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(pattern, tt.rel))
		})
	}
}

func TestPatternFor(t *testing.T) {
	tests := []struct {
		name    string
		forge   Forge
		baseURL string
		docsDir string
		want    string
	}{
		{"github", ForgeGitHub, "https://github.com", "docs", "https://github.com/o/r/edit/main/docs/:path"},
		{"gitlab", ForgeGitLab, "https://gitlab.com/", "docs", "https://gitlab.com/o/r/-/edit/main/docs/:path"},
		{"forgejo", ForgeForgejo, "https://codeberg.org", "site/docs/", "https://codeberg.org/o/r/_edit/main/site/docs/:path"},
		{"repo root", ForgeGitHub, "https://github.com", "", "https://github.com/o/r/edit/main/:path"},
		{"unknown forge", Forge("svn"), "https://example.com", "docs", ""},
		{"missing base", ForgeGitHub, "", "docs", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PatternFor(tt.forge, tt.baseURL, "o/r", "main", tt.docsDir))
		})
	}
}

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		raw  string
		want Remote
	}{
		{"https://github.com/gyrocycle/gyrocycle.git", Remote{ForgeGitHub, "https://github.com", "gyrocycle/gyrocycle"}},
		{"git@github.com:gyrocycle/gyrocycle.git", Remote{ForgeGitHub, "https://github.com", "gyrocycle/gyrocycle"}},
		{"ssh://git@gitlab.example.com:2222/team/sub/docs.git", Remote{ForgeGitLab, "https://gitlab.example.com", "team/sub/docs"}},
		{"https://git.home.example/inful/bike", Remote{ForgeForgejo, "https://git.home.example", "inful/bike"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseRemoteURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "/srv/git/repo.git", "file:///srv/git/repo.git", "https://github.com/onlyowner"} {
		_, err := ParseRemoteURL(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseForge(t *testing.T) {
	f, err := ParseForge(" Gitea ")
	require.NoError(t, err)
	assert.Equal(t, ForgeForgejo, f)

	_, err = ParseForge("bitbucket")
	assert.Error(t, err)
}
