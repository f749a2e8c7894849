// Package editlink builds "edit this page" URLs and derives the URL pattern
// from a git working tree's origin remote.
package editlink

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"git.home.luguber.info/inful/sitenav/internal/foundation/normalization"
)

// Placeholder is replaced by the page path relative to the docs root.
const Placeholder = ":path"

// Forge identifies a repository host flavour.
type Forge string

const (
	ForgeGitHub  Forge = "github"
	ForgeGitLab  Forge = "gitlab"
	ForgeForgejo Forge = "forgejo"
)

var forgeNormalizer = normalization.NewEnumNormalizer("forge", map[string]Forge{
	"github":  ForgeGitHub,
	"gitlab":  ForgeGitLab,
	"forgejo": ForgeForgejo,
	"gitea":   ForgeForgejo,
}, "")

// ParseForge resolves raw to a known forge. "gitea" maps to forgejo.
func ParseForge(raw string) (Forge, error) {
	return forgeNormalizer.Parse(raw)
}

// Build substitutes relPath for every :path in pattern. Leading slashes of
// relPath are dropped and backslashes become forward slashes.
func Build(pattern, relPath string) string {
	p := strings.TrimLeft(strings.ReplaceAll(relPath, "\\", "/"), "/")
	return strings.ReplaceAll(pattern, Placeholder, p)
}

// PatternFor returns the edit URL pattern for a file under docsDir on branch.
// baseURL is the forge web root, fullName is "owner/repo". Returns "" when an
// input is missing or the forge is unsupported.
func PatternFor(forge Forge, baseURL, fullName, branch, docsDir string) string {
	if forge == "" || baseURL == "" || fullName == "" || branch == "" {
		return ""
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	file := Placeholder
	if d := strings.Trim(path.Clean("/"+docsDir), "/"); d != "" {
		file = d + "/" + Placeholder
	}
	switch forge {
	case ForgeGitHub:
		return fmt.Sprintf("%s/%s/edit/%s/%s", baseURL, fullName, branch, file)
	case ForgeGitLab:
		return fmt.Sprintf("%s/%s/-/edit/%s/%s", baseURL, fullName, branch, file)
	case ForgeForgejo:
		return fmt.Sprintf("%s/%s/_edit/%s/%s", baseURL, fullName, branch, file)
	default:
		return ""
	}
}

// Remote is a parsed forge remote.
type Remote struct {
	Forge    Forge
	BaseURL  string
	FullName string
}

// ParseRemoteURL parses an https or scp-style ("git@host:owner/repo.git")
// remote URL. The forge is guessed from the host name; unknown hosts are
// treated as Forgejo instances.
func ParseRemoteURL(raw string) (Remote, error) {
	raw = strings.TrimSpace(raw)
	var host, repoPath string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return Remote{}, fmt.Errorf("parse remote url: %w", err)
		}
		if u.Scheme == "file" || u.Host == "" {
			return Remote{}, fmt.Errorf("remote %q has no host", raw)
		}
		host, repoPath = u.Hostname(), u.Path
	case strings.Contains(raw, "@") && strings.Contains(raw, ":"):
		rest := raw[strings.Index(raw, "@")+1:]
		i := strings.Index(rest, ":")
		host, repoPath = rest[:i], rest[i+1:]
	default:
		return Remote{}, fmt.Errorf("unsupported remote url %q", raw)
	}

	fullName := strings.TrimSuffix(strings.Trim(repoPath, "/"), ".git")
	if strings.Count(fullName, "/") < 1 {
		return Remote{}, fmt.Errorf("remote %q has no owner/repo path", raw)
	}
	return Remote{
		Forge:    forgeForHost(host),
		BaseURL:  "https://" + host,
		FullName: fullName,
	}, nil
}

func forgeForHost(host string) Forge {
	h := strings.ToLower(host)
	switch {
	case strings.Contains(h, "github"):
		return ForgeGitHub
	case strings.Contains(h, "gitlab"):
		return ForgeGitLab
	default:
		return ForgeForgejo
	}
}
