package editlink

import (
	"errors"
	"log/slog"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
)

// DefaultRemote is the remote inspected by Detect.
const DefaultRemote = "origin"

// Detect opens the git repository containing dir and returns the edit link
// pattern for files under docsDir, using the origin remote and the branch
// HEAD points at.
func Detect(dir, docsDir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ferrors.NotFoundError("not a git repository").WithPath(dir).WithCause(err).Build()
		}
		return "", ferrors.GitError("failed to open repository").WithPath(dir).WithCause(err).Build()
	}

	remote, err := repo.Remote(DefaultRemote)
	if err != nil {
		return "", ferrors.GitError("remote not found").
			WithContext("remote", DefaultRemote).WithPath(dir).WithCause(err).Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ferrors.GitError("remote has no url").WithContext("remote", DefaultRemote).Build()
	}
	parsed, err := ParseRemoteURL(urls[0])
	if err != nil {
		return "", ferrors.GitError("unsupported remote url").WithCause(err).Build()
	}

	branch, err := headBranch(repo)
	if err != nil {
		return "", ferrors.GitError("failed to resolve HEAD").WithPath(dir).WithCause(err).Build()
	}

	pattern := PatternFor(parsed.Forge, parsed.BaseURL, parsed.FullName, branch, docsDir)
	slog.Debug("Detected edit link pattern",
		logfields.Path(dir),
		slog.String("forge", string(parsed.Forge)),
		slog.String("branch", branch),
		slog.String("pattern", pattern))
	return pattern, nil
}

// headBranch returns the short branch name HEAD points at. It works on
// repositories without commits.
func headBranch(repo *git.Repository) (string, error) {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", err
	}
	if ref.Type() != plumbing.SymbolicReference {
		return "", errors.New("HEAD is detached")
	}
	return ref.Target().Short(), nil
}
