package editlink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
)

func initRepo(t *testing.T, remoteURL string) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	if remoteURL != "" {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: DefaultRemote, URLs: []string{remoteURL}})
		require.NoError(t, err)
	}
	return dir
}

func TestDetect(t *testing.T) {
	dir := initRepo(t, "git@github.com:gyrocycle/gyrocycle.git")
	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(docs, 0o755))

	// Detection from a subdirectory walks up to the repository root.
	pattern, err := Detect(docs, "docs")
	require.NoError(t, err)

	// initial branch name depends on the go-git default (master/main).
	assert.Contains(t, []string{
		"https://github.com/gyrocycle/gyrocycle/edit/master/docs/:path",
		"https://github.com/gyrocycle/gyrocycle/edit/main/docs/:path",
	}, pattern)
}

func TestDetectWithoutRemote(t *testing.T) {
	dir := initRepo(t, "")
	_, err := Detect(dir, "docs")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryGit))
}

func TestDetectOutsideRepository(t *testing.T) {
	_, err := Detect(t.TempDir(), "docs")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}
