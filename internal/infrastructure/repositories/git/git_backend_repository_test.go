//go:build unit

package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autorelease/internal/infrastructure/repositories/git"
)

func TestGitBackendAppliesTo(t *testing.T) {
	t.Parallel()

	t.Run("should apply inside a repository root", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		_, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)
		backend := git.NewBackendRepository("origin")

		// when
		result := backend.AppliesTo(dir)

		// then
		assert.True(t, result)
	})

	t.Run("should apply from any descendant directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		_, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)
		nested := filepath.Join(dir, "a", "b", "c")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		backend := git.NewBackendRepository("origin")

		// when
		result := backend.AppliesTo(nested)

		// then
		assert.True(t, result)
	})

	t.Run("should not apply outside any repository tree", func(t *testing.T) {
		t.Parallel()

		// given
		backend := git.NewBackendRepository("origin")

		// when
		result := backend.AppliesTo(t.TempDir())

		// then
		assert.False(t, result)
	})
}

func TestGitBackendName(t *testing.T) {
	t.Parallel()

	t.Run("should identify as git", func(t *testing.T) {
		t.Parallel()

		// given
		backend := git.NewBackendRepository("origin")

		// when
		name := backend.Name()

		// then
		assert.Equal(t, "git", name)
	})
}

func TestGitBackendStageForEdit(t *testing.T) {
	t.Parallel()

	t.Run("should be a no-op", func(t *testing.T) {
		t.Parallel()

		// given
		backend := git.NewBackendRepository("origin")

		// when
		err := backend.StageForEdit(context.Background(), t.TempDir(), "Buildfile")

		// then
		require.NoError(t, err)
	})
}
