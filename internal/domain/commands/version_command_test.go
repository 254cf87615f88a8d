//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autorelease/internal/domain/commands"
	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

func TestVersionCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should succeed for a descriptor with a version", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "Buildfile")
		require.NoError(t, os.WriteFile(path, []byte(`THIS_VERSION = "1.0.0-SNAPSHOT"`+"\n"), 0o644))
		command := commands.NewVersionCommand()

		// when
		err := command.Execute(context.Background(), entities.DefaultSettings(), commands.VersionOptions{
			Dir: dir,
		})

		// then
		require.NoError(t, err)
	})

	t.Run("should fail for a missing descriptor", func(t *testing.T) {
		t.Parallel()

		// given
		command := commands.NewVersionCommand()

		// when
		err := command.Execute(context.Background(), entities.DefaultSettings(), commands.VersionOptions{
			Dir: t.TempDir(),
		})

		// then
		require.Error(t, err)
	})
}
