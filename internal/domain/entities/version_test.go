//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

func TestIsSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("should detect the snapshot suffix", func(t *testing.T) {
		t.Parallel()

		// given
		version := "1.0.0-SNAPSHOT"

		// when
		result := entities.IsSnapshot(version)

		// then
		assert.True(t, result)
	})

	t.Run("should reject a released version", func(t *testing.T) {
		t.Parallel()

		// given
		version := "1.0.0"

		// when
		result := entities.IsSnapshot(version)

		// then
		assert.False(t, result)
	})
}

func TestReleaseVersion(t *testing.T) {
	t.Parallel()

	t.Run("should strip the snapshot suffix", func(t *testing.T) {
		t.Parallel()

		// given
		version := "2.5.1-SNAPSHOT"

		// when
		result := entities.ReleaseVersion(version)

		// then
		assert.Equal(t, "2.5.1", result)
	})

	t.Run("should leave a released version unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		version := "2.5.1"

		// when
		result := entities.ReleaseVersion(version)

		// then
		assert.Equal(t, "2.5.1", result)
	})
}

func TestDefaultNextVersion(t *testing.T) {
	t.Parallel()

	t.Run("should increment the last segment of a snapshot", func(t *testing.T) {
		t.Parallel()

		// given
		current := "1.2.9-SNAPSHOT"

		// when
		result := entities.DefaultNextVersion(current)

		// then
		assert.Equal(t, "1.2.10-SNAPSHOT", result)
	})

	t.Run("should keep the zero-padding width while it fits", func(t *testing.T) {
		t.Parallel()

		// given
		current := "1.2.09-SNAPSHOT"

		// when
		result := entities.DefaultNextVersion(current)

		// then
		assert.Equal(t, "1.2.10-SNAPSHOT", result)
	})

	t.Run("should re-pad shorter increments to the original width", func(t *testing.T) {
		t.Parallel()

		// given
		current := "1.2.008-SNAPSHOT"

		// when
		result := entities.DefaultNextVersion(current)

		// then
		assert.Equal(t, "1.2.009-SNAPSHOT", result)
	})

	t.Run("should grow the width when the increment no longer fits", func(t *testing.T) {
		t.Parallel()

		// given
		current := "1.2.99-SNAPSHOT"

		// when
		result := entities.DefaultNextVersion(current)

		// then
		assert.Equal(t, "1.2.100-SNAPSHOT", result)
	})

	t.Run("should not auto-advance a released version", func(t *testing.T) {
		t.Parallel()

		// given
		current := "3.0.0"

		// when
		result := entities.DefaultNextVersion(current)

		// then
		assert.Equal(t, "3.0.0", result)
	})

	t.Run("should leave a non-numeric last segment alone", func(t *testing.T) {
		t.Parallel()

		// given
		current := "1.0.beta-SNAPSHOT"

		// when
		result := entities.DefaultNextVersion(current)

		// then
		assert.Equal(t, "1.0.beta-SNAPSHOT", result)
	})
}

//nolint:paralleltest // t.Setenv is incompatible with parallel subtests
func TestResolveNextVersion(t *testing.T) {
	t.Run("should prefer the configured policy", func(t *testing.T) {
		// given
		settings := entities.DefaultSettings()
		settings.NextVersion = entities.FixedPolicy("9.9.9-SNAPSHOT")
		t.Setenv("NEXT_VERSION", "2.0.0-SNAPSHOT")

		// when
		result := entities.ResolveNextVersion(settings, "1.0.0-SNAPSHOT")

		// then
		assert.Equal(t, "9.9.9-SNAPSHOT", result)
	})

	t.Run("should invoke a function policy exactly once", func(t *testing.T) {
		// given
		calls := 0
		settings := entities.DefaultSettings()
		settings.NextVersion = entities.PolicyFunc(func(current string) string {
			calls++
			return current + ".1"
		})

		// when
		result := entities.ResolveNextVersion(settings, "1.0.0")

		// then
		assert.Equal(t, "1.0.0.1", result)
		assert.Equal(t, 1, calls)
	})

	t.Run("should fall back to the NEXT_VERSION environment override", func(t *testing.T) {
		// given
		t.Setenv("NEXT_VERSION", "4.0.0-SNAPSHOT")

		// when
		result := entities.ResolveNextVersion(entities.DefaultSettings(), "1.0.0-SNAPSHOT")

		// then
		assert.Equal(t, "4.0.0-SNAPSHOT", result)
	})

	t.Run("should check the lowercase spelling too", func(t *testing.T) {
		// given
		t.Setenv("NEXT_VERSION", "")
		t.Setenv("next_version", "5.0.0-SNAPSHOT")

		// when
		result := entities.ResolveNextVersion(entities.DefaultSettings(), "1.0.0-SNAPSHOT")

		// then
		assert.Equal(t, "5.0.0-SNAPSHOT", result)
	})

	t.Run("should use the default policy when nothing overrides", func(t *testing.T) {
		// given
		t.Setenv("NEXT_VERSION", "")
		t.Setenv("next_version", "")

		// when
		result := entities.ResolveNextVersion(entities.DefaultSettings(), "1.0.7-SNAPSHOT")

		// then
		assert.Equal(t, "1.0.8-SNAPSHOT", result)
	})
}
