package entities

import (
	"os"
	"strconv"
	"strings"
)

// SnapshotSuffix marks a work-in-progress version (e.g. "1.2.3-SNAPSHOT").
const SnapshotSuffix = "-SNAPSHOT"

// Environment variables consulted for a next-version override, in order.
var nextVersionEnvVars = []string{"NEXT_VERSION", "next_version"} //nolint:gochecknoglobals // fixed lookup order

// IsSnapshot returns true if the version carries the snapshot suffix.
func IsSnapshot(version string) bool {
	return strings.HasSuffix(version, SnapshotSuffix)
}

// ReleaseVersion strips the snapshot suffix, yielding the version used for
// the build-and-tag step. Non-snapshot versions are returned unchanged.
func ReleaseVersion(version string) string {
	return strings.TrimSuffix(version, SnapshotSuffix)
}

// DefaultNextVersion computes the next development version under the default
// policy: for a snapshot version the last numeric segment is incremented,
// keeping the original zero-padding width, and the suffix is reattached.
// Non-snapshot versions are not auto-advanced.
func DefaultNextVersion(current string) string {
	if !IsSnapshot(current) {
		return current
	}

	base := ReleaseVersion(current)
	segments := strings.Split(base, ".")
	last := segments[len(segments)-1]

	number, err := strconv.Atoi(last)
	if err != nil {
		return current // last segment is not numeric, nothing to increment
	}

	width := len(last)
	segments[len(segments)-1] = padNumber(number+1, width)

	return strings.Join(segments, ".") + SnapshotSuffix
}

// padNumber formats a number left-padded with zeros to the given width.
// The width grows naturally when the number no longer fits.
func padNumber(number, width int) string {
	formatted := strconv.Itoa(number)
	for len(formatted) < width {
		formatted = "0" + formatted
	}
	return formatted
}

// ResolveNextVersion resolves the next version for the given current one.
// Resolution order (first non-empty wins): the settings policy, the
// NEXT_VERSION environment override (both spellings), the default policy.
func ResolveNextVersion(settings *Settings, current string) string {
	if settings != nil && settings.NextVersion.IsSet() {
		return settings.NextVersion.Resolve(current)
	}

	for _, name := range nextVersionEnvVars {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}

	return DefaultNextVersion(current)
}
