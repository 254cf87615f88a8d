package entities

import (
	"fmt"
	"strings"
)

// VersionNotFoundError indicates the descriptor exists but contains no
// version assignment matching the expected pattern.
type VersionNotFoundError struct {
	Path string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("no version assignment found in %q", e.Path)
}

// InvalidReleaseError indicates the current version equals the computed next
// version while still carrying the snapshot suffix, so releasing would tag an
// indistinguishable work-in-progress version.
type InvalidReleaseError struct {
	Current string
	Next    string
}

func (e *InvalidReleaseError) Error() string {
	return fmt.Sprintf(
		"current version %q equals the next version %q and is still a snapshot; "+
			"set NEXT_VERSION or the next-version policy before releasing",
		e.Current, e.Next,
	)
}

// DirtyRepositoryError indicates uncommitted changes in the working tree.
type DirtyRepositoryError struct {
	Files []string
}

func (e *DirtyRepositoryError) Error() string {
	return fmt.Sprintf(
		"uncommitted files present, commit or revert them before releasing:\n  %s",
		strings.Join(e.Files, "\n  "),
	)
}

// BackendCommandError indicates a VCS command exited non-zero. It carries the
// command text, the exit status, and the combined output for the operator.
type BackendCommandError struct {
	Command    string
	ExitStatus int
	Output     string
}

func (e *BackendCommandError) Error() string {
	return fmt.Sprintf(
		"command %q failed with exit status %d:\n%s",
		e.Command, e.ExitStatus, e.Output,
	)
}

// NoBackendDetectedError indicates no registered backend applies to the
// working directory.
type NoBackendDetectedError struct {
	Dir string
}

func (e *NoBackendDetectedError) Error() string {
	return fmt.Sprintf("no version-control backend detected in %q", e.Dir)
}

// BuildFailureError indicates the external build invocation failed. The
// descriptor is guaranteed untouched when this error is returned.
type BuildFailureError struct {
	Command string
	Output  string
}

func (e *BuildFailureError) Error() string {
	return fmt.Sprintf("build command %q failed:\n%s", e.Command, e.Output)
}
