package repositories

import "context"

// BackendRepository abstracts a version-control system (Git, Perforce).
// Implementations are stateless capability bundles; exactly one backend is
// selected per run and the selection is immutable for the process lifetime.
type BackendRepository interface {
	// Name returns the backend identifier (e.g. "git", "perforce").
	Name() string

	// AppliesTo returns true if this backend manages the given directory.
	AppliesTo(dir string) bool

	// UncommittedFiles lists paths with uncommitted changes in the working tree.
	UncommittedFiles(ctx context.Context, dir string) ([]string, error)

	// StageForEdit prepares a file for modification. Git tracks working-tree
	// diffs and treats this as a no-op; Perforce must open the file for
	// edit (or add) before it can be written.
	StageForEdit(ctx context.Context, dir, file string) error

	// Commit records the given file with the given message.
	Commit(ctx context.Context, dir, file, message string) error

	// Tag creates or force-overwrites a tag pointing at the current state,
	// propagating it to the configured remote when one exists.
	Tag(ctx context.Context, dir, name string) error

	// Push propagates local commits to the configured remote when one exists.
	Push(ctx context.Context, dir string) error
}
