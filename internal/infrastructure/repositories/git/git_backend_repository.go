package git

import (
	"context"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autorelease/internal/infrastructure/repositories/command"
)

// statusLinePrefixLen is the width of the two status columns plus the
// separating space in `git status --porcelain` output.
const statusLinePrefixLen = 3

// BackendRepository is the Git implementation of the release backend. It
// detects the enclosing repository with go-git and shells out to the git
// executable for all mutating operations.
type BackendRepository struct {
	remote string
}

// NewBackendRepository creates a Git backend propagating to the given remote.
func NewBackendRepository(remote string) *BackendRepository {
	return &BackendRepository{remote: remote}
}

// Name returns the backend identifier.
func (it *BackendRepository) Name() string {
	return "git"
}

// AppliesTo returns true when dir is inside a Git repository. go-git walks
// parent directories toward the filesystem root looking for the .git marker.
func (it *BackendRepository) AppliesTo(dir string) bool {
	//nolint:exhaustruct // only the detection option is relevant
	_, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// UncommittedFiles parses `git status --porcelain` into a list of paths.
func (it *BackendRepository) UncommittedFiles(ctx context.Context, dir string) ([]string, error) {
	output, err := command.Run(ctx, dir, "git", "status", "--porcelain")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(output, "\n") {
		if len(line) <= statusLinePrefixLen {
			continue
		}
		files = append(files, strings.TrimSpace(line[statusLinePrefixLen:]))
	}
	return files, nil
}

// StageForEdit is a no-op: Git derives changes from the working tree.
func (it *BackendRepository) StageForEdit(_ context.Context, _, _ string) error {
	return nil
}

// Commit records the given file with the given message.
func (it *BackendRepository) Commit(ctx context.Context, dir, file, message string) error {
	_, err := command.Run(ctx, dir, "git", "commit", "-m", message, "--", file)
	return err
}

// Tag force-creates the tag and pushes it to the remote when one exists.
// Re-running with the same name overwrites a pre-existing tag.
func (it *BackendRepository) Tag(ctx context.Context, dir, name string) error {
	if _, err := command.Run(ctx, dir, "git", "tag", "-f", name); err != nil {
		return err
	}

	if !it.hasRemote(ctx, dir) {
		logger.Debugf("Remote %q not configured, keeping tag %q local", it.remote, name)
		return nil
	}

	_, err := command.Run(
		ctx, dir, "git", "push", "-f", it.remote, "refs/tags/"+name,
	)
	return err
}

// Push propagates the current branch to the remote when one exists.
func (it *BackendRepository) Push(ctx context.Context, dir string) error {
	if !it.hasRemote(ctx, dir) {
		logger.Debugf("Remote %q not configured, skipping push", it.remote)
		return nil
	}

	branch, err := it.currentBranch(ctx, dir)
	if err != nil {
		return err
	}

	_, err = command.Run(ctx, dir, "git", "push", it.remote, branch)
	return err
}

// hasRemote checks the `git remote` listing for the configured remote.
func (it *BackendRepository) hasRemote(ctx context.Context, dir string) bool {
	output, err := command.Run(ctx, dir, "git", "remote")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == it.remote {
			return true
		}
	}
	return false
}

// currentBranch returns the checked-out branch name.
func (it *BackendRepository) currentBranch(ctx context.Context, dir string) (string, error) {
	output, err := command.Run(ctx, dir, "git", "branch", "--show-current")
	if err != nil {
		return "", err
	}

	branch := strings.TrimSpace(output)
	if branch == "" {
		return "", fmt.Errorf("cannot push from a detached HEAD in %q", dir)
	}
	return branch, nil
}
