package perforce

import (
	"context"
	"fmt"
	"os"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autorelease/internal/infrastructure/repositories/command"
)

// requiredEnvVars must all be set for Perforce commands to run. Their absence
// is a configuration error, not a retry condition.
var requiredEnvVars = []string{"P4PORT", "P4USER", "P4PASSWD", "P4CLIENT"} //nolint:gochecknoglobals // fixed p4 connection set

// BackendRepository is the Perforce implementation of the release backend.
// Perforce tracks file state explicitly rather than via a working-tree diff,
// so the descriptor must be opened for edit (or add) before modification.
type BackendRepository struct{}

// NewBackendRepository creates a Perforce backend.
func NewBackendRepository() *BackendRepository {
	return &BackendRepository{}
}

// Name returns the backend identifier.
func (it *BackendRepository) Name() string {
	return "perforce"
}

// AppliesTo returns true only when no Git repository encloses dir and the
// P4CLIENT connection variable is set.
func (it *BackendRepository) AppliesTo(dir string) bool {
	//nolint:exhaustruct // only the detection option is relevant
	if _, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true}); err == nil {
		return false
	}
	return os.Getenv("P4CLIENT") != ""
}

// UncommittedFiles parses `p4 opened` into a list of depot paths.
func (it *BackendRepository) UncommittedFiles(ctx context.Context, dir string) ([]string, error) {
	if err := it.checkEnvironment(); err != nil {
		return nil, err
	}

	output, err := command.Run(ctx, dir, "p4", "opened")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		// Lines look like: //depot/path#3 - edit default change (text)
		path, _, _ := strings.Cut(trimmed, "#")
		files = append(files, path)
	}
	return files, nil
}

// StageForEdit opens the file for edit, falling back to add for files not
// yet tracked by the depot.
func (it *BackendRepository) StageForEdit(ctx context.Context, dir, file string) error {
	if err := it.checkEnvironment(); err != nil {
		return err
	}

	if _, err := command.Run(ctx, dir, "p4", "edit", file); err != nil {
		logger.Debugf("p4 edit failed for %q, trying p4 add: %v", file, err)
		_, addErr := command.Run(ctx, dir, "p4", "add", file)
		return addErr
	}
	return nil
}

// Commit submits the given file with the given description.
func (it *BackendRepository) Commit(ctx context.Context, dir, file, message string) error {
	if err := it.checkEnvironment(); err != nil {
		return err
	}

	_, err := command.Run(ctx, dir, "p4", "submit", "-d", message, file)
	return err
}

// Tag labels the current client view with the given name.
func (it *BackendRepository) Tag(ctx context.Context, dir, name string) error {
	if err := it.checkEnvironment(); err != nil {
		return err
	}

	_, err := command.Run(ctx, dir, "p4", "tag", "-l", name, "./...")
	return err
}

// Push is a no-op: a Perforce submit is already recorded on the server.
func (it *BackendRepository) Push(_ context.Context, _ string) error {
	return nil
}

// checkEnvironment verifies all mandatory connection variables are present.
func (it *BackendRepository) checkEnvironment() error {
	var missing []string
	for _, name := range requiredEnvVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf(
			"perforce backend requires environment variables: %s",
			strings.Join(missing, ", "),
		)
	}
	return nil
}
