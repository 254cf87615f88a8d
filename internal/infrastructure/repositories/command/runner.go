package command

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

// Run executes an external command in dir with an explicit argument
// vector (never a shell string), capturing combined output. A non-zero exit
// surfaces as a BackendCommandError carrying the command text, the exit
// status, and the captured output. There are no retries.
func Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	logger.Debugf("Running: %s", commandText(name, args))

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", commandError(name, args, string(output), err)
	}
	return string(output), nil
}

// commandText renders the argument vector for error messages and logs.
func commandText(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// commandError maps an exec failure to the domain error taxonomy.
func commandError(name string, args []string, output string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &entities.BackendCommandError{
			Command:    commandText(name, args),
			ExitStatus: exitErr.ExitCode(),
			Output:     output,
		}
	}
	return fmt.Errorf("failed to run %q: %w", commandText(name, args), err)
}
