package build

import (
	"context"
	"errors"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autorelease/internal/domain/entities"
	"github.com/rios0rios0/autorelease/internal/infrastructure/repositories/command"
)

// BuildRepository invokes the project's build tool against a descriptor file.
// The command is run with an explicit argument vector; its combined output is
// captured and carried inside the failure error for the operator.
type BuildRepository struct {
	tool string
}

// NewBuildRepository creates a build invoker using the given command.
func NewBuildRepository(tool string) *BuildRepository {
	if tool == "" {
		tool = entities.DefaultBuildCommand
	}
	return &BuildRepository{tool: tool}
}

// Run executes the build in dir against the given descriptor file. A non-zero
// exit surfaces as a BuildFailureError.
func (it *BuildRepository) Run(ctx context.Context, dir, descriptorPath string, args []string) error {
	fullArgs := append([]string{"-f", descriptorPath}, args...)

	logger.Infof("Building with: %s %s", it.tool, strings.Join(fullArgs, " "))

	output, err := command.Run(ctx, dir, it.tool, fullArgs...)
	if err != nil {
		var cmdErr *entities.BackendCommandError
		if errors.As(err, &cmdErr) {
			return &entities.BuildFailureError{
				Command: cmdErr.Command,
				Output:  cmdErr.Output,
			}
		}
		return err
	}

	logger.Debugf("Build output:\n%s", output)
	return nil
}
