package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autorelease/internal/domain/commands"
	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

// ReleaseController handles the "release" subcommand.
type ReleaseController struct {
	command commands.Release
}

// NewReleaseController creates a new ReleaseController.
func NewReleaseController(command commands.Release) *ReleaseController {
	return &ReleaseController{command: command}
}

// GetBind returns the Cobra command metadata for the release controller.
func (it *ReleaseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "release [build arguments...]",
		Short: "Release the current version and advance to the next one",
		Long: `Run one release of the project in the working directory.

The sequence is strictly linear: extract the current version from the
build descriptor, validate the release, build against a release-candidate
copy of the descriptor, tag the result in the detected version-control
system, then advance the descriptor to the next development version.

Extra arguments are forwarded to the build invocation in place of the
default set (clean build DEBUG=no).`,
	}
}

// Execute runs one release. Any failure is fatal and exits non-zero.
func (it *ReleaseController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	dir, _ := cmd.Flags().GetString("dir")

	settings := loadSettings(cmd)

	if err := it.command.Execute(ctx, settings, commands.ReleaseOptions{
		Dir:       dir,
		BuildArgs: args,
		DryRun:    dryRun,
		Verbose:   verbose,
	}); err != nil {
		logger.Fatalf("Release failed: %v", err)
	}
}

// loadSettings resolves the configuration file, falling back to defaults
// when none exists.
func loadSettings(cmd *cobra.Command) *entities.Settings {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debug("No config file found, using defaults")
			return entities.DefaultSettings()
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	return settings
}
