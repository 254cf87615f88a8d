package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autorelease/internal/domain/commands"
	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

// VersionController handles the "version" subcommand.
type VersionController struct {
	command commands.Version
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Version) *VersionController {
	return &VersionController{command: command}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version",
		Short: "Print the current and next versions from the build descriptor",
		Long: `Extract the current version from the build descriptor and print it
together with the next version a release would advance to. Nothing is
modified.`,
	}
}

// Execute prints the versions. Any failure is fatal and exits non-zero.
func (it *VersionController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	dir, _ := cmd.Flags().GetString("dir")
	settings := loadSettings(cmd)

	if err := it.command.Execute(ctx, settings, commands.VersionOptions{
		Dir: dir,
	}); err != nil {
		logger.Fatalf("Version lookup failed: %v", err)
	}
}
