package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

// Version is the interface for the version command.
type Version interface {
	Execute(ctx context.Context, settings *entities.Settings, opts VersionOptions) error
}

// VersionOptions holds runtime options for the version command.
type VersionOptions struct {
	Dir string
}

// VersionCommand prints the descriptor's current version and the next
// version the release would advance to, without touching anything.
type VersionCommand struct{}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand() *VersionCommand {
	return &VersionCommand{}
}

// Execute extracts and prints the current and next versions.
func (it *VersionCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts VersionOptions,
) error {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	descriptor := entities.NewDescriptor(descriptorPath(dir, settings.Descriptor))

	current, err := descriptor.Version()
	if err != nil {
		return err
	}

	fmt.Printf("current: %s\n", current)
	fmt.Printf("next:    %s\n", entities.ResolveNextVersion(settings, current))
	return nil
}
