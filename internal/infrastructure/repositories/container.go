package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/autorelease/internal/domain/repositories"
	"github.com/rios0rios0/autorelease/internal/infrastructure/repositories/build"
	"github.com/rios0rios0/autorelease/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/autorelease/internal/infrastructure/repositories/perforce"
)

// RegistryFactory builds a backend registry bound to the configured remote.
// The remote is only known after the settings are loaded, so commands receive
// a factory rather than a ready registry.
type RegistryFactory func(remote string) *BackendRegistry

// BuildFactory builds a build invoker for the configured build command.
type BuildFactory func(command string) domainRepos.BuildRepository

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Backend registry factory with all backends in detection order:
	// Perforce applies only when no Git repository is found, so Git goes first.
	if err := container.Provide(func() RegistryFactory {
		return func(remote string) *BackendRegistry {
			reg := NewBackendRegistry()
			reg.Register(git.NewBackendRepository(remote))
			reg.Register(perforce.NewBackendRepository())
			return reg
		}
	}); err != nil {
		return err
	}

	// Build invoker factory
	if err := container.Provide(func() BuildFactory {
		return func(command string) domainRepos.BuildRepository {
			return build.NewBuildRepository(command)
		}
	}); err != nil {
		return err
	}

	return nil
}
