package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/autorelease/internal/domain/entities"
	domainRepos "github.com/rios0rios0/autorelease/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/autorelease/internal/infrastructure/repositories"
)

// Release is the interface for the release command.
type Release interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReleaseOptions) error
}

// ReleaseOptions holds runtime options for a single release run.
type ReleaseOptions struct {
	Dir       string
	BuildArgs []string
	DryRun    bool
	Verbose   bool
}

// ReleaseCommand orchestrates the linear release sequence:
// extract -> check -> build with candidate descriptor -> tag -> advance.
// Each step's success gates the next; any failure aborts the run.
type ReleaseCommand struct {
	registryFactory infraRepos.RegistryFactory
	buildFactory    infraRepos.BuildFactory
}

// NewReleaseCommand creates a new ReleaseCommand with the given factories.
func NewReleaseCommand(
	registryFactory infraRepos.RegistryFactory,
	buildFactory infraRepos.BuildFactory,
) *ReleaseCommand {
	return &ReleaseCommand{
		registryFactory: registryFactory,
		buildFactory:    buildFactory,
	}
}

// Execute runs one release using the provided configuration.
func (it *ReleaseCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReleaseOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	backend, err := it.registryFactory(settings.Remote).Find(dir)
	if err != nil {
		return err
	}
	logger.Infof("Using %s backend in %s", backend.Name(), dir)

	descriptor := entities.NewDescriptor(descriptorPath(dir, settings.Descriptor))

	// The extracted version is fixed for the remainder of the run.
	thisVersion, err := descriptor.Version()
	if err != nil {
		return err
	}

	nextVersion := entities.ResolveNextVersion(settings, thisVersion)
	releaseVersion := entities.ReleaseVersion(thisVersion)
	tagName := settings.ResolveTagName(releaseVersion)

	if checkErr := it.check(ctx, backend, dir, thisVersion, nextVersion); checkErr != nil {
		return checkErr
	}

	if !semver.IsValid("v" + releaseVersion) {
		logger.Debugf("Release version %q is not a valid semantic version", releaseVersion)
	}

	if opts.DryRun {
		logger.Infof(
			"[DRY RUN] Would release %s as tag %q and advance to %s using the %s backend",
			releaseVersion, tagName, nextVersion, backend.Name(),
		)
		return nil
	}

	if buildErr := it.buildCandidate(
		ctx, backend, settings, descriptor, dir, releaseVersion, opts.BuildArgs,
	); buildErr != nil {
		return buildErr
	}

	if tagErr := it.tag(
		ctx, backend, settings, descriptor, dir, thisVersion, releaseVersion, tagName,
	); tagErr != nil {
		return tagErr
	}

	if advanceErr := it.advance(
		ctx, backend, settings, descriptor, dir, thisVersion, nextVersion,
	); advanceErr != nil {
		return advanceErr
	}

	logger.Infof("Released %s", releaseVersion)
	return nil
}

// check validates the run before any state is touched. Releasing a snapshot
// whose next version would be identical would tag an indistinguishable
// work-in-progress version; uncommitted files would end up inside the
// release commit.
func (it *ReleaseCommand) check(
	ctx context.Context,
	backend domainRepos.BackendRepository,
	dir, thisVersion, nextVersion string,
) error {
	if thisVersion == nextVersion && entities.IsSnapshot(thisVersion) {
		return &entities.InvalidReleaseError{Current: thisVersion, Next: nextVersion}
	}

	files, err := backend.UncommittedFiles(ctx, dir)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		return &entities.DirtyRepositoryError{Files: files}
	}

	return nil
}

// buildCandidate writes the candidate descriptor with the release version,
// runs the external build against it, and swaps it over the original only on
// success. The original descriptor is never left in release-version state
// unless the build that used that version succeeded; the candidate file is
// removed in all cases once the swap decision is made.
func (it *ReleaseCommand) buildCandidate(
	ctx context.Context,
	backend domainRepos.BackendRepository,
	settings *entities.Settings,
	descriptor *entities.Descriptor,
	dir, releaseVersion string,
	callerArgs []string,
) error {
	if err := descriptor.WriteCandidate(releaseVersion); err != nil {
		return err
	}

	builder := it.buildFactory(settings.BuildCommand)
	args := settings.ResolveBuildArgs(callerArgs)

	if buildErr := builder.Run(ctx, dir, descriptor.CandidatePath(), args); buildErr != nil {
		if removeErr := descriptor.RemoveCandidate(); removeErr != nil {
			logger.Warnf("Failed to clean up candidate descriptor: %v", removeErr)
		}
		return buildErr
	}

	if stageErr := backend.StageForEdit(ctx, dir, descriptor.Path); stageErr != nil {
		if removeErr := descriptor.RemoveCandidate(); removeErr != nil {
			logger.Warnf("Failed to clean up candidate descriptor: %v", removeErr)
		}
		return stageErr
	}

	return descriptor.PromoteCandidate()
}

// tag commits the descriptor change when the on-disk version differs from the
// extracted one, then force-creates the tag.
func (it *ReleaseCommand) tag(
	ctx context.Context,
	backend domainRepos.BackendRepository,
	settings *entities.Settings,
	descriptor *entities.Descriptor,
	dir, thisVersion, releaseVersion, tagName string,
) error {
	if releaseVersion != thisVersion {
		message := settings.ResolveCommitMessage(releaseVersion)
		if err := backend.Commit(ctx, dir, descriptor.Path, message); err != nil {
			return err
		}
	}

	logger.Infof("Tagging as %q", tagName)
	return backend.Tag(ctx, dir, tagName)
}

// advance rewrites the descriptor to the next development version and pushes
// the result. Versions that did not change (non-snapshot releases) are left
// alone.
func (it *ReleaseCommand) advance(
	ctx context.Context,
	backend domainRepos.BackendRepository,
	settings *entities.Settings,
	descriptor *entities.Descriptor,
	dir, thisVersion, nextVersion string,
) error {
	if nextVersion == thisVersion {
		return nil
	}

	if err := backend.StageForEdit(ctx, dir, descriptor.Path); err != nil {
		return err
	}
	if err := descriptor.Rewrite(nextVersion); err != nil {
		return err
	}

	logger.Infof("Advancing descriptor to %s", nextVersion)
	message := settings.ResolveCommitMessage(nextVersion)
	if err := backend.Commit(ctx, dir, descriptor.Path, message); err != nil {
		return err
	}

	return backend.Push(ctx, dir)
}

// descriptorPath resolves the configured descriptor relative to the run dir.
func descriptorPath(dir, configured string) string {
	if filepath.IsAbs(configured) {
		return configured
	}
	return filepath.Join(dir, configured)
}
