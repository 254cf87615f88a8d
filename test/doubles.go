// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"

	"github.com/rios0rios0/autorelease/internal/domain/repositories"
)

// ---------------------------------------------------------------------------
// SpyBackend
// ---------------------------------------------------------------------------

// CommitCall records a single invocation of Commit.
type CommitCall struct {
	File    string
	Message string
}

// SpyBackend implements repositories.BackendRepository as a configurable spy.
// Configure the response fields for the methods your test exercises, then
// inspect the call-tracking fields to verify behavior.
type SpyBackend struct {
	// --- identity ---
	BackendName string

	// --- AppliesTo ---
	Applies bool
	// spy: dirs that were probed
	ProbedDirs []string

	// --- UncommittedFiles ---
	DirtyFiles         []string
	UncommittedErr     error
	UncommittedQueries int

	// --- StageForEdit ---
	StageErr error
	// spy: files staged
	StagedFiles []string

	// --- Commit ---
	CommitErr error
	// spy: calls received
	Commits []CommitCall

	// --- Tag ---
	TagErr error
	// spy: tag names created
	Tags []string

	// --- Push ---
	PushErr   error
	PushCount int
}

var _ repositories.BackendRepository = (*SpyBackend)(nil)

func (b *SpyBackend) Name() string {
	if b.BackendName == "" {
		return "spy"
	}
	return b.BackendName
}

func (b *SpyBackend) AppliesTo(dir string) bool {
	b.ProbedDirs = append(b.ProbedDirs, dir)
	return b.Applies
}

func (b *SpyBackend) UncommittedFiles(_ context.Context, _ string) ([]string, error) {
	b.UncommittedQueries++
	return b.DirtyFiles, b.UncommittedErr
}

func (b *SpyBackend) StageForEdit(_ context.Context, _, file string) error {
	b.StagedFiles = append(b.StagedFiles, file)
	return b.StageErr
}

func (b *SpyBackend) Commit(_ context.Context, _, file, message string) error {
	b.Commits = append(b.Commits, CommitCall{File: file, Message: message})
	return b.CommitErr
}

func (b *SpyBackend) Tag(_ context.Context, _, name string) error {
	b.Tags = append(b.Tags, name)
	return b.TagErr
}

func (b *SpyBackend) Push(_ context.Context, _ string) error {
	b.PushCount++
	return b.PushErr
}

// ---------------------------------------------------------------------------
// SpyBuild
// ---------------------------------------------------------------------------

// BuildCall records a single invocation of Run.
type BuildCall struct {
	Dir            string
	DescriptorPath string
	Args           []string
}

// SpyBuild implements repositories.BuildRepository as a configurable spy.
// OnRun, when set, is invoked with the candidate descriptor path before the
// configured error is returned, letting tests inspect on-disk state at build
// time.
type SpyBuild struct {
	RunErr error
	OnRun  func(descriptorPath string)
	// spy: calls received
	Calls []BuildCall
}

var _ repositories.BuildRepository = (*SpyBuild)(nil)

func (b *SpyBuild) Run(_ context.Context, dir, descriptorPath string, args []string) error {
	b.Calls = append(b.Calls, BuildCall{Dir: dir, DescriptorPath: descriptorPath, Args: args})
	if b.OnRun != nil {
		b.OnRun(descriptorPath)
	}
	return b.RunErr
}
