package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBuildCommand is the build tool invoked against the candidate descriptor.
	DefaultBuildCommand = "make"

	// DefaultRemote is the remote the Git backend propagates commits and tags to.
	DefaultRemote = "origin"
)

// DefaultBuildArgs are passed to the build command when the caller supplies none.
var DefaultBuildArgs = []string{"clean", "build", "DEBUG=no"} //nolint:gochecknoglobals // default argument set

// Settings holds the process-wide release configuration. It is constructed
// once before the release command runs and is read-only thereafter.
type Settings struct {
	Descriptor    string
	BuildCommand  string
	BuildArgs     []string
	Remote        string
	TagName       Policy
	CommitMessage Policy
	NextVersion   Policy
}

// settingsFile is the YAML shape of the configuration file. File-based
// policies are always constants; function policies are set through the
// Settings struct directly.
type settingsFile struct {
	Descriptor    string   `yaml:"descriptor"`
	BuildCommand  string   `yaml:"build_command"`
	BuildArgs     []string `yaml:"build_args"`
	Remote        string   `yaml:"remote"`
	TagName       string   `yaml:"tag_name"`
	CommitMessage string   `yaml:"commit_message"`
	NextVersion   string   `yaml:"next_version"`
}

// DefaultSettings returns settings with every override unset.
func DefaultSettings() *Settings {
	//nolint:exhaustruct // policies default to unset
	return &Settings{
		Descriptor:   "Buildfile",
		BuildCommand: DefaultBuildCommand,
		Remote:       DefaultRemote,
	}
}

// NewSettings reads and parses a configuration file on top of the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var file settingsFile
	if unmarshalErr := yaml.Unmarshal(data, &file); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings := DefaultSettings()
	if file.Descriptor != "" {
		settings.Descriptor = file.Descriptor
	}
	if file.BuildCommand != "" {
		settings.BuildCommand = file.BuildCommand
	}
	if len(file.BuildArgs) > 0 {
		settings.BuildArgs = file.BuildArgs
	}
	if file.Remote != "" {
		settings.Remote = file.Remote
	}
	if file.TagName != "" {
		settings.TagName = FixedPolicy(file.TagName)
	}
	if file.CommitMessage != "" {
		settings.CommitMessage = FixedPolicy(file.CommitMessage)
	}
	if file.NextVersion != "" {
		settings.NextVersion = FixedPolicy(file.NextVersion)
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".autorelease.yaml",
		".autorelease.yml",
		"autorelease.yaml",
		"autorelease.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveTagName returns the tag for the given release version, defaulting to
// the release version itself.
func (s *Settings) ResolveTagName(releaseVersion string) string {
	if s.TagName.IsSet() {
		return s.TagName.Resolve(releaseVersion)
	}
	return releaseVersion
}

// ResolveCommitMessage returns the commit message for a descriptor change to
// the given version.
func (s *Settings) ResolveCommitMessage(version string) string {
	if s.CommitMessage.IsSet() {
		return s.CommitMessage.Resolve(version)
	}
	return fmt.Sprintf("Changed version number to %s", version)
}

// ResolveBuildArgs returns the caller-supplied build arguments, the configured
// ones, or the default set, in that order.
func (s *Settings) ResolveBuildArgs(callerArgs []string) []string {
	if len(callerArgs) > 0 {
		return callerArgs
	}
	if len(s.BuildArgs) > 0 {
		return s.BuildArgs
	}
	return DefaultBuildArgs
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Descriptor) == "" {
		return errors.New("descriptor path is required")
	}
	if strings.TrimSpace(s.BuildCommand) == "" {
		return errors.New("build_command must not be blank")
	}
	return nil
}
