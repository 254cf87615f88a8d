package entities

import (
	"fmt"
	"os"
	"regexp"
)

// CandidateExtension is appended to the descriptor path for the transient
// release-candidate copy.
const CandidateExtension = ".next"

const descriptorFileMode = 0o644

// versionPattern matches the single version assignment in a build descriptor,
// e.g. `VERSION_NUMBER = "1.2.3-SNAPSHOT"`. Go regexps have no backreferences,
// so the two quote styles are spelled out as alternatives.
//nolint:gochecknoglobals // compiled once
var versionPattern = regexp.MustCompile(
	`(?:VERSION_NUMBER|THIS_VERSION)\s*=\s*(?:"([^"]*)"|'([^']*)')`,
)

// Descriptor is a build descriptor file holding exactly one version
// assignment. The engine only ever holds the path and transient in-memory
// copies; the filesystem owns the content.
type Descriptor struct {
	Path string
}

// NewDescriptor creates a descriptor for the given file path.
func NewDescriptor(path string) *Descriptor {
	return &Descriptor{Path: path}
}

// Version reads the descriptor and returns the first matched version value.
// A missing file surfaces as a wrapped I/O error; a present file without the
// pattern surfaces as a VersionNotFoundError.
func (d *Descriptor) Version() (string, error) {
	content, err := os.ReadFile(d.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read descriptor %q: %w", d.Path, err)
	}

	value, found := matchVersion(string(content))
	if !found {
		return "", &VersionNotFoundError{Path: d.Path}
	}
	return value, nil
}

// Rewrite replaces the matched quoted version value with the given one,
// preserving every other byte of the descriptor.
func (d *Descriptor) Rewrite(version string) error {
	return substituteVersion(d.Path, d.Path, version)
}

// CandidatePath returns the sibling path of the transient candidate copy.
func (d *Descriptor) CandidatePath() string {
	return d.Path + CandidateExtension
}

// WriteCandidate writes a candidate copy of the descriptor with the version
// substituted, leaving the original untouched.
func (d *Descriptor) WriteCandidate(version string) error {
	return substituteVersion(d.Path, d.CandidatePath(), version)
}

// PromoteCandidate atomically replaces the original descriptor with the
// candidate copy.
func (d *Descriptor) PromoteCandidate() error {
	if err := os.Rename(d.CandidatePath(), d.Path); err != nil {
		return fmt.Errorf("failed to promote candidate descriptor: %w", err)
	}
	return nil
}

// RemoveCandidate deletes the candidate copy if it exists.
func (d *Descriptor) RemoveCandidate() error {
	if err := os.Remove(d.CandidatePath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove candidate descriptor: %w", err)
	}
	return nil
}

// matchVersion returns the quoted value of the first version assignment.
func matchVersion(content string) (string, bool) {
	match := versionPattern.FindStringSubmatchIndex(content)
	if match == nil {
		return "", false
	}
	start, end := submatchRange(match)
	return content[start:end], true
}

// substituteVersion reads src, replaces the first matched version value, and
// writes the result to dst.
func substituteVersion(src, dst, version string) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read descriptor %q: %w", src, err)
	}

	content := string(raw)
	match := versionPattern.FindStringSubmatchIndex(content)
	if match == nil {
		return &VersionNotFoundError{Path: src}
	}

	start, end := submatchRange(match)
	rewritten := content[:start] + version + content[end:]

	if writeErr := os.WriteFile(dst, []byte(rewritten), descriptorFileMode); writeErr != nil {
		return fmt.Errorf("failed to write descriptor %q: %w", dst, writeErr)
	}
	return nil
}

// submatchRange picks whichever quote-style capture group matched.
func submatchRange(match []int) (int, int) {
	if match[2] >= 0 { // double-quoted value
		return match[2], match[3]
	}
	return match[4], match[5] // single-quoted value
}
