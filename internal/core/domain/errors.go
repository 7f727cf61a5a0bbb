package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfiguration is returned when a bundle configuration is structurally invalid.
	// It always indicates a programming defect in configuration assembly.
	ErrInvalidConfiguration = zerr.New("invalid bundle configuration")

	// ErrBundleFailed is returned when the bundling service reports a failure.
	ErrBundleFailed = zerr.New("bundling failed")

	// ErrProjectNotFound is returned when no package.json is found above the working directory.
	ErrProjectNotFound = zerr.New("could not find package.json")

	// ErrPackageReadFailed is returned when package.json cannot be read.
	ErrPackageReadFailed = zerr.New("failed to read package metadata")

	// ErrPackageParseFailed is returned when package.json cannot be parsed.
	ErrPackageParseFailed = zerr.New("failed to parse package metadata")

	// ErrMissingVersion is returned when package.json has no version.
	ErrMissingVersion = zerr.New("package metadata has no version")

	// ErrArtifactWriteFailed is returned when a bundle artifact cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrArtifactHashFailed is returned when a written artifact cannot be hashed.
	ErrArtifactHashFailed = zerr.New("failed to hash artifact")
)
