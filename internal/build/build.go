// Package build holds build-time information.
package build

var (
	// Version is the application version, overwritten by linker flags.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "none"
)
