package domain

import "path/filepath"

const (
	// PackageFileName is the package metadata file marking the library root.
	PackageFileName = "package.json"

	// LibraryName is the exported library name and the bundle filename stem.
	LibraryName = "nunjucks"

	// EntryModule is the library root module, relative to the project root.
	EntryModule = "nunjucks/index.js"

	// DistOutputDir is the public distribution directory.
	DistOutputDir = "browser"

	// TestOutputDir is the output directory used by the browser test suite.
	TestOutputDir = "tests/browser"

	// EmptyModule is the inert stub substituted for unreachable modules.
	EmptyModule = "node-libs-browser/mock/empty"

	// WebLoaderModule implements template loading over HTTP for full builds.
	WebLoaderModule = "web-loaders"

	// PrecompiledLoaderModule only loads precompiled templates, for slim builds.
	PrecompiledLoaderModule = "precompiled-loader"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// EntryPath returns the absolute entry point for the project rooted at root.
func EntryPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(EntryModule))
}

// OutputPath returns the absolute output directory for mode under root.
func OutputPath(root string, mode RunMode) string {
	return filepath.Join(root, filepath.FromSlash(mode.OutputDir()))
}
