package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// LibraryTarget is the module wrapper used to expose the library.
type LibraryTarget string

// LibraryTargetUMD wraps the bundle so it loads under AMD, CommonJS and as a global.
const LibraryTargetUMD LibraryTarget = "umd"

// SourceMapMode selects how source maps are produced.
type SourceMapMode string

const (
	// SourceMapNone disables source maps.
	SourceMapNone SourceMapMode = ""
	// SourceMapLinked writes an external map referenced from the bundle.
	SourceMapLinked SourceMapMode = "source-map"
)

// BundleConfig is the complete input for one invocation of the bundling service.
// It is assembled once per variant and never mutated afterwards.
type BundleConfig struct {
	Variant   Variant
	Entry     string
	Output    OutputConfig
	SourceMap SourceMapMode
	Resolve   ResolveTransform
	Plugins   []Plugin
}

// OutputConfig describes where and how the bundle is written.
type OutputConfig struct {
	Dir           string
	Filename      string
	Library       string
	LibraryTarget LibraryTarget
}

// Path returns the absolute path of the bundle file.
func (o OutputConfig) Path() string {
	return filepath.Join(o.Dir, o.Filename)
}

// ResolveTransform redirects imports made by library sources.
type ResolveTransform struct {
	// Scope is the directory whose modules are subject to the transform.
	Scope string
	// Exclude matches importer paths, relative to Scope and slash-separated,
	// that are never transformed.
	Exclude *regexp.Regexp
	// Resolve returns the replacement for a requested path, or false to keep it.
	Resolve func(path string) (string, bool)
}

// Applies reports whether imports made by importer go through the transform.
func (r ResolveTransform) Applies(importer string) bool {
	if importer == "" || r.Scope == "" {
		return false
	}
	rel, err := filepath.Rel(r.Scope, importer)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return r.Exclude == nil || !r.Exclude.MatchString(filepath.ToSlash(rel))
}

// Plugin is an extension handed to the bundling service.
type Plugin interface {
	PluginName() string
}

// BannerPlugin prepends a comment to the bundle.
type BannerPlugin struct {
	Text string
}

// PluginName implements Plugin.
func (BannerPlugin) PluginName() string { return "banner" }

// DefinePlugin replaces global expressions with constant values at build time.
// Values are JavaScript source text, so strings must be quoted.
type DefinePlugin struct {
	Definitions map[string]string
}

// PluginName implements Plugin.
func (DefinePlugin) PluginName() string { return "define" }

// MinifyPlugin minifies the bundle.
type MinifyPlugin struct {
	Options MinifyOptions
}

// PluginName implements Plugin.
func (MinifyPlugin) PluginName() string { return "minify" }

// MinifyOptions configures the minifier.
type MinifyOptions struct {
	SourceMap bool
	Mangle    MangleOptions
	Compress  CompressOptions
}

// MangleOptions configures identifier mangling.
type MangleOptions struct {
	// Properties restricts property mangling to names matching the pattern.
	// A nil pattern disables property mangling.
	Properties *regexp.Regexp
}

// CompressOptions configures the compressor.
type CompressOptions struct {
	Unsafe bool
}

// Banner returns the banner plugin, if any.
func (c BundleConfig) Banner() (BannerPlugin, bool) {
	return findPlugin[BannerPlugin](c.Plugins)
}

// Define returns the define plugin, if any.
func (c BundleConfig) Define() (DefinePlugin, bool) {
	return findPlugin[DefinePlugin](c.Plugins)
}

// Minifier returns the minify plugin, if any.
func (c BundleConfig) Minifier() (MinifyPlugin, bool) {
	return findPlugin[MinifyPlugin](c.Plugins)
}

func findPlugin[T Plugin](plugins []Plugin) (T, bool) {
	for _, p := range plugins {
		if typed, ok := p.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// Validate checks the configuration for structural defects.
// A failure here is a programming error in whoever assembled the configuration.
func (c BundleConfig) Validate() error {
	switch {
	case c.Entry == "":
		return invalid("entry")
	case !filepath.IsAbs(c.Output.Dir):
		return zerr.With(invalid("output.dir"), "dir", c.Output.Dir)
	case c.Output.Filename == "" || c.Output.Filename != filepath.Base(c.Output.Filename):
		return zerr.With(invalid("output.filename"), "filename", c.Output.Filename)
	case c.Output.Library == "":
		return invalid("output.library")
	case c.Output.LibraryTarget != LibraryTargetUMD:
		return zerr.With(invalid("output.library_target"), "target", c.Output.LibraryTarget)
	case c.Resolve.Resolve == nil:
		return invalid("resolve")
	}

	seen := make(map[string]bool, len(c.Plugins))
	for _, p := range c.Plugins {
		if p == nil {
			return invalid("plugins")
		}
		if seen[p.PluginName()] {
			return zerr.With(invalid("plugins"), "duplicate", p.PluginName())
		}
		seen[p.PluginName()] = true
	}

	if _, ok := c.Minifier(); ok != c.Variant.Minify() {
		return zerr.With(invalid("plugins"), "minify", c.Variant.Minify())
	}
	return nil
}

// invalid wraps the sentinel so errors.Is still matches once metadata is attached.
func invalid(field string) error {
	return zerr.With(zerr.Wrap(ErrInvalidConfiguration, field), "field", field)
}
