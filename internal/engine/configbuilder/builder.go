// Package configbuilder assembles the bundling service configuration for a variant.
package configbuilder

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/engine/minify"
)

// excludedSources matches importers, relative to the project root, whose imports
// are never redirected.
var excludedSources = regexp.MustCompile(`(^|/)(node_modules|browser|tests)/`)

// Resolver resolves a requested module path for a variant.
type Resolver interface {
	For(v domain.Variant) func(path string) (string, bool)
}

// Builder derives one BundleConfig per variant for a project.
type Builder struct {
	project  domain.Project
	resolver Resolver
}

// New creates a Builder for project using resolver for import redirection.
func New(project domain.Project, resolver Resolver) *Builder {
	return &Builder{project: project, resolver: resolver}
}

// Build returns the configuration for v under mode.
// The result is validated; an error means the configuration is malformed.
func (b *Builder) Build(v domain.Variant, mode domain.RunMode) (domain.BundleConfig, error) {
	plugins := []domain.Plugin{
		domain.BannerPlugin{Text: Banner(b.project.Version, v)},
		domain.DefinePlugin{Definitions: Definitions(v, mode)},
	}
	if opts, ok := minify.OptionsFor(v); ok {
		plugins = append(plugins, domain.MinifyPlugin{Options: opts})
	}

	cfg := domain.BundleConfig{
		Variant: v,
		Entry:   domain.EntryPath(b.project.Root),
		Output: domain.OutputConfig{
			Dir:           domain.OutputPath(b.project.Root, mode),
			Filename:      v.OutputFilename(),
			Library:       domain.LibraryName,
			LibraryTarget: domain.LibraryTargetUMD,
		},
		SourceMap: domain.SourceMapLinked,
		Resolve: domain.ResolveTransform{
			Scope:   b.project.Root,
			Exclude: excludedSources,
			Resolve: b.resolver.For(v),
		},
		Plugins: plugins,
	}

	if err := cfg.Validate(); err != nil {
		return domain.BundleConfig{}, err
	}
	return cfg, nil
}

// Banner returns the banner annotation for version and v.
func Banner(version string, v domain.Variant) string {
	text := "Browser bundle of " + domain.LibraryName + " " + version + " " + v.Label()
	return strings.TrimRight(text, " ")
}

// Definitions returns the build-time constants exposed to the bundled code.
func Definitions(v domain.Variant, mode domain.RunMode) map[string]string {
	return map[string]string{
		"process.env.NODE_ENV":   strconv.Quote(mode.String()),
		"process.env.BUILD_TYPE": strconv.Quote(v.BuildType()),
	}
}
