// Package esbuild implements ports.Bundler on top of the esbuild Go API.
package esbuild

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

var _ ports.Bundler = (*Bundler)(nil)

// Bundler builds one variant per call. Calls are serialized.
type Bundler struct {
	hasher ports.Hasher
	sem    *semaphore.Weighted
	build  func(api.BuildOptions) api.BuildResult
}

// New creates a Bundler that fingerprints written artifacts with hasher.
func New(hasher ports.Hasher) *Bundler {
	return &Bundler{
		hasher: hasher,
		sem:    semaphore.NewWeighted(1),
		build:  api.Build,
	}
}

// Bundle builds cfg, writes the bundle and its source map, and returns the statistics.
func (b *Bundler) Bundle(ctx context.Context, cfg domain.BundleConfig) (*domain.BuildStats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := b.sem.Acquire(ctx, 1); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "bundler unavailable"), "output", cfg.Output.Filename)
	}
	defer b.sem.Release(1)

	start := time.Now()
	result := b.build(Options(cfg))
	if len(result.Errors) > 0 {
		return nil, errors.Join(
			domain.ErrBundleFailed,
			zerr.With(errors.New(formatMessages(result.Errors, api.ErrorMessage)), "output", cfg.Output.Filename),
		)
	}

	artifacts, err := b.write(cfg, result.OutputFiles)
	if err != nil {
		return nil, err
	}

	stats := &domain.BuildStats{
		Variant:   cfg.Variant,
		Filename:  cfg.Output.Filename,
		Duration:  time.Since(start),
		Artifacts: artifacts,
		Analysis:  analyze(result.Metafile),
	}
	for _, msg := range result.Warnings {
		stats.Warnings = append(stats.Warnings, messageLine(msg))
	}

	return stats, nil
}

// Options translates cfg into esbuild build options.
func Options(cfg domain.BundleConfig) api.BuildOptions {
	opts := api.BuildOptions{
		EntryPoints:   []string{cfg.Entry},
		Outfile:       cfg.Output.Path(),
		AbsWorkingDir: cfg.Resolve.Scope,
		Bundle:        true,
		Write:         false,
		Metafile:      true,
		LogLevel:      api.LogLevelSilent,
		Platform:      api.PlatformBrowser,
		Target:        api.ES2015,
		Format:        api.FormatIIFE,
		GlobalName:    cfg.Output.Library,
		Plugins:       []api.Plugin{resolvePlugin(cfg.Resolve)},
	}

	bannerText := ""
	if p, ok := cfg.Banner(); ok {
		bannerText = p.Text
	}
	if cfg.Output.LibraryTarget == domain.LibraryTargetUMD {
		opts.Banner = map[string]string{"js": banner(bannerText, cfg.Output.Library)}
		opts.Footer = map[string]string{"js": umdFooter(cfg.Output.Library)}
	} else if bannerText != "" {
		opts.Banner = map[string]string{"js": bannerComment(bannerText)}
	}

	if p, ok := cfg.Define(); ok {
		opts.Define = make(map[string]string, len(p.Definitions))
		for k, v := range p.Definitions {
			opts.Define[k] = v
		}
	}

	sourceMap := cfg.SourceMap == domain.SourceMapLinked
	if p, ok := cfg.Minifier(); ok {
		opts.MinifyWhitespace = true
		opts.MinifyIdentifiers = true
		opts.MinifySyntax = true
		if p.Options.Mangle.Properties != nil {
			opts.MangleProps = p.Options.Mangle.Properties.String()
		}
		if p.Options.Compress.Unsafe {
			opts.TreeShaking = api.TreeShakingTrue
			opts.Drop = api.DropDebugger
		}
		sourceMap = sourceMap || p.Options.SourceMap
	}
	if sourceMap {
		opts.Sourcemap = api.SourceMapLinked
	}

	return opts
}

// write stores the bundle and its source map. Other outputs are never written.
func (b *Bundler) write(cfg domain.BundleConfig, files []api.OutputFile) ([]domain.Artifact, error) {
	bundlePath := cfg.Output.Path()
	wanted := []string{bundlePath, bundlePath + ".map"}

	byPath := make(map[string][]byte, len(files))
	for _, f := range files {
		byPath[filepath.Clean(f.Path)] = f.Contents
	}
	if _, ok := byPath[bundlePath]; !ok {
		return nil, errors.Join(
			domain.ErrBundleFailed,
			zerr.With(zerr.New("bundler produced no output"), "output", cfg.Output.Filename),
		)
	}

	if err := os.MkdirAll(cfg.Output.Dir, domain.DirPerm); err != nil {
		return nil, errors.Join(domain.ErrArtifactWriteFailed, zerr.With(err, "path", cfg.Output.Dir))
	}

	artifacts := make([]domain.Artifact, 0, len(wanted))
	for _, path := range wanted {
		contents, ok := byPath[path]
		if !ok {
			continue
		}
		if err := os.WriteFile(path, contents, domain.FilePerm); err != nil {
			return nil, errors.Join(domain.ErrArtifactWriteFailed, zerr.With(err, "path", path))
		}
		digest, err := b.hasher.ComputeFileHash(path)
		if err != nil {
			return nil, errors.Join(domain.ErrArtifactHashFailed, zerr.With(err, "path", path))
		}
		artifacts = append(artifacts, domain.Artifact{
			Path:   filepath.Base(path),
			Bytes:  len(contents),
			Digest: digest,
		})
	}

	return artifacts, nil
}

func formatMessages(msgs []api.Message, kind api.MessageKind) string {
	formatted := api.FormatMessages(msgs, api.FormatMessagesOptions{Kind: kind})
	return strings.TrimSpace(strings.Join(formatted, ""))
}

// messageLine renders msg as file:line:column: text.
func messageLine(msg api.Message) string {
	if msg.Location == nil {
		return msg.Text
	}
	loc := msg.Location
	return fmt.Sprintf("%s:%d:%d: %s", loc.File, loc.Line, loc.Column, msg.Text)
}

func analyze(metafile string) string {
	if metafile == "" {
		return ""
	}
	return api.AnalyzeMetafile(metafile, api.AnalyzeMetafileOptions{})
}
