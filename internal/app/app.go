// Package app implements the application layer for bundle.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/bundle/internal/adapters/telemetry" //nolint:depguard // Default telemetry
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/bundle/internal/engine/configbuilder"
	"go.trai.ch/bundle/internal/engine/planner"
	"go.trai.ch/bundle/internal/engine/resolution"
	"go.trai.ch/bundle/internal/engine/sequencer"
	"go.trai.ch/zerr"
)

// App builds every bundle variant of a run, one after another.
type App struct {
	loader    ports.ProjectLoader
	bundler   ports.Bundler
	telemetry ports.Telemetry
	logger    ports.Logger
	policy    *resolution.Policy
	out       io.Writer
	cwd       string
}

// New creates a new App instance. A nil telemetry records nothing.
func New(
	loader ports.ProjectLoader,
	bundler ports.Bundler,
	tel ports.Telemetry,
	log ports.Logger,
) *App {
	if tel == nil {
		tel = telemetry.NewNoOp()
	}
	return &App{
		loader:    loader,
		bundler:   bundler,
		telemetry: tel,
		logger:    log,
		policy:    resolution.New(),
		out:       os.Stdout,
		cwd:       ".",
	}
}

// WithOutput sets the writer receiving the build statistics.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWorkingDir sets the directory the project is discovered from.
func (a *App) WithWorkingDir(dir string) *App {
	a.cwd = dir
	return a
}

// Run builds the variants planned for mode.
//
// Variants are built strictly in plan order. The first failure stops the run
// and is returned unchanged; artifacts of earlier variants stay on disk.
func (a *App) Run(ctx context.Context, mode domain.RunMode) error {
	project, err := a.loader.Load(a.cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	variants := planner.Plan(mode)
	a.logger.Info(fmt.Sprintf("building %d variants of %s %s for %s",
		len(variants), domain.LibraryName, project.Version, mode))

	builder := configbuilder.New(*project, a.policy)
	tasks := make([]sequencer.Task, 0, len(variants))
	for _, v := range variants {
		tasks = append(tasks, a.buildTask(builder, v, mode))
	}

	runErr := sequencer.Run(ctx, tasks...)
	if err := a.telemetry.Close(); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to close telemetry"))
	}
	return runErr
}

// buildTask defers configuration and bundling of v until the task runs, so a
// malformed configuration fails at its own position in the sequence.
func (a *App) buildTask(builder *configbuilder.Builder, v domain.Variant, mode domain.RunMode) sequencer.Task {
	return func(ctx context.Context) error {
		ctx, vertex := a.telemetry.Record(ctx, "bundle "+v.OutputFilename())

		cfg, err := builder.Build(v, mode)
		if err != nil {
			vertex.Complete(err)
			return err
		}

		a.logger.Info(fmt.Sprintf("bundling %s (%s)", cfg.Output.Filename, v))
		stats, err := a.bundler.Bundle(ctx, cfg)
		if err != nil {
			vertex.Log(domain.LogLevelError, err.Error())
			vertex.Complete(err)
			return err
		}

		for _, w := range stats.Warnings {
			a.logger.Warn(fmt.Sprintf("%s: %s", stats.Filename, w))
			vertex.Log(domain.LogLevelWarn, w)
		}

		if _, err := io.WriteString(a.out, stats.String()); err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to write build statistics"), "output", stats.Filename)
			vertex.Complete(err)
			return err
		}

		a.logger.Info(fmt.Sprintf("built %s in %dms", stats.Filename, stats.Duration.Milliseconds()))
		vertex.Complete(nil)
		return nil
	}
}
