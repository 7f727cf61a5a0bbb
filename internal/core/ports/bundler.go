// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/bundle/internal/core/domain"
)

// Bundler defines the interface of the external bundling service.
//
//go:generate go run go.uber.org/mock/mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	// Bundle builds one variant from cfg and writes the bundle and its source map.
	//
	// It returns the build statistics on success. Failures reported by the
	// service wrap domain.ErrBundleFailed and carry its diagnostics verbatim.
	// Implementations must not be invoked concurrently.
	Bundle(ctx context.Context, cfg domain.BundleConfig) (*domain.BuildStats, error)
}
