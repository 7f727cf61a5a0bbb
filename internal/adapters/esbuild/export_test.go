package esbuild

import (
	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/bundle/internal/core/ports"
)

// NewWithBuild creates a Bundler calling build instead of esbuild.
func NewWithBuild(hasher ports.Hasher, build func(api.BuildOptions) api.BuildResult) *Bundler {
	b := New(hasher)
	b.build = build
	return b
}

var (
	UMDHeader = umdHeader
	UMDFooter = umdFooter
	Banner    = banner
)
