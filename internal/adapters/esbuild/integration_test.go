package esbuild_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/adapters/esbuild"
	"go.trai.ch/bundle/internal/adapters/fs"
	"go.trai.ch/bundle/internal/core/domain"
)

var fixture = map[string]string{
	"package.json": `{"name": "nunjucks", "version": "3.2.4"}`,
	"nunjucks/index.js": `var env = require('./src/environment');
var lib = require('./src/lib');
module.exports = {
  Environment: env.Environment,
  lib: lib,
  buildType: process.env.BUILD_TYPE,
  mode: process.env.NODE_ENV
};
`,
	"nunjucks/src/environment.js": `var fs = require('fs');
var path = require('path');
var loaders = require('./loaders');
var compiler = require('./compiler');
function Environment() {
  this._cache = {};
  this.__keepName = true;
}
Environment.prototype._lookup = function(name) { return this._cache[name]; };
module.exports = {
  Environment: Environment,
  loaders: loaders,
  compiler: compiler,
  fs: fs,
  path: path
};
`,
	"nunjucks/src/lib.js":                `module.exports = { marker: "LIB_MARKER" };` + "\n",
	"nunjucks/src/loaders.js":            `module.exports = require('./node-loaders');` + "\n",
	"nunjucks/src/node-loaders.js":       `module.exports = { marker: "NODE_LOADER_MARKER" };` + "\n",
	"nunjucks/src/web-loaders.js":        `module.exports = { marker: "WEB_LOADER_MARKER" };` + "\n",
	"nunjucks/src/precompiled-loader.js": `module.exports = { marker: "PRECOMPILED_LOADER_MARKER" };` + "\n",
	"nunjucks/src/compiler.js":           `module.exports = { marker: "COMPILER_MARKER" };` + "\n",
}

func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func bundleFixture(t *testing.T, root string, v domain.Variant) (*domain.BuildStats, string) {
	t.Helper()
	cfg := buildConfig(t, root, v, domain.RunModeProduction)

	stats, err := esbuild.New(fs.NewHasher()).Bundle(context.Background(), cfg)
	require.NoError(t, err)

	content, err := os.ReadFile(cfg.Output.Path())
	require.NoError(t, err)
	return stats, string(content)
}

func TestIntegration_FullBundle(t *testing.T) {
	root := writeFixture(t, fixture)

	stats, out := bundleFixture(t, root, domain.NewVariant(false, false))

	assert.True(t, strings.HasPrefix(out, "/*! Browser bundle of nunjucks 3.2.4 */\n(function(root, factory) {"))
	assert.Contains(t, out, "WEB_LOADER_MARKER")
	assert.Contains(t, out, "COMPILER_MARKER")
	assert.Contains(t, out, "LIB_MARKER")
	assert.NotContains(t, out, "NODE_LOADER_MARKER")
	assert.NotContains(t, out, "PRECOMPILED_LOADER_MARKER")
	assert.Contains(t, out, `"STD"`)
	assert.Contains(t, out, `"production"`)
	assert.Contains(t, out, "var nunjucks =")
	assert.Contains(t, out, "//# sourceMappingURL=nunjucks.js.map")
	assert.Contains(t, out, "return nunjucks;\n}));")

	require.Len(t, stats.Artifacts, 2)
	assert.Equal(t, "nunjucks.js", stats.Artifacts[0].Path)
	assert.Equal(t, "nunjucks.js.map", stats.Artifacts[1].Path)
	assert.Len(t, stats.Artifacts[0].Digest, 16)
	assert.NotEmpty(t, stats.Analysis)

	entries, err := os.ReadDir(filepath.Join(root, "browser"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestIntegration_SlimMinifiedBundle(t *testing.T) {
	root := writeFixture(t, fixture)

	_, out := bundleFixture(t, root, domain.NewVariant(true, true))

	assert.True(t, strings.HasPrefix(out,
		"/*! Browser bundle of nunjucks 3.2.4 (slim, only works with precompiled templates) */\n"))
	assert.Contains(t, out, "PRECOMPILED_LOADER_MARKER")
	assert.NotContains(t, out, "WEB_LOADER_MARKER")
	assert.NotContains(t, out, "COMPILER_MARKER")
	assert.Contains(t, out, `"SLIM"`)
	assert.NotContains(t, out, "_lookup")
	assert.NotContains(t, out, "_cache")
	assert.Contains(t, out, "__keepName")
	assert.FileExists(t, filepath.Join(root, "browser", "nunjucks-slim.min.js.map"))
}

func TestIntegration_ExcludedImportersAreNotRedirected(t *testing.T) {
	files := map[string]string{}
	for k, v := range fixture {
		files[k] = v
	}
	files["nunjucks/index.js"] = `module.exports = require('vendor-pkg');` + "\n"
	files["node_modules/vendor-pkg/index.js"] = `module.exports = require('./loaders');` + "\n"
	files["node_modules/vendor-pkg/loaders.js"] = `module.exports = { marker: "VENDOR_LOADER_MARKER" };` + "\n"

	root := writeFixture(t, files)
	_, out := bundleFixture(t, root, domain.NewVariant(false, false))

	assert.Contains(t, out, "VENDOR_LOADER_MARKER")
	assert.NotContains(t, out, "WEB_LOADER_MARKER")
}

func TestIntegration_SyntaxError(t *testing.T) {
	files := map[string]string{}
	for k, v := range fixture {
		files[k] = v
	}
	files["nunjucks/src/lib.js"] = "module.exports = {;\n"

	root := writeFixture(t, files)
	cfg := buildConfig(t, root, domain.NewVariant(false, false), domain.RunModeProduction)

	_, err := esbuild.New(fs.NewHasher()).Bundle(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBundleFailed)
	assert.Contains(t, err.Error(), "lib.js")
	assert.NoFileExists(t, cfg.Output.Path())
}
