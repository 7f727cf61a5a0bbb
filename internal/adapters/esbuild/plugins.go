package esbuild

import (
	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/bundle/internal/core/domain"
)

const (
	resolvePluginName = "module-resolution"
	stubNamespace     = "bundle-stub"
	stubContents      = "module.exports = {};\n"
)

// resolveGuard marks resolutions issued by the plugin itself so they are not
// transformed a second time.
type resolveGuard struct{}

// resolvePlugin applies transform to every import made from within its scope.
// Paths redirected to the empty module are served from a virtual namespace.
func resolvePlugin(transform domain.ResolveTransform) api.Plugin {
	return api.Plugin{
		Name: resolvePluginName,
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: ".*"},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					if _, ok := args.PluginData.(resolveGuard); ok {
						return api.OnResolveResult{}, nil
					}
					if args.Kind == api.ResolveEntryPoint || !transform.Applies(args.Importer) {
						return api.OnResolveResult{}, nil
					}

					target, ok := transform.Resolve(args.Path)
					if !ok {
						return api.OnResolveResult{}, nil
					}
					if target == domain.EmptyModule {
						return api.OnResolveResult{Path: args.Path, Namespace: stubNamespace}, nil
					}

					res := build.Resolve(target, api.ResolveOptions{
						Importer:   args.Importer,
						ResolveDir: args.ResolveDir,
						Kind:       args.Kind,
						PluginData: resolveGuard{},
					})
					if len(res.Errors) > 0 {
						return api.OnResolveResult{Errors: res.Errors}, nil
					}
					return api.OnResolveResult{
						Path:      res.Path,
						Namespace: res.Namespace,
						External:  res.External,
						Suffix:    res.Suffix,
					}, nil
				})

			build.OnLoad(api.OnLoadOptions{Filter: ".*", Namespace: stubNamespace},
				func(api.OnLoadArgs) (api.OnLoadResult, error) {
					contents := stubContents
					return api.OnLoadResult{Contents: &contents, Loader: api.LoaderJS}, nil
				})
		},
	}
}
