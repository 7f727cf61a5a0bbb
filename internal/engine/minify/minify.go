// Package minify derives minifier settings for a variant.
package minify

import (
	"regexp"

	"go.trai.ch/bundle/internal/core/domain"
)

// PrivateProperty matches names with exactly one leading underscore, the
// library's convention for private members. Names starting with two
// underscores are left alone.
var PrivateProperty = regexp.MustCompile(`^_[^_]`)

// OptionsFor returns the minifier options for v, or false when v is not minified.
func OptionsFor(v domain.Variant) (domain.MinifyOptions, bool) {
	if !v.Minify() {
		return domain.MinifyOptions{}, false
	}

	return domain.MinifyOptions{
		SourceMap: true,
		Mangle: domain.MangleOptions{
			Properties: PrivateProperty,
		},
		Compress: domain.CompressOptions{
			Unsafe: true,
		},
	}, true
}
