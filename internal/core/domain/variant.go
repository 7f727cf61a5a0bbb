package domain

const (
	// SlimSuffix is appended to the library name for slim variants.
	SlimSuffix = "-slim"

	// ExtPlain is the extension of unminified bundles.
	ExtPlain = ".js"

	// ExtMinified is the extension of minified bundles.
	ExtMinified = ".min.js"

	// SlimLabel annotates the banner of slim variants.
	SlimLabel = "(slim, only works with precompiled templates)"

	// BuildTypeSlim is the build-type flag injected into slim bundles.
	BuildTypeSlim = "SLIM"

	// BuildTypeStandard is the build-type flag injected into full bundles.
	BuildTypeStandard = "STD"
)

// Variant is one distinct bundle configuration: full or slim, minified or not.
// It is a value object; the zero value is the full, unminified variant.
type Variant struct {
	slim   bool
	minify bool
}

// NewVariant creates a Variant.
func NewVariant(slim, minify bool) Variant {
	return Variant{slim: slim, minify: minify}
}

// Slim reports whether the variant excludes the template compiler.
func (v Variant) Slim() bool {
	return v.slim
}

// Minify reports whether the variant is minified.
func (v Variant) Minify() bool {
	return v.minify
}

// FilenameSuffix returns "-slim" for slim variants and "" otherwise.
func (v Variant) FilenameSuffix() string {
	if v.slim {
		return SlimSuffix
	}
	return ""
}

// Extension returns ".min.js" for minified variants and ".js" otherwise.
func (v Variant) Extension() string {
	if v.minify {
		return ExtMinified
	}
	return ExtPlain
}

// OutputFilename returns the bundle filename, e.g. "nunjucks-slim.min.js".
func (v Variant) OutputFilename() string {
	return LibraryName + v.FilenameSuffix() + v.Extension()
}

// SourceMapFilename returns the filename of the companion source map.
func (v Variant) SourceMapFilename() string {
	return v.OutputFilename() + ".map"
}

// Label returns the human-readable banner annotation. It is empty for full variants.
func (v Variant) Label() string {
	if v.slim {
		return SlimLabel
	}
	return ""
}

// BuildType returns the build-type flag exposed to the bundled code.
func (v Variant) BuildType() string {
	if v.slim {
		return BuildTypeSlim
	}
	return BuildTypeStandard
}

// String returns a short description such as "slim, minified".
func (v Variant) String() string {
	kind := "full"
	if v.slim {
		kind = "slim"
	}
	if v.minify {
		return kind + ", minified"
	}
	return kind + ", unminified"
}
