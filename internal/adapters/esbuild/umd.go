package esbuild

import "strings"

// esbuild has no UMD output format. The bundle is emitted as an IIFE assigning
// the library global, and the IIFE is wrapped in a UMD factory through the
// banner and footer.

// umdHeader opens the UMD factory for library.
func umdHeader(library string) string {
	return "(function(root, factory) {\n" +
		"  if (typeof define === 'function' && define.amd) {\n" +
		"    define([], factory);\n" +
		"  } else if (typeof module === 'object' && module.exports) {\n" +
		"    module.exports = factory();\n" +
		"  } else {\n" +
		"    root." + library + " = factory();\n" +
		"  }\n" +
		"}(typeof self !== 'undefined' ? self : this, function() {"
}

// umdFooter closes the factory opened by umdHeader.
func umdFooter(library string) string {
	return "return " + library + ";\n}));"
}

// bannerComment renders text as a preserved comment.
func bannerComment(text string) string {
	text = strings.ReplaceAll(text, "*/", "* /")
	return "/*! " + text + " */"
}

// banner returns the complete text placed before the bundle.
func banner(text, library string) string {
	if text == "" {
		return umdHeader(library)
	}
	return bannerComment(text) + "\n" + umdHeader(library)
}
