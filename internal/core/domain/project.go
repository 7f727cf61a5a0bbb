package domain

// Project describes the library being bundled.
type Project struct {
	// Root is the absolute directory containing package.json.
	Root string
	// Version is the package version, used verbatim in the banner.
	Version string
}
