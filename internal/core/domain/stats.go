package domain

import (
	"fmt"
	"strings"
	"time"
)

// Artifact is one file written by a variant build.
type Artifact struct {
	Path   string
	Bytes  int
	Digest string
}

// BuildStats is the success payload of one variant build.
type BuildStats struct {
	Variant   Variant
	Filename  string
	Duration  time.Duration
	Artifacts []Artifact
	Warnings  []string
	// Analysis is the bundling service's per-input size breakdown.
	Analysis string
}

// String renders the statistics as the plain-text report printed to stdout.
func (s *BuildStats) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bundle: %s (%s)\n", s.Filename, s.Variant)
	fmt.Fprintf(&b, "Time: %dms\n", s.Duration.Milliseconds())
	fmt.Fprintf(&b, "%-32s %10s  %s\n", "Asset", "Size", "Digest")
	for _, a := range s.Artifacts {
		fmt.Fprintf(&b, "%-32s %10d  %s\n", a.Path, a.Bytes, a.Digest)
	}
	fmt.Fprintf(&b, "Warnings: %d\n", len(s.Warnings))
	for _, w := range s.Warnings {
		fmt.Fprintf(&b, "  %s\n", w)
	}
	if analysis := strings.TrimRight(strings.TrimLeft(s.Analysis, "\n"), " \t\n"); analysis != "" {
		b.WriteString("\n")
		b.WriteString(analysis)
		b.WriteString("\n")
	}

	return b.String()
}
