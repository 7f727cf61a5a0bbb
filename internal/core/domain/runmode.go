package domain

// RunMode selects the destination directory and the set of variants to build.
type RunMode string

const (
	// RunModeProduction builds every variant into the public distribution directory.
	RunModeProduction RunMode = "production"
	// RunModeTest builds only the minified variants into the test directory.
	RunModeTest RunMode = "test"
)

// ParseRunMode maps the raw run-mode signal to a RunMode.
// Only "test" selects RunModeTest; anything else, including "", is production.
func ParseRunMode(s string) RunMode {
	if s == string(RunModeTest) {
		return RunModeTest
	}
	return RunModeProduction
}

// String returns the run mode name.
func (m RunMode) String() string {
	return string(m)
}

// OutputDir returns the output directory for the mode, relative to the project root.
func (m RunMode) OutputDir() string {
	if m == RunModeTest {
		return TestOutputDir
	}
	return DistOutputDir
}
