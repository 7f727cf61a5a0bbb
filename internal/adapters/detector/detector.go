// Package detector reads the run-mode signal from the process environment.
package detector

import (
	"os"

	"go.trai.ch/bundle/internal/core/domain"
)

// EnvVar is the environment variable selecting the run mode.
const EnvVar = "NODE_ENV"

// RunModeFromEnv reads EnvVar once and maps it to a run mode.
// Unset or unrecognized values select production.
func RunModeFromEnv() domain.RunMode {
	return RunModeFrom(os.LookupEnv)
}

// RunModeFrom maps the value returned by lookup to a run mode.
func RunModeFrom(lookup func(string) (string, bool)) domain.RunMode {
	value, _ := lookup(EnvVar)
	return domain.ParseRunMode(value)
}
