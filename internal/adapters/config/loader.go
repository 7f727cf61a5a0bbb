// Package config locates the library and reads its package metadata.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// PackageFile is the subset of package.json the build reads.
type PackageFile struct {
	Version string `json:"version"`
}

// Loader implements ports.ProjectLoader.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks up from cwd to the nearest directory holding package.json and
// returns it as the project root together with the package version.
func (*Loader) Load(cwd string) (*domain.Project, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	path, err := findPackageFile(abs)
	if err != nil {
		return nil, err
	}

	pkg, err := readPackageFile(path)
	if err != nil {
		return nil, err
	}

	if pkg.Version == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingVersion, "invalid package metadata"), "path", path)
	}

	return &domain.Project{
		Root:    filepath.Dir(path),
		Version: pkg.Version,
	}, nil
}

func findPackageFile(dir string) (string, error) {
	current := dir
	for {
		candidate := filepath.Join(current, domain.PackageFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached root
			break
		}
		current = parent
	}

	return "", zerr.With(zerr.Wrap(domain.ErrProjectNotFound, "project discovery failed"), "cwd", dir)
}

func readPackageFile(path string) (*PackageFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return nil, errors.Join(domain.ErrPackageReadFailed, zerr.With(err, "path", path))
	}

	var pkg PackageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Join(domain.ErrPackageParseFailed, zerr.With(err, "path", path))
	}

	return &pkg, nil
}
