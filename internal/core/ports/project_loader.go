package ports

import "go.trai.ch/bundle/internal/core/domain"

// ProjectLoader defines the interface for locating the library and its metadata.
//
//go:generate mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load walks up from cwd to the library root and reads its package version.
	Load(cwd string) (*domain.Project, error)
}
