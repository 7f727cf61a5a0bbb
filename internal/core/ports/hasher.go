package ports

// Hasher defines the interface for fingerprinting written artifacts.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeFileHash returns the hex digest of the file content at path.
	ComputeFileHash(path string) (string, error)
}
