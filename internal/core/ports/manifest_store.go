package ports

import "go.trai.ch/weft/internal/core/domain"

// ManifestStore defines the interface for persisting resolution manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Write stamps the manifest and replaces the file at path with it.
	// The previous manifest, if any, is fully overwritten.
	Write(path string, m *domain.Manifest) error

	// Read loads the manifest at path. Returns nil, nil if none exists.
	Read(path string) (*domain.Manifest, error)
}
