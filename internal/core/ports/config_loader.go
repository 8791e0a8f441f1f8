package ports

import "go.trai.ch/weft/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace definition.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load locates the workspace definition starting from the given
	// directory and returns the parsed workspace.
	Load(cwd string) (*domain.Workspace, error)
}
