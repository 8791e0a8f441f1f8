package ports

import (
	"context"

	"go.trai.ch/weft/internal/core/domain"
)

// Linker defines the interface for maintaining the linked-packages directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type Linker interface {
	// Sync ensures a symlink exists under linkRoot for every package whose
	// build output is present on disk. Per-package failures are reported in
	// the LinkReport, not as an error; the error return covers only
	// precondition failures such as an uncreatable link root.
	Sync(ctx context.Context, linkRoot string, pkgs []domain.Package) (*domain.LinkReport, error)
}
