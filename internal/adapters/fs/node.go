package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weft/internal/adapters/logger"
	"go.trai.ch/weft/internal/core/ports"
)

// LinkerNodeID is the unique identifier for the linker Graft node.
const LinkerNodeID graft.ID = "adapter.fs_linker"

func init() {
	graft.Register(graft.Node[ports.Linker]{
		ID:        LinkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Linker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLinker(log), nil
		},
	})
}
