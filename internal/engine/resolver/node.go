package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weft/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weft/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weft/internal/adapters/manifest"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weft/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/weft/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.LinkerNodeID,
			manifest.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			linker, err := graft.Dep[ports.Linker](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(linker, store, tel, log), nil
		},
	})
}
