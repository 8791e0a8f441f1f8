package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/weft/internal/adapters/telemetry/progrock"
	"go.trai.ch/weft/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			if os.Getenv("WEFT_PROGRESS") == "1" {
				return progrock.New(), nil
			}
			return NewNoOp(), nil
		},
	})
}
