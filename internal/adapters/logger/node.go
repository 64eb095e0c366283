package logger

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	// Registered as the concrete type so the CLI layer can reach the
	// SetVerbose/SetJSON toggles; everything else depends on ports.Logger.
	graft.Register(graft.Node[*Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})
}
