package walker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/adapters/fs"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/sift/internal/engine/matcher"
)

// NodeID is the unique identifier for the walker Graft node.
const NodeID graft.ID = "engine.walker"

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Walker, error) {
			fsys, err := graft.Dep[ports.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(fsys, matcher.New(log), log), nil
		},
	})
}
