package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/adapters/config"
	"go.trai.ch/sift/internal/adapters/fs"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/sift/internal/engine/walker"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger *logger.Logger
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, walker.NodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.RulesLoader](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[*walker.Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, w, hasher, log),
				Logger: log,
			}, nil
		},
	})
}
