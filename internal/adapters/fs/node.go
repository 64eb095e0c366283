package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the filesystem Graft node.
	NodeID graft.ID = "adapter.fs"

	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.Filesystem]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Filesystem, error) {
			return NewFilesystem(), nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})
}
