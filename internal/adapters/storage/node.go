package storage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gavel/internal/core/ports"
)

// NodeID is the unique identifier for the storage opener Graft node.
const NodeID graft.ID = "adapter.storage_opener"

func init() {
	graft.Register(graft.Node[ports.StorageOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StorageOpener, error) {
			return NewOpener(), nil
		},
	})
}
