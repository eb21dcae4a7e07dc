package version

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gavel/internal/core/ports"
)

// NodeID is the unique identifier for the version sorter Graft node.
const NodeID graft.ID = "adapter.version_sorter"

func init() {
	graft.Register(graft.Node[ports.VersionSorter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionSorter, error) {
			return NewSorter(), nil
		},
	})
}
