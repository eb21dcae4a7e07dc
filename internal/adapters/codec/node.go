package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gavel/internal/core/ports"
)

// NodeID is the unique identifier for the metadata codec Graft node.
const NodeID graft.ID = "adapter.metadata_codec"

func init() {
	graft.Register(graft.Node[ports.MetadataCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetadataCodec, error) {
			return NewXMLCodec(), nil
		},
	})
}
