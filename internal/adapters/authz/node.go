package authz

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gavel/internal/core/ports"
)

// NodeID is the unique identifier for the policy compiler Graft node.
const NodeID graft.ID = "adapter.policy_compiler"

func init() {
	graft.Register(graft.Node[ports.PolicyCompiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PolicyCompiler, error) {
			return NewCompiler(), nil
		},
	})
}
