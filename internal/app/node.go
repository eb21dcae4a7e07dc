package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gavel/internal/adapters/authz"              //nolint:depguard // Wired in app layer
	"go.trai.ch/gavel/internal/adapters/codec"              //nolint:depguard // Wired in app layer
	"go.trai.ch/gavel/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gavel/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gavel/internal/adapters/storage"            //nolint:depguard // Wired in app layer
	"go.trai.ch/gavel/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/gavel/internal/adapters/version"            //nolint:depguard // Wired in app layer
	"go.trai.ch/gavel/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			storage.NodeID,
			authz.NodeID,
			codec.NodeID,
			version.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.StorageOpener](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.PolicyCompiler](ctx)
	if err != nil {
		return nil, err
	}

	metadataCodec, err := graft.Dep[ports.MetadataCodec](ctx)
	if err != nil {
		return nil, err
	}

	sorter, err := graft.Dep[ports.VersionSorter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, opener, compiler, metadataCodec, sorter, log, telemetry), nil
}
