package app

import (
	"context"

	"github.com/a-nickol/maven-it-extension/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/a-nickol/maven-it-extension/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/a-nickol/maven-it-extension/internal/adapters/locator"   //nolint:depguard // Wired in app layer
	"github.com/a-nickol/maven-it-extension/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/a-nickol/maven-it-extension/internal/adapters/pom"       //nolint:depguard // Wired in app layer
	"github.com/a-nickol/maven-it-extension/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/a-nickol/maven-it-extension/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"github.com/a-nickol/maven-it-extension/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/a-nickol/maven-it-extension/internal/engine/plan"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the App with the collaborators the CLI needs directly.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Results      ports.ResultStore
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			pom.NodeID,
			plan.NodeID,
			locator.NodeID,
			shell.NodeID,
			store.PublisherNodeID,
			store.ArchiveNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			store.RegistryNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.WorkspaceResolver](ctx)
	if err != nil {
		return nil, err
	}

	models, err := graft.Dep[ports.ModelReader](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*plan.Builder](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.ExecutableLocator](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	publisher, err := graft.Dep[ports.ResultPublisher](ctx)
	if err != nil {
		return nil, err
	}

	archive, err := graft.Dep[*store.Archive](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, models, builder, finder, executor, publisher, archive, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*store.Registry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
		Results:      registry,
	}, nil
}
