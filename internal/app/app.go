// Package app implements the application layer for gavel.
package app

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/gavel/internal/core/ports"
	"go.trai.ch/gavel/internal/engine/index"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

type levelSetter interface {
	SetLevel(level domain.LogLevel)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	opener       ports.StorageOpener
	compiler     ports.PolicyCompiler
	codec        ports.MetadataCodec
	sorter       ports.VersionSorter
	logger       ports.Logger
	telemetry    ports.Telemetry

	mu      sync.Mutex
	config  *domain.Config
	index   *index.Service
	stores  map[string]ports.Storage
	closers []func() error
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.StorageOpener,
	compiler ports.PolicyCompiler,
	codec ports.MetadataCodec,
	sorter ports.VersionSorter,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		opener:       opener,
		compiler:     compiler,
		codec:        codec,
		sorter:       sorter,
		logger:       logger,
		telemetry:    telemetry,
		stores:       make(map[string]ports.Storage),
	}
}

// Configure loads the configuration at path and prepares the index service.
func (a *App) Configure(_ context.Context, path string) error {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if setter, ok := a.logger.(levelSetter); ok {
		setter.SetLevel(cfg.LogLevel)
	}

	authorizer, err := a.compiler.Compile(cfg.Grants)
	if err != nil {
		return zerr.Wrap(err, "failed to compile grants")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.config = cfg
	a.index = index.New(authorizer, a.codec, a.sorter, a.logger, a.telemetry)
	return nil
}

// Publish publishes every version of the artifact concurrently. All versions
// are attempted; the first failure is returned.
func (a *App) Publish(ctx context.Context, repository, identity, groupID, artifactID string, versions []string) error {
	svc, repo, err := a.prepare(ctx, repository)
	if err != nil {
		return err
	}

	requests := make([]domain.PublishRequest, 0, len(versions))
	for _, v := range versions {
		req, err := domain.NewPublishRequest(groupID, artifactID, v, identity)
		if err != nil {
			return err
		}
		requests = append(requests, req)
	}

	var g errgroup.Group
	for _, req := range requests {
		g.Go(func() error {
			if err := svc.Publish(ctx, repo, req); err != nil {
				return zerr.With(zerr.Wrap(err, "publish failed"), "version", req.Version)
			}
			return nil
		})
	}
	return g.Wait()
}

// Versions lists the versions indexed at target that start with filter.
func (a *App) Versions(ctx context.Context, repository, target, filter string) (domain.VersionList, error) {
	svc, repo, err := a.prepare(ctx, repository)
	if err != nil {
		return domain.VersionList{}, err
	}
	loc, err := domain.ParseTarget(target)
	if err != nil {
		return domain.VersionList{}, err
	}
	return svc.ListVersions(ctx, repo, loc, filter)
}

// Latest returns the last version indexed at target that starts with filter.
func (a *App) Latest(ctx context.Context, repository, target, filter string) (domain.LatestVersion, error) {
	svc, repo, err := a.prepare(ctx, repository)
	if err != nil {
		return domain.LatestVersion{}, err
	}
	loc, err := domain.ParseTarget(target)
	if err != nil {
		return domain.LatestVersion{}, err
	}
	return svc.LatestVersion(ctx, repo, loc, filter)
}

// Metadata returns the index document at target in its canonical encoding.
func (a *App) Metadata(ctx context.Context, repository, target string) ([]byte, error) {
	svc, repo, err := a.prepare(ctx, repository)
	if err != nil {
		return nil, err
	}
	loc, err := domain.ParseTarget(target)
	if err != nil {
		return nil, err
	}
	doc, err := svc.FindDocument(ctx, repo, loc)
	if err != nil {
		return nil, err
	}
	return a.codec.Encode(doc)
}

// Close releases every opened storage and flushes telemetry.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var errs []error
	for _, closeFn := range a.closers {
		errs = append(errs, closeFn())
	}
	a.closers = nil
	clear(a.stores)

	errs = append(errs, a.telemetry.Close())
	return errors.Join(errs...)
}

// prepare returns the index service and the opened storage of repository.
func (a *App) prepare(ctx context.Context, repository string) (*index.Service, ports.Storage, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.config == nil {
		return nil, nil, domain.ErrNotConfigured
	}

	if repo, ok := a.stores[repository]; ok {
		return a.index, repo, nil
	}

	repoCfg, ok := a.config.Repository(repository)
	if !ok {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrUnknownRepository, "repository is not configured"), "repository", repository)
	}

	repo, closeFn, err := a.opener.Open(ctx, repoCfg)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to open repository")
	}
	a.stores[repository] = repo
	a.closers = append(a.closers, closeFn)
	return a.index, repo, nil
}
