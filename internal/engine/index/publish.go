package index

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/gavel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Publish records a new version in repo.
//
// The descriptor is written at req.Location, then the version is appended
// to the index document two levels up. Steps that already committed are not
// rolled back: if the merge fails the descriptor stays in place unlisted.
func (s *Service) Publish(ctx context.Context, repo ports.Storage, req domain.PublishRequest) error {
	indexDir := req.IndexDir()

	if err := s.authorize(ctx, repo, req.Identity, indexDir); err != nil {
		s.logger.Warn(fmt.Sprintf("publish denied: %q may not modify %q in %s", req.Identity, indexDir, repo.Name()))
		return err
	}

	if err := s.writeDescriptor(ctx, repo, req); err != nil {
		return err
	}

	if err := s.merge(ctx, repo, indexDir, req); err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, "descriptor written but index not updated"), "location", req.Location.String()))
		return err
	}

	s.logger.Info(fmt.Sprintf("published %s:%s:%s to %s", req.GroupID, req.ArtifactID, req.Version, repo.Name()))
	return nil
}

func (s *Service) authorize(ctx context.Context, repo ports.Storage, identity string, dir domain.Location) error {
	_, vertex := s.telemetry.Record(ctx, vertexName(domain.PhaseAuthorize, dir))

	if !s.authorizer.CanModify(identity, repo.Name(), dir) {
		err := zerr.With(
			zerr.With(zerr.Wrap(domain.ErrUnauthorized, "cannot modify directory"), "identity", identity),
			"directory", dir.String(),
		)
		vertex.Complete(err)
		return err
	}

	vertex.Complete(nil)
	return nil
}

func (s *Service) writeDescriptor(ctx context.Context, repo ports.Storage, req domain.PublishRequest) (err error) {
	ctx, vertex := s.telemetry.Record(ctx, vertexName(domain.PhaseDescriptor, req.Location))
	defer func() { vertex.Complete(err) }()

	data, err := domain.RenderDescriptor(req.GroupID, req.ArtifactID, req.Version)
	if err != nil {
		return zerr.Wrap(err, "cannot render descriptor")
	}
	return repo.Put(ctx, req.Location, data)
}

func (s *Service) merge(ctx context.Context, repo ports.Storage, indexDir domain.Location, req domain.PublishRequest) (err error) {
	ctx, vertex := s.telemetry.Record(ctx, vertexName(domain.PhaseMerge, indexDir))
	defer func() { vertex.Complete(err) }()

	release := s.locks.acquire(repo.Name(), indexDir)
	defer release()

	doc, err := s.FindDocument(ctx, repo, indexDir)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		vertex.Log(domain.LogLevelDebug, "no index yet, starting empty")
		doc = domain.NewMetadata()
	case err != nil:
		return err
	}

	doc.GroupID = req.GroupID
	doc.ArtifactID = req.ArtifactID
	doc.AddVersion(req.Version, s.now())

	_, err = s.Save(ctx, repo, indexDir, doc)
	return err
}

func vertexName(phase string, loc domain.Location) string {
	return phase + " " + loc.String()
}
