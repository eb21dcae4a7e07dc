package index

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/gavel/internal/core/ports"
	"go.trai.ch/zerr"
)

// FindDocument reads and decodes the index document of location.
func (s *Service) FindDocument(ctx context.Context, repo ports.Storage, location domain.Location) (*domain.Metadata, error) {
	target := domain.IndexLocation(location)

	data, err := repo.Get(ctx, target)
	if err != nil {
		return nil, err
	}

	doc, err := s.codec.Decode(data)
	if err != nil {
		if errors.Is(err, domain.ErrDecodingFailure) {
			err = zerr.Wrap(err, "cannot read index")
		} else {
			err = zerr.Wrap(domain.ErrDecodingFailure, err.Error())
		}
		return nil, zerr.With(err, "location", target.String())
	}
	return doc, nil
}

// ListVersions returns the versions of the index document of location that
// start with prefix, in ascending order. An empty prefix keeps every version.
func (s *Service) ListVersions(ctx context.Context, repo ports.Storage, location domain.Location, prefix string) (domain.VersionList, error) {
	doc, err := s.FindDocument(ctx, repo, location)
	if err != nil {
		return domain.VersionList{}, err
	}

	snapshot, versions := doc.Versions()

	matching := []string{}
	for v := range versions {
		if strings.HasPrefix(v, prefix) {
			matching = append(matching, v)
		}
	}

	return domain.VersionList{
		Snapshot: snapshot,
		Versions: s.sorter.Sort(matching),
	}, nil
}

// LatestVersion returns the last version of location starting with prefix,
// in sorter order, together with the snapshot flag of the listing.
func (s *Service) LatestVersion(ctx context.Context, repo ports.Storage, location domain.Location, prefix string) (domain.LatestVersion, error) {
	list, err := s.ListVersions(ctx, repo, location, prefix)
	if err != nil {
		return domain.LatestVersion{}, err
	}
	if len(list.Versions) == 0 {
		return domain.LatestVersion{}, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrNotFound, "no declared version"), "location", location.String()),
			"prefix", prefix,
		)
	}
	return domain.LatestVersion{
		Snapshot: list.Snapshot,
		Version:  list.Versions[len(list.Versions)-1],
	}, nil
}
