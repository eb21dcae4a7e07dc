package index

import (
	"context"
	"errors"

	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/gavel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Save encodes doc and writes it, followed by its checksums, to the index
// document of location. location may name the directory or the document
// itself. Storage errors are returned unchanged and nothing is retried.
func (s *Service) Save(ctx context.Context, repo ports.Storage, location domain.Location, doc *domain.Metadata) (*domain.Metadata, error) {
	data, err := s.codec.Encode(doc)
	if err != nil {
		if errors.Is(err, domain.ErrEncodingFailure) {
			err = zerr.Wrap(err, "cannot save index")
		} else {
			err = zerr.Wrap(domain.ErrEncodingFailure, err.Error())
		}
		return nil, zerr.With(err, "location", location.String())
	}

	target := domain.IndexLocation(location)
	if err := repo.Put(ctx, target, data); err != nil {
		return nil, err
	}
	if err := repo.WriteChecksums(ctx, target, data); err != nil {
		return nil, err
	}
	return doc, nil
}
