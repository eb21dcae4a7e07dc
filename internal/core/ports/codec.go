package ports

import "go.trai.ch/gavel/internal/core/domain"

// MetadataCodec converts metadata documents to and from their on-disk form.
//
//go:generate go run go.uber.org/mock/mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type MetadataCodec interface {
	// Encode serializes doc. It fails with domain.ErrEncodingFailure when a
	// value cannot be represented.
	Encode(doc *domain.Metadata) ([]byte, error)

	// Decode parses data. Unknown fields are ignored. It fails with
	// domain.ErrDecodingFailure on malformed input.
	Decode(data []byte) (*domain.Metadata, error)
}
