// Package codec implements the maven-metadata.xml document format.
package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"unicode/utf8"

	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/gavel/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/html/charset"
)

var _ ports.MetadataCodec = (*XMLCodec)(nil)

// XMLCodec implements ports.MetadataCodec for maven-metadata.xml documents.
type XMLCodec struct{}

// NewXMLCodec creates a new XMLCodec.
func NewXMLCodec() *XMLCodec {
	return &XMLCodec{}
}

// metadataDTO mirrors the on-disk element layout. Element order matches
// the order Maven writes.
type metadataDTO struct {
	XMLName    xml.Name       `xml:"metadata"`
	GroupID    string         `xml:"groupId,omitempty"`
	ArtifactID string         `xml:"artifactId,omitempty"`
	Versioning *versioningDTO `xml:"versioning,omitempty"`
}

type versioningDTO struct {
	Latest           string               `xml:"latest,omitempty"`
	Release          string               `xml:"release,omitempty"`
	Versions         *versionsDTO         `xml:"versions,omitempty"`
	LastUpdated      string               `xml:"lastUpdated,omitempty"`
	SnapshotVersions *snapshotVersionsDTO `xml:"snapshotVersions,omitempty"`
}

type versionsDTO struct {
	Version []string `xml:"version"`
}

type snapshotVersionsDTO struct {
	SnapshotVersion []snapshotVersionDTO `xml:"snapshotVersion"`
}

type snapshotVersionDTO struct {
	Classifier string `xml:"classifier,omitempty"`
	Extension  string `xml:"extension,omitempty"`
	Value      string `xml:"value,omitempty"`
	Updated    string `xml:"updated,omitempty"`
}

// Encode serializes doc as an indented XML document with an XML declaration.
func (c *XMLCodec) Encode(doc *domain.Metadata) ([]byte, error) {
	if doc == nil {
		return nil, zerr.Wrap(domain.ErrEncodingFailure, "nil document")
	}

	dto := toDTO(doc)
	if field, ok := firstUnrepresentable(doc); !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrEncodingFailure, "value not representable in XML"), "field", field)
	}

	body, err := xml.MarshalIndent(dto, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(domain.ErrEncodingFailure, err.Error())
	}

	var buf bytes.Buffer
	buf.Grow(len(xml.Header) + len(body) + 1)
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Decode parses a maven-metadata.xml document. Unknown elements and
// attributes are ignored. The declared encoding is honored, and only
// whitespace, comments and processing instructions may follow the root element.
func (c *XMLCodec) Decode(data []byte) (*domain.Metadata, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var dto metadataDTO
	if err := dec.Decode(&dto); err != nil {
		return nil, zerr.Wrap(domain.ErrDecodingFailure, err.Error())
	}
	if err := checkTrailing(dec); err != nil {
		return nil, err
	}
	return fromDTO(&dto), nil
}

// checkTrailing consumes the rest of the input after the root element.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.Wrap(domain.ErrDecodingFailure, err.Error())
		}

		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return zerr.Wrap(domain.ErrDecodingFailure, "text after root element")
			}
		default:
			return zerr.Wrap(domain.ErrDecodingFailure, "content after root element")
		}
	}
}

func toDTO(doc *domain.Metadata) *metadataDTO {
	dto := &metadataDTO{
		GroupID:    doc.GroupID,
		ArtifactID: doc.ArtifactID,
	}
	if doc.Versioning == nil {
		return dto
	}

	v := doc.Versioning
	dto.Versioning = &versioningDTO{
		Latest:      v.Latest,
		Release:     v.Release,
		LastUpdated: v.LastUpdated,
	}
	if v.Versions != nil {
		dto.Versioning.Versions = &versionsDTO{Version: v.Versions}
	}
	if v.SnapshotVersions != nil {
		svs := make([]snapshotVersionDTO, len(v.SnapshotVersions))
		for i, sv := range v.SnapshotVersions {
			svs[i] = snapshotVersionDTO(sv)
		}
		dto.Versioning.SnapshotVersions = &snapshotVersionsDTO{SnapshotVersion: svs}
	}
	return dto
}

func fromDTO(dto *metadataDTO) *domain.Metadata {
	doc := &domain.Metadata{
		GroupID:    dto.GroupID,
		ArtifactID: dto.ArtifactID,
	}
	if dto.Versioning == nil {
		return doc
	}

	v := dto.Versioning
	doc.Versioning = &domain.Versioning{
		Latest:      v.Latest,
		Release:     v.Release,
		LastUpdated: v.LastUpdated,
	}
	if v.Versions != nil {
		doc.Versioning.Versions = append([]string{}, v.Versions.Version...)
	}
	if v.SnapshotVersions != nil {
		svs := make([]domain.SnapshotVersion, 0, len(v.SnapshotVersions.SnapshotVersion))
		for _, sv := range v.SnapshotVersions.SnapshotVersion {
			svs = append(svs, domain.SnapshotVersion(sv))
		}
		doc.Versioning.SnapshotVersions = svs
	}
	return doc
}

type field struct {
	name, value string
}

// firstUnrepresentable returns the name of the first field holding text
// that XML 1.0 cannot carry. encoding/xml would silently replace it.
func firstUnrepresentable(doc *domain.Metadata) (string, bool) {
	fields := []field{
		{"groupId", doc.GroupID},
		{"artifactId", doc.ArtifactID},
	}
	if v := doc.Versioning; v != nil {
		fields = append(fields,
			field{"latest", v.Latest},
			field{"release", v.Release},
			field{"lastUpdated", v.LastUpdated},
		)
		for _, version := range v.Versions {
			fields = append(fields, field{"version", version})
		}
		for _, sv := range v.SnapshotVersions {
			fields = append(fields,
				field{"classifier", sv.Classifier},
				field{"extension", sv.Extension},
				field{"value", sv.Value},
				field{"updated", sv.Updated},
			)
		}
	}

	for _, f := range fields {
		if !representable(f.value) {
			return f.name, false
		}
	}
	return "", true
}

func representable(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return false
		}
	}
	return true
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
