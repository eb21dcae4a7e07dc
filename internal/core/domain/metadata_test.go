package domain_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gavel/internal/core/domain"
)

func TestMetadata_Versions(t *testing.T) {
	tests := []struct {
		name         string
		doc          *domain.Metadata
		wantSnapshot bool
		want         []string
	}{
		{
			name: "nil document",
			doc:  nil,
		},
		{
			name: "no versioning",
			doc:  domain.NewMetadata(),
		},
		{
			name: "release list",
			doc: &domain.Metadata{Versioning: &domain.Versioning{
				Versions: []string{"1.0", "1.1"},
			}},
			want: []string{"1.0", "1.1"},
		},
		{
			name: "snapshot list drops entries without value",
			doc: &domain.Metadata{Versioning: &domain.Versioning{
				SnapshotVersions: []domain.SnapshotVersion{
					{Extension: "jar", Value: "1.0-20240101.120000-1"},
					{Extension: "pom"},
					{Extension: "pom", Value: "1.0-20240101.120000-2"},
				},
			}},
			wantSnapshot: true,
			want:         []string{"1.0-20240101.120000-1", "1.0-20240101.120000-2"},
		},
		{
			name: "release list wins over snapshot list",
			doc: &domain.Metadata{Versioning: &domain.Versioning{
				Versions:         []string{"2.0"},
				SnapshotVersions: []domain.SnapshotVersion{{Value: "2.1-SNAPSHOT"}},
			}},
			want: []string{"2.0"},
		},
		{
			name: "present but empty release list still wins",
			doc: &domain.Metadata{Versioning: &domain.Versioning{
				Versions:         []string{},
				SnapshotVersions: []domain.SnapshotVersion{{Value: "2.1-SNAPSHOT"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, seq := tt.doc.Versions()
			assert.Equal(t, tt.wantSnapshot, snapshot)

			got := slices.Collect(seq)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)

			// The sequence can be materialized again.
			assert.Equal(t, tt.want, slices.Collect(seq))
		})
	}
}

func TestMetadata_AddVersion(t *testing.T) {
	now := time.Date(2024, 3, 9, 17, 4, 5, 0, time.FixedZone("CET", 3600))

	doc := domain.NewMetadata()
	doc.AddVersion("1.0", now)

	require.NotNil(t, doc.Versioning)
	assert.Equal(t, []string{"1.0"}, doc.Versioning.Versions)
	assert.Equal(t, "1.0", doc.Versioning.Latest)
	assert.Equal(t, "1.0", doc.Versioning.Release)
	assert.Equal(t, "20240309160405", doc.Versioning.LastUpdated)
}

// Republishing a version appends it again. The index keeps every publication.
func TestMetadata_AddVersion_KeepsDuplicates(t *testing.T) {
	now := time.Now()

	doc := domain.NewMetadata()
	doc.AddVersion("1.0", now)
	doc.AddVersion("1.0", now)

	assert.Equal(t, []string{"1.0", "1.0"}, doc.Versioning.Versions)
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2001, 2, 3, 4, 5, 6, 7, time.UTC)
	assert.Equal(t, "20010203040506", domain.FormatTimestamp(ts))
	assert.Len(t, domain.FormatTimestamp(time.Now()), 14)
}
