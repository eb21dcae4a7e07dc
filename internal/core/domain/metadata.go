package domain

import (
	"iter"
	"slices"
	"time"
)

// TimestampLayout is the fixed yyyyMMddHHmmss layout used by lastUpdated.
const TimestampLayout = "20060102150405"

// Metadata is the index document kept for one directory level.
type Metadata struct {
	GroupID    string
	ArtifactID string
	Versioning *Versioning
}

// Versioning holds the version information of a Metadata document.
// Versions and SnapshotVersions distinguish nil (absent) from empty (present).
type Versioning struct {
	Latest           string
	Release          string
	LastUpdated      string
	Versions         []string
	SnapshotVersions []SnapshotVersion
}

// SnapshotVersion identifies one snapshot build.
type SnapshotVersion struct {
	Classifier string
	Extension  string
	Value      string
	Updated    string
}

// NewMetadata returns an empty document with no versions recorded.
func NewMetadata() *Metadata {
	return &Metadata{}
}

// FormatTimestamp formats t in the lastUpdated layout, in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Versions extracts the version sequence of the document.
// A release list always wins over a snapshot list. Snapshot entries without
// a value are skipped. The returned sequence can be iterated more than once.
func (m *Metadata) Versions() (snapshot bool, versions iter.Seq[string]) {
	if m == nil || m.Versioning == nil {
		return false, emptySeq
	}

	v := m.Versioning
	if v.Versions != nil {
		return false, slices.Values(v.Versions)
	}

	if v.SnapshotVersions != nil {
		return true, func(yield func(string) bool) {
			for _, sv := range v.SnapshotVersions {
				if sv.Value == "" {
					continue
				}
				if !yield(sv.Value) {
					return
				}
			}
		}
	}

	return false, emptySeq
}

// AddVersion records version as the newest release. The version is appended
// even if it is already listed.
func (m *Metadata) AddVersion(version string, now time.Time) {
	if m.Versioning == nil {
		m.Versioning = &Versioning{}
	}
	m.Versioning.Latest = version
	m.Versioning.Release = version
	m.Versioning.LastUpdated = FormatTimestamp(now)
	m.Versioning.Versions = append(m.Versioning.Versions, version)
}

func emptySeq(func(string) bool) {}
