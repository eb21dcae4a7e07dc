package domain

// PublishRequest describes one version publication.
// Location names the descriptor file, e.g. com/example/lib/1.0/lib-1.0.pom.
type PublishRequest struct {
	Location   Location
	GroupID    string
	ArtifactID string
	Version    string
	Identity   string
}

// TargetDir is the directory holding the published version.
func (r PublishRequest) TargetDir() Location {
	return r.Location.Parent()
}

// IndexDir is the directory whose metadata document lists the artifact's versions.
func (r PublishRequest) IndexDir() Location {
	return r.TargetDir().Parent()
}

// VersionList is the result of a version query.
type VersionList struct {
	Snapshot bool
	Versions []string
}

// LatestVersion is the result of a latest-version query. Snapshot reports
// that Version is a snapshot build id rather than a release.
type LatestVersion struct {
	Snapshot bool
	Version  string
}
