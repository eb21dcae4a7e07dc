package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ArtifactDir returns the directory holding the versions of an artifact,
// e.g. com.example and lib give com/example/lib.
func ArtifactDir(groupID, artifactID string) (Location, error) {
	if err := checkCoordinate("groupId", groupID); err != nil {
		return Location{}, err
	}
	if slices.Contains(strings.Split(groupID, "."), "") {
		return Location{}, zerr.With(zerr.Wrap(ErrInvalidLocation, "empty groupId segment"), "groupId", groupID)
	}
	if err := checkSegment("artifactId", artifactID); err != nil {
		return Location{}, err
	}
	return ParseLocation(strings.ReplaceAll(groupID, ".", "/") + "/" + artifactID)
}

// NewPublishRequest builds the request publishing version of an artifact.
// The descriptor is placed at <group>/<artifact>/<version>/<artifact>-<version>.pom.
func NewPublishRequest(groupID, artifactID, version, identity string) (PublishRequest, error) {
	dir, err := ArtifactDir(groupID, artifactID)
	if err != nil {
		return PublishRequest{}, err
	}
	if err := checkSegment("version", version); err != nil {
		return PublishRequest{}, err
	}

	return PublishRequest{
		Location:   dir.Resolve(version).Resolve(artifactID + "-" + version + ".pom"),
		GroupID:    groupID,
		ArtifactID: artifactID,
		Version:    version,
		Identity:   identity,
	}, nil
}

// ParseTarget resolves a query target. Targets containing ':' are
// coordinates (group:artifact or group:artifact:version); anything else is a
// repository path.
func ParseTarget(raw string) (Location, error) {
	if !strings.Contains(raw, ":") {
		return ParseLocation(raw)
	}

	parts := strings.Split(raw, ":")
	switch len(parts) {
	case 2:
		return ArtifactDir(parts[0], parts[1])
	case 3:
		dir, err := ArtifactDir(parts[0], parts[1])
		if err != nil {
			return Location{}, err
		}
		if err := checkSegment("version", parts[2]); err != nil {
			return Location{}, err
		}
		return dir.Resolve(parts[2]), nil
	default:
		return Location{}, zerr.With(zerr.Wrap(ErrInvalidLocation, "malformed coordinate"), "coordinate", raw)
	}
}

func checkCoordinate(field, value string) error {
	if value == "" {
		return zerr.With(zerr.Wrap(ErrInvalidLocation, "empty coordinate"), "field", field)
	}
	if strings.ContainsAny(value, `/\`) {
		return zerr.With(zerr.With(zerr.Wrap(ErrInvalidLocation, "path separator in coordinate"), "field", field), "value", value)
	}
	return nil
}

func checkSegment(field, value string) error {
	if err := checkCoordinate(field, value); err != nil {
		return err
	}
	if value == "." || value == ".." {
		return zerr.With(zerr.With(zerr.Wrap(ErrInvalidLocation, "relative segment"), "field", field), "value", value)
	}
	return nil
}
