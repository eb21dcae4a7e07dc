// Package domain contains the core domain models for the version index.
package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// IndexFileName is the name of the metadata document kept in every indexed directory.
const IndexFileName = "maven-metadata.xml"

// Location is a repository-relative path made of "/"-separated segments,
// e.g. com/example/lib/1.0/lib-1.0.pom.
// The zero value is the repository root.
type Location struct {
	segments []string
}

// ParseLocation parses a slash separated path. Empty segments are dropped;
// "." and ".." segments are rejected so a location can never escape its repository.
func ParseLocation(raw string) (Location, error) {
	var segments []string
	for segment := range strings.SplitSeq(strings.ReplaceAll(raw, "\\", "/"), "/") {
		switch segment {
		case "":
			continue
		case ".", "..":
			return Location{}, zerr.With(zerr.Wrap(ErrInvalidLocation, "relative segment"), "path", raw)
		}
		segments = append(segments, segment)
	}
	return Location{segments: segments}, nil
}

// MustParseLocation is like ParseLocation but panics on malformed input.
// It is meant for constants and tests.
func MustParseLocation(raw string) Location {
	loc, err := ParseLocation(raw)
	if err != nil {
		panic(err)
	}
	return loc
}

// Parent returns the location one level up. The parent of the root is the root.
func (l Location) Parent() Location {
	if len(l.segments) <= 1 {
		return Location{}
	}
	return Location{segments: slices.Clone(l.segments[:len(l.segments)-1])}
}

// Resolve appends name as a new trailing segment.
func (l Location) Resolve(name string) Location {
	segments := make([]string, 0, len(l.segments)+1)
	segments = append(segments, l.segments...)
	segments = append(segments, name)
	return Location{segments: segments}
}

// EndsWith reports whether the trailing segments of l equal the segments of suffix.
func (l Location) EndsWith(suffix Location) bool {
	if len(suffix.segments) > len(l.segments) {
		return false
	}
	return slices.Equal(l.segments[len(l.segments)-len(suffix.segments):], suffix.segments)
}

// Equal reports whether both locations have the same segments.
func (l Location) Equal(other Location) bool {
	return slices.Equal(l.segments, other.segments)
}

// IsRoot reports whether l is the repository root.
func (l Location) IsRoot() bool {
	return len(l.segments) == 0
}

// Name returns the last segment, or an empty string for the root.
func (l Location) Name() string {
	if l.IsRoot() {
		return ""
	}
	return l.segments[len(l.segments)-1]
}

// Segments returns a copy of the path segments.
func (l Location) Segments() []string {
	return slices.Clone(l.segments)
}

// String returns the slash separated form without leading or trailing slashes.
func (l Location) String() string {
	return strings.Join(l.segments, "/")
}

// IndexLocation resolves the metadata document for l. Locations already
// naming the document are returned unchanged, so the call is idempotent.
func IndexLocation(l Location) Location {
	if l.Name() == IndexFileName {
		return l
	}
	return l.Resolve(IndexFileName)
}
