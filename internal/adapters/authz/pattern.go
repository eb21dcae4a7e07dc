package authz

import (
	"path"
	"strings"

	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/zerr"
)

const recursive = "**"

// pattern is a compiled directory glob.
//
//   - "com/example" matches only that directory
//   - "com/*" matches "com/example" but not "com/example/lib"
//   - "com/**" matches "com" and everything below it
//   - "**/snapshots" matches "snapshots" at any depth
//   - "**" matches every directory, including the repository root
//
// Inside a segment, "*", "?" and character classes follow path.Match.
type pattern struct {
	raw      string
	segments []string
}

func compilePattern(raw string) (pattern, error) {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return pattern{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "empty path pattern"), "pattern", raw)
	}

	segments := strings.Split(trimmed, "/")
	for _, segment := range segments {
		switch segment {
		case "":
			return pattern{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "empty pattern segment"), "pattern", raw)
		case recursive:
			continue
		}
		if _, err := path.Match(segment, ""); err != nil {
			return pattern{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "pattern", raw)
		}
	}

	return pattern{raw: raw, segments: segments}, nil
}

func (p pattern) match(dir domain.Location) bool {
	return matchSegments(p.segments, dir.Segments())
}

func matchSegments(pat, segs []string) bool {
	for len(pat) > 0 {
		if pat[0] == recursive {
			rest := pat[1:]
			for i := 0; i <= len(segs); i++ {
				if matchSegments(rest, segs[i:]) {
					return true
				}
			}
			return false
		}

		if len(segs) == 0 {
			return false
		}
		// Segments were validated at compile time.
		if ok, _ := path.Match(pat[0], segs[0]); !ok {
			return false
		}
		pat, segs = pat[1:], segs[1:]
	}
	return len(segs) == 0
}
