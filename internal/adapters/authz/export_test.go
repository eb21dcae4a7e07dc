package authz

import "go.trai.ch/gavel/internal/core/domain"

// MatchPattern exposes pattern matching for tests.
func MatchPattern(raw, dir string) (bool, error) {
	p, err := compilePattern(raw)
	if err != nil {
		return false, err
	}
	return p.match(domain.MustParseLocation(dir)), nil
}
