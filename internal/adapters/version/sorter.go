// Package version orders version strings the way Maven repositories do.
package version

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"go.trai.ch/gavel/internal/core/ports"
)

var _ ports.VersionSorter = (*Sorter)(nil)

// Rank of well-known qualifiers. Unknown qualifiers sort after all of them,
// lexically among themselves.
var qualifierRank = map[string]int{
	"alpha":     0,
	"a":         0,
	"beta":      1,
	"b":         1,
	"milestone": 2,
	"m":         2,
	"rc":        3,
	"cr":        3,
	"snapshot":  4,
	"":          5,
	"ga":        5,
	"final":     5,
	"release":   5,
	"sp":        6,
}

const unknownRank = 7

// Sorter sorts versions in ascending order. Equal versions keep their input order.
type Sorter struct{}

// NewSorter creates a new Sorter.
func NewSorter() *Sorter {
	return &Sorter{}
}

// Sort returns a sorted copy of versions.
func (s *Sorter) Sort(versions []string) []string {
	sorted := slices.Clone(versions)
	slices.SortStableFunc(sorted, Compare)
	return sorted
}

// Compare orders two version strings. Numeric items compare numerically,
// qualifiers by their rank, so 1.0-alpha < 1.0-rc1 < 1.0 < 1.0-sp1 and 1.9 < 1.10.
func Compare(a, b string) int {
	ia, ib := tokenize(a), tokenize(b)
	for i := range max(len(ia), len(ib)) {
		if c := compareItem(itemAt(ia, i), itemAt(ib, i)); c != 0 {
			return c
		}
	}
	return 0
}

type item struct {
	numeric bool
	number  string
	text    string
}

// padding compares equal to a missing trailing item, so 1 == 1.0 == 1-ga.
var padding = item{numeric: true, number: "0"}

func itemAt(items []item, i int) item {
	if i < len(items) {
		return items[i]
	}
	return padding
}

func compareItem(a, b item) int {
	switch {
	case a.numeric && b.numeric:
		return compareNumbers(a.number, b.number)
	case a.numeric:
		// A number outranks any qualifier except when it is zero padding
		// compared against a release-equivalent qualifier.
		if isZero(a.number) {
			return cmp.Compare(qualifierRank[""], rank(b.text))
		}
		return 1
	case b.numeric:
		return -compareItem(b, a)
	default:
		ra, rb := rank(a.text), rank(b.text)
		if ra != rb {
			return cmp.Compare(ra, rb)
		}
		if ra == unknownRank {
			return strings.Compare(a.text, b.text)
		}
		return 0
	}
}

func rank(qualifier string) int {
	if r, ok := qualifierRank[qualifier]; ok {
		return r
	}
	return unknownRank
}

func isZero(number string) bool {
	return strings.Trim(number, "0") == ""
}

// compareNumbers compares arbitrarily long decimal strings.
func compareNumbers(a, b string) int {
	a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// tokenize splits a version on '.', '-', '_' and on digit/letter transitions.
// Trailing zero items are dropped.
func tokenize(v string) []item {
	var items []item
	var current strings.Builder
	digits := false

	flush := func() {
		if current.Len() == 0 {
			return
		}
		s := current.String()
		current.Reset()
		if digits {
			items = append(items, item{numeric: true, number: s})
			return
		}
		items = append(items, normalize(s))
	}

	for _, r := range strings.ToLower(v) {
		switch {
		case r == '.' || r == '-' || r == '_':
			flush()
		case unicode.IsDigit(r):
			if !digits {
				flush()
			}
			digits = true
			current.WriteRune(r)
		default:
			if digits {
				flush()
			}
			digits = false
			current.WriteRune(r)
		}
	}
	flush()

	for len(items) > 0 && isPadding(items[len(items)-1]) {
		items = items[:len(items)-1]
	}
	return items
}

func normalize(text string) item {
	switch text {
	case "ga", "final", "release":
		text = ""
	}
	return item{text: text}
}

func isPadding(it item) bool {
	if it.numeric {
		return isZero(it.number)
	}
	return it.text == ""
}
