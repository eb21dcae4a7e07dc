package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gavel/internal/adapters/version"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1", "1.0.0", 0},
		{"1.0", "1.0-ga", 0},
		{"1.0-FINAL", "1.0", 0},
		{"1.9", "1.10", -1},
		{"1.10", "1.9", 1},
		{"1.0-alpha", "1.0-beta", -1},
		{"1.0-beta", "1.0-milestone", -1},
		{"1.0-m1", "1.0-rc1", -1},
		{"1.0-rc1", "1.0-rc2", -1},
		{"1.0-cr1", "1.0-rc1", 0},
		{"1.0-rc1", "1.0-SNAPSHOT", -1},
		{"1.0-SNAPSHOT", "1.0", -1},
		{"1.0", "1.0-sp1", -1},
		{"1.0-sp1", "1.0-zeta", -1},
		{"1.0-foo", "1.0-zeta", -1},
		{"1.0-rc1", "1.1", -1},
		{"2.0", "10.0", -1},
		{"1.0.0.99999999999999999999", "1.0.0.100000000000000000000", -1},
		{"1.0a1", "1.0-alpha-1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"~"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, version.Compare(tt.a, tt.b))
		})
	}
}

func TestSorter_Sort(t *testing.T) {
	input := []string{"2.0", "1.10", "1.0-SNAPSHOT", "1.9", "1.0", "1.0-rc1", "1.0-alpha"}

	got := version.NewSorter().Sort(input)

	assert.Equal(t, []string{"1.0-alpha", "1.0-rc1", "1.0-SNAPSHOT", "1.0", "1.9", "1.10", "2.0"}, got)
	assert.Equal(t, "2.0", input[0], "input must not be reordered")
}

func TestSorter_Sort_Stable(t *testing.T) {
	got := version.NewSorter().Sort([]string{"1.0.0", "0.9", "1", "1.0"})
	assert.Equal(t, []string{"0.9", "1.0.0", "1", "1.0"}, got)
}

func TestSorter_Sort_Empty(t *testing.T) {
	assert.Empty(t, version.NewSorter().Sort(nil))
}
