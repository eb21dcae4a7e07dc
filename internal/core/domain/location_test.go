package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gavel/internal/core/domain"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"simple", "com/example/lib", "com/example/lib", false},
		{"leading and trailing slashes", "/com/example/lib/", "com/example/lib", false},
		{"duplicate slashes", "com//example///lib", "com/example/lib", false},
		{"backslashes", `com\example\lib`, "com/example/lib", false},
		{"root", "", "", false},
		{"dot segment", "com/./lib", "", true},
		{"parent segment", "com/../../etc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := domain.ParseLocation(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, loc.String())
		})
	}
}

func TestLocation_Parent(t *testing.T) {
	loc := domain.MustParseLocation("com/example/lib/1.0/lib-1.0.pom")

	assert.Equal(t, "com/example/lib/1.0", loc.Parent().String())
	assert.Equal(t, "com/example/lib", loc.Parent().Parent().String())

	// Walking past the root stays at the root.
	root := loc
	for range 10 {
		root = root.Parent()
	}
	assert.True(t, root.IsRoot())
	assert.True(t, root.Parent().IsRoot())
}

func TestLocation_ResolveDoesNotAlias(t *testing.T) {
	base := domain.MustParseLocation("com/example").Parent().Resolve("example")
	a := base.Resolve("a")
	b := base.Resolve("b")

	assert.Equal(t, "com/example/a", a.String())
	assert.Equal(t, "com/example/b", b.String())
	assert.Equal(t, "com/example", base.String())
}

func TestLocation_EndsWith(t *testing.T) {
	loc := domain.MustParseLocation("com/example/lib/maven-metadata.xml")

	assert.True(t, loc.EndsWith(domain.MustParseLocation("maven-metadata.xml")))
	assert.True(t, loc.EndsWith(domain.MustParseLocation("lib/maven-metadata.xml")))
	assert.True(t, loc.EndsWith(domain.Location{}))
	assert.False(t, loc.EndsWith(domain.MustParseLocation("xml")))
	assert.False(t, loc.EndsWith(domain.MustParseLocation("org/com/example/lib/maven-metadata.xml")))
}

func TestLocation_Equal(t *testing.T) {
	assert.True(t, domain.MustParseLocation("a/b").Equal(domain.MustParseLocation("/a/b/")))
	assert.False(t, domain.MustParseLocation("a/b").Equal(domain.MustParseLocation("a/b/c")))
	assert.True(t, domain.Location{}.Equal(domain.MustParseLocation("")))
}

func TestIndexLocation_Idempotent(t *testing.T) {
	dir := domain.MustParseLocation("com/example/lib")

	once := domain.IndexLocation(dir)
	twice := domain.IndexLocation(once)

	assert.Equal(t, "com/example/lib/maven-metadata.xml", once.String())
	assert.True(t, once.Equal(twice))
}
