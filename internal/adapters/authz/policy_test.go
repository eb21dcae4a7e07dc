package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gavel/internal/adapters/authz"
	"go.trai.ch/gavel/internal/core/domain"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		dir     string
		want    bool
	}{
		{"com/example", "com/example", true},
		{"com/example", "com/example/lib", false},
		{"com/*", "com/example", true},
		{"com/*", "com/example/lib", false},
		{"com/**", "com", true},
		{"com/**", "com/example/lib", true},
		{"com/**", "org/example", false},
		{"**/snapshots", "snapshots", true},
		{"**/snapshots", "com/example/snapshots", true},
		{"**/snapshots", "com/example/releases", false},
		{"com/**/lib", "com/lib", true},
		{"com/**/lib", "com/a/b/lib", true},
		{"com/**/lib", "com/a/b/other", false},
		{"**", "", true},
		{"**", "any/depth/at/all", true},
		{"com/ex?mple", "com/example", true},
		{"com/[a-c]*", "com/banana", true},
		{"/com/example/", "com/example", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"~"+tt.dir, func(t *testing.T) {
			got, err := authz.MatchPattern(tt.pattern, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchPattern_Malformed(t *testing.T) {
	for _, raw := range []string{"", "/", "com//example", "com/[a-"} {
		_, err := authz.MatchPattern(raw, "com")
		require.ErrorIs(t, err, domain.ErrInvalidConfig, raw)
	}
}

func TestPolicy_CanModify(t *testing.T) {
	policy, err := authz.Compile([]domain.Grant{
		{Identity: "ci", Repositories: []string{"releases"}, Paths: []string{"com/example/**"}},
		{Identity: "admin", Paths: []string{"**"}},
		{Identity: authz.AnyIdentity, Repositories: []string{"snapshots"}, Paths: []string{"sandbox/*"}},
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		identity   string
		repository string
		dir        string
		want       bool
	}{
		{"granted path", "ci", "releases", "com/example/lib", true},
		{"other repository", "ci", "snapshots", "com/example/lib", false},
		{"outside pattern", "ci", "releases", "org/other", false},
		{"unknown identity", "guest", "releases", "com/example/lib", false},
		{"empty identity", "", "snapshots", "sandbox/x", false},
		{"all repositories", "admin", "anything", "", true},
		{"wildcard identity", "guest", "snapshots", "sandbox/x", true},
		{"wildcard identity depth", "guest", "snapshots", "sandbox/x/y", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.CanModify(tt.identity, tt.repository, domain.MustParseLocation(tt.dir))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicy_DenyByDefault(t *testing.T) {
	policy, err := authz.NewCompiler().Compile(nil)
	require.NoError(t, err)
	assert.False(t, policy.CanModify("admin", "releases", domain.MustParseLocation("com")))
}

func TestCompile_Invalid(t *testing.T) {
	tests := map[string]domain.Grant{
		"no identity": {Paths: []string{"**"}},
		"no paths":    {Identity: "ci"},
		"bad pattern": {Identity: "ci", Paths: []string{"com/[x"}},
	}
	for name, grant := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := authz.Compile([]domain.Grant{grant})
			require.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}
