// Package authz decides write access from glob grants in the configuration.
package authz

import (
	"slices"

	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/gavel/internal/core/ports"
	"go.trai.ch/zerr"
)

// AnyIdentity grants the rule to every identity.
const AnyIdentity = "*"

var (
	_ ports.Authorizer     = (*Policy)(nil)
	_ ports.PolicyCompiler = (*Compiler)(nil)
)

type rule struct {
	identity     string
	repositories []string
	patterns     []pattern
}

func (r rule) allows(identity, repository string, dir domain.Location) bool {
	if r.identity != AnyIdentity && r.identity != identity {
		return false
	}
	if len(r.repositories) > 0 && !slices.Contains(r.repositories, repository) {
		return false
	}
	return slices.ContainsFunc(r.patterns, func(p pattern) bool {
		return p.match(dir)
	})
}

// Policy is an immutable set of compiled grants. Access is denied unless
// some grant allows it.
type Policy struct {
	rules []rule
}

// CanModify reports whether identity may modify dir in repository.
func (p *Policy) CanModify(identity, repository string, dir domain.Location) bool {
	if identity == "" {
		return false
	}
	return slices.ContainsFunc(p.rules, func(r rule) bool {
		return r.allows(identity, repository, dir)
	})
}

// Compiler compiles configured grants into a Policy.
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile validates grants and returns the resulting Policy.
func (c *Compiler) Compile(grants []domain.Grant) (ports.Authorizer, error) {
	return Compile(grants)
}

// Compile validates grants and returns the resulting Policy.
func Compile(grants []domain.Grant) (*Policy, error) {
	rules := make([]rule, 0, len(grants))
	for i, grant := range grants {
		if grant.Identity == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "grant without identity"), "grant", i)
		}
		if len(grant.Paths) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "grant without paths"), "grant", i)
		}

		r := rule{
			identity:     grant.Identity,
			repositories: slices.Clone(grant.Repositories),
			patterns:     make([]pattern, 0, len(grant.Paths)),
		}
		for _, raw := range grant.Paths {
			p, err := compilePattern(raw)
			if err != nil {
				return nil, zerr.With(err, "grant", i)
			}
			r.patterns = append(r.patterns, p)
		}
		rules = append(rules, r)
	}
	return &Policy{rules: rules}, nil
}
