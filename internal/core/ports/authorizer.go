package ports

import "go.trai.ch/gavel/internal/core/domain"

// Authorizer decides whether an identity may write below a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=authorizer.go -destination=mocks/mock_authorizer.go -package=mocks
type Authorizer interface {
	// CanModify reports whether identity may modify dir in the named repository.
	CanModify(identity, repository string, dir domain.Location) bool
}

// PolicyCompiler builds an Authorizer from configured grants.
type PolicyCompiler interface {
	// Compile validates the grants and returns the resulting Authorizer.
	Compile(grants []domain.Grant) (Authorizer, error)
}
