package verifier

import "context"

// Principal is the identity asserted by a successfully verified token.
type Principal struct {
	Subject     string
	DisplayName *string
	Email       *string
	Roles       []string
}

// Service verifies a resolved bearer token and extracts the principal it
// asserts. Implementations decide how trust is established (OIDC discovery,
// shared secret).
type Service interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}
