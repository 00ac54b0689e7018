package verifier

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/tokengate-project/tokengate/internal/config"
)

type oidcService struct {
	verifier       *oidc.IDTokenVerifier
	verifierConfig config.VerifierConfig
}

// NewOidcService discovers the issuer's configuration and keys once at
// construction time. Tokens are then verified offline against the published
// key set.
func NewOidcService(ctx context.Context, c config.VerifierConfig) (Service, error) {
	provider, err := oidc.NewProvider(ctx, c.Oidc.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create oidc provider: %w", err)
	}

	return &oidcService{
		verifier: provider.Verifier(&oidc.Config{
			ClientID: c.Oidc.ClientId,
		}),
		verifierConfig: c,
	}, nil
}

func (s *oidcService) Verify(ctx context.Context, token string) (*Principal, error) {
	idToken, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	var claims map[string]interface{}
	err = idToken.Claims(&claims)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims: %w", err)
	}

	return &Principal{
		Subject:     idToken.Subject,
		DisplayName: optionalStringClaim(claims, "name"),
		Email:       optionalStringClaim(claims, "email"),
		Roles:       rolesFromClaims(claims, s.verifierConfig),
	}, nil
}
