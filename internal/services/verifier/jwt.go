package verifier

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tokengate-project/tokengate/internal/config"
)

type jwtService struct {
	verifierConfig config.VerifierConfig
}

// NewJwtService verifies HMAC-signed tokens against a shared secret. Meant
// for setups without an OIDC-capable issuer.
func NewJwtService(c config.VerifierConfig) Service {
	return &jwtService{
		verifierConfig: c,
	}
}

func (s *jwtService) Verify(_ context.Context, token string) (*Principal, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.verifierConfig.Jwt.Issuer),
		jwt.WithExpirationRequired(),
	}

	if s.verifierConfig.Jwt.Audience != "" {
		options = append(options, jwt.WithAudience(s.verifierConfig.Jwt.Audience))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte(s.verifierConfig.Jwt.Secret), nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("token has no subject claim")
	}

	return &Principal{
		Subject:     subject,
		DisplayName: optionalStringClaim(claims, "name"),
		Email:       optionalStringClaim(claims, "email"),
		Roles:       rolesFromClaims(claims, s.verifierConfig),
	}, nil
}
