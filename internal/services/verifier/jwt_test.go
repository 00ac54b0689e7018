package verifier

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"github.com/tokengate-project/tokengate/internal/config"
)

const (
	testSecret = "test-secret"
	testIssuer = "https://issuer.example.com"
)

type JwtServiceTestSuite struct {
	suite.Suite
}

func TestJwtServiceTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(JwtServiceTestSuite))
}

func (s *JwtServiceTestSuite) newConfig() config.VerifierConfig {
	return config.VerifierConfig{
		Mode:            config.VerifierModeJwt,
		RoleClaim:       "roles",
		RoleClaimFormat: config.RoleClaimFormatArray,
		Jwt: config.JwtVerifierConfig{
			Secret: testSecret,
			Issuer: testIssuer,
		},
	}
}

func (s *JwtServiceTestSuite) signToken(claims jwt.MapClaims, secret string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	s.Require().NoError(err)
	return token
}

func (s *JwtServiceTestSuite) TestValidToken() {
	// arrange
	service := NewJwtService(s.newConfig())
	token := s.signToken(jwt.MapClaims{
		"sub":   "subject-1",
		"iss":   testIssuer,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"name":  "Test User",
		"email": "test@example.com",
		"roles": []string{"admin", "reader"},
	}, testSecret)

	// act
	principal, err := service.Verify(context.Background(), token)

	// assert
	s.NoError(err)
	s.Equal("subject-1", principal.Subject)
	s.Equal("Test User", *principal.DisplayName)
	s.Equal("test@example.com", *principal.Email)
	s.Equal([]string{"admin", "reader"}, principal.Roles)
}

func (s *JwtServiceTestSuite) TestWrongSecret() {
	// arrange
	service := NewJwtService(s.newConfig())
	token := s.signToken(jwt.MapClaims{
		"sub": "subject-1",
		"iss": testIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "wrong-secret")

	// act
	principal, err := service.Verify(context.Background(), token)

	// assert
	s.Error(err)
	s.Nil(principal)
}

func (s *JwtServiceTestSuite) TestExpiredToken() {
	// arrange
	service := NewJwtService(s.newConfig())
	token := s.signToken(jwt.MapClaims{
		"sub": "subject-1",
		"iss": testIssuer,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	// act
	principal, err := service.Verify(context.Background(), token)

	// assert
	s.Error(err)
	s.Nil(principal)
}

func (s *JwtServiceTestSuite) TestWrongIssuer() {
	// arrange
	service := NewJwtService(s.newConfig())
	token := s.signToken(jwt.MapClaims{
		"sub": "subject-1",
		"iss": "https://other.example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	// act
	principal, err := service.Verify(context.Background(), token)

	// assert
	s.Error(err)
	s.Nil(principal)
}

func (s *JwtServiceTestSuite) TestMissingExpiration() {
	// arrange
	service := NewJwtService(s.newConfig())
	token := s.signToken(jwt.MapClaims{
		"sub": "subject-1",
		"iss": testIssuer,
	}, testSecret)

	// act
	principal, err := service.Verify(context.Background(), token)

	// assert
	s.Error(err)
	s.Nil(principal)
}

func (s *JwtServiceTestSuite) TestMissingSubject() {
	// arrange
	service := NewJwtService(s.newConfig())
	token := s.signToken(jwt.MapClaims{
		"iss": testIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	// act
	principal, err := service.Verify(context.Background(), token)

	// assert
	s.Error(err)
	s.Nil(principal)
}

func (s *JwtServiceTestSuite) TestWrongAudience() {
	// arrange
	c := s.newConfig()
	c.Jwt.Audience = "tokengate"
	service := NewJwtService(c)
	token := s.signToken(jwt.MapClaims{
		"sub": "subject-1",
		"iss": testIssuer,
		"aud": "other-service",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	// act
	principal, err := service.Verify(context.Background(), token)

	// assert
	s.Error(err)
	s.Nil(principal)
}
