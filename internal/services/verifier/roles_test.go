package verifier

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/tokengate-project/tokengate/internal/config"
)

type RolesTestSuite struct {
	suite.Suite
}

func TestRolesTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RolesTestSuite))
}

func (s *RolesTestSuite) TestArrayFormat() {
	// arrange
	claims := map[string]interface{}{
		"roles": []interface{}{"admin", " reader "},
	}
	c := config.VerifierConfig{
		RoleClaim:       "roles",
		RoleClaimFormat: config.RoleClaimFormatArray,
	}

	// act
	roles := rolesFromClaims(claims, c)

	// assert
	s.Equal([]string{"admin", "reader"}, roles)
}

func (s *RolesTestSuite) TestSpaceSeparatedFormat() {
	// arrange
	claims := map[string]interface{}{
		"roles": "admin reader",
	}
	c := config.VerifierConfig{
		RoleClaim:       "roles",
		RoleClaimFormat: config.RoleClaimFormatSpaceSeparated,
	}

	// act
	roles := rolesFromClaims(claims, c)

	// assert
	s.Equal([]string{"admin", "reader"}, roles)
}

func (s *RolesTestSuite) TestCommaSeparatedFormat() {
	// arrange
	claims := map[string]interface{}{
		"roles": "admin, reader",
	}
	c := config.VerifierConfig{
		RoleClaim:       "roles",
		RoleClaimFormat: config.RoleClaimFormatCommaSeparated,
	}

	// act
	roles := rolesFromClaims(claims, c)

	// assert
	s.Equal([]string{"admin", "reader"}, roles)
}

func (s *RolesTestSuite) TestMissingClaim() {
	// arrange
	claims := map[string]interface{}{}
	c := config.VerifierConfig{
		RoleClaim:       "roles",
		RoleClaimFormat: config.RoleClaimFormatArray,
	}

	// act
	roles := rolesFromClaims(claims, c)

	// assert
	s.Empty(roles)
}

func (s *RolesTestSuite) TestRoleMapping() {
	// arrange
	claims := map[string]interface{}{
		"roles": []interface{}{"idp-admin", "idp-guest"},
	}
	c := config.VerifierConfig{
		RoleClaim:       "roles",
		RoleClaimFormat: config.RoleClaimFormatArray,
		RoleMapping: map[string]string{
			"idp-admin": "admin",
		},
	}

	// act
	roles := rolesFromClaims(claims, c)

	// assert
	s.Equal([]string{"admin"}, roles)
}

func (s *RolesTestSuite) TestCustomClaimName() {
	// arrange
	claims := map[string]interface{}{
		"groups": []interface{}{"admin"},
		"roles":  []interface{}{"ignored"},
	}
	c := config.VerifierConfig{
		RoleClaim:       "groups",
		RoleClaimFormat: config.RoleClaimFormatArray,
	}

	// act
	roles := rolesFromClaims(claims, c)

	// assert
	s.Equal([]string{"admin"}, roles)
}
