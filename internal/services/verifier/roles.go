package verifier

import (
	"fmt"
	"strings"

	"github.com/tokengate-project/tokengate/internal/config"
)

func rolesFromClaims(claims map[string]interface{}, c config.VerifierConfig) []string {
	var roles []string

	rawRoles, ok := claims[c.RoleClaim]
	if ok {
		switch c.RoleClaimFormat {
		case config.RoleClaimFormatArray:
			rolesArray, ok := rawRoles.([]interface{})
			if ok {
				for i := range rolesArray {
					role, ok := rolesArray[i].(string)
					if ok {
						roles = append(roles, strings.TrimSpace(role))
					}
				}
			}

		case config.RoleClaimFormatSpaceSeparated:
			rolesString, ok := rawRoles.(string)
			if ok {
				roles = strings.Split(rolesString, " ")
			}

		case config.RoleClaimFormatCommaSeparated:
			rolesString, ok := rawRoles.(string)
			if ok {
				roles = strings.Split(rolesString, ",")
				for i, role := range roles {
					roles[i] = strings.TrimSpace(role)
				}
			}

		default:
			panic(fmt.Errorf("unsupported role claim format: %s", c.RoleClaimFormat))
		}
	}

	if len(c.RoleMapping) == 0 {
		return roles
	}

	var mappedRoles []string
	for _, role := range roles {
		mappedRole, ok := c.RoleMapping[role]
		if ok {
			mappedRoles = append(mappedRoles, mappedRole)
		}
	}

	return mappedRoles
}

func optionalStringClaim(claims map[string]interface{}, name string) *string {
	value, ok := claims[name].(string)
	if !ok || value == "" {
		return nil
	}
	return &value
}
