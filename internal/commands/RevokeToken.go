package commands

import (
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/tokengate-project/tokengate/internal/middlewares"
	"github.com/tokengate-project/tokengate/internal/services/revocation"
)

type RevokeToken struct {
	Token string
}

type RevokeTokenResponse struct{}

// HandleRevokeToken puts the token on the denylist. Revocation is effective
// immediately for every node sharing the kv store.
func HandleRevokeToken(ctx context.Context, command RevokeToken) (*RevokeTokenResponse, error) {
	scope := middlewares.GetScope(ctx)

	revocationService := ioc.GetDependency[revocation.Service](scope)
	err := revocationService.Revoke(ctx, command.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke token: %w", err)
	}

	return &RevokeTokenResponse{}, nil
}
