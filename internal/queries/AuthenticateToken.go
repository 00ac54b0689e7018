package queries

import (
	"context"
	"fmt"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/tokengate-project/tokengate/internal/middlewares"
	"github.com/tokengate-project/tokengate/internal/repositories"
	"github.com/tokengate-project/tokengate/internal/services"
	"github.com/tokengate-project/tokengate/internal/services/clock"
	"github.com/tokengate-project/tokengate/internal/services/revocation"
	"github.com/tokengate-project/tokengate/internal/services/verifier"
	"github.com/tokengate-project/tokengate/internal/utils/apiError"
)

type AuthenticateToken struct {
	Token string
}

type AuthenticateTokenResponse struct {
	AccountId uuid.UUID
	Subject   string
	Roles     []string
}

// HandleAuthenticateToken authenticates an already resolved bearer token:
// the denylist is consulted first, then the token is verified, then the
// account for its subject is fetched or created.
func HandleAuthenticateToken(ctx context.Context, query AuthenticateToken) (*AuthenticateTokenResponse, error) {
	scope := middlewares.GetScope(ctx)

	revocationService := ioc.GetDependency[revocation.Service](scope)
	revoked, err := revocationService.IsRevoked(ctx, query.Token)
	if err != nil {
		return nil, fmt.Errorf("checking revocation list: %w", err)
	}
	if revoked {
		return nil, apiError.ErrApiTokenRevoked
	}

	verifierService := ioc.GetDependency[verifier.Service](scope)
	principal, err := verifierService.Verify(ctx, query.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", apiError.ErrApiUnauthorized)
	}

	account, err := getOrCreateAccount(ctx, scope, principal)
	if err != nil {
		return nil, err
	}

	return &AuthenticateTokenResponse{
		AccountId: account.GetId(),
		Subject:   principal.Subject,
		Roles:     principal.Roles,
	}, nil
}

func getOrCreateAccount(ctx context.Context, scope *ioc.DependencyProvider, principal *verifier.Principal) (*repositories.Account, error) {
	dbService := ioc.GetDependency[services.DbService](scope)
	tx, err := dbService.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	account, err := tx.Accounts().First(ctx, repositories.NewAccountFilter().BySubject(principal.Subject))
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	clockService := ioc.GetDependency[clock.Service](scope)

	if account == nil {
		account = repositories.NewAccount(principal.Subject)
		account.SetDisplayName(principal.DisplayName)
		account.SetEmail(principal.Email)
		account.SetLastSeenAt(clockService.Now())

		err = tx.Accounts().Insert(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to insert account: %w", err)
		}

		return account, nil
	}

	if principal.DisplayName != nil {
		account.SetDisplayName(principal.DisplayName)
	}
	if principal.Email != nil {
		account.SetEmail(principal.Email)
	}
	account.SetLastSeenAt(clockService.Now())

	err = tx.Accounts().Update(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}
