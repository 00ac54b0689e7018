package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/The127/ioc"
	"github.com/google/uuid"
	"github.com/tokengate-project/tokengate/internal/middlewares"
	"github.com/tokengate-project/tokengate/internal/repositories"
	"github.com/tokengate-project/tokengate/internal/services"
)

type GetAccount struct {
	Id uuid.UUID
}

type GetAccountResponse struct {
	Id          uuid.UUID
	Subject     string
	DisplayName *string
	Email       *string
	CreatedAt   time.Time
	LastSeenAt  time.Time
}

func HandleGetAccount(ctx context.Context, query GetAccount) (*GetAccountResponse, error) {
	scope := middlewares.GetScope(ctx)

	dbService := ioc.GetDependency[services.DbService](scope)
	tx, err := dbService.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	account, err := tx.Accounts().Single(ctx, repositories.NewAccountFilter().ById(query.Id))
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &GetAccountResponse{
		Id:          account.GetId(),
		Subject:     account.GetSubject(),
		DisplayName: account.GetDisplayName(),
		Email:       account.GetEmail(),
		CreatedAt:   account.GetCreatedAt(),
		LastSeenAt:  account.GetLastSeenAt(),
	}, nil
}
