package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
	"github.com/tokengate-project/tokengate/internal/repositories"
	"github.com/tokengate-project/tokengate/internal/utils"
	"github.com/tokengate-project/tokengate/internal/utils/apiError"
)

type postgresAccount struct {
	postgresBaseModel
	subject     string
	displayName *string
	email       *string
	lastSeenAt  time.Time
}

func (a *postgresAccount) Map() *repositories.Account {
	return repositories.NewAccountFromDB(
		a.subject,
		a.displayName,
		a.email,
		a.lastSeenAt,
		a.MapBase(),
	)
}

type accountRepository struct {
	tx *sql.Tx
}

func NewPostgresAccountRepository(tx *sql.Tx) repositories.AccountRepository {
	return &accountRepository{
		tx: tx,
	}
}

func (r *accountRepository) selectQuery(filter *repositories.AccountFilter) *sqlbuilder.SelectBuilder {
	s := sqlbuilder.Select(
		"accounts.id",
		"accounts.created_at",
		"accounts.updated_at",
		"accounts.subject",
		"accounts.display_name",
		"accounts.email",
		"accounts.last_seen_at",
	).From("accounts")

	if filter.HasId() {
		s.Where(s.Equal("accounts.id", filter.GetId()))
	}

	if filter.HasSubject() {
		s.Where(s.Equal("accounts.subject", filter.GetSubject()))
	}

	return s
}

func (r *accountRepository) First(ctx context.Context, filter *repositories.AccountFilter) (*repositories.Account, error) {
	s := r.selectQuery(filter)
	s.Limit(1)

	query, args := s.BuildWithFlavor(sqlbuilder.PostgreSQL)
	row := r.tx.QueryRowContext(ctx, query, args...)

	var account postgresAccount
	err := row.Scan(&account.id, &account.createdAt, &account.updatedAt, &account.subject, &account.displayName, &account.email, &account.lastSeenAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("scanning row: %w", err)
	}

	return account.Map(), nil
}

func (r *accountRepository) Single(ctx context.Context, filter *repositories.AccountFilter) (*repositories.Account, error) {
	result, err := r.First(ctx, filter)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apiError.ErrApiAccountNotFound
	}
	return result, nil
}

func (r *accountRepository) List(ctx context.Context, filter *repositories.AccountFilter) ([]*repositories.Account, int, error) {
	s := r.selectQuery(filter)
	s.SelectMore("count(*) over() as total_count")

	query, args := s.BuildWithFlavor(sqlbuilder.PostgreSQL)
	rows, err := r.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying db: %w", err)
	}
	defer utils.PanicOnError(rows.Close, "closing rows")

	var accounts []*repositories.Account
	var totalCount int

	for rows.Next() {
		var account postgresAccount

		err := rows.Scan(&account.id, &account.createdAt, &account.updatedAt, &account.subject, &account.displayName, &account.email, &account.lastSeenAt, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning row: %w", err)
		}
		accounts = append(accounts, account.Map())
	}

	return accounts, totalCount, nil
}

func (r *accountRepository) Insert(ctx context.Context, account *repositories.Account) error {
	s := sqlbuilder.InsertInto("accounts").
		Cols(
			"id",
			"created_at",
			"updated_at",
			"subject",
			"display_name",
			"email",
			"last_seen_at",
		).
		Values(
			account.GetId(),
			account.GetCreatedAt(),
			account.GetUpdatedAt(),
			account.GetSubject(),
			account.GetDisplayName(),
			account.GetEmail(),
			account.GetLastSeenAt(),
		)

	query, args := s.BuildWithFlavor(sqlbuilder.PostgreSQL)
	_, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *accountRepository) Update(ctx context.Context, account *repositories.Account) error {
	s := sqlbuilder.Update("accounts")
	s.Set(
		s.Assign("updated_at", account.GetUpdatedAt()),
		s.Assign("display_name", account.GetDisplayName()),
		s.Assign("email", account.GetEmail()),
		s.Assign("last_seen_at", account.GetLastSeenAt()),
	)
	s.Where(s.Equal("id", account.GetId()))

	query, args := s.BuildWithFlavor(sqlbuilder.PostgreSQL)
	_, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := sqlbuilder.DeleteFrom("accounts")
	s.Where(s.Equal("id", id))

	query, args := s.BuildWithFlavor(sqlbuilder.PostgreSQL)
	_, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}
