package inmemory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/tokengate-project/tokengate/internal/repositories"
	"github.com/tokengate-project/tokengate/internal/utils/apiError"
)

// accountRecord wraps the model with the exported fields memdb indexes on.
type accountRecord struct {
	Id      string
	Subject string

	account repositories.Account
}

type AccountRepository struct {
	txn *memdb.Txn
}

func NewInMemoryAccountRepository(txn *memdb.Txn) *AccountRepository {
	return &AccountRepository{
		txn: txn,
	}
}

func (r *AccountRepository) applyFilter(iterator memdb.ResultIterator, filter *repositories.AccountFilter) ([]*repositories.Account, int, error) {
	var result []*repositories.Account

	obj := iterator.Next()
	for obj != nil {
		record := obj.(accountRecord)

		if r.matches(&record.account, filter) {
			account := record.account
			result = append(result, &account)
		}

		obj = iterator.Next()
	}

	return result, len(result), nil
}

func (r *AccountRepository) matches(account *repositories.Account, filter *repositories.AccountFilter) bool {
	if filter.HasId() {
		if account.GetId() != filter.GetId() {
			return false
		}
	}

	if filter.HasSubject() {
		if account.GetSubject() != filter.GetSubject() {
			return false
		}
	}

	return true
}

func (r *AccountRepository) First(_ context.Context, filter *repositories.AccountFilter) (*repositories.Account, error) {
	iterator, err := r.txn.Get("accounts", "id")
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	result, _, err := r.applyFilter(iterator, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to apply filter: %w", err)
	}

	if len(result) == 0 {
		return nil, nil
	}

	return result[0], nil
}

func (r *AccountRepository) Single(ctx context.Context, filter *repositories.AccountFilter) (*repositories.Account, error) {
	result, err := r.First(ctx, filter)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apiError.ErrApiAccountNotFound
	}
	return result, nil
}

func (r *AccountRepository) List(_ context.Context, filter *repositories.AccountFilter) ([]*repositories.Account, int, error) {
	iterator, err := r.txn.Get("accounts", "id")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get accounts: %w", err)
	}

	return r.applyFilter(iterator, filter)
}

func (r *AccountRepository) Insert(_ context.Context, account *repositories.Account) error {
	err := r.txn.Insert("accounts", newAccountRecord(account))
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

func (r *AccountRepository) Update(_ context.Context, account *repositories.Account) error {
	err := r.txn.Insert("accounts", newAccountRecord(account))
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}

func (r *AccountRepository) Delete(_ context.Context, id uuid.UUID) error {
	_, err := r.txn.DeleteAll("accounts", "id", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}

func newAccountRecord(account *repositories.Account) accountRecord {
	return accountRecord{
		Id:      account.GetId().String(),
		Subject: account.GetSubject(),
		account: *account,
	}
}
