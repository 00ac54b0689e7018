package postgres

import (
	"database/sql"

	db "github.com/tokengate-project/tokengate/internal/database"
	"github.com/tokengate-project/tokengate/internal/repositories"
	"github.com/tokengate-project/tokengate/internal/repositories/postgres"
)

type transaction struct {
	tx *sql.Tx

	accounts repositories.AccountRepository
}

func newTransaction(tx *sql.Tx) db.Transaction {
	return &transaction{
		tx: tx,
	}
}

func (t *transaction) Accounts() repositories.AccountRepository {
	if t.accounts == nil {
		t.accounts = postgres.NewPostgresAccountRepository(t.tx)
	}
	return t.accounts
}

func (t *transaction) Commit() error {
	return t.tx.Commit()
}

func (t *transaction) Rollback() error {
	return t.tx.Rollback()
}
