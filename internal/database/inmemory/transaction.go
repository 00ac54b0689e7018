package inmemory

import (
	"github.com/hashicorp/go-memdb"
	db "github.com/tokengate-project/tokengate/internal/database"
	"github.com/tokengate-project/tokengate/internal/repositories"
	"github.com/tokengate-project/tokengate/internal/repositories/inmemory"
)

type transaction struct {
	txn *memdb.Txn

	accounts repositories.AccountRepository
}

func newTransaction(txn *memdb.Txn) db.Transaction {
	return &transaction{
		txn: txn,
	}
}

func (t *transaction) Accounts() repositories.AccountRepository {
	if t.accounts == nil {
		t.accounts = inmemory.NewInMemoryAccountRepository(t.txn)
	}
	return t.accounts
}

func (t *transaction) Commit() error {
	t.txn.Commit()
	return nil
}

func (t *transaction) Rollback() error {
	t.txn.Abort()
	return nil
}
