package database

import "github.com/tokengate-project/tokengate/internal/repositories"

type Database interface {
	Migrate() error
	Tx() (Transaction, error)
}

type Transaction interface {
	Accounts() repositories.AccountRepository
	Commit() error
	Rollback() error
}
