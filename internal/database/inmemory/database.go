package inmemory

import (
	"fmt"

	"github.com/hashicorp/go-memdb"
	db "github.com/tokengate-project/tokengate/internal/database"
)

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"accounts": {
			Name: "accounts",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Id"},
				},
				"subject": {
					Name:    "subject",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Subject"},
				},
			},
		},
	},
}

type database struct {
	memDB *memdb.MemDB
}

func NewInMemoryDatabase() (db.Database, error) {
	memDb, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory database: %w", err)
	}

	return &database{
		memDB: memDb,
	}, nil
}

func (d *database) Migrate() error {
	// schema is fixed at construction time
	return nil
}

func (d *database) Tx() (db.Transaction, error) {
	return newTransaction(d.memDB.Txn(true)), nil
}
