package postgres

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/tokengate-project/tokengate/internal/config"
	db "github.com/tokengate-project/tokengate/internal/database"
	"github.com/tokengate-project/tokengate/internal/logging"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*
var migrations embed.FS

type database struct {
	db *sql.DB
}

func NewPostgresDatabase(pc config.PostgresConfig) (db.Database, error) {
	dbConnection, err := connectToDatabase(pc)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &database{
		db: dbConnection,
	}, nil
}

func connectToDatabase(pc config.PostgresConfig) (*sql.DB, error) {
	logging.Logger.Infof("Connecting to database %s via %s:%d",
		pc.Database,
		pc.Host,
		pc.Port)

	connectionString := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		pc.Host,
		pc.Port,
		pc.Database,
		pc.Username,
		pc.Password,
		pc.SslMode)

	dbConnection, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening database connection: %w", err)
	}

	return dbConnection, nil
}

func (d *database) Migrate() error {
	migrationSource := migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}

	logging.Logger.Infof("Applying migrations...")

	n, err := migrate.Exec(d.db, "postgres", migrationSource, migrate.Up)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logging.Logger.Infof("Applied %d migrations", n)
	return nil
}

func (d *database) Tx() (db.Transaction, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	return newTransaction(tx), nil
}
