package setup

import (
	"fmt"

	"github.com/The127/ioc"
	"github.com/tokengate-project/tokengate/internal/config"
	"github.com/tokengate-project/tokengate/internal/database"
	"github.com/tokengate-project/tokengate/internal/database/inmemory"
	"github.com/tokengate-project/tokengate/internal/database/postgres"
	"github.com/tokengate-project/tokengate/internal/services"
)

func Database(dc *ioc.DependencyCollection, c config.DatabaseConfig) database.Database {
	db := connectToDatabase(c)

	ioc.RegisterScoped(dc, func(_ *ioc.DependencyProvider) services.DbService {
		return services.NewDbService(db)
	})

	return db
}

func connectToDatabase(c config.DatabaseConfig) database.Database {
	var db database.Database
	var err error

	switch c.Mode {
	case config.DatabaseModeInMemory:
		db, err = inmemory.NewInMemoryDatabase()

	case config.DatabaseModePostgres:
		db, err = postgres.NewPostgresDatabase(c.Postgres)

	default:
		panic(fmt.Errorf("unsupported database mode: %s", c.Mode))
	}

	if err != nil {
		panic(fmt.Errorf("failed to connect to database: %w", err))
	}

	return db
}
