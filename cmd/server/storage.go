package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/ports"
	"github.com/Farhadhossain379/pythonFastApi/internal/infrastructure/config"
	mongodb "github.com/Farhadhossain379/pythonFastApi/internal/infrastructure/db/mongo"
	"github.com/Farhadhossain379/pythonFastApi/internal/infrastructure/db/sqldb"
)

// storage bundles the repositories for the configured driver.
type storage struct {
	directory ports.AccountDirectory
	customers ports.CustomerRepository
	health    ports.HealthChecker
	close     func(context.Context) error
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg, log)
	case config.DriverMySQL, config.DriverPostgres:
		return openSQL(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func openSQL(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	db, err := sqldb.Open(ctx, sqldb.Config{
		Dialect:      cfg.Store.Driver,
		DSN:          cfg.Store.DSN,
		MaxOpenConns: 25,
		MaxIdleConns: 5,
	})
	if err != nil {
		return nil, err
	}
	if err := sqldb.Migrate(ctx, db, cfg.Store.Driver); err != nil {
		_ = sqldb.Close(db)
		return nil, err
	}
	log.Info().Str("driver", cfg.Store.Driver).Msg("database ready")

	return &storage{
		directory: sqldb.NewAccountDirectory(db),
		customers: sqldb.NewCustomerRepository(db),
		health:    sqldb.NewPinger(cfg.Store.Driver, db),
		close:     func(context.Context) error { return sqldb.Close(db) },
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo ready")

	return &storage{
		directory: mongodb.NewAccountDirectory(db),
		customers: mongodb.NewCustomerRepository(db),
		health:    mongodb.NewPinger(client),
		close:     client.Disconnect,
	}, nil
}
