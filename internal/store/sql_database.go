package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/calkeep/go-cal-keeper/internal/config"
	"github.com/calkeep/go-cal-keeper/internal/logger"
	"github.com/calkeep/go-cal-keeper/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps *sql.DB with the driver name and a driver-specific error
// classifier so repositories can map constraint violations to sentinel
// errors without knowing which engine they run on.
type DB struct {
	*sql.DB
	driver     string
	classifier ErrorClassifier
	logger     *logger.Logger
}

// NewConnect opens a connection for the configured driver ("pgx" or
// "sqlite3"), verifies it with a ping, and returns a ready *DB.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var classifier ErrorClassifier
	switch cfg.Driver {
	case "pgx":
		classifier = NewPostgresErrorClassifier()
	case "sqlite3":
		classifier = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		driver:     cfg.Driver,
		classifier: classifier,
		logger:     log,
	}, nil
}

// Migrate applies all pending schema migrations for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
