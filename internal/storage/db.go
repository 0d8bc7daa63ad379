package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/luoyh/lovestory/internal/storage/migrations"
)

// RunMigrations brings the kv schema up to date using the embedded
// goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the local SQLite database at dsn, runs
// migrations and returns a KV over it. The caller registers the driver by
// blank-importing modernc.org/sqlite.
func Open(ctx context.Context, dsn string) (*SQLiteKV, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return NewSQLiteKV(db), nil
}
