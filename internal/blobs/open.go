package blobs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/qrkeeper/internal/blobs/migrations"
	"github.com/dmitrijs2005/qrkeeper/internal/config"
	"github.com/dmitrijs2005/qrkeeper/internal/logging"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for dialect ("sqlite3" or
// "pgx") from dir.
func RunMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// OpenSQLite opens (creating if needed) the SQLite database at dsn and
// migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(ctx, db, "sqlite3", migrations.SQLiteDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenPostgres connects to dsn through the pgx driver and migrates the schema.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	if err := RunMigrations(ctx, db, "pgx", migrations.PostgresDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open builds the Repository selected by cfg.Storage. The returned function
// releases the backend's resources.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing sqlite storage: %w", err)
		}
		log.Info(ctx, "using sqlite storage", "path", cfg.SQLitePath)
		return NewSQLiteRepository(db), db.Close, nil

	case config.StoragePostgres:
		db, err := OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing postgres storage: %w", err)
		}
		log.Info(ctx, "using postgres storage")
		return NewPostgresRepository(db), db.Close, nil

	case config.StorageS3:
		repo, err := NewS3Repository(ctx, S3Options{
			Bucket:       cfg.S3Bucket,
			Prefix:       cfg.S3Prefix,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3Endpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing s3 storage: %w", err)
		}
		log.Info(ctx, "using s3 storage", "bucket", cfg.S3Bucket)
		return repo, noop, nil

	case config.StorageMemory:
		log.Warn(ctx, "using in-memory storage, history will not survive restart")
		return NewMemoryRepository(), noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
