// Package db owns the database connection lifecycle and the schema.
// The primary store is SQLite via the pure-Go modernc.org/sqlite driver;
// tests use a single shared in-memory handle so state survives across calls.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"pressdesk/pkg/config"
)

// sharedDSN names one in-memory database shared by every connection that uses
// it. cache=shared keeps the data alive for as long as at least one connection
// stays open.
const sharedDSN = "file:pressdesk?mode=memory&cache=shared&_pragma=foreign_keys(1)"

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
// SQLite serializes writers, so the pool stays small.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// Open opens the on-disk production database, applies pool settings, enables
// foreign-key enforcement, and ensures the schema exists. An empty path falls
// back to DATABASE_PATH (default "pressdesk.db").
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = config.GetEnvString("DATABASE_PATH", "pressdesk.db")
	}
	// Pragmas ride on the DSN so every pooled connection gets them.
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("Open: sql.Open: %w", err)
	}

	cfg := connectionConfigFromEnv()
	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	database.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := prepare(database); err != nil {
		_ = database.Close()
		return nil, err
	}

	slog.Info("database connection established",
		slog.String("path", path),
		slog.Int("max_open_conns", cfg.MaxOpenConns))
	return database, nil
}

var (
	sharedMu sync.Mutex
	shared   *sql.DB
)

// OpenShared returns the process-wide shared in-memory database handle,
// creating it on first use. Every call observes the same data, which makes
// repeated test runs against one schema possible. If a previous handle was
// closed or otherwise invalidated, a fresh one is established transparently.
func OpenShared() (*sql.DB, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := shared.PingContext(ctx); err == nil {
			return shared, nil
		}
		slog.Warn("shared database handle invalidated, reopening")
		shared = nil
	}

	database, err := sql.Open("sqlite", sharedDSN)
	if err != nil {
		return nil, fmt.Errorf("OpenShared: sql.Open: %w", err)
	}
	// A second connection to the same shared cache would still work, but a
	// single one keeps writes serialized and the data alive until Close.
	database.SetMaxOpenConns(1)

	if err := prepare(database); err != nil {
		_ = database.Close()
		return nil, err
	}

	shared = database
	return shared, nil
}

// prepare ensures the schema is present. It runs idempotently on every new
// handle.
func prepare(database *sql.DB) error {
	if err := MigrateUp(database); err != nil {
		return fmt.Errorf("prepare: migrate: %w", err)
	}
	return nil
}

// connectionConfigFromEnv reads connection pool configuration from environment
// variables, falling back to defaults.
func connectionConfigFromEnv() ConnectionConfig {
	cfg := DefaultConnectionConfig()
	cfg.MaxOpenConns = config.GetEnvInt("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns)
	cfg.MaxIdleConns = config.GetEnvInt("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns)
	cfg.ConnMaxLifetime = config.GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime)
	cfg.ConnMaxIdleTime = config.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime)
	return cfg
}
