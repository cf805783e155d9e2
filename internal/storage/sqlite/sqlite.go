package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"propertyHub/internal/storage"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

const createTable = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Storage keeps key-value entries in a local sqlite file so they survive a restart.
type Storage struct {
	Db *sql.DB
}

func New(ctx context.Context, path string) (*Storage, error) {
	database, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}

	// sqlite permits one writer at a time
	database.SetMaxOpenConns(1)

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, err
	}

	if _, err := database.ExecContext(ctx, createTable); err != nil {
		database.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Storage{Db: database}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.Db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ``, storage.ErrNotFound
	}

	if err != nil {
		return ``, err
	}

	return value, nil
}

func (s *Storage) Set(ctx context.Context, key string, value string) error {
	query := `INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	_, err := s.Db.ExecContext(ctx, query, key, value)

	return err
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.Db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)

	return err
}

func (s *Storage) Close() error {
	return s.Db.Close()
}
