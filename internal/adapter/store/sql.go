package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/zeeshanarif5173/mywms-sub000/internal/config"
)

const createRecordListsTable = `
CREATE TABLE IF NOT EXISTS record_lists (
  list_key   VARCHAR(64) NOT NULL PRIMARY KEY,
  payload    LONGTEXT    NOT NULL,
  updated_at DATETIME    NOT NULL
);
`

const (
	selectListQuery = `SELECT payload FROM record_lists WHERE list_key = ?;`
	upsertListQuery = `
INSERT INTO record_lists (list_key, payload, updated_at)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = VALUES(updated_at);
`
)

// SQLStore keeps each list as one JSON document row in MySQL. One row per
// list matches the full-list replace semantics of the ListStore contract.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) (*SQLStore, error) {
	if _, err := db.Exec(createRecordListsTable); err != nil {
		return nil, fmt.Errorf("ensure record_lists table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// DB exposes the underlying handle for health checks.
func (s *SQLStore) DB() *sqlx.DB {
	return s.db
}

func (s *SQLStore) Read(ctx context.Context, key string, out any) error {
	var payload string
	if err := s.db.GetContext(ctx, &payload, selectListQuery, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("select list %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("decode list %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Write(ctx context.Context, key string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode list %q: %w", key, err)
	}
	if _, err := s.db.ExecContext(ctx, upsertListQuery, key, string(raw), time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert list %q: %w", key, err)
	}
	return nil
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}
