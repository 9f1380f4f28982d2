package kv

import (
	"database/sql"
	"fmt"
)

// SQLite keeps documents in the kv_store table created by db.ApplyMigrations.
type SQLite struct {
	db    *sql.DB
	quota int64
}

func NewSQLite(db *sql.DB, quota int64) *SQLite {
	return &SQLite{db: db, quota: quota}
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	next := entrySize(key, value)
	if s.quota > 0 {
		var used, previous int64
		if err := s.db.QueryRow(`SELECT IFNULL(SUM(size_bytes), 0) FROM kv_store`).Scan(&used); err != nil {
			return fmt.Errorf("measure store size: %w", err)
		}
		err := s.db.QueryRow(`SELECT size_bytes FROM kv_store WHERE key = ?`, key).Scan(&previous)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("measure %q: %w", key, err)
		}
		if err := checkQuota(s.quota, used, previous, next); err != nil {
			return err
		}
	}
	_, err := s.db.Exec(`
INSERT INTO kv_store(key, value, size_bytes, updated_at)
VALUES(?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, size_bytes=excluded.size_bytes, updated_at=excluded.updated_at
`, key, value, next)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
