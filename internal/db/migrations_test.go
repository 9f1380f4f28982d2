package db_test

import (
	"path/filepath"
	"testing"

	"github.com/saadjs/fitmentor/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "fitmentor.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 2 {
		t.Fatalf("expected 2 migration versions, got %d", migrationCount)
	}

	var kvTableCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'kv_store'`).Scan(&kvTableCount); err != nil {
		t.Fatalf("check kv_store table: %v", err)
	}
	if kvTableCount != 1 {
		t.Fatalf("expected kv_store table to exist")
	}

	var sizeColCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM pragma_table_info('kv_store') WHERE name = 'size_bytes'`).Scan(&sizeColCount); err != nil {
		t.Fatalf("check size_bytes column: %v", err)
	}
	if sizeColCount != 1 {
		t.Fatalf("expected size_bytes column in kv_store table")
	}
}
