// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/parishdir/parishdir/cliparse"
)

// Connect opens the directory store with a bounded connection pool and
// verifies it with a ping. The caller decides whether failure is fatal;
// this server treats a down store as degraded, not dead.
func Connect(cfg cliparse.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("no database configured")
	}

	driver := "postgres"
	if cfg.DatabaseType == "sqlite" {
		driver = "sqlite"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(cfg.PoolSize)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Families (one row per household)
CREATE TABLE IF NOT EXISTS family_groups (
    family_id INTEGER PRIMARY KEY,
    family_sr_no TEXT NOT NULL UNIQUE,
    family_name TEXT NOT NULL,
    head_of_family TEXT NOT NULL,
    community_name TEXT,
    zone_no INTEGER,
    contact_phone TEXT
);

CREATE INDEX IF NOT EXISTS idx_family_groups_sr_no ON family_groups(family_sr_no);

-- Members (many per family, ordered by an in-family serial)
CREATE TABLE IF NOT EXISTS family_members (
    id INTEGER PRIMARY KEY,
    family_id INTEGER NOT NULL REFERENCES family_groups(family_id),
    sr_no_in_family INTEGER NOT NULL,
    full_name TEXT NOT NULL,
    relation TEXT,
    phone TEXT
);

CREATE INDEX IF NOT EXISTS idx_family_members_family_id ON family_members(family_id);
`
