// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the directory store and creates its schema.

# Connecting

Connect picks the driver from the configured database type (postgres via
lib/pq or sqlite via modernc.org/sqlite), caps the connection pool, and
pings before handing the pool back:

	conn, err := db.Connect(cfg)

A failed Connect is expected to leave the server running with a nil
handle; handlers answer a generic 500 until the store is back.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		slog.Error("schema creation failed", "error", err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes.

# Tables

  - family_groups: one row per household; family_sr_no is the unique
    display serial used for external lookups
  - family_members: persons belonging to exactly one family, ordered
    within it by sr_no_in_family

# Relationships

	family_groups 1──* family_members

The store owns row lifecycle entirely; this server never mutates either
table.

# Placeholders

All queries use $1-style placeholders, which both supported drivers
accept, so the same SQL runs against postgres and sqlite.
*/
package db
