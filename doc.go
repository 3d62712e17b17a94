// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the parish-directory server.

parish-directory is a small administrative backend for a church
congregation directory: read-only lookups over family and family-member
records, gated by a cookie session (and an optional process-wide HTTP
basic-auth filter), with the pre-built admin client served as static
assets.

# Starting the Server

The server reads environment variables (a .env file in the working
directory is honored) or CLI flags:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..."

# Configuration

Database (all optional; without them the store is down and endpoints
answer 500):

  - DATABASE_URL (-d): connection string, or composed from
    PGHOST/PGUSER/PGPASSWORD/PGDATABASE/PGPORT (generic fallbacks
    DB_HOST/DB_USER/DB_PASSWORD/DB_NAME/DB_PORT)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - DB_POOL_SIZE: connection pool cap (default: 10)

Sessions and gating:

  - SESSION_SECRET: HMAC key for session tokens (dev fallback if unset)
  - SESSION_MAX_AGE: cookie/session lifetime in seconds (default: 21600)
  - BASIC_AUTH_USER / BASIC_AUTH_PASS: enable the basic-auth filter
  - APP_ENV: "production" marks session cookies Secure

Server:

  - PORT (-p): listen port (default: 3000)
  - STATIC_DIR (-static): admin client assets (default: ./public)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, families, members, static)
  - router: Route definitions using Go 1.22+ routing
  - middleware: basic auth, session gate, CORS, logging, JSON helpers
  - models: Request/response types
  - session: Signed-token session store and credential check
  - db: Driver selection, pooling, schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
