// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and
environment variables.

# Precedence

CLI flags win over environment variables, which win over defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Database settings

The database URL comes from -d / DATABASE_URL, or is composed from the
discrete provider-style variables when only those are present:

	PGHOST / DB_HOST
	PGUSER / DB_USER
	PGPASSWORD / DB_PASSWORD
	PGDATABASE / DB_NAME
	PGPORT / DB_PORT (default 5432)

An entirely unset database is not an error: the server starts with the
store down and directory endpoints answer 500.

# Gating settings

	SESSION_SECRET   - session token HMAC key (dev fallback if unset,
	                   reported via Config.SessionSecretDefaulted)
	SESSION_MAX_AGE  - session lifetime in seconds (default 21600)
	BASIC_AUTH_USER  - with BASIC_AUTH_PASS, enables the basic-auth
	BASIC_AUTH_PASS    filter for every request except /ping
	APP_ENV          - "production" marks session cookies Secure
*/
package cliparse
