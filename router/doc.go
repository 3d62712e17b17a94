// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the parish-directory API.

# Route Registration

NewRouter creates the fully composed handler:

	h := router.NewRouter(db, sessions, creds, cfg)

# Endpoints

Health:

	GET /ping

Session lifecycle:

	POST /api/login  - validate credentials, set session cookie
	POST /api/logout - destroy session, clear cookie

Directory lookups (session required):

	GET /api/allFamilies     - all families, by family_id
	GET /api/allMembers      - all members joined with family serial
	GET /api/familyBySr      - one family + members, ?sr=<serial>
	GET /api/memberByName    - member name substring search, ?q=
	GET /api/familiesByHead  - head-of-family substring search, ?q=

Fallback:

	/api/* and /ping/* with no route -> 404 {error:"API endpoint not found"}
	anything else -> static asset, dashboard, or login redirect

# Gate Order

Every request passes the optional basic-auth filter first (static
assets included, /ping exempt), then CORS, then the mux. Data routes
are additionally wrapped in the session gate.
*/
package router
