// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides the request gates and HTTP helpers shared
by all handlers.

# Gates

BasicAuth is the optional process-wide filter: inactive (pass-through)
unless a credential pair is configured, exempting only /ping, and
applied before anything else so it covers static assets too.

RequireSession wraps API data routes and turns a missing, forged, or
expired session cookie into 401 {error:"not authenticated"} without
invoking the handler. Page navigation uses the session store directly
in the static handler instead, because its denied outcome is a
redirect, not JSON (unless the client accepts JSON - see WantsJSON).

# Helpers

	JSONResponse(w, code, data)   - encode any value as JSON
	ErrorResponse(w, code, msg)   - the {error} envelope
	ParseJSONBody(r, &v)          - decode a request body
	WithLogging(handler)          - slog request start/completion
	CORS(handler)                 - admin client cross-origin headers
*/
package middleware
