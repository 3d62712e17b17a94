// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session provides the login session store and credential check.

# Tokens

A token is an opaque uuid joined with its HMAC-SHA256 signature:

	<id>.<base64url(HMAC-SHA256(id, secret))>

The signature is URL-safe base64 without padding. Validation checks the
signature before any store lookup, so a forged token is rejected
without touching shared state.

# Lifecycle

	token := store.Create("admin", "admin")  // on login
	sess, ok := store.Get(token)             // on every protected request
	store.Destroy(token)                     // on logout (idempotent)

Sessions expire after the configured max age. Expiry is lazy: an
expired entry is evicted on its next lookup, and a destroyed or expired
token is never again treated as valid.

# Credentials

The Credentials interface isolates the accepted username/password pair
from the gate's control flow. StaticCredentials is the one concrete
implementation and compares in constant time.
*/
package session
