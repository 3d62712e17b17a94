// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types for the
parish-directory API.

# Domain Types

Family mirrors one family_groups row; the display serial family_sr_no
is the external lookup key, distinct from the internal family_id.
Member mirrors one family_members row. MemberWithFamily carries the two
parent-family fields merged listings need.

# Envelope Types

Every list endpoint responds with a {results} envelope
(FamiliesResponse, MembersResponse) whose array is always present
(empty, never null). FamilyLookupResponse models the
found:false / found:true shape of the serial lookup. ErrorResponse is
the single-field {error} body used for every 4xx/5xx.

Nullable columns use pointer fields and omitempty so absent data stays
absent in JSON rather than turning into empty strings.
*/
package models
