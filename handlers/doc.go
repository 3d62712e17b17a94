// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers for the parish-directory
API.

# Handler Groups

  - AuthHandler: ping, login, logout (session lifecycle)
  - FamilyHandler: allFamilies, familyBySr, familiesByHead
  - MemberHandler: allMembers, memberByName
  - StaticHandler: admin client assets and the page fallback rules

# Store Failure Semantics

Every directory handler accepts a nil *sql.DB. A nil handle answers
500 {error:"DB not connected"}; a failing query answers
500 {error:"database error"} with the real error only in the log. A
lookup that simply matches nothing is a successful empty result
(or {found:false}), never an error.

# Ordering

Family listings order by family_id. Wherever members from multiple
families are merged, rows order by (family_id, sr_no_in_family), so
identical inputs always produce identical output.
*/
package handlers
