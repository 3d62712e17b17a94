// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/parishdir/parishdir/cliparse"
	"github.com/parishdir/parishdir/middleware"
	"github.com/parishdir/parishdir/models"
)

type MemberHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMemberHandler(db *sql.DB, cfg cliparse.Config) *MemberHandler {
	return &MemberHandler{db: db, cfg: cfg}
}

// memberJoin merges each member with its parent family's display
// serial and head-of-family. Ordering is (family_id, sr_no_in_family)
// ascending wherever members from multiple families appear together.
const memberJoin = `
	SELECT m.id, m.family_id, m.sr_no_in_family, m.full_name, m.relation, m.phone,
	       f.family_sr_no, f.head_of_family
	FROM family_members m
	JOIN family_groups f ON f.family_id = m.family_id
`

// AllMembers handles GET /api/allMembers
func (h *MemberHandler) AllMembers(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "DB not connected")
		return
	}

	rows, err := h.db.Query(memberJoin + `
		ORDER BY m.family_id, m.sr_no_in_family
	`)
	if err != nil {
		slog.Error("failed to query members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}
	defer rows.Close()

	members, err := scanMembersWithFamily(rows)
	if err != nil {
		slog.Error("failed to scan members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MembersResponse{Results: members})
}

// MembersByName handles GET /api/memberByName?q=<substring>
// Case-insensitive substring match on the full name, capped at 500
// rows, in the same order as the full member listing.
func (h *MemberHandler) MembersByName(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "missing q")
		return
	}

	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "DB not connected")
		return
	}

	rows, err := h.db.Query(memberJoin+`
		WHERE LOWER(m.full_name) LIKE '%' || LOWER($1) || '%'
		ORDER BY m.family_id, m.sr_no_in_family
		LIMIT 500
	`, q)
	if err != nil {
		slog.Error("failed to query members by name", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}
	defer rows.Close()

	members, err := scanMembersWithFamily(rows)
	if err != nil {
		slog.Error("failed to scan members by name", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MembersResponse{Results: members})
}

func scanMembersWithFamily(rows *sql.Rows) ([]models.MemberWithFamily, error) {
	members := []models.MemberWithFamily{}
	for rows.Next() {
		var m models.MemberWithFamily
		if err := rows.Scan(
			&m.ID, &m.FamilyID, &m.SrNoInFamily, &m.FullName, &m.Relation, &m.Phone,
			&m.FamilySrNo, &m.HeadOfFamily,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
