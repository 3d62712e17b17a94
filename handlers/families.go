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

type FamilyHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

// NewFamilyHandler accepts a nil db: the store may be down at startup,
// in which case every operation answers 500 until it comes back.
func NewFamilyHandler(db *sql.DB, cfg cliparse.Config) *FamilyHandler {
	return &FamilyHandler{db: db, cfg: cfg}
}

const familyColumns = `family_id, family_sr_no, family_name, head_of_family, community_name, zone_no, contact_phone`

// AllFamilies handles GET /api/allFamilies
func (h *FamilyHandler) AllFamilies(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "DB not connected")
		return
	}

	rows, err := h.db.Query(`
		SELECT ` + familyColumns + `
		FROM family_groups
		ORDER BY family_id
	`)
	if err != nil {
		slog.Error("failed to query families", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}
	defer rows.Close()

	families, err := scanFamilies(rows)
	if err != nil {
		slog.Error("failed to scan families", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FamiliesResponse{Results: families})
}

// FamilyBySr handles GET /api/familyBySr?sr=<serial>
// A serial with no match is a successful {found:false}, not an error.
func (h *FamilyHandler) FamilyBySr(w http.ResponseWriter, r *http.Request) {
	sr := r.URL.Query().Get("sr")
	if sr == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "missing sr")
		return
	}

	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "DB not connected")
		return
	}

	var family models.Family
	err := h.db.QueryRow(`
		SELECT `+familyColumns+`
		FROM family_groups
		WHERE family_sr_no = $1
	`, sr).Scan(
		&family.FamilyID, &family.FamilySrNo, &family.FamilyName,
		&family.HeadOfFamily, &family.CommunityName, &family.ZoneNo,
		&family.ContactPhone,
	)
	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, models.FamilyLookupResponse{Found: false})
		return
	}
	if err != nil {
		slog.Error("failed to query family by serial", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, family_id, sr_no_in_family, full_name, relation, phone
		FROM family_members
		WHERE family_id = $1
		ORDER BY sr_no_in_family
	`, family.FamilyID)
	if err != nil {
		slog.Error("failed to query family members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.FamilyID, &m.SrNoInFamily, &m.FullName, &m.Relation, &m.Phone); err != nil {
			slog.Error("failed to scan family member", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
			return
		}
		members = append(members, m)
	}

	middleware.JSONResponse(w, http.StatusOK, models.FamilyLookupResponse{
		Found:   true,
		Family:  &family,
		Members: members,
	})
}

// FamiliesByHead handles GET /api/familiesByHead?q=<substring>
// Case-insensitive substring match on head_of_family, capped rows.
func (h *FamilyHandler) FamiliesByHead(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "missing q")
		return
	}

	if h.db == nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "DB not connected")
		return
	}

	rows, err := h.db.Query(`
		SELECT `+familyColumns+`
		FROM family_groups
		WHERE LOWER(head_of_family) LIKE '%' || LOWER($1) || '%'
		ORDER BY family_id
		LIMIT 200
	`, q)
	if err != nil {
		slog.Error("failed to query families by head", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}
	defer rows.Close()

	families, err := scanFamilies(rows)
	if err != nil {
		slog.Error("failed to scan families by head", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FamiliesResponse{Results: families})
}

func scanFamilies(rows *sql.Rows) ([]models.Family, error) {
	families := []models.Family{}
	for rows.Next() {
		var f models.Family
		if err := rows.Scan(
			&f.FamilyID, &f.FamilySrNo, &f.FamilyName, &f.HeadOfFamily,
			&f.CommunityName, &f.ZoneNo, &f.ContactPhone,
		); err != nil {
			return nil, err
		}
		families = append(families, f)
	}
	return families, rows.Err()
}
