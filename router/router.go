// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/parishdir/parishdir/cliparse"
	"github.com/parishdir/parishdir/handlers"
	"github.com/parishdir/parishdir/middleware"
	"github.com/parishdir/parishdir/session"
)

func NewRouter(db *sql.DB, sessions *session.Store, creds session.Credentials, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(sessions, creds, cfg)
	familyHandler := handlers.NewFamilyHandler(db, cfg)
	memberHandler := handlers.NewMemberHandler(db, cfg)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir, sessions)

	// Data routes require a live session
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(sessions, h))
	}

	// Health check (admitted regardless of auth or store state)
	mux.HandleFunc("GET /ping", authHandler.Ping)

	// Session lifecycle
	mux.HandleFunc("POST /api/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /api/logout", middleware.WithLogging(authHandler.Logout))

	// Directory lookups
	mux.HandleFunc("GET /api/allFamilies", protected(familyHandler.AllFamilies))
	mux.HandleFunc("GET /api/allMembers", protected(memberHandler.AllMembers))
	mux.HandleFunc("GET /api/familyBySr", protected(familyHandler.FamilyBySr))
	mux.HandleFunc("GET /api/memberByName", protected(memberHandler.MembersByName))
	mux.HandleFunc("GET /api/familiesByHead", protected(familyHandler.FamiliesByHead))

	// Unmatched API paths get a structured 404, never an HTML page
	mux.HandleFunc("/api/", middleware.WithLogging(apiNotFound))
	mux.HandleFunc("/ping/", middleware.WithLogging(apiNotFound))

	// Everything else: assets, dashboard, or login bounce
	mux.Handle("/", staticHandler)

	// Gate order: basic auth first (covers assets too), then CORS,
	// then routing
	return middleware.BasicAuth(cfg.BasicAuthUser, cfg.BasicAuthPass, middleware.CORS(mux))
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusNotFound, "API endpoint not found")
}
