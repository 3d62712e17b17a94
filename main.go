// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/parishdir/parishdir/cliparse"
	"github.com/parishdir/parishdir/db"
	"github.com/parishdir/parishdir/router"
	"github.com/parishdir/parishdir/session"
)

func main() {
	// Load .env if present; a missing file is fine
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	if cfg.SessionSecretDefaulted {
		slog.Warn("SESSION_SECRET not set, using development fallback")
	}

	// Connect to the directory store. Failure is not fatal: the server
	// keeps serving and every store-backed endpoint answers with a
	// generic 500 until the database is reachable again.
	var dbConn *sql.DB
	dbConn, err = db.Connect(cfg)
	if err != nil {
		slog.Error("database unavailable, directory endpoints will fail", "error", err)
		dbConn = nil
	} else {
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
		} else {
			var families, members int64
			err1 := dbConn.QueryRow(`SELECT COUNT(*) FROM family_groups`).Scan(&families)
			err2 := dbConn.QueryRow(`SELECT COUNT(*) FROM family_members`).Scan(&members)
			if err1 == nil && err2 == nil {
				slog.Info("directory store ready",
					"families", humanize.Comma(families),
					"members", humanize.Comma(members))
			}
		}
	}

	// Session store and the single accepted credential pair
	sessions := session.NewStore(cfg.SessionSecret, cfg.SessionMaxAge)
	creds := session.StaticCredentials{Username: "admin", Password: "ian.rdr4"}

	// Create router
	handler := router.NewRouter(dbConn, sessions, creds, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "basic_auth", cfg.BasicAuthUser != "", "production", cfg.Production)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
