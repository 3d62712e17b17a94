// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/parishdir/parishdir/cliparse"
	"github.com/parishdir/parishdir/middleware"
	"github.com/parishdir/parishdir/models"
	"github.com/parishdir/parishdir/session"
)

// LoginRedirect is where the client goes after a successful login.
const LoginRedirect = "/dashboard"

// LoginPage is where denied page navigation is sent.
const LoginPage = "/login.html"

type AuthHandler struct {
	sessions *session.Store
	creds    session.Credentials
	cfg      cliparse.Config
}

func NewAuthHandler(sessions *session.Store, creds session.Credentials, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{sessions: sessions, creds: creds, cfg: cfg}
}

// Ping handles GET /ping
// Always admitted: no basic auth, no session, no store required.
func (h *AuthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.PingResponse{
		OK: true,
		TS: time.Now().UnixMilli(),
	})
}

// Login handles POST /api/login
// Validates the one configured credential pair and issues a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.LoginResponse{
			Success: false,
			Message: "username and password required",
		})
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.LoginResponse{
			Success: false,
			Message: "username and password required",
		})
		return
	}

	if !h.creds.Verify(req.Username, req.Password) {
		slog.Info("login rejected", "username", req.Username)
		middleware.JSONResponse(w, http.StatusUnauthorized, models.LoginResponse{
			Success: false,
			Message: "invalid username or password",
		})
		return
	}

	token := h.sessions.Create(req.Username, models.RoleAdmin)
	http.SetCookie(w, h.sessionCookie(token, int(h.cfg.SessionMaxAge.Seconds())))

	slog.Info("login succeeded", "username", req.Username)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success:  true,
		Redirect: LoginRedirect,
	})
}

// Logout handles POST /api/logout
// Destroys the presented session and clears the cookie. Destruction
// completes before the response is written, and logging out without a
// session still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Destroy(cookie.Value)
	}

	http.SetCookie(w, h.sessionCookie("", -1))

	middleware.JSONResponse(w, http.StatusOK, models.LogoutResponse{
		OK:       true,
		Redirect: LoginPage,
	})
}

func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.Production,
	}
}
