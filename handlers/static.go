// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/parishdir/parishdir/middleware"
	"github.com/parishdir/parishdir/session"
)

// StaticHandler serves the built admin client and decides what an
// unmatched non-API path gets: an asset verbatim, the dashboard for an
// authenticated caller, or a bounce to the login page.
type StaticHandler struct {
	dir      string
	sessions *session.Store
}

func NewStaticHandler(dir string, sessions *session.Store) *StaticHandler {
	return &StaticHandler{dir: dir, sessions: sessions}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean before touching the filesystem so ".." cannot escape dir
	p := path.Clean("/" + r.URL.Path)

	if p != "/" {
		if file, ok := h.asset(p); ok {
			http.ServeFile(w, r, file)
			return
		}
	}

	// No asset at this path: landing page or login bounce
	if h.authenticated(r) {
		if file, ok := h.asset("/dashboard.html"); ok {
			http.ServeFile(w, r, file)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("parish-directory API v1"))
		return
	}

	if middleware.WantsJSON(r) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	// Asking for the login page while it is missing must not loop
	if p == LoginPage {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, LoginPage, http.StatusFound)
}

// asset resolves a cleaned request path to a regular file under dir.
func (h *StaticHandler) asset(p string) (string, bool) {
	if h.dir == "" {
		return "", false
	}
	file := filepath.Join(h.dir, filepath.FromSlash(p))
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return "", false
	}
	return file, true
}

func (h *StaticHandler) authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return false
	}
	_, ok := h.sessions.Get(cookie.Value)
	return ok
}
