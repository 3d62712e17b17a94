// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/parishdir/parishdir/models"
	"github.com/parishdir/parishdir/session"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func TestBasicAuthDisabled(t *testing.T) {
	handler := BasicAuth("", "", http.HandlerFunc(okHandler))

	req := httptest.NewRequest("GET", "/api/allFamilies", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("disabled gate denied request: status %d", w.Code)
	}
}

func TestBasicAuthEnabled(t *testing.T) {
	handler := BasicAuth("gate", "keeper", http.HandlerFunc(okHandler))

	tests := []struct {
		name       string
		path       string
		user       string
		pass       string
		withHeader bool
		wantStatus int
	}{
		{"valid pair", "/api/allFamilies", "gate", "keeper", true, http.StatusOK},
		{"wrong password", "/api/allFamilies", "gate", "wrong", true, http.StatusUnauthorized},
		{"wrong user", "/api/allFamilies", "other", "keeper", true, http.StatusUnauthorized},
		{"missing header", "/api/allFamilies", "", "", false, http.StatusUnauthorized},
		{"static asset gated", "/login.html", "", "", false, http.StatusUnauthorized},
		{"ping exempt", "/ping", "", "", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.withHeader {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if got := w.Header().Get("WWW-Authenticate"); got == "" {
					t.Error("401 without WWW-Authenticate header")
				}
				var body models.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
					t.Fatalf("401 body is not the error envelope: %v", err)
				}
				if body.Error != "unauthorized" {
					t.Errorf("error = %q, want unauthorized", body.Error)
				}
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	sessions := session.NewStore("test-secret", time.Hour)
	valid := sessions.Create("admin", models.RoleAdmin)
	destroyed := sessions.Create("admin", models.RoleAdmin)
	sessions.Destroy(destroyed)

	handler := RequireSession(sessions, okHandler)

	tests := []struct {
		name       string
		cookie     string
		wantStatus int
	}{
		{"valid session", valid, http.StatusOK},
		{"no cookie", "", http.StatusUnauthorized},
		{"garbage token", "garbage", http.StatusUnauthorized},
		{"destroyed session", destroyed, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/allFamilies", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			handler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireSessionExpired(t *testing.T) {
	sessions := session.NewStore("test-secret", -time.Minute)
	expired := sessions.Create("admin", models.RoleAdmin)

	handler := RequireSession(sessions, okHandler)

	req := httptest.NewRequest("GET", "/api/allMembers", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: expired})
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for expired session", w.Code)
	}
}

func TestErrorResponseEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusInternalServerError, "database error")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "database error" {
		t.Errorf("error = %v, want 'database error'", body["error"])
	}
	if len(body) != 1 {
		t.Errorf("envelope has extra fields: %v", body)
	}
}

func TestWantsJSON(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{"application/json", true},
		{"application/json, text/plain", true},
		{"text/html,application/xhtml+xml", false},
		{"", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/dashboard", nil)
		if tt.accept != "" {
			req.Header.Set("Accept", tt.accept)
		}
		if got := WantsJSON(req); got != tt.want {
			t.Errorf("WantsJSON(Accept=%q) = %v, want %v", tt.accept, got, tt.want)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(okHandler))

	req := httptest.NewRequest("OPTIONS", "/api/allFamilies", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if w.Body.String() == "ok" {
		t.Error("preflight reached the wrapped handler")
	}
}
