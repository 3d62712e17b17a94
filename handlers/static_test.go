// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/parishdir/parishdir/models"
	"github.com/parishdir/parishdir/testutil"
)

func writeAsset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write asset %s: %v", name, err)
	}
}

func TestStaticServesExistingAsset(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "login.html", "<html>login</html>")
	writeAsset(t, dir, "app.js", "console.log('hi')")

	sessions := testutil.NewTestSessions()
	h := NewStaticHandler(dir, sessions)

	// Assets are served verbatim with or without a session
	for _, p := range []string{"/login.html", "/app.js"} {
		req := testutil.MakeRequest("GET", p, nil, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Body.Len() == 0 {
			t.Errorf("asset %s served empty", p)
		}
	}
}

func TestStaticRedirectsUnauthenticated(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "login.html", "<html>login</html>")

	sessions := testutil.NewTestSessions()
	h := NewStaticHandler(dir, sessions)

	for _, p := range []string{"/", "/dashboard", "/families/list"} {
		req := testutil.MakeRequest("GET", p, nil, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Errorf("GET %s status = %d, want 302", p, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login.html" {
			t.Errorf("GET %s redirects to %q, want /login.html", p, loc)
		}
	}
}

func TestStaticJSONNegotiation(t *testing.T) {
	sessions := testutil.NewTestSessions()
	h := NewStaticHandler(t.TempDir(), sessions)

	req := testutil.MakeRequest("GET", "/dashboard", nil, map[string]string{
		"Accept": "application/json",
	})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	// A JSON-speaking client gets a structured 401 instead of a redirect
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "not authenticated" {
		t.Errorf("error = %q, want 'not authenticated'", resp.Error)
	}
}

func TestStaticServesDashboardWhenAuthenticated(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "dashboard.html", "<html>dashboard</html>")

	sessions := testutil.NewTestSessions()
	h := NewStaticHandler(dir, sessions)

	req := testutil.MakeRequest("GET", "/dashboard", nil, nil)
	req.AddCookie(testutil.LoginCookie(sessions))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "<html>dashboard</html>" {
		t.Errorf("body = %q, want the dashboard asset", w.Body.String())
	}
}

func TestStaticAuthenticatedWithoutAssets(t *testing.T) {
	sessions := testutil.NewTestSessions()
	h := NewStaticHandler("", sessions)

	req := testutil.MakeRequest("GET", "/", nil, nil)
	req.AddCookie(testutil.LoginCookie(sessions))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "parish-directory API v1" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestStaticMissingLoginPageDoesNotLoop(t *testing.T) {
	sessions := testutil.NewTestSessions()
	h := NewStaticHandler(t.TempDir(), sessions)

	req := testutil.MakeRequest("GET", "/login.html", nil, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 (not a redirect loop)", w.Code)
	}
}

func TestStaticRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "login.html", "<html>login</html>")

	// Plant a file just outside the asset dir
	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatalf("Failed to write outside file: %v", err)
	}
	defer os.Remove(outside)

	sessions := testutil.NewTestSessions()
	h := NewStaticHandler(dir, sessions)

	req := testutil.MakeRequest("GET", "/../secret.txt", nil, nil)
	req.URL.Path = "/../secret.txt" // bypass client-side cleaning
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code == http.StatusOK && w.Body.String() == "secret" {
		t.Error("path traversal escaped the asset directory")
	}
}
