// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/parishdir/parishdir/cliparse"
	"github.com/parishdir/parishdir/db"
	"github.com/parishdir/parishdir/models"
	"github.com/parishdir/parishdir/session"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own database, named after the test so
// parallel tests never share state.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the shared in-memory database alive
	// for the duration of the test
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3000,
		DatabaseType:  "sqlite",
		PoolSize:      1,
		StaticDir:     "", // no assets in tests unless a test sets one
		SessionSecret: "test-session-secret",
		SessionMaxAge: time.Hour,
	}
}

// NewTestSessions returns a session store matching GetTestConfig
func NewTestSessions() *session.Store {
	return session.NewStore("test-session-secret", time.Hour)
}

// TestCredentials is the credential pair accepted in tests
var TestCredentials = session.StaticCredentials{Username: "admin", Password: "ian.rdr4"}

// SeedDirectory loads a small deterministic congregation: three
// families with members inserted deliberately out of serial order, so
// ordering assertions mean something.
func SeedDirectory(t *testing.T, conn *sql.DB) {
	t.Helper()

	families := []struct {
		id        int64
		srNo      string
		name      string
		head      string
		community *string
		zone      *int64
		phone     *string
	}{
		{1, "001", "Fernandes", "Anthony Fernandes", ptr("St. Anthony Ward"), ptrInt(1), ptr("9822000001")},
		{2, "002", "D'Souza", "Maria D'Souza", ptr("St. Francis Ward"), ptrInt(2), nil},
		{3, "010", "Gonsalves", "Peter Gonsalves", ptr("St. Anthony Ward"), ptrInt(1), ptr("9822000003")},
	}
	for _, f := range families {
		_, err := conn.Exec(`
			INSERT INTO family_groups (family_id, family_sr_no, family_name, head_of_family, community_name, zone_no, contact_phone)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, f.id, f.srNo, f.name, f.head, f.community, f.zone, f.phone)
		if err != nil {
			t.Fatalf("Failed to seed family %s: %v", f.srNo, err)
		}
	}

	members := []struct {
		id       int64
		familyID int64
		srNo     int64
		name     string
		relation *string
		phone    *string
	}{
		// Family 1, inserted out of order on purpose
		{103, 1, 3, "Riya Fernandes", ptr("daughter"), nil},
		{101, 1, 1, "Anthony Fernandes", ptr("head"), ptr("9822000001")},
		{102, 1, 2, "Carol Fernandes", ptr("wife"), nil},
		// Family 3 before family 2, also out of order
		{302, 3, 2, "Anita Gonsalves", ptr("wife"), nil},
		{301, 3, 1, "Peter Gonsalves", ptr("head"), ptr("9822000003")},
		// Family 2
		{202, 2, 2, "Savio D'Souza", ptr("son"), nil},
		{201, 2, 1, "Maria D'Souza", ptr("head"), nil},
	}
	for _, m := range members {
		_, err := conn.Exec(`
			INSERT INTO family_members (id, family_id, sr_no_in_family, full_name, relation, phone)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, m.id, m.familyID, m.srNo, m.name, m.relation, m.phone)
		if err != nil {
			t.Fatalf("Failed to seed member %s: %v", m.name, err)
		}
	}
}

// LoginCookie creates a live session in the store and returns the
// cookie a logged-in client would present.
func LoginCookie(sessions *session.Store) *http.Cookie {
	token := sessions.Create("admin", models.RoleAdmin)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

func ptr(s string) *string { return &s }

func ptrInt(n int64) *int64 { return &n }
