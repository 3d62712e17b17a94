// Copyright (c) 2026 The parish-directory Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "parish_session"

var ErrInvalidToken = errors.New("invalid token format")

// Session is the server-side record behind one issued token.
type Session struct {
	Username  string
	Role      string
	ExpiresAt time.Time
}

// Credentials decides whether a login attempt is the accepted pair.
// The concrete implementation today is a single static entry; the gate
// never needs to know that.
type Credentials interface {
	Verify(username, password string) bool
}

// StaticCredentials accepts exactly one username/password pair.
type StaticCredentials struct {
	Username string
	Password string
}

func (c StaticCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))
	return userOK == 1 && passOK == 1
}

// Store issues, validates, and destroys signed session tokens. Safe
// for concurrent use; sessions are independent so a single RWMutex over
// the map is all the coordination required.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
	secret   []byte
	maxAge   time.Duration
	now      func() time.Time
}

func NewStore(secret string, maxAge time.Duration) *Store {
	return &Store{
		sessions: make(map[string]Session),
		secret:   []byte(secret),
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Create registers a fresh session and returns its signed token.
func (s *Store) Create(username, role string) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = Session{
		Username:  username,
		Role:      role,
		ExpiresAt: s.now().Add(s.maxAge),
	}
	s.mu.Unlock()

	return id + "." + s.sign(id)
}

// Get validates a token and returns its session. The signature check
// happens before any map lookup, so forged tokens never touch the
// store. Expired sessions are evicted and reported as absent.
func (s *Store) Get(token string) (Session, bool) {
	id, err := s.verify(token)
	if err != nil {
		return Session{}, false
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}

	if s.now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return Session{}, false
	}

	return sess, true
}

// Destroy removes the session behind a token. Destroying an absent or
// malformed token is a no-op: logout is idempotent.
func (s *Store) Destroy(token string) {
	id, err := s.verify(token)
	if err != nil {
		return
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions (expired entries linger
// until their next lookup).
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// sign computes the URL-safe HMAC-SHA256 signature for a session id
func (s *Store) sign(id string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(id))
	sum := h.Sum(nil)
	// URL-safe base64 and trimmed padding for a cleaner cookie value
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// verify splits a token into id and signature and checks the signature
func (s *Store) verify(token string) (string, error) {
	id, sig, ok := strings.Cut(token, ".")
	if !ok || id == "" {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(id))) {
		return "", ErrInvalidToken
	}
	return id, nil
}
