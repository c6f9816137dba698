// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/vota-locales/auth"
	"github.com/danielhkuo/vota-locales/cliparse"
	"github.com/danielhkuo/vota-locales/db"
	"github.com/danielhkuo/vota-locales/metrics"
	"github.com/danielhkuo/vota-locales/store"
	"github.com/danielhkuo/vota-locales/voting"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each test gets its own database; the single-connection limit
// keeps the in-memory store alive and consistent for the test's
// lifetime.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
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
		Port:             3328,
		DatabaseType:     "sqlite",
		AdminPIN:         "1234",
		AdminSessionSalt: "test-session-salt",
		ServiceRoleKey:   "test-service-role-key",
		Blacklist:        []string{"93928", "6245893"},
	}
}

// NewTestService assembles a voting engine over the given database with
// a throwaway metrics registry and no-op collaborators.
func NewTestService(t *testing.T, conn *sql.DB, cfg cliparse.Config) *voting.Service {
	t.Helper()

	return voting.New(store.NewSQLStore(conn), voting.Options{
		Blacklist:      cfg.Blacklist,
		ServiceRoleKey: cfg.ServiceRoleKey,
		Metrics:        metrics.NewVoteMetrics("test", prometheus.NewRegistry()),
	})
}

// AdminToken returns a valid admin session token for the test config
func AdminToken(cfg cliparse.Config) string {
	token, _ := auth.GenerateSessionToken(cfg.AdminSessionSalt, time.Now())
	return token
}

// CreateTestLocale inserts a locale and returns its ID
func CreateTestLocale(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO locales (id, name, description, image_url, created_at)
		VALUES ($1, $2, 'Test locale', '/logo.png', $3)
	`, id, name, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test locale: %v", err)
	}

	return id
}

// AddTestVote inserts a vote directly, bypassing the ingestion rules
func AddTestVote(t *testing.T, conn *sql.DB, localeID, voterName, voterContact string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO votes (id, locale_id, voter_name, voter_contact, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, localeID, voterName, voterContact, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return id
}

// AddTestVoteAt inserts a vote with an explicit creation time
func AddTestVoteAt(t *testing.T, conn *sql.DB, localeID, voterName, voterContact string, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO votes (id, locale_id, voter_name, voter_contact, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, localeID, voterName, voterContact, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return id
}

// CountLocaleVotes returns how many votes a locale currently has
func CountLocaleVotes(t *testing.T, conn *sql.DB, localeID string) int {
	t.Helper()

	var count int
	err := conn.QueryRow(`SELECT COUNT(*) FROM votes WHERE locale_id = $1`, localeID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return count
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
