// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/obiady/mealvote/cliparse"
	"github.com/obiady/mealvote/db"
)

// SetupTestDB creates a fresh sqlite database in a temp dir with the full
// schema and seed data.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Single connection keeps sqlite writes predictable under test
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3180,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminPhone:   cliparse.DefaultAdminPhone,
	}
}

// CreateTestUser inserts a user and returns its id
func CreateTestUser(t *testing.T, conn *sql.DB, phone, name string, isAdmin bool) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO users (phone, name, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id
	`, phone, name, isAdmin).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestDish inserts a dish and returns its id
func CreateTestDish(t *testing.T, conn *sql.DB, name, course string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO dishes (name, course)
		VALUES ($1, $2)
		RETURNING id
	`, name, course).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test dish: %v", err)
	}

	return id
}

// CreateTestVote inserts a vote row directly, bypassing the handler
func CreateTestVote(t *testing.T, conn *sql.DB, userID, dishID int64, course string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO votes (user_id, dish_id, course)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userID, dishID, course).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
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
