// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetMaxOpenConns(1)

	return conn
}

func TestCreateSchema(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	// All four tables exist and are queryable
	for _, table := range []string{"users", "dishes", "votes", "settings"} {
		var count int
		if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Errorf("table %s not queryable: %v", table, err)
		}
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("first CreateSchema failed: %v", err)
	}
	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("second CreateSchema failed: %v", err)
	}

	// Seed row stays single after repeated runs
	var count int
	err := conn.QueryRow("SELECT COUNT(*) FROM settings WHERE key = 'menus_locked'").Scan(&count)
	if err != nil {
		t.Fatalf("failed to count seed rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 menus_locked row, got %d", count)
	}
}

func TestCreateSchema_SeedsUnlocked(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	var value string
	err := conn.QueryRow("SELECT value FROM settings WHERE key = 'menus_locked'").Scan(&value)
	if err != nil {
		t.Fatalf("failed to read seed value: %v", err)
	}
	if value != "0" {
		t.Errorf("expected menus_locked seeded to %q, got %q", "0", value)
	}
}

func TestCreateSchema_UnsupportedType(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(conn, "mysql"); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestVoteUniqueConstraint(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	_, err := conn.Exec(`INSERT INTO users (phone, name) VALUES ('123', 'Ala')`)
	if err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}
	_, err = conn.Exec(`INSERT INTO dishes (name, course) VALUES ('Zupa', 'first'), ('Kotlet', 'first')`)
	if err != nil {
		t.Fatalf("failed to insert dishes: %v", err)
	}

	_, err = conn.Exec(`INSERT INTO votes (user_id, dish_id, course) VALUES (1, 1, 'first')`)
	if err != nil {
		t.Fatalf("failed to insert vote: %v", err)
	}

	// A second plain insert for the same (user, course) must collide
	_, err = conn.Exec(`INSERT INTO votes (user_id, dish_id, course) VALUES (1, 2, 'first')`)
	if err == nil {
		t.Fatal("expected unique constraint violation for duplicate (user_id, course)")
	}
}

func TestCourseCheckConstraint(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	_, err := conn.Exec(`INSERT INTO dishes (name, course) VALUES ('Deser', 'third')`)
	if err == nil {
		t.Fatal("expected check constraint violation for invalid course")
	}
}
