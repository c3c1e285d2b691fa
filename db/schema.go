// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application and seeds the
// default settings row. Safe to call multiple times - uses IF NOT EXISTS
// and conflict-free inserts.
func CreateSchema(db *sql.DB, dbType string) error {
	schema, ok := schemas[dbType]
	if !ok {
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Voting starts unlocked; GET /settings always has this key.
	if _, err := db.Exec(seedSettings); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	return nil
}

var schemas = map[string]string{
	"sqlite":   schemaSQLite,
	"postgres": schemaPostgres,
}

const seedSettings = `
INSERT INTO settings (key, value) VALUES ('menus_locked', '0')
ON CONFLICT (key) DO NOTHING;
`

// Foreign keys below are declarative. Handlers delete dependent votes
// explicitly because cascade enforcement differs between the two backends.

const schemaSQLite = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    phone TEXT UNIQUE NOT NULL,
    name TEXT NOT NULL,
    is_admin INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Dishes
CREATE TABLE IF NOT EXISTS dishes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    course TEXT NOT NULL CHECK (course IN ('first', 'second')),
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_dishes_course ON dishes(course);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(id),
    dish_id INTEGER NOT NULL REFERENCES dishes(id),
    course TEXT NOT NULL CHECK (course IN ('first', 'second')),
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (user_id, course)
);

CREATE INDEX IF NOT EXISTS idx_votes_user_id ON votes(user_id);
CREATE INDEX IF NOT EXISTS idx_votes_dish_id ON votes(dish_id);

-- Settings
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const schemaPostgres = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    phone TEXT UNIQUE NOT NULL,
    name TEXT NOT NULL,
    is_admin BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Dishes
CREATE TABLE IF NOT EXISTS dishes (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    course TEXT NOT NULL CHECK (course IN ('first', 'second')),
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_dishes_course ON dishes(course);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    dish_id INTEGER NOT NULL REFERENCES dishes(id),
    course TEXT NOT NULL CHECK (course IN ('first', 'second')),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (user_id, course)
);

CREATE INDEX IF NOT EXISTS idx_votes_user_id ON votes(user_id);
CREATE INDEX IF NOT EXISTS idx_votes_dish_id ON votes(dish_id);

-- Settings
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`
