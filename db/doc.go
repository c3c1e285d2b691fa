// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles backend selection and database schema creation.

# Opening a Connection

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg) // sqlite (modernc.org/sqlite) or postgres (lib/pq)

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for tables and indexes,
and ON CONFLICT DO NOTHING for the settings seed.

# Tables

  - users: one row per phone number, with the admin flag
  - dishes: menu entries, one of two courses
  - votes: one row per (user, course), overwritten on re-vote
  - settings: free-form key/value pairs (menus_locked, survey_date)

# Relationships

	users  1──* votes
	dishes 1──* votes

Foreign keys are declarative only; handlers perform explicit cascading
deletes because enforcement differs between the two backends.

# Seed Data

menus_locked is seeded to "0" so the settings map is never empty.
*/
package db
