// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Precedence

CLI flags win over environment variables, which win over defaults:

	go run main.go -p 8080 -t postgres -d "postgres://..."

Environment equivalents: PORT, DATABASE_TYPE, DATABASE_URL, ADMIN_PHONE.

# Settings

  - Port (-p / PORT): server port, default 3180
  - DatabaseType (-t / DATABASE_TYPE): "sqlite" (default) or "postgres"
  - DatabaseURL (-d / DATABASE_URL): connection string; defaults to the
    meals.db sqlite file, required when the type is postgres
  - AdminPhone (-admin-phone / ADMIN_PHONE): bootstrap admin phone,
    default DefaultAdminPhone
*/
package cliparse
