// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Mealvote API server.

Mealvote is a small internal meal-survey service: users log in with a phone
number and a name, pick one dish per course (first and second), and an
administrator curates the dish list, manages users, locks voting, and sets
the survey date.

# Starting the Server

The server runs on sqlite by default and needs no configuration:

	go run main.go

Or against postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

A .env file in the working directory is loaded before flags are parsed.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3180)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): connection string; defaults to the meals.db file,
    required for postgres
  - ADMIN_PHONE (-admin-phone): bootstrap admin phone (default: 111111111)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, dishes, votes, users, settings)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Backend selection and schema creation
  - cliparse: Configuration parsing
  - client: typed Go client for the API, including settings polling

See package documentation for each component.
*/
package main
