// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP surface using Go 1.22+ method routing.

NewRouter builds the full ServeMux:

	mux := router.NewRouter(db, cfg)

Every resource route is wrapped in middleware.WithLogging. /health and the
root banner stay unwrapped so probes don't flood the log.
*/
package router
