// Copyright (c) 2026 Mealvote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Logging

WithLogging wraps a handler func with start/completion slog lines carrying
a per-request uuid, method, path, client IP, and duration.

# JSON Helpers

  - JSONResponse: encode any value with a status code
  - ErrorResponse: write {"error": message} with a status code
  - ParseJSONBody: decode a request body into a struct

# CORS

CORS wraps the whole mux and answers OPTIONS preflights. The browser client
is served from a different origin during development.

# Client IP

GetClientIP resolves the caller address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr.
*/
package middleware
