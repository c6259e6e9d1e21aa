// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared across handlers.

# Logging

WithLogging wraps a handler with slog request start/completion logging:

	mux.HandleFunc("GET /", middleware.WithLogging(handler.ListPolls))

# JSON Helpers

JSONResponse writes a status code and JSON-encodes a body.
APIErrorResponse writes the results endpoint's {"success":false,
"error":...} body; it deliberately answers HTTP 200 because the
client-side refresh script branches on the success flag, not on the
status code.
*/
package middleware
