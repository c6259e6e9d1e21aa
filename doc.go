// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollbooth server.

Pollbooth is a minimal anonymous polling service: visitors browse a
list of polls, cast one vote per poll, and watch results update live.
Identity is a per-browser cookie; votes are plain files on disk; poll
definitions live in an operator-edited JSON file that is re-read on
every request.

# Starting the Server

	go run main.go

Or with flags:

	go run main.go -p 8080 -c config.json -d data

# Configuration

Optional settings (flag / env):

  - PORT (-p): Server port (default: 8080)
  - POLL_CONFIG (-c): Poll configuration file (default: config.json)
  - POLL_DATA_DIR (-d): Vote record directory (default: data)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - identity: anonymous per-browser UUID cookie
  - catalog: poll definitions, re-read per request
  - votestore: one file per (poll, user) vote, lock-and-rename writes
  - tally: counts and percentages derived from record names
  - handlers: HTML pages and the JSON results endpoint
  - router: route definitions using Go 1.22+ routing
  - middleware: request logging, JSON helpers
  - models: domain and response types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
