// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - ConfigPath: Poll configuration file (default: config.json)
  - DataDir: Directory holding vote records (default: data)

# CLI Flags

	-p  Server port
	-c  Poll configuration file path
	-d  Vote data directory

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	POLL_CONFIG   → -c
	POLL_DATA_DIR → -d

CLI flags take precedence over environment variables. Every setting has
a default, so the server starts with no flags at all.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	mux := router.NewRouter(cfg)
*/
package cliparse
