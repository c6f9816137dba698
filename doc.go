// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the vota-locales API server.

vota-locales is the backend for a local-business voting contest:
participants ("locales") collect one vote per voter contact, the public
sees a live ranking, and an administrator can purge fraudulent votes and
bulk-adjust counts.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:votes.db ADMIN_PIN=... ADMIN_SESSION_SALT=... go run main.go

Or with flags:

	go run main.go -p 3328 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_PIN (-admin-pin): Admin login PIN
  - ADMIN_SESSION_SALT (-session-salt): Secret for admin session HMAC

Optional settings:

  - PORT (-p): Server port (default: 3328)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SERVICE_ROLE_KEY: Elevated credential required by vote removal
  - BLACKLISTED_CONTACTS: Overrides the shipped contact blacklist
  - REDIS_URL: Enables page-cache invalidation
  - KAFKA_BROKERS, KAFKA_TOPIC: Enables the vote audit stream

# Architecture

The server uses a handler-based architecture with dependency injection:

  - voting: The vote integrity and ranking engine (the core)
  - store: Store gateway interface and SQL implementation
  - handlers: HTTP request handlers (votes, ranking, locales, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and error codes
  - auth: Admin PIN login and session tokens
  - db: Schema creation
  - cliparse: Configuration parsing
  - cache, event, metrics: Optional collaborators (redis, kafka,
    prometheus)

See package documentation for each component.
*/
package main
