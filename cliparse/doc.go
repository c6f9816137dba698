// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (joho/godotenv),
then flags are parsed with environment-variable fallback. CLI flags take
precedence.

# Config Fields

  - Port: Server listen port (default: 3328)
  - DatabaseURL: Connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - AdminPIN: Admin login PIN (required)
  - AdminSessionSalt: Secret for admin session HMAC (required)
  - ServiceRoleKey: Elevated credential for vote removal (optional;
    removal requests fail with a configuration error while unset)
  - Blacklist: Barred contact identifiers (defaults to DefaultBlacklist)
  - RedisURL: Page-cache invalidation backend (optional)
  - KafkaBrokers, KafkaTopic: Vote audit stream (optional)

# Environment Variables

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	ADMIN_PIN            → -admin-pin
	ADMIN_SESSION_SALT   → -session-salt
	SERVICE_ROLE_KEY     → -service-role-key
	BLACKLISTED_CONTACTS → -blacklist (comma-separated)
	REDIS_URL            → -redis-url
	KAFKA_BROKERS        → -kafka-brokers (comma-separated)
	KAFKA_TOPIC          → -kafka-topic
*/
package cliparse
