// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin authentication for the contest backend.

# PIN Login

The administrator logs in with the configured PIN:

	if err := auth.CheckPIN(submitted, cfg.AdminPIN); err != nil { ... }

Comparison is constant time.

# Session Tokens

A successful login yields a self-validating HMAC token:

	token, expiresAt := auth.GenerateSessionToken(cfg.AdminSessionSalt, time.Now())

The token is "<expiry-unix>.<hmac-sha256>" with a URL-safe base64
signature. Validation recomputes the signature, so no session state is
stored server-side:

	err := auth.ValidateSessionToken(token, cfg.AdminSessionSalt, time.Now())

Tokens expire after SessionTTL (24 hours). Handlers turn the validation
result into the boolean isAdmin capability the voting engine requires.
*/
package auth
