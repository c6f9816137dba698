// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidPIN   = errors.New("invalid admin PIN")
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("expired session token")
)

// SessionTTL is how long an admin session token stays valid.
const SessionTTL = 24 * time.Hour

// CheckPIN compares the submitted PIN against the configured one in
// constant time.
func CheckPIN(pin, expected string) error {
	if !hmac.Equal([]byte(pin), []byte(expected)) {
		return ErrInvalidPIN
	}
	return nil
}

// GenerateSessionToken creates a self-validating admin token: the
// expiry timestamp plus an HMAC over it. No session state is stored;
// validation recomputes the signature.
func GenerateSessionToken(salt string, now time.Time) (string, time.Time) {
	expiresAt := now.Add(SessionTTL)
	payload := strconv.FormatInt(expiresAt.Unix(), 10)
	return payload + "." + sign(payload, salt), expiresAt
}

// ValidateSessionToken checks the token's signature and expiry.
func ValidateSessionToken(token, salt string, now time.Time) error {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return ErrInvalidToken
	}

	if !hmac.Equal([]byte(sig), []byte(sign(payload, salt))) {
		return ErrInvalidToken
	}

	expiresUnix, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return ErrInvalidToken
	}
	if now.After(time.Unix(expiresUnix, 0)) {
		return ErrExpiredToken
	}
	return nil
}

func sign(payload, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(payload))
	sum := h.Sum(nil)
	// URL-safe base64 and trimmed padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}
