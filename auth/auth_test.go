// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
	"time"
)

func TestCheckPIN(t *testing.T) {
	if err := CheckPIN("1234", "1234"); err != nil {
		t.Errorf("Expected matching PIN to pass, got %v", err)
	}
	if err := CheckPIN("0000", "1234"); err != ErrInvalidPIN {
		t.Errorf("Expected ErrInvalidPIN, got %v", err)
	}
	if err := CheckPIN("", "1234"); err != ErrInvalidPIN {
		t.Errorf("Expected ErrInvalidPIN for empty PIN, got %v", err)
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	now := time.Now()
	token, expiresAt := GenerateSessionToken("test-salt", now)

	if !strings.Contains(token, ".") {
		t.Fatalf("Expected payload.signature format, got %q", token)
	}
	if got, want := expiresAt, now.Add(SessionTTL); !got.Equal(want) {
		t.Errorf("Expected expiry %v, got %v", want, got)
	}

	if err := ValidateSessionToken(token, "test-salt", now); err != nil {
		t.Errorf("Expected fresh token to validate, got %v", err)
	}
}

func TestValidateSessionToken(t *testing.T) {
	now := time.Now()
	token, _ := GenerateSessionToken("test-salt", now)

	tests := []struct {
		name    string
		token   string
		salt    string
		at      time.Time
		wantErr error
	}{
		{
			name:  "valid token",
			token: token,
			salt:  "test-salt",
			at:    now.Add(time.Hour),
		},
		{
			name:    "wrong salt",
			token:   token,
			salt:    "other-salt",
			at:      now,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "expired token",
			token:   token,
			salt:    "test-salt",
			at:      now.Add(SessionTTL + time.Minute),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "missing separator",
			token:   "garbage",
			salt:    "test-salt",
			at:      now,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "tampered payload",
			token:   "99999999999." + strings.SplitN(token, ".", 2)[1],
			salt:    "test-salt",
			at:      now,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "empty token",
			token:   "",
			salt:    "test-salt",
			at:      now,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionToken(tt.token, tt.salt, tt.at)
			if err != tt.wantErr {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
