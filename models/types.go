// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Error codes returned in the "code" field of error responses. Callers
// branch UI behavior on these, never on the human-readable message.
const (
	CodeValidation    = "validation_error"
	CodeBlacklisted   = "blacklisted"
	CodeDuplicateVote = "duplicate_vote"
	CodeUnauthorized  = "unauthorized"
	CodeConfiguration = "configuration_error"
	CodeStore         = "store_error"
	CodeNotFound      = "not_found"
)

// DefaultImageURL is the placeholder asset for locales created without
// an image.
const DefaultImageURL = "/logo.png"

// Request types

type SubmitVoteRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type LoginRequest struct {
	PIN string `json:"pin"`
}

type CreateLocaleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type EditLocaleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type InjectVotesRequest struct {
	Amount int `json:"amount"`
}

type RemoveVotesRequest struct {
	Amount int `json:"amount"`
}

// Response types

type SubmitVoteResponse struct {
	VoteID  string `json:"vote_id"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CreateLocaleResponse struct {
	LocaleID string `json:"locale_id"`
}

type PurgeResponse struct {
	Deleted   int    `json:"deleted"`
	Scanned   int    `json:"scanned"`
	Truncated bool   `json:"truncated,omitempty"`
	Message   string `json:"message"`
}

type InjectResponse struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message"`
}

type RemoveResponse struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}

// Domain types

type Locale struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type Vote struct {
	ID           string    `json:"id"`
	LocaleID     string    `json:"locale_id"`
	VoterName    string    `json:"-"` // Never expose in JSON
	VoterContact string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// RankedLocale is one row of the public standings.
type RankedLocale struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Votes    int    `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
