// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/vota-locales/auth"
	"github.com/danielhkuo/vota-locales/middleware"
	"github.com/danielhkuo/vota-locales/models"
	"github.com/danielhkuo/vota-locales/voting"
)

// AdminTokenHeader carries the admin session token on admin requests.
const AdminTokenHeader = "X-Admin-Token"

// isAdmin derives the caller's admin capability from the session token
// header. Absent or invalid tokens simply mean not-admin; the voting
// engine produces the Unauthorized result.
func isAdmin(r *http.Request, sessionSalt string) bool {
	token := r.Header.Get(AdminTokenHeader)
	if token == "" {
		return false
	}
	return auth.ValidateSessionToken(token, sessionSalt, time.Now()) == nil
}

// statusForCode maps the engine's error taxonomy to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case models.CodeValidation:
		return http.StatusBadRequest
	case models.CodeBlacklisted:
		return http.StatusForbidden
	case models.CodeDuplicateVote:
		return http.StatusConflict
	case models.CodeUnauthorized:
		return http.StatusUnauthorized
	case models.CodeNotFound:
		return http.StatusNotFound
	case models.CodeStore:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeEngineError converts an engine failure into the JSON error
// envelope.
func writeEngineError(w http.ResponseWriter, err error) {
	ve := voting.AsError(err)
	middleware.CodedErrorResponse(w, statusForCode(ve.Code), ve.Code, ve.Message)
}
