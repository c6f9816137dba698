// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"

	"github.com/danielhkuo/vota-locales/models"
)

// Error is the typed failure every engine operation returns. Code is
// one of the models.Code* constants; Message is the user-facing text
// (Spanish, like the rest of the product); Err carries the underlying
// store error when there is one.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// AsError extracts a *voting.Error from err, or wraps err as a generic
// store error so the HTTP boundary always has a code to map.
func AsError(err error) *Error {
	var ve *Error
	if errors.As(err, &ve) {
		return ve
	}
	return storeError("Error de conexión. Intenta de nuevo.", err)
}

func validationError(msg string) *Error {
	return &Error{Code: models.CodeValidation, Message: msg}
}

func blacklistedError() *Error {
	return &Error{Code: models.CodeBlacklisted, Message: "Tu número no está autorizado para votar."}
}

func duplicateVoteError() *Error {
	return &Error{Code: models.CodeDuplicateVote, Message: "Ya has votado por este participante."}
}

func unauthorizedError() *Error {
	return &Error{Code: models.CodeUnauthorized, Message: "No autorizado"}
}

func configurationError(msg string) *Error {
	return &Error{Code: models.CodeConfiguration, Message: msg}
}

func storeError(msg string, err error) *Error {
	return &Error{Code: models.CodeStore, Message: msg, Err: err}
}

func notFoundError(msg string) *Error {
	return &Error{Code: models.CodeNotFound, Message: msg}
}
