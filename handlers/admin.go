// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/vota-locales/auth"
	"github.com/danielhkuo/vota-locales/cliparse"
	"github.com/danielhkuo/vota-locales/middleware"
	"github.com/danielhkuo/vota-locales/models"
	"github.com/danielhkuo/vota-locales/voting"
)

type AdminHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewAdminHandler(svc *voting.Service, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{svc: svc, cfg: cfg}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckPIN(req.PIN, h.cfg.AdminPIN); err != nil {
		slog.Warn("failed admin login", "remote", middleware.GetClientIP(r))
		middleware.CodedErrorResponse(w, http.StatusUnauthorized, models.CodeUnauthorized, "PIN incorrecto")
		return
	}

	token, expiresAt := auth.GenerateSessionToken(h.cfg.AdminSessionSalt, time.Now())
	slog.Info("admin logged in", "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// PurgeFraud handles POST /locales/:id/purge-fraud (admin)
func (h *AdminHandler) PurgeFraud(w http.ResponseWriter, r *http.Request) {
	localeID := r.PathValue("id")
	if localeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "locale id is required")
		return
	}

	result, err := h.svc.PurgeFraudVotes(r.Context(), isAdmin(r, h.cfg.AdminSessionSalt), localeID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PurgeResponse{
		Deleted:   result.Deleted,
		Scanned:   result.Scanned,
		Truncated: result.Truncated,
		Message:   result.Message,
	})
}

// InjectVotes handles POST /locales/:id/votes/inject (admin)
func (h *AdminHandler) InjectVotes(w http.ResponseWriter, r *http.Request) {
	localeID := r.PathValue("id")
	if localeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "locale id is required")
		return
	}

	var req models.InjectVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.svc.InjectVotes(r.Context(), isAdmin(r, h.cfg.AdminSessionSalt), localeID, req.Amount)
	if err != nil {
		ve := voting.AsError(err)
		if result.Inserted > 0 {
			// Partial injection: earlier batches stay committed, so the
			// caller gets the partial result along with the error code.
			middleware.CodedErrorResponse(w, statusForCode(ve.Code), ve.Code, result.Message)
			return
		}
		middleware.CodedErrorResponse(w, statusForCode(ve.Code), ve.Code, ve.Message)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, result)
}

// RemoveVotes handles POST /locales/:id/votes/remove (admin, requires
// the service-role key to be configured)
func (h *AdminHandler) RemoveVotes(w http.ResponseWriter, r *http.Request) {
	localeID := r.PathValue("id")
	if localeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "locale id is required")
		return
	}

	var req models.RemoveVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.svc.RemoveVotes(r.Context(), isAdmin(r, h.cfg.AdminSessionSalt), localeID, req.Amount)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
