// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/vota-locales/cliparse"
	"github.com/danielhkuo/vota-locales/middleware"
	"github.com/danielhkuo/vota-locales/models"
	"github.com/danielhkuo/vota-locales/voting"
)

type VoteHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewVoteHandler(svc *voting.Service, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{svc: svc, cfg: cfg}
}

// SubmitVote handles POST /locales/:id/votes
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	localeID := r.PathValue("id")
	if localeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "locale id is required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voteID, err := h.svc.SubmitVote(r.Context(), localeID, req.Name, req.Contact)
	if err != nil {
		ve := voting.AsError(err)
		if ve.Code == models.CodeBlacklisted {
			// The engine logs the event; record the source address here
			// where it is known.
			slog.Warn("blacklisted vote source", "remote", middleware.GetClientIP(r))
		}
		middleware.CodedErrorResponse(w, statusForCode(ve.Code), ve.Code, ve.Message)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		VoteID:  voteID,
		Message: "¡Gracias por tu voto!",
	})
}
