// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/vota-locales/cliparse"
	"github.com/danielhkuo/vota-locales/middleware"
	"github.com/danielhkuo/vota-locales/models"
	"github.com/danielhkuo/vota-locales/voting"
)

type LocaleHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewLocaleHandler(svc *voting.Service, cfg cliparse.Config) *LocaleHandler {
	return &LocaleHandler{svc: svc, cfg: cfg}
}

// List handles GET /locales
func (h *LocaleHandler) List(w http.ResponseWriter, r *http.Request) {
	locales, err := h.svc.ListLocales(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, locales)
}

// Create handles POST /locales (admin)
func (h *LocaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLocaleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.svc.CreateLocale(r.Context(), isAdmin(r, h.cfg.AdminSessionSalt),
		req.Name, req.Description, req.ImageURL)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateLocaleResponse{LocaleID: id})
}

// Edit handles PUT /locales/:id (admin)
func (h *LocaleHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "locale id is required")
		return
	}

	var req models.EditLocaleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.EditLocale(r.Context(), isAdmin(r, h.cfg.AdminSessionSalt),
		id, req.Name, req.Description, req.ImageURL); err != nil {
		writeEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /locales/:id (admin)
// Deletes the locale's votes first, then the locale itself.
func (h *LocaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "locale id is required")
		return
	}

	if err := h.svc.DeleteLocale(r.Context(), isAdmin(r, h.cfg.AdminSessionSalt), id); err != nil {
		writeEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
