// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/vota-locales/cliparse"
	"github.com/danielhkuo/vota-locales/middleware"
	"github.com/danielhkuo/vota-locales/voting"
)

type RankingHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewRankingHandler(svc *voting.Service, cfg cliparse.Config) *RankingHandler {
	return &RankingHandler{svc: svc, cfg: cfg}
}

// GetRanking handles GET /ranking
// Always 200: degraded reads yield zero counts or an empty list.
func (h *RankingHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.svc.Ranking(r.Context()))
}
