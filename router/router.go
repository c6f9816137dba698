// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/vota-locales/cliparse"
	"github.com/danielhkuo/vota-locales/handlers"
	"github.com/danielhkuo/vota-locales/middleware"
	"github.com/danielhkuo/vota-locales/voting"
)

func NewRouter(svc *voting.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(svc, cfg)
	rankingHandler := handlers.NewRankingHandler(svc, cfg)
	localeHandler := handlers.NewLocaleHandler(svc, cfg)
	adminHandler := handlers.NewAdminHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Public voting surface
	mux.HandleFunc("GET /locales", middleware.WithLogging(localeHandler.List))
	mux.HandleFunc("POST /locales/{id}/votes", middleware.WithLogging(voteHandler.SubmitVote))
	mux.HandleFunc("GET /ranking", middleware.WithLogging(rankingHandler.GetRanking))

	// Admin surface (X-Admin-Token)
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /locales", middleware.WithLogging(localeHandler.Create))
	mux.HandleFunc("PUT /locales/{id}", middleware.WithLogging(localeHandler.Edit))
	mux.HandleFunc("DELETE /locales/{id}", middleware.WithLogging(localeHandler.Delete))
	mux.HandleFunc("POST /locales/{id}/purge-fraud", middleware.WithLogging(adminHandler.PurgeFraud))
	mux.HandleFunc("POST /locales/{id}/votes/inject", middleware.WithLogging(adminHandler.InjectVotes))
	mux.HandleFunc("POST /locales/{id}/votes/remove", middleware.WithLogging(adminHandler.RemoveVotes))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("vota-locales API v1"))
	})

	return mux
}
