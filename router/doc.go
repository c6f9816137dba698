// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the vota-locales API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Health and observability:

	GET /health
	GET /metrics

Public voting surface:

	GET  /locales             - Locale listing
	POST /locales/{id}/votes  - Submit a vote
	GET  /ranking             - Live standings

Admin surface (requires X-Admin-Token, obtained from login):

	POST   /admin/login                 - PIN login, returns session token
	POST   /locales                     - Create locale
	PUT    /locales/{id}                - Edit locale
	DELETE /locales/{id}                - Delete locale and its votes
	POST   /locales/{id}/purge-fraud    - Run the fraud purge
	POST   /locales/{id}/votes/inject   - Inject synthetic votes
	POST   /locales/{id}/votes/remove   - Remove most recent votes

# Handler Initialization

The router creates handler instances with dependency injection:

	voteHandler := handlers.NewVoteHandler(svc, cfg)
	rankingHandler := handlers.NewRankingHandler(svc, cfg)
	localeHandler := handlers.NewLocaleHandler(svc, cfg)
	adminHandler := handlers.NewAdminHandler(svc, cfg)

All handlers receive the voting engine and configuration.
*/
package router
