// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the vota-locales API.

# Handler Types

Each handler is a struct holding the voting engine and config:

  - VoteHandler: Vote submission
  - RankingHandler: Public standings
  - LocaleHandler: Locale listing and admin CRUD
  - AdminHandler: Login, fraud purge, bulk injection/removal

Handlers are created via constructor functions:

	voteHandler := handlers.NewVoteHandler(svc, cfg)

# Admin Capability

Admin requests carry the X-Admin-Token header. Handlers validate the
token and pass the resulting boolean capability to the engine, which is
the component that actually refuses unauthorized calls:

	h.svc.PurgeFraudVotes(r.Context(), isAdmin(r, salt), localeID)

# Error Mapping

Engine failures arrive as *voting.Error and map to HTTP statuses:

	validation_error    → 400
	unauthorized        → 401
	blacklisted         → 403
	not_found           → 404
	duplicate_vote      → 409
	configuration_error → 500
	store_error         → 502

The JSON envelope always carries the machine code so the frontend can
branch without parsing Spanish messages.
*/
package handlers
