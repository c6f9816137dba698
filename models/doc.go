// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitVoteRequest: name, contact
  - LoginRequest: pin
  - CreateLocaleRequest / EditLocaleRequest: name, description, image_url
  - InjectVotesRequest / RemoveVotesRequest: amount

# Response Types

Types for JSON responses:

  - SubmitVoteResponse: vote_id, message
  - LoginResponse: token, expires_at
  - CreateLocaleResponse: locale_id
  - PurgeResponse: deleted, scanned, truncated, message
  - InjectResponse: inserted, message
  - RemoveResponse: removed, message
  - ErrorResponse: error, code, message

# Domain Types

  - Locale: contest participant
  - Vote: one accepted vote; voter identity fields never serialize
  - RankedLocale: one row of the public standings

# Error Codes

The Code* constants are the machine-readable error taxonomy carried in
ErrorResponse.Code: validation_error, blacklisted, duplicate_vote,
unauthorized, configuration_error, store_error, not_found.
*/
package models
