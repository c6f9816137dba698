// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - locales: Contest participants (name, description, image_url)
  - votes: One row per accepted vote

# Relationships

	locales 1──* votes

The foreign key uses ON DELETE CASCADE. Locale deletion additionally
removes votes explicitly before the locale row, so the cascade does not
depend on foreign key enforcement being enabled on the backend.

# Constraints

votes carries UNIQUE (locale_id, voter_contact), which backs the
one-vote-per-contact-per-locale rule at the storage layer and closes the
check-then-insert race in vote submission.
*/
package db
