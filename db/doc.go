// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Drivers

Two drivers are registered:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq

Open picks the driver from the configured type and pings it:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite paths may be given bare (lyricmatch.db) or as sqlite:///lyricmatch.db.
SQLite handles are limited to one open connection.

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - user_scores: id (auto-increment), username (indexed, not unique),
    score (integer, default 0, never negative)
*/
package db
