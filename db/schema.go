// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/lyric-match/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var stmts []string
	switch dbType {
	case cliparse.DatabaseSQLite:
		stmts = sqliteSchema
	case cliparse.DatabasePostgres:
		stmts = postgresSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// username is indexed but not unique; see DESIGN.md.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS user_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0 CHECK (score >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_scores_username ON user_scores(username)`,
	`CREATE INDEX IF NOT EXISTS idx_user_scores_score ON user_scores(score DESC)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS user_scores (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0 CHECK (score >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_scores_username ON user_scores(username)`,
	`CREATE INDEX IF NOT EXISTS idx_user_scores_score ON user_scores(score DESC)`,
}
