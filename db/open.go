// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/lyric-match/cliparse"
)

// sqlitePragmas are applied to every SQLite connection
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

// Open opens and pings the configured database
func Open(dbType, url string) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch dbType {
	case cliparse.DatabaseSQLite:
		conn, err = sql.Open("sqlite", SQLiteDSN(url))
		if err == nil {
			// One writer at a time; avoids SQLITE_BUSY under concurrent requests
			conn.SetMaxOpenConns(1)
		}
	case cliparse.DatabasePostgres:
		conn, err = sql.Open("postgres", url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", dbType, err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s db: %w", dbType, err)
	}

	return conn, nil
}

// SQLiteDSN turns a file path (or a sqlite:/// URL) into a modernc DSN
func SQLiteDSN(url string) string {
	path := strings.TrimPrefix(url, "sqlite:///")
	path = strings.TrimPrefix(path, "sqlite://")

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + sqlitePragmas
}
