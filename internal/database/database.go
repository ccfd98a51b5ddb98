package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/demo-blog/api/internal/apperr"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// Init opens (creating if necessary) the SQLite database at dataSourceName,
// applies the schema and seeds demo rows into any table that is still empty.
// The seed check is a plain row count, not a migration version, so Init is
// safe to run on every start.
func Init(dataSourceName string) (*sql.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperr.Storage(err)
		}
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	// One shared connection: a second pooled connection to :memory: would
	// see its own empty database.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, apperr.Storage(err)
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, apperr.Storage(err)
	}

	if err = seed(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// seed inserts fixed demo rows when the respective table is empty.
func seed(db *sql.DB) error {
	nPosts, err := CountPosts(db)
	if err != nil {
		return err
	}
	if nPosts == 0 {
		demo := [][2]string{
			{"Hello World", "Welcome to the demo blog API."},
			{"Getting Started", "Use POST /api/posts to create your own posts."},
			{"About Authentication", "Sign up, log in, and call /api/auth/me with your token."},
		}
		for _, p := range demo {
			if _, err := CreatePost(db, p[0], p[1]); err != nil {
				return err
			}
		}
	}

	nUsers, err := CountUsers(db)
	if err != nil {
		return err
	}
	if nUsers == 0 {
		if _, err := CreateUser(db, "Demo User", "demo@example.com", "password123"); err != nil {
			return err
		}
	}

	return nil
}

// now returns the application timestamp used for created_at/updated_at.
// UTC with full precision so an update is strictly later than the create.
func now() time.Time {
	return time.Now().UTC()
}
