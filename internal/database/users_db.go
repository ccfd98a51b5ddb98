package database

import (
	"database/sql"
	"errors"

	"github.com/demo-blog/api/internal/apperr"
	"github.com/demo-blog/api/internal/models"
	"github.com/mattn/go-sqlite3"
)

// CreateUser inserts a new user and returns the stored row. The password is
// stored as given; hashing is deliberately absent from this demo. A unique
// constraint violation on email is reported as a conflict.
func CreateUser(db *sql.DB, name, email, password string) (*models.User, error) {
	stmt, err := db.Prepare("INSERT INTO users(name, email, password, created_at, updated_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer stmt.Close()

	ts := now()
	res, err := stmt.Exec(name, email, password, ts, ts)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, apperr.Storage(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperr.Storage(err)
	}

	return GetUserByID(db, id)
}

// GetUserByID retrieves a user by their ID.
func GetUserByID(db *sql.DB, id int64) (*models.User, error) {
	return scanUser(db.QueryRow("SELECT id, name, email, password, created_at, updated_at FROM users WHERE id = ?", id))
}

// GetUserByEmail retrieves a user by their email address. Callers are
// expected to lowercase the email first; storage matches exactly.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	return scanUser(db.QueryRow("SELECT id, name, email, password, created_at, updated_at FROM users WHERE email = ?", email))
}

// GetUserByIdentity retrieves a user only when both id and email match the
// same row. Token verification uses this so a decoded token is honored only
// while its claims still describe a real user.
func GetUserByIdentity(db *sql.DB, id int64, email string) (*models.User, error) {
	return scanUser(db.QueryRow("SELECT id, name, email, password, created_at, updated_at FROM users WHERE id = ? AND email = ?", id, email))
}

// CountUsers returns the number of rows in the users table.
func CountUsers(db *sql.DB) (int64, error) {
	var n int64
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, apperr.Storage(err)
	}
	return n, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return user, nil
}
