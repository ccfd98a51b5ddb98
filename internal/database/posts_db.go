package database

import (
	"database/sql"
	"errors"

	"github.com/demo-blog/api/internal/apperr"
	"github.com/demo-blog/api/internal/models"
)

// CreatePost inserts a new post with created_at == updated_at and returns the
// freshly-read row so the caller sees exactly what was stored.
func CreatePost(db *sql.DB, title, content string) (*models.Post, error) {
	stmt, err := db.Prepare("INSERT INTO posts(title, content, created_at, updated_at) VALUES(?, ?, ?, ?)")
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer stmt.Close()

	ts := now()
	res, err := stmt.Exec(title, content, ts, ts)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperr.Storage(err)
	}

	return GetPostByID(db, id)
}

// GetPostByID retrieves a single post by its ID.
func GetPostByID(db *sql.DB, id int64) (*models.Post, error) {
	post := &models.Post{}
	row := db.QueryRow("SELECT id, title, content, created_at, updated_at FROM posts WHERE id = ?", id)
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("post not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return post, nil
}

// ListPosts retrieves all posts ordered by id descending, newest first.
func ListPosts(db *sql.DB) ([]*models.Post, error) {
	rows, err := db.Query("SELECT id, title, content, created_at, updated_at FROM posts ORDER BY id DESC")
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, apperr.Storage(err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}

	return posts, nil
}

// UpdatePost rewrites title and content of the post with the given id,
// refreshing updated_at. created_at is never touched. Zero affected rows
// means the post does not exist.
func UpdatePost(db *sql.DB, id int64, title, content string) (*models.Post, error) {
	stmt, err := db.Prepare("UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?")
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(title, content, now(), id)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if n == 0 {
		return nil, apperr.NotFound("post not found")
	}

	return GetPostByID(db, id)
}

// DeletePost removes the post with the given id. Zero affected rows means the
// post does not exist. Ids are never reused (AUTOINCREMENT).
func DeletePost(db *sql.DB, id int64) error {
	res, err := db.Exec("DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return apperr.Storage(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if n == 0 {
		return apperr.NotFound("post not found")
	}

	return nil
}

// CountPosts returns the number of rows in the posts table.
func CountPosts(db *sql.DB) (int64, error) {
	var n int64
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&n); err != nil {
		return 0, apperr.Storage(err)
	}
	return n, nil
}
