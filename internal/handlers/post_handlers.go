package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/demo-blog/api/internal/database"
	"github.com/demo-blog/api/internal/models"
	"github.com/demo-blog/api/internal/validate"
)

type postPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListPosts handles GET /api/posts, returning all posts newest first.
func ListPosts(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := database.ListPosts(db)
		if err != nil {
			respondErr(w, err)
			return
		}
		if posts == nil {
			// An empty table still serializes as [], not null.
			posts = []*models.Post{}
		}
		respondData(w, http.StatusOK, posts)
	}
}

// CreatePost handles POST /api/posts.
func CreatePost(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		title, content, err := validate.Post(payload.Title, payload.Content)
		if err != nil {
			respondErr(w, err)
			return
		}

		post, err := database.CreatePost(db, title, content)
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, http.StatusCreated, post)
	}
}

// GetPost handles GET /api/posts/{id}.
func GetPost(db *sql.DB, id int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := database.GetPostByID(db, id)
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, http.StatusOK, post)
	}
}

// UpdatePost handles PUT /api/posts/{id}.
func UpdatePost(db *sql.DB, id int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		title, content, err := validate.Post(payload.Title, payload.Content)
		if err != nil {
			respondErr(w, err)
			return
		}

		post, err := database.UpdatePost(db, id, title, content)
		if err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, http.StatusOK, post)
	}
}

// DeletePost handles DELETE /api/posts/{id}, echoing the deleted id.
func DeletePost(db *sql.DB, id int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.DeletePost(db, id); err != nil {
			respondErr(w, err)
			return
		}
		respondData(w, http.StatusOK, map[string]int64{"id": id})
	}
}
