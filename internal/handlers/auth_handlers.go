package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/demo-blog/api/internal/apperr"
	"github.com/demo-blog/api/internal/database"
	"github.com/demo-blog/api/internal/models"
	"github.com/demo-blog/api/internal/token"
	"github.com/demo-blog/api/internal/validate"
)

type signupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the success payload of signup and login.
type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Signup handles POST /api/auth/signup. A taken email is a 409; the
// uniqueness check races with the insert, so the storage-level constraint
// reports the same conflict for the loser.
func Signup(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload signupPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		name, email, password, err := validate.Signup(payload.Name, payload.Email, payload.Password)
		if err != nil {
			respondErr(w, err)
			return
		}

		if _, err := database.GetUserByEmail(db, email); err == nil {
			respondError(w, http.StatusConflict, "email already registered")
			return
		} else if !errors.Is(err, apperr.ErrNotFound) {
			respondErr(w, err)
			return
		}

		user, err := database.CreateUser(db, name, email, password)
		if err != nil {
			respondErr(w, err)
			return
		}

		respondData(w, http.StatusCreated, authResponse{Token: token.Encode(user.ID, user.Email), User: user})
	}
}

// Login handles POST /api/auth/login. The same 401 covers an unknown email
// and a wrong password; the comparison is an exact string match.
func Login(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		email, password, err := validate.Login(payload.Email, payload.Password)
		if err != nil {
			respondErr(w, err)
			return
		}

		user, err := database.GetUserByEmail(db, email)
		if errors.Is(err, apperr.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		if err != nil {
			respondErr(w, err)
			return
		}

		if user.Password != password {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		respondData(w, http.StatusOK, authResponse{Token: token.Encode(user.ID, user.Email), User: user})
	}
}

// Me handles GET /api/auth/me. The bearer token is decoded and its claims
// re-checked against storage; any failure along the way is the same 401.
func Me(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok := bearerToken(r)
		if tok == "" {
			respondError(w, http.StatusUnauthorized, "invalid or missing token")
			return
		}

		id, email, ok := token.Decode(tok)
		if !ok {
			respondError(w, http.StatusUnauthorized, "invalid or missing token")
			return
		}

		user, err := database.GetUserByIdentity(db, id, email)
		if errors.Is(err, apperr.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "invalid or missing token")
			return
		}
		if err != nil {
			respondErr(w, err)
			return
		}

		respondData(w, http.StatusOK, map[string]*models.User{"user": user})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header, returning "" when the header is absent or not bearer-shaped.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return ""
}
