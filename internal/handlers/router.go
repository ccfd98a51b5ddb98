package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/demo-blog/api/internal/config"
)

// NewRouter assembles the full route table and wraps it in the CORS and
// request-log middleware. Tests run against exactly this handler.
func NewRouter(db *sql.DB, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", methodOnly(http.MethodGet, Health(cfg)))

	mux.HandleFunc("/api/posts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			ListPosts(db)(w, r)
		case http.MethodPost:
			CreatePost(db)(w, r)
		default:
			routeNotFound(w)
		}
	})
	mux.HandleFunc("/api/posts/", routeDynamicPostPaths(db))

	mux.HandleFunc("/api/auth/signup", methodOnly(http.MethodPost, Signup(db)))
	mux.HandleFunc("/api/auth/login", methodOnly(http.MethodPost, Login(db)))
	mux.HandleFunc("/api/auth/me", methodOnly(http.MethodGet, Me(db)))

	mux.HandleFunc("/api/greeting", methodOnly(http.MethodGet, Greeting))
	mux.HandleFunc("/api/sum", methodOnly(http.MethodPost, Sum))
	mux.HandleFunc("/api/fail", methodOnly(http.MethodGet, Fail))

	// Everything else, any method, is the uniform route-not-found envelope.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		routeNotFound(w)
	})

	return WithRequestLog(WithCORS(mux))
}

// methodOnly dispatches to next for the given method and answers everything
// else with the generic 404 envelope, matching the unmatched-route contract.
func methodOnly(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			routeNotFound(w)
			return
		}
		next(w, r)
	}
}

// routeDynamicPostPaths handles /api/posts/{id} for GET, PUT and DELETE.
// A non-integer id is a validation failure (422), not a missing route.
func routeDynamicPostPaths(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/posts/")
		if rest == "" || strings.Contains(rest, "/") {
			routeNotFound(w)
			return
		}

		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid post id")
			return
		}

		switch r.Method {
		case http.MethodGet:
			GetPost(db, id)(w, r)
		case http.MethodPut:
			UpdatePost(db, id)(w, r)
		case http.MethodDelete:
			DeletePost(db, id)(w, r)
		default:
			routeNotFound(w)
		}
	}
}
