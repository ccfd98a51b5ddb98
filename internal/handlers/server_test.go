package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/demo-blog/api/internal/config"
	"github.com/demo-blog/api/internal/database"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// testServer holds a running httptest.Server backed by an in-memory database.
type testServer struct {
	server *httptest.Server
	db     *sql.DB
	client *http.Client
}

// setupTestServer initializes an in-memory SQLite database and starts an
// httptest.Server around the real router, so tests exercise routing,
// middleware and handlers together.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.Init(":memory:")
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	cfg := &config.Config{
		ServiceName: "demo-blog-api",
		DBPath:      ":memory:",
	}

	ts := httptest.NewServer(NewRouter(db, cfg))

	return &testServer{
		server: ts,
		db:     db,
		client: ts.Client(),
	}
}

// Teardown closes the test server and database connection.
func (ts *testServer) Teardown() {
	ts.server.Close()
	ts.db.Close()
}

// apiResponse mirrors the response envelope with the data left raw so each
// test can decode the payload shape it expects.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// doJSON performs a request with an optional JSON body and decodes the
// envelope. Extra headers are applied as key/value pairs.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, headers ...string) (int, apiResponse) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := ts.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: failed to decode envelope: %v", method, path, err)
	}

	return resp.StatusCode, env
}

// decodeData unmarshals the envelope data into out, failing the test on error.
func decodeData(t *testing.T, env apiResponse, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("Failed to decode envelope data %s: %v", env.Data, err)
	}
}
