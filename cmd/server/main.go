package main

import (
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/demo-blog/api/internal/config"
	"github.com/demo-blog/api/internal/database"
	"github.com/demo-blog/api/internal/handlers"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

func main() {
	cfg := config.Load()

	db, err := database.Init(cfg.DBPath)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()

	router := handlers.NewRouter(db, cfg)

	ln, port, err := listenWithRetry(cfg.Port, cfg.PortRetries)
	if err != nil {
		log.Fatalf("No free port after %d attempts starting at %d: %v", cfg.PortRetries, cfg.Port, err)
	}

	log.Printf("%s listening on port %d (database: %s)\n", cfg.ServiceName, port, cfg.DBPath)
	if err := http.Serve(ln, router); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

// listenWithRetry binds to the first free port in [port, port+retries),
// logging each occupied port along the way.
func listenWithRetry(port, retries int) (net.Listener, int, error) {
	var lastErr error
	for i := 0; i < retries; i++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port+i))
		if err == nil {
			return ln, port + i, nil
		}
		lastErr = err
		if i+1 < retries {
			log.Printf("Port %d unavailable, trying %d", port+i, port+i+1)
		}
	}
	return nil, 0, lastErr
}
