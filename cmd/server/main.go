package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	web "menucard/internal/adapters/http"
	productStore "menucard/internal/adapters/storage/product"
	suggestionStore "menucard/internal/adapters/storage/suggestion"
	userStore "menucard/internal/adapters/storage/user"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; real environments set variables directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	dataDir := envOrDefault("MENUCARD_DATA_DIR", "data")

	// The three collection files are a startup precondition. A missing file
	// is a deployment error, not an empty collection.
	productsPath := filepath.Join(dataDir, "products.json")
	suggestionsPath := filepath.Join(dataDir, "suggestions.json")
	usersPath := filepath.Join(dataDir, "users.json")
	for _, path := range []string{productsPath, suggestionsPath, usersPath} {
		if _, err := os.Stat(path); err != nil {
			log.Fatalf("missing collection file %s: %v", path, err)
		}
	}

	stores := &web.Stores{
		ProductStore:    productStore.NewJSONStore(productsPath),
		SuggestionStore: suggestionStore.NewJSONStore(suggestionsPath),
		UserStore:       userStore.NewJSONStore(usersPath),
	}

	mux := web.NewMux("static", stores)

	port := envOrDefault("PORT", "4501")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("menucard %s listening on http://localhost:%s", version, port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
