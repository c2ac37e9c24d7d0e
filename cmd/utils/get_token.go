package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"airport-ops-service/internal/infrastructure/config"
	"airport-ops-service/internal/infrastructure/oauth"
	"airport-ops-service/pkg/logger"
)

// Prints a refresh token for GOOGLE_REFRESH_TOKEN after a one-time consent in the browser
func main() {
	cfg, err := config.LoadConfig()
	log := logger.NewLogger("info", true)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Fatal("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	googleOAuth := oauth.NewGoogleOAuth(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		"",
		"http://localhost:8090/oauth2callback",
		log,
	)

	// Create a random state
	state := "random-state"

	// Start an HTTP server to handle the OAuth callback
	http.HandleFunc("/oauth2callback", func(w http.ResponseWriter, r *http.Request) {
		// Check state parameter
		if r.URL.Query().Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := googleOAuth.ExchangeCode(context.Background(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		fmt.Printf("\nGOOGLE_REFRESH_TOKEN=%s\n\n", token.RefreshToken)

		fmt.Fprintf(w, "Authentication successful! You can close this window.")
		os.Exit(0)
	})

	fmt.Printf("Open this URL in your browser:\n%s\n", googleOAuth.GenerateAuthURL(state))

	if err := http.ListenAndServe(":8090", nil); err != nil {
		log.Fatal("Callback server failed", "error", err)
	}
}
