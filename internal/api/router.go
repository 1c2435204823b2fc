package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/export9/export9-server/internal/gateway"
	"github.com/export9/export9-server/internal/services/rating"
	"github.com/export9/export9-server/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	Gateway       *gateway.Gateway
	RatingService *rating.Service
	Storage       storage.Storage
}

// NewRouter creates the router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := newPlayerHandler(cfg.RatingService, cfg.Storage, cfg.Logger)

	// The websocket endpoint carries the game protocol and manages its
	// own lifecycle, so it sits outside the HTTP middleware
	r.HandleFunc("/ws", cfg.Gateway.HandleWS)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware(cfg.Logger))
	api.Use(loggingMiddleware(cfg.Logger))

	api.HandleFunc("/leaderboard", playerHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/players/{player_id}/history", playerHandler.History).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
