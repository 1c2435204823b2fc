package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/services/rating"
	"github.com/export9/export9-server/internal/storage"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100

	defaultHistoryLimit = 20
	maxHistoryLimit     = 50
)

// playerHandler serves the read-only player data routes
type playerHandler struct {
	rating  *rating.Service
	storage storage.Storage
	logger  *slog.Logger
}

func newPlayerHandler(ratingSvc *rating.Service, store storage.Storage, logger *slog.Logger) *playerHandler {
	return &playerHandler{rating: ratingSvc, storage: store, logger: logger}
}

// Leaderboard returns the top rated registered players
func (h *playerHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, defaultLeaderboardLimit, maxLeaderboardLimit)

	entries, err := h.rating.Leaderboard(r.Context(), limit)
	if err != nil {
		h.serverError(w, "fetching leaderboard", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// History returns a player's most recent match records, newest first
func (h *playerHandler) History(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])
	limit := queryLimit(r, defaultHistoryLimit, maxHistoryLimit)

	if _, err := h.storage.GetIdentity(r.Context(), playerID); err != nil {
		if errors.Is(err, model.ErrIdentityNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "player not found"})
			return
		}
		h.serverError(w, "fetching identity", err)
		return
	}

	records, err := h.storage.GetMatchHistory(r.Context(), playerID, limit)
	if err != nil {
		h.serverError(w, "fetching match history", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"matches": records})
}

func (h *playerHandler) serverError(w http.ResponseWriter, action string, err error) {
	h.logger.Error(action+" failed", slog.Any("error", err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

// queryLimit reads the limit query parameter, clamped to (0, max]
func queryLimit(r *http.Request, fallback, max int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
