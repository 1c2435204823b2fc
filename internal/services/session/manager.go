package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/services/exports"
)

// Manager owns all live session engines and enforces the one active
// session per identity rule
type Manager struct {
	cfg     config.GameConfig
	exports *exports.Service
	deps    Deps
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[model.SessionID]*Engine
	active   map[model.PlayerID]model.SessionID
}

// NewManager creates a session manager
func NewManager(cfg config.GameConfig, exportsSvc *exports.Service, deps Deps) *Manager {
	logger := deps.Logger.With(slog.String("component", "session-manager"))
	return &Manager{
		cfg:      cfg,
		exports:  exportsSvc,
		deps:     deps,
		logger:   logger,
		sessions: make(map[model.SessionID]*Engine),
		active:   make(map[model.PlayerID]model.SessionID),
	}
}

// CreateSession deals a match for two paired identities and starts it.
// Either identity already holding a live session is a conflict.
func (m *Manager) CreateSession(ctx context.Context, a, b *model.PlayerIdentity) (*Engine, error) {
	m.mu.Lock()
	for _, identity := range []*model.PlayerIdentity{a, b} {
		if sessionID, ok := m.active[identity.ID]; ok {
			m.mu.Unlock()
			return nil, &model.AlreadyInSessionError{SessionID: sessionID, PlayerID: identity.ID}
		}
	}

	id := model.SessionID(uuid.NewString())
	hand := model.Hand(m.exports.DealCountries(m.cfg.HandSize))
	products := m.exports.DrawProducts(m.cfg.RoundsPerSession)

	engine := NewEngine(id, m.cfg, m.deps, a, b, hand, products, m.release)
	m.sessions[id] = engine
	m.active[a.ID] = id
	m.active[b.ID] = id
	m.mu.Unlock()

	m.logger.Info("session created",
		slog.String("session_id", string(id)),
		slog.String("player_a", string(a.ID)),
		slog.String("player_b", string(b.ID)))

	engine.Start()
	return engine, nil
}

// Get returns the engine for a session id
func (m *Manager) Get(id model.SessionID) (*Engine, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine, ok := m.sessions[id]
	return engine, ok
}

// ActiveSession returns the session an identity is currently playing in
func (m *Manager) ActiveSession(playerID model.PlayerID) (model.SessionID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.active[playerID]
	return id, ok
}

// ForPlayer returns the live engine an identity is seated in
func (m *Manager) ForPlayer(playerID model.PlayerID) (*Engine, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.active[playerID]
	if !ok {
		return nil, false
	}
	engine, ok := m.sessions[id]
	return engine, ok
}

// OnDisconnect pauses the player's live session, if any
func (m *Manager) OnDisconnect(playerID model.PlayerID) {
	engine, ok := m.ForPlayer(playerID)
	if !ok {
		return
	}
	engine.HandleDisconnect(playerID)
}

// Reconnect resumes a session slot claimed by a returning player. The
// claim must name a session that exists and seats that player.
func (m *Manager) Reconnect(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID) error {
	engine, ok := m.Get(sessionID)
	if !ok {
		return model.ErrSessionNotFound
	}
	return engine.HandleReconnect(playerID)
}

// release frees both seats once a session reaches a terminal state.
// Finished engines stay retrievable by id for late rejoin attempts.
func (m *Manager) release(id model.SessionID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	engine, ok := m.sessions[id]
	if !ok {
		return
	}
	for _, playerID := range engine.Players() {
		if m.active[playerID] == id {
			delete(m.active, playerID)
		}
	}
	m.logger.Info("session released", slog.String("session_id", string(id)))
}
