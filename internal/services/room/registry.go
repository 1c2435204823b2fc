// Package room manages private invite rooms. A room holds its creator's
// seat until a second player joins with the code, then hands both off to
// a session.
package room

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/dependencies/clock"
	"github.com/export9/export9-server/internal/dependencies/random"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/services/session"
)

// codeAlphabet omits characters easily confused when codes are shared
// verbally or typed from a screen (0/O, 1/I)
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

// Registry tracks open private rooms in memory
type Registry struct {
	cfg     config.GameConfig
	manager *session.Manager
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	mu       sync.Mutex
	rooms    map[model.RoomCode]*room
	creators map[model.PlayerID]model.RoomCode
}

// room pairs the stored record with the creator's identity, which is
// needed to seat them once a joiner arrives
type room struct {
	model.PrivateRoom
	creator *model.PlayerIdentity
}

// NewRegistry creates a room registry
func NewRegistry(
	cfg config.GameConfig,
	manager *session.Manager,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Registry {
	return &Registry{
		cfg:      cfg,
		manager:  manager,
		clock:    clk,
		random:   rnd,
		logger:   logger.With(slog.String("component", "room-registry")),
		rooms:    make(map[model.RoomCode]*room),
		creators: make(map[model.PlayerID]model.RoomCode),
	}
}

// Create opens a private room for the given identity and returns it.
// A player can hold only one open room; creating again replaces it.
func (r *Registry) Create(ctx context.Context, creator *model.PlayerIdentity) (model.PrivateRoom, error) {
	if sessionID, ok := r.manager.ActiveSession(creator.ID); ok {
		return model.PrivateRoom{}, &model.AlreadyInSessionError{SessionID: sessionID, PlayerID: creator.ID}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.creators[creator.ID]; ok {
		delete(r.rooms, prev)
	}

	now := r.clock.Now()
	code := r.generateCodeLocked()
	rm := &room{
		PrivateRoom: model.PrivateRoom{
			Code:      code,
			CreatorID: creator.ID,
			Players:   1,
			CreatedAt: now,
			ExpiresAt: now.Add(r.cfg.RoomTTL),
		},
		creator: creator,
	}
	r.rooms[code] = rm
	r.creators[creator.ID] = code

	r.logger.Info("room created",
		slog.String("code", string(code)),
		slog.String("creator_id", string(creator.ID)))

	return rm.PrivateRoom, nil
}

// Get returns an open room by code. Expired rooms are dropped and
// reported as absent.
func (r *Registry) Get(code model.RoomCode) (model.PrivateRoom, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm, ok := r.rooms[normalizeCode(code)]
	if !ok {
		return model.PrivateRoom{}, false
	}
	if rm.Expired(r.clock.Now()) {
		r.dropLocked(rm)
		return model.PrivateRoom{}, false
	}
	return rm.PrivateRoom, true
}

// Join seats the joiner against the room's creator and starts their
// session. Codes are matched case-insensitively. A room is consumed by
// its first successful join.
func (r *Registry) Join(ctx context.Context, code model.RoomCode, joiner *model.PlayerIdentity) (*session.Engine, error) {
	if sessionID, ok := r.manager.ActiveSession(joiner.ID); ok {
		return nil, &model.AlreadyInSessionError{SessionID: sessionID, PlayerID: joiner.ID}
	}

	normalized := normalizeCode(code)

	r.mu.Lock()
	rm, ok := r.rooms[normalized]
	if !ok {
		r.mu.Unlock()
		return nil, model.ErrRoomNotFound
	}
	if rm.Expired(r.clock.Now()) {
		r.dropLocked(rm)
		r.mu.Unlock()
		return nil, model.ErrRoomExpired
	}
	if rm.Consumed {
		r.mu.Unlock()
		return nil, model.ErrRoomFull
	}
	if rm.CreatorID == joiner.ID {
		r.mu.Unlock()
		return nil, model.ErrRoomFull
	}
	// Sitting down here abandons any room the joiner had open themselves
	if prev, ok := r.creators[joiner.ID]; ok {
		delete(r.rooms, prev)
		delete(r.creators, joiner.ID)
	}
	rm.Consumed = true
	rm.Players = model.RoomCapacity
	r.dropLocked(rm)
	r.mu.Unlock()

	engine, err := r.manager.CreateSession(ctx, rm.creator, joiner)
	if err != nil {
		return nil, err
	}

	r.logger.Info("room joined",
		slog.String("code", string(normalized)),
		slog.String("joiner_id", string(joiner.ID)))

	return engine, nil
}

// Cancel closes a player's open room, if any
func (r *Registry) Cancel(playerID model.PlayerID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	code, ok := r.creators[playerID]
	if !ok {
		return
	}
	delete(r.creators, playerID)
	delete(r.rooms, code)
	r.logger.Info("room cancelled", slog.String("code", string(code)))
}

// generateCodeLocked returns a code not currently in use. Caller holds
// the lock.
func (r *Registry) generateCodeLocked() model.RoomCode {
	for {
		code := model.RoomCode(r.random.String(codeLength, codeAlphabet))
		if _, taken := r.rooms[code]; !taken {
			return code
		}
	}
}

func normalizeCode(code model.RoomCode) model.RoomCode {
	return model.RoomCode(strings.ToUpper(strings.TrimSpace(string(code))))
}

// dropLocked removes a room from the registry. Caller holds the lock.
func (r *Registry) dropLocked(rm *room) {
	delete(r.rooms, rm.Code)
	if r.creators[rm.CreatorID] == rm.Code {
		delete(r.creators, rm.CreatorID)
	}
}
