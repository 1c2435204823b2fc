// Package matchmaker pairs players from a first-in-first-out waiting
// pool, with a CPU opponent as fallback after a minimum wait.
package matchmaker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/dependencies/clock"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/protocol"
	"github.com/export9/export9-server/internal/services/bot"
	"github.com/export9/export9-server/internal/services/session"
)

// waiter is one queued player
type waiter struct {
	identity   *model.PlayerIdentity
	enqueuedAt time.Time
	signal     clock.Timer
}

// Service pairs waiting players in arrival order
type Service struct {
	cfg      config.GameConfig
	manager  *session.Manager
	bot      *bot.Service
	clock    clock.Clock
	notifier session.Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	queue   []*waiter
	waiting map[model.PlayerID]*waiter
}

// New creates a matchmaker
func New(
	cfg config.GameConfig,
	manager *session.Manager,
	botSvc *bot.Service,
	clk clock.Clock,
	notifier session.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		cfg:      cfg,
		manager:  manager,
		bot:      botSvc,
		clock:    clk,
		notifier: notifier,
		logger:   logger.With(slog.String("component", "matchmaker")),
		waiting:  make(map[model.PlayerID]*waiter),
	}
}

// Enqueue adds a player to the waiting pool. If another player is
// already waiting, the two are paired immediately. Re-enqueueing a
// player who is already waiting is a no-op.
func (s *Service) Enqueue(ctx context.Context, identity *model.PlayerIdentity) error {
	if sessionID, ok := s.manager.ActiveSession(identity.ID); ok {
		return &model.AlreadyInSessionError{SessionID: sessionID, PlayerID: identity.ID}
	}

	for {
		s.mu.Lock()
		if _, ok := s.waiting[identity.ID]; ok {
			s.mu.Unlock()
			return nil
		}

		if len(s.queue) == 0 {
			w := &waiter{identity: identity, enqueuedAt: s.clock.Now()}
			s.queue = append(s.queue, w)
			s.waiting[identity.ID] = w
			s.armSignal(w)
			s.mu.Unlock()

			s.logger.Info("player queued", slog.String("player_id", string(identity.ID)))
			return nil
		}

		opponent := s.queue[0]
		s.removeLocked(opponent.identity.ID)
		s.mu.Unlock()

		_, err := s.manager.CreateSession(ctx, opponent.identity, identity)
		if err == nil {
			s.logger.Info("paired players",
				slog.String("player_a", string(opponent.identity.ID)),
				slog.String("player_b", string(identity.ID)),
				slog.Duration("opponent_waited", s.clock.Now().Sub(opponent.enqueuedAt)))
			return nil
		}

		// A waiter who found a seat through another path left a stale
		// queue entry behind. Drop it and try the next in line rather
		// than surfacing their session to the enqueuer.
		var conflict *model.AlreadyInSessionError
		if errors.As(err, &conflict) && conflict.PlayerID == opponent.identity.ID {
			s.logger.Info("dropped stale queue entry",
				slog.String("player_id", string(opponent.identity.ID)))
			continue
		}

		// Give the opponent their place in line back
		s.requeueFront(opponent)
		return err
	}
}

// Cancel removes a player from the waiting pool
func (s *Service) Cancel(playerID model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.waiting[playerID]; !ok {
		return model.ErrNotWaiting
	}
	s.removeLocked(playerID)
	s.logger.Info("player left queue", slog.String("player_id", string(playerID)))
	return nil
}

// RequestCPU matches a waiting player against the CPU. The player must
// have been waiting at least the CPU wait threshold.
func (s *Service) RequestCPU(ctx context.Context, playerID model.PlayerID) error {
	s.mu.Lock()
	w, ok := s.waiting[playerID]
	if !ok {
		s.mu.Unlock()
		return model.ErrNotWaiting
	}
	if s.clock.Now().Sub(w.enqueuedAt) < s.cfg.CPUWaitThreshold {
		s.mu.Unlock()
		return model.ErrCPUNotAvailable
	}
	s.removeLocked(playerID)
	s.mu.Unlock()

	cpu, err := s.bot.CreateCPUIdentity(ctx)
	if err != nil {
		s.requeueFront(w)
		return err
	}

	s.logger.Info("paired with cpu", slog.String("player_id", string(playerID)))

	if _, err := s.manager.CreateSession(ctx, w.identity, cpu); err != nil {
		s.requeueFront(w)
		return err
	}
	return nil
}

// Waiting reports whether a player is in the pool
func (s *Service) Waiting(playerID model.PlayerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.waiting[playerID]
	return ok
}

// armSignal schedules the next waiting status update. Caller holds the
// lock.
func (s *Service) armSignal(w *waiter) {
	w.signal = s.clock.AfterFunc(s.cfg.WaitSignalInterval, func() {
		s.onSignal(w.identity.ID)
	})
}

// onSignal sends the periodic waiting update and re-arms the timer
func (s *Service) onSignal(playerID model.PlayerID) {
	s.mu.Lock()
	w, ok := s.waiting[playerID]
	if !ok {
		s.mu.Unlock()
		return
	}
	elapsed := s.clock.Now().Sub(w.enqueuedAt)
	s.armSignal(w)
	s.mu.Unlock()

	s.notifier.Send(playerID, protocol.ServerMessage{
		Type: protocol.TypeWaiting,
		Payload: protocol.Waiting{
			ElapsedSeconds: int(elapsed.Seconds()),
			CPUAvailable:   elapsed >= s.cfg.CPUWaitThreshold,
		},
	})
}

// removeLocked drops a waiter from both the queue and the index and
// stops its signal timer. Caller holds the lock.
func (s *Service) removeLocked(playerID model.PlayerID) {
	w, ok := s.waiting[playerID]
	if !ok {
		return
	}
	delete(s.waiting, playerID)
	if w.signal != nil {
		w.signal.Stop()
		w.signal = nil
	}
	for i, queued := range s.queue {
		if queued.identity.ID == playerID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			break
		}
	}
}

// requeueFront restores a waiter to the head of the queue after a
// failed pairing, keeping their original wait time
func (s *Service) requeueFront(w *waiter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.waiting[w.identity.ID]; ok {
		return
	}
	s.queue = append([]*waiter{w}, s.queue...)
	s.waiting[w.identity.ID] = w
	s.armSignal(w)
}
