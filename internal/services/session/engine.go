package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/dependencies/clock"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/protocol"
	"github.com/export9/export9-server/internal/services/bot"
	"github.com/export9/export9-server/internal/services/rating"
	"github.com/export9/export9-server/internal/services/scoring"
)

// Deps are the collaborators a session engine needs
type Deps struct {
	Scoring  *scoring.Service
	Rating   *rating.Service
	Bot      *bot.Service
	Clock    clock.Clock
	Notifier Notifier
	Logger   *slog.Logger
}

// slot is one player's seat in a session
type slot struct {
	identity  *model.PlayerIdentity
	hand      model.Hand
	score     int
	connected bool
}

// Engine runs one match's lifecycle. Every external event (submission,
// timer fire, disconnect, reconnect, quit) is serialized through one
// mutex, so round resolution happens exactly once per round.
type Engine struct {
	id   model.SessionID
	cfg  config.GameConfig
	deps Deps

	// onFinish is called once when the session reaches a terminal state
	onFinish func(model.SessionID)

	mu       sync.Mutex
	state    model.SessionState
	slots    [2]*slot
	products []model.Product
	round    *model.Round

	roundTimer   clock.Timer
	displayTimer clock.Timer
	graceTimer   clock.Timer
	cpuTimer     clock.Timer

	// pause bookkeeping
	pausedPlayer    model.PlayerID
	pausedFrom      model.SessionState
	pauseExpiresAt  time.Time
	frozenRemaining time.Duration

	startedAt time.Time

	// terminal payloads, kept for late rejoin attempts
	finalEnded     *protocol.GameEnded
	finalForfeited *protocol.GameForfeited
}

// NewEngine creates a session engine for two paired identities. Both
// players receive clones of the same dealt hand.
func NewEngine(
	id model.SessionID,
	cfg config.GameConfig,
	deps Deps,
	a, b *model.PlayerIdentity,
	hand model.Hand,
	products []model.Product,
	onFinish func(model.SessionID),
) *Engine {
	deps.Logger = deps.Logger.With(slog.String("session_id", string(id)))
	return &Engine{
		id:       id,
		cfg:      cfg,
		deps:     deps,
		onFinish: onFinish,
		state:    model.SessionDealing,
		slots: [2]*slot{
			{identity: a, hand: hand.Clone(), connected: !a.IsCPU},
			{identity: b, hand: hand.Clone(), connected: !b.IsCPU},
		},
		products: products,
	}
}

// ID returns the session id
func (e *Engine) ID() model.SessionID {
	return e.id
}

// State returns the current lifecycle state
func (e *Engine) State() model.SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Players returns both player ids in seat order
func (e *Engine) Players() [2]model.PlayerID {
	return [2]model.PlayerID{e.slots[0].identity.ID, e.slots[1].identity.ID}
}

// Scores returns both players' current round wins in seat order
func (e *Engine) Scores() [2]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return [2]int{e.slots[0].score, e.slots[1].score}
}

// Start announces the pairing to both players and opens round 1
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.startedAt = e.deps.Clock.Now()

	players := e.playerInfos()
	for _, s := range e.slots {
		if s.identity.IsCPU {
			continue
		}
		e.deps.Notifier.Send(s.identity.ID, protocol.ServerMessage{
			Type: protocol.TypeGameFound,
			Payload: protocol.GameFound{
				SessionID: e.id,
				Players:   players,
				YourCards: cardInfos(s.hand),
			},
		})
	}

	e.deps.Logger.Info("session started",
		slog.String("player_a", string(e.slots[0].identity.ID)),
		slog.String("player_b", string(e.slots[1].identity.ID)))

	e.beginRound(1)
}

// HandleSubmission plays (or replaces) a player's card for the active
// round. The card must still be in the player's hand.
func (e *Engine) HandleSubmission(ctx context.Context, playerID model.PlayerID, countryCode string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.slot(playerID)
	if s == nil {
		return model.ErrNotInSession
	}
	if e.state.Finished() {
		return model.ErrSessionFinished
	}
	if e.state != model.SessionRoundActive || e.round == nil || e.round.Resolved {
		return model.ErrRoundNotActive
	}

	card, ok := s.hand.Find(countryCode)
	if !ok {
		return model.ErrCardNotInHand
	}

	e.round.Submissions[playerID] = card
	e.broadcast(protocol.ServerMessage{
		Type: protocol.TypeCardPlayed,
		Payload: protocol.CardPlayed{
			PlayerID:   playerID,
			PlayerName: s.identity.DisplayName,
		},
	})

	if len(e.round.Submissions) == len(e.slots) {
		e.resolveRound()
	}
	return nil
}

// HandleDisconnect pauses the session while the player's slot is held
// open for reconnection. If the session is already paused for the other
// player, the match forfeits to whoever disconnected first.
func (e *Engine) HandleDisconnect(playerID model.PlayerID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.slot(playerID)
	if s == nil || e.state.Finished() {
		return
	}
	s.connected = false

	if e.state == model.SessionPaused {
		if e.pausedPlayer != playerID {
			// Both players gone; the first to disconnect keeps their claim
			e.forfeit(playerID, model.ForfeitOpponentDisconnected)
		}
		return
	}

	e.pausedPlayer = playerID
	e.pausedFrom = e.state
	e.pauseExpiresAt = e.deps.Clock.Now().Add(e.cfg.GraceWindow)
	e.state = model.SessionPaused

	// Freeze the round clock
	if e.roundTimer != nil {
		e.roundTimer.Stop()
		e.roundTimer = nil
	}
	if e.displayTimer != nil {
		e.displayTimer.Stop()
		e.displayTimer = nil
	}
	if e.cpuTimer != nil {
		e.cpuTimer.Stop()
		e.cpuTimer = nil
	}
	if e.pausedFrom == model.SessionRoundActive && e.round != nil {
		e.frozenRemaining = e.round.Deadline.Sub(e.deps.Clock.Now())
		if e.frozenRemaining < 0 {
			e.frozenRemaining = 0
		}
	}

	e.graceTimer = e.deps.Clock.AfterFunc(e.cfg.GraceWindow, func() {
		e.onGraceExpired(playerID)
	})

	e.sendToOpponent(playerID, protocol.ServerMessage{
		Type: protocol.TypeOpponentDisconnected,
		Payload: protocol.OpponentDisconnected{
			PlayerID:       playerID,
			PauseExpiresAt: e.pauseExpiresAt,
		},
	})

	e.deps.Logger.Info("session paused",
		slog.String("player_id", string(playerID)),
		slog.Time("pause_expires_at", e.pauseExpiresAt))
}

// HandleReconnect resumes a paused session for the returning player and
// replays the current round context. Reconnecting to a finished session
// delivers the final result instead; if the session was forfeited
// because this player's grace window ran out, the error says so.
func (e *Engine) HandleReconnect(playerID model.PlayerID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.slot(playerID)
	if s == nil {
		return model.ErrNotInSession
	}

	if e.state.Finished() {
		s.connected = true
		e.sendFinalResult(playerID)
		if e.finalForfeited != nil &&
			e.finalForfeited.ForfeitingPlayer == playerID &&
			e.finalForfeited.Reason == model.ForfeitOpponentDisconnected {
			return model.ErrReconnectExpired
		}
		return nil
	}

	s.connected = true

	if e.state == model.SessionPaused && e.pausedPlayer == playerID {
		if e.graceTimer != nil {
			e.graceTimer.Stop()
			e.graceTimer = nil
		}
		e.state = e.pausedFrom
		e.pausedPlayer = ""

		if e.state == model.SessionRoundActive && e.round != nil {
			e.round.Deadline = e.deps.Clock.Now().Add(e.frozenRemaining)
			e.armRoundTimer(e.round.Number, e.frozenRemaining)
			e.armCPUTimer(e.round.Number)
		} else if e.state == model.SessionRoundResolved {
			e.armDisplayTimer(e.round.Number)
		}

		e.sendToOpponent(playerID, protocol.ServerMessage{
			Type:    protocol.TypeOpponentReconnected,
			Payload: protocol.OpponentReconnected{PlayerID: playerID},
		})
		e.deps.Logger.Info("session resumed", slog.String("player_id", string(playerID)))
	}

	e.replayRoundContext(playerID, s)
	return nil
}

// HandleQuit forfeits the match to the opponent immediately
func (e *Engine) HandleQuit(playerID model.PlayerID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.slot(playerID)
	if s == nil {
		return model.ErrNotInSession
	}
	if e.state.Finished() {
		return model.ErrSessionFinished
	}

	e.forfeit(playerID, model.ForfeitOpponentQuit)
	return nil
}

// beginRound opens round n for submissions. Caller holds the lock.
func (e *Engine) beginRound(n int) {
	e.round = &model.Round{
		Number:      n,
		Product:     e.products[n-1],
		Submissions: make(map[model.PlayerID]model.Card, 2),
		Deadline:    e.deps.Clock.Now().Add(e.cfg.RoundDuration),
	}
	e.state = model.SessionRoundActive

	players := e.playerInfos()
	for _, s := range e.slots {
		if s.identity.IsCPU {
			continue
		}
		e.deps.Notifier.Send(s.identity.ID, protocol.ServerMessage{
			Type: protocol.TypeRoundStarted,
			Payload: protocol.RoundStarted{
				RoundNumber: n,
				TotalRounds: e.cfg.RoundsPerSession,
				Product:     productInfo(e.round.Product),
				Players:     players,
				YourCards:   cardInfos(s.hand),
				Deadline:    e.round.Deadline,
			},
		})
	}

	e.armRoundTimer(n, e.cfg.RoundDuration)
	e.armCPUTimer(n)
}

// armRoundTimer schedules the countdown for round n. Caller holds the lock.
func (e *Engine) armRoundTimer(n int, d time.Duration) {
	e.roundTimer = e.deps.Clock.AfterFunc(d, func() {
		e.onRoundTimeout(n)
	})
}

// armCPUTimer schedules the CPU's play for round n, if a CPU is seated.
// Caller holds the lock.
func (e *Engine) armCPUTimer(n int) {
	cpu := e.cpuSlot()
	if cpu == nil {
		return
	}
	if e.round != nil {
		if _, played := e.round.Submissions[cpu.identity.ID]; played {
			return
		}
	}
	e.cpuTimer = e.deps.Clock.AfterFunc(e.cfg.CPUThinkDelay, func() {
		e.onCPUTurn(n)
	})
}

// armDisplayTimer schedules the transition out of the result display
// for round n. Caller holds the lock.
func (e *Engine) armDisplayTimer(n int) {
	e.displayTimer = e.deps.Clock.AfterFunc(e.cfg.ResultDisplayDuration, func() {
		e.onDisplayElapsed(n)
	})
}

// onRoundTimeout fires when round n's countdown expires
func (e *Engine) onRoundTimeout(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != model.SessionRoundActive || e.round == nil || e.round.Number != n || e.round.Resolved {
		return
	}
	e.deps.Logger.Info("round timed out", slog.Int("round", n))
	e.resolveRound()
}

// onCPUTurn plays the CPU's card for round n
func (e *Engine) onCPUTurn(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != model.SessionRoundActive || e.round == nil || e.round.Number != n || e.round.Resolved {
		return
	}
	cpu := e.cpuSlot()
	if cpu == nil {
		return
	}
	if _, played := e.round.Submissions[cpu.identity.ID]; played {
		return
	}

	card, ok := e.deps.Bot.ChooseCard(cpu.hand, e.round.Product)
	if !ok {
		e.deps.Logger.Error("cpu has no cards to play", slog.Int("round", n))
		return
	}

	e.round.Submissions[cpu.identity.ID] = card
	e.broadcast(protocol.ServerMessage{
		Type: protocol.TypeCardPlayed,
		Payload: protocol.CardPlayed{
			PlayerID:   cpu.identity.ID,
			PlayerName: cpu.identity.DisplayName,
		},
	})

	if len(e.round.Submissions) == len(e.slots) {
		e.resolveRound()
	}
}

// onDisplayElapsed advances past round n's result display
func (e *Engine) onDisplayElapsed(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != model.SessionRoundResolved || e.round == nil || e.round.Number != n {
		return
	}
	if n >= e.cfg.RoundsPerSession {
		e.finishCompleted()
		return
	}
	e.beginRound(n + 1)
}

// onGraceExpired forfeits the session when the paused player never
// returned
func (e *Engine) onGraceExpired(playerID model.PlayerID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != model.SessionPaused || e.pausedPlayer != playerID {
		return
	}
	e.deps.Logger.Info("reconnection grace expired", slog.String("player_id", string(playerID)))
	e.forfeit(playerID, model.ForfeitOpponentDisconnected)
}

// resolveRound is the single decision point for the current round.
// Caller holds the lock; the resolved flag makes late timer fires no-ops.
func (e *Engine) resolveRound() {
	if e.round == nil || e.round.Resolved {
		return
	}
	e.round.Resolved = true
	if e.roundTimer != nil {
		e.roundTimer.Stop()
		e.roundTimer = nil
	}
	if e.cpuTimer != nil {
		e.cpuTimer.Stop()
		e.cpuTimer = nil
	}

	// Fill in missing submissions so a round never hangs: the standing
	// submission if present, otherwise the first card still in hand
	for _, s := range e.slots {
		if _, ok := e.round.Submissions[s.identity.ID]; ok {
			continue
		}
		if len(s.hand) == 0 {
			continue
		}
		e.round.Submissions[s.identity.ID] = s.hand[0]
		e.deps.Logger.Info("auto-submitted card",
			slog.Int("round", e.round.Number),
			slog.String("player_id", string(s.identity.ID)),
			slog.String("country_code", s.hand[0].CountryCode))
	}

	cardA := e.round.Submissions[e.slots[0].identity.ID]
	cardB := e.round.Submissions[e.slots[1].identity.ID]

	result := e.deps.Scoring.Resolve(e.round.Product, cardA, cardB)
	e.round.Result = result

	switch result.Outcome {
	case model.RoundWinnerA:
		e.slots[0].score++
	case model.RoundWinnerB:
		e.slots[1].score++
	case model.RoundTie:
		e.slots[0].score++
		e.slots[1].score++
	}

	// Played cards are gone for good
	e.slots[0].hand = e.slots[0].hand.Remove(cardA.CountryCode)
	e.slots[1].hand = e.slots[1].hand.Remove(cardB.CountryCode)

	e.state = model.SessionRoundResolved
	e.broadcast(protocol.ServerMessage{
		Type:    protocol.TypeRoundCompleted,
		Payload: e.roundCompletedPayload(cardA, cardB, result),
	})

	e.deps.Logger.Info("round resolved",
		slog.Int("round", e.round.Number),
		slog.String("outcome", string(result.Outcome)),
		slog.String("card_a", cardA.CountryCode),
		slog.String("card_b", cardB.CountryCode))

	e.armDisplayTimer(e.round.Number)
}

func (e *Engine) roundCompletedPayload(cardA, cardB model.Card, result model.RoundResult) protocol.RoundCompleted {
	winnerID := "tie"
	isTie := result.Outcome == model.RoundTie
	switch result.Outcome {
	case model.RoundWinnerA:
		winnerID = string(e.slots[0].identity.ID)
	case model.RoundWinnerB:
		winnerID = string(e.slots[1].identity.ID)
	}

	cards := [2]model.Card{cardA, cardB}
	values := [2]float64{result.ValueA, result.ValueB}
	winners := [2]bool{
		result.Outcome == model.RoundWinnerA || isTie,
		result.Outcome == model.RoundWinnerB || isTie,
	}

	players := make([]protocol.RoundPlayerResult, 0, 2)
	for i, s := range e.slots {
		players = append(players, protocol.RoundPlayerResult{
			ID:            s.identity.ID,
			Name:          s.identity.DisplayName,
			Score:         s.score,
			IsRoundWinner: winners[i],
			CardPlayed: &protocol.PlayedCard{
				CountryCode: cards[i].CountryCode,
				CountryName: cards[i].CountryName,
				ExportValue: values[i],
			},
		})
	}

	return protocol.RoundCompleted{
		RoundNumber: e.round.Number,
		WinnerID:    winnerID,
		IsTie:       isTie,
		Players:     players,
	}
}

// finishCompleted closes a session that ran all its rounds. Caller
// holds the lock.
func (e *Engine) finishCompleted() {
	e.state = model.SessionCompleted

	var winnerID model.PlayerID
	var winnerName string
	switch {
	case e.slots[0].score > e.slots[1].score:
		winnerID = e.slots[0].identity.ID
		winnerName = e.slots[0].identity.DisplayName
	case e.slots[1].score > e.slots[0].score:
		winnerID = e.slots[1].identity.ID
		winnerName = e.slots[1].identity.DisplayName
	}

	record := e.buildRecord(winnerID, "")
	changes := e.applyRating(record)

	e.finalEnded = &protocol.GameEnded{
		WinnerID:      winnerID,
		WinnerName:    winnerName,
		FinalScores:   e.finalScores(),
		RatingChanges: changes,
	}
	e.broadcast(protocol.ServerMessage{
		Type:    protocol.TypeGameEnded,
		Payload: *e.finalEnded,
	})

	e.deps.Logger.Info("session completed",
		slog.String("winner_id", string(winnerID)),
		slog.Int("score_a", e.slots[0].score),
		slog.Int("score_b", e.slots[1].score))

	if e.onFinish != nil {
		e.onFinish(e.id)
	}
}

// forfeit closes the session in the opponent's favor. Caller holds the
// lock.
func (e *Engine) forfeit(forfeiter model.PlayerID, reason model.ForfeitReason) {
	for _, t := range []clock.Timer{e.roundTimer, e.displayTimer, e.graceTimer, e.cpuTimer} {
		if t != nil {
			t.Stop()
		}
	}
	e.roundTimer, e.displayTimer, e.graceTimer, e.cpuTimer = nil, nil, nil, nil

	e.state = model.SessionForfeited

	var winnerID model.PlayerID
	for _, s := range e.slots {
		if s.identity.ID != forfeiter {
			winnerID = s.identity.ID
		}
	}

	record := e.buildRecord(winnerID, reason)
	changes := e.applyRating(record)

	e.finalForfeited = &protocol.GameForfeited{
		Reason:           reason,
		ForfeitingPlayer: forfeiter,
		WinnerID:         winnerID,
		FinalScores:      e.finalScores(),
		RatingChanges:    changes,
	}
	e.broadcast(protocol.ServerMessage{
		Type:    protocol.TypeGameForfeited,
		Payload: *e.finalForfeited,
	})

	e.deps.Logger.Info("session forfeited",
		slog.String("forfeiting_player", string(forfeiter)),
		slog.String("reason", string(reason)))

	if e.onFinish != nil {
		e.onFinish(e.id)
	}
}

// buildRecord assembles the archived result. Caller holds the lock.
func (e *Engine) buildRecord(winnerID model.PlayerID, reason model.ForfeitReason) *model.MatchRecord {
	now := e.deps.Clock.Now()
	return &model.MatchRecord{
		// One stable id per session so redelivery cannot double-apply
		ID:            fmt.Sprintf("result-%s", e.id),
		SessionID:     e.id,
		PlayerA:       e.slots[0].identity.ID,
		PlayerB:       e.slots[1].identity.ID,
		WinnerID:      winnerID,
		ScoreA:        e.slots[0].score,
		ScoreB:        e.slots[1].score,
		ForfeitReason: reason,
		Duration:      now.Sub(e.startedAt),
		CompletedAt:   now,
	}
}

// applyRating runs the rating pipeline for the finished match. Caller
// holds the lock.
func (e *Engine) applyRating(record *model.MatchRecord) []protocol.RatingChange {
	_, applied, err := e.deps.Rating.ApplyResult(
		context.Background(), record, e.slots[0].identity, e.slots[1].identity)
	if err != nil {
		e.deps.Logger.Error("applying match result failed", slog.Any("error", err))
		return nil
	}
	if !applied {
		return nil
	}
	return []protocol.RatingChange{
		{PlayerID: record.PlayerA, Before: record.RatingABefore, After: record.RatingAAfter},
		{PlayerID: record.PlayerB, Before: record.RatingBBefore, After: record.RatingBAfter},
	}
}

// replayRoundContext resends the state a returning player needs to keep
// playing. Caller holds the lock.
func (e *Engine) replayRoundContext(playerID model.PlayerID, s *slot) {
	e.deps.Notifier.Send(playerID, protocol.ServerMessage{
		Type: protocol.TypeGameFound,
		Payload: protocol.GameFound{
			SessionID: e.id,
			Players:   e.playerInfos(),
			YourCards: cardInfos(s.hand),
		},
	})

	if e.round == nil || e.state != model.SessionRoundActive {
		return
	}

	e.deps.Notifier.Send(playerID, protocol.ServerMessage{
		Type: protocol.TypeRoundStarted,
		Payload: protocol.RoundStarted{
			RoundNumber: e.round.Number,
			TotalRounds: e.cfg.RoundsPerSession,
			Product:     productInfo(e.round.Product),
			Players:     e.playerInfos(),
			YourCards:   cardInfos(s.hand),
			Deadline:    e.round.Deadline,
		},
	})

	// Opponent submission status, without revealing the card
	for _, other := range e.slots {
		if other.identity.ID == playerID {
			continue
		}
		if _, ok := e.round.Submissions[other.identity.ID]; ok {
			e.deps.Notifier.Send(playerID, protocol.ServerMessage{
				Type: protocol.TypeCardPlayed,
				Payload: protocol.CardPlayed{
					PlayerID:   other.identity.ID,
					PlayerName: other.identity.DisplayName,
				},
			})
		}
	}
}

// sendFinalResult delivers the terminal payload to a late rejoiner.
// Caller holds the lock.
func (e *Engine) sendFinalResult(playerID model.PlayerID) {
	switch {
	case e.finalEnded != nil:
		e.deps.Notifier.Send(playerID, protocol.ServerMessage{
			Type:    protocol.TypeGameEnded,
			Payload: *e.finalEnded,
		})
	case e.finalForfeited != nil:
		e.deps.Notifier.Send(playerID, protocol.ServerMessage{
			Type:    protocol.TypeGameForfeited,
			Payload: *e.finalForfeited,
		})
	}
}

// broadcast sends a message to every connected human seat. Caller
// holds the lock.
func (e *Engine) broadcast(msg protocol.ServerMessage) {
	for _, s := range e.slots {
		if s.identity.IsCPU || !s.connected {
			continue
		}
		e.deps.Notifier.Send(s.identity.ID, msg)
	}
}

// sendToOpponent sends a message to the other seat. Caller holds the lock.
func (e *Engine) sendToOpponent(playerID model.PlayerID, msg protocol.ServerMessage) {
	for _, s := range e.slots {
		if s.identity.ID == playerID || s.identity.IsCPU || !s.connected {
			continue
		}
		e.deps.Notifier.Send(s.identity.ID, msg)
	}
}

func (e *Engine) slot(playerID model.PlayerID) *slot {
	for _, s := range e.slots {
		if s.identity.ID == playerID {
			return s
		}
	}
	return nil
}

func (e *Engine) cpuSlot() *slot {
	for _, s := range e.slots {
		if s.identity.IsCPU {
			return s
		}
	}
	return nil
}

func (e *Engine) playerInfos() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, 2)
	for _, s := range e.slots {
		infos = append(infos, protocol.PlayerInfo{
			ID:    s.identity.ID,
			Name:  s.identity.DisplayName,
			IsCPU: s.identity.IsCPU,
		})
	}
	return infos
}

func (e *Engine) finalScores() []protocol.FinalScore {
	scores := make([]protocol.FinalScore, 0, 2)
	for _, s := range e.slots {
		scores = append(scores, protocol.FinalScore{
			ID:    s.identity.ID,
			Name:  s.identity.DisplayName,
			Score: s.score,
		})
	}
	return scores
}

func cardInfos(hand model.Hand) []protocol.CardInfo {
	cards := make([]protocol.CardInfo, 0, len(hand))
	for _, c := range hand {
		cards = append(cards, protocol.CardInfo{
			CountryCode: c.CountryCode,
			CountryName: c.CountryName,
		})
	}
	return cards
}

func productInfo(p model.Product) protocol.ProductInfo {
	return protocol.ProductInfo{ID: p.ID, Name: p.Name, Category: p.Category}
}
