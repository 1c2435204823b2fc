// Package identity creates and resumes player identities. Guests get a
// generated display name; registered players keep their rating and
// history across connections.
package identity

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/export9/export9-server/internal/dependencies/clock"
	"github.com/export9/export9-server/internal/guestname"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/services/rating"
	"github.com/export9/export9-server/internal/storage"
)

// Service resolves connections to player identities
type Service struct {
	storage storage.Storage
	names   *guestname.Generator
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates an identity service
func New(store storage.Storage, names *guestname.Generator, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		names:   names,
		clock:   clk,
		logger:  logger.With(slog.String("component", "identity-service")),
	}
}

// Resolve returns the stored identity for a returning player id, or
// creates a fresh one. A non-empty name replaces the stored display
// name on resume and skips name generation on create.
func (s *Service) Resolve(ctx context.Context, playerID model.PlayerID, name string, registered bool) (*model.PlayerIdentity, error) {
	if playerID != "" {
		identity, err := s.storage.GetIdentity(ctx, playerID)
		if err == nil {
			if name != "" && name != identity.DisplayName {
				identity.DisplayName = name
				if err := s.storage.SaveIdentity(ctx, identity); err != nil {
					return nil, err
				}
			}
			return identity, nil
		}
		if !errors.Is(err, model.ErrIdentityNotFound) {
			return nil, err
		}
		// Unknown id, likely expired guest state; fall through to a
		// fresh identity
	}

	kind := model.IdentityGuest
	if registered {
		kind = model.IdentityRegistered
	}
	displayName := name
	if displayName == "" {
		displayName = s.names.Generate()
	}

	identity := &model.PlayerIdentity{
		ID:          model.PlayerID(uuid.NewString()),
		DisplayName: displayName,
		Kind:        kind,
		Rating:      rating.InitialRating,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.storage.SaveIdentity(ctx, identity); err != nil {
		return nil, err
	}

	s.logger.Info("identity created",
		slog.String("player_id", string(identity.ID)),
		slog.String("display_name", identity.DisplayName),
		slog.String("kind", string(identity.Kind)))

	return identity, nil
}

// Get returns an existing identity
func (s *Service) Get(ctx context.Context, playerID model.PlayerID) (*model.PlayerIdentity, error) {
	return s.storage.GetIdentity(ctx, playerID)
}
