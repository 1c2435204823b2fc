package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/export9/export9-server/internal/dependencies/mocks"
	"github.com/export9/export9-server/internal/guestname"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/storage/memory"
	"github.com/export9/export9-server/internal/testutil"
)

type IdentitySuite struct {
	suite.Suite
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestIdentitySuite(t *testing.T) {
	suite.Run(t, new(IdentitySuite))
}

func (s *IdentitySuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.storage = memory.New()
	s.service = New(s.storage, guestname.New(s.random), s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *IdentitySuite) TestCreatesGuestWithGeneratedName() {
	identity, err := s.service.Resolve(s.ctx, "", "", false)
	s.Require().NoError(err)

	s.NotEmpty(identity.ID)
	s.Equal("SwiftTrader", identity.DisplayName)
	s.Equal(model.IdentityGuest, identity.Kind)
	s.Equal(1200, identity.Rating)
	s.Equal(s.clock.Now(), identity.CreatedAt)

	stored, err := s.storage.GetIdentity(s.ctx, identity.ID)
	s.Require().NoError(err)
	s.Equal(identity.DisplayName, stored.DisplayName)
}

func (s *IdentitySuite) TestCreatesRegisteredWithGivenName() {
	identity, err := s.service.Resolve(s.ctx, "", "Ann", true)
	s.Require().NoError(err)

	s.Equal("Ann", identity.DisplayName)
	s.Equal(model.IdentityRegistered, identity.Kind)
}

func (s *IdentitySuite) TestResumesExistingIdentity() {
	created, err := s.service.Resolve(s.ctx, "", "Ann", true)
	s.Require().NoError(err)

	resumed, err := s.service.Resolve(s.ctx, created.ID, "", true)
	s.Require().NoError(err)
	s.Equal(created.ID, resumed.ID)
	s.Equal("Ann", resumed.DisplayName)
}

func (s *IdentitySuite) TestResumeRenames() {
	created, err := s.service.Resolve(s.ctx, "", "Ann", true)
	s.Require().NoError(err)

	resumed, err := s.service.Resolve(s.ctx, created.ID, "Annie", true)
	s.Require().NoError(err)
	s.Equal("Annie", resumed.DisplayName)

	stored, err := s.storage.GetIdentity(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Annie", stored.DisplayName)
}

func (s *IdentitySuite) TestUnknownIDGetsFreshIdentity() {
	identity, err := s.service.Resolve(s.ctx, "gone", "Bee", false)
	s.Require().NoError(err)
	s.NotEqual(model.PlayerID("gone"), identity.ID)
	s.Equal("Bee", identity.DisplayName)
}
