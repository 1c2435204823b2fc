package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/testutil"
)

func TestNewWithMemoryStorage(t *testing.T) {
	cfg := config.Default()

	app, err := New(cfg, testutil.NopLogger())
	require.NoError(t, err)

	assert.NotNil(t, app.Storage)
	assert.NotNil(t, app.ExportsService)
	assert.NotNil(t, app.RatingService)
	assert.NotNil(t, app.SessionManager)
	assert.NotNil(t, app.MatchmakerService)
	assert.NotNil(t, app.RoomRegistry)
	assert.NotNil(t, app.Gateway)
	assert.NotNil(t, app.Hub)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Type = "etcd"

	_, err := New(cfg, testutil.NopLogger())
	assert.Error(t, err)
}

func TestNewWithNilLogger(t *testing.T) {
	_, err := New(config.Default(), nil)
	assert.NoError(t, err)
}
