package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valeriaulyamaeva/due-reminders/internal/database"
)

func TestMuteSettingLifecycle(t *testing.T) {
	pool := connectTestDB(t)
	ctx := context.Background()
	scope := testScope()

	setting, err := database.GetMuteSetting(ctx, pool, scope)
	require.NoError(t, err)
	assert.False(t, setting.IsMuted, "first read creates an unmuted row")

	setting, err = database.ToggleMuted(ctx, pool, scope)
	require.NoError(t, err)
	assert.True(t, setting.IsMuted)

	setting, err = database.ToggleMuted(ctx, pool, scope)
	require.NoError(t, err)
	assert.False(t, setting.IsMuted)

	setting, err = database.SetMuted(ctx, pool, scope, true)
	require.NoError(t, err)
	assert.True(t, setting.IsMuted)

	setting, err = database.SetMuted(ctx, pool, scope, true)
	require.NoError(t, err)
	assert.True(t, setting.IsMuted, "explicit set is idempotent")
}

func TestToggleMutedCreatesMissingRow(t *testing.T) {
	pool := connectTestDB(t)
	setting, err := database.ToggleMuted(context.Background(), pool, testScope())
	require.NoError(t, err)
	assert.True(t, setting.IsMuted)
}
