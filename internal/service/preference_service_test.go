package service

import (
	"context"
	"testing"

	"github.com/Eursukkul/tour-booking/tour-service/internal/repository"
	"github.com/Eursukkul/tour-booking/tour-service/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDarkMode(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	prefs, err := NewPreferenceService(ctx, repository.NewPreferenceRepository(store))
	require.NoError(t, err)
	assert.False(t, prefs.DarkMode())

	on, err := prefs.ToggleDarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	raw, _ := store.Get(ctx, storage.KeyDarkMode)
	assert.Equal(t, "true", string(raw))

	require.NoError(t, prefs.SetDarkMode(ctx, false))
	assert.False(t, prefs.DarkMode())
}
