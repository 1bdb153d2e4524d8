package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-rewards/internal/adapter/memory"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	seeded, err := Seed(ctx, store, 5)
	require.NoError(t, err)
	require.Len(t, seeded, 5)

	ads, err := store.ListAds(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 5)
	for _, ad := range ads {
		assert.NoError(t, ad.Validate())
		assert.GreaterOrEqual(t, ad.Reward, int64(5))
		assert.LessOrEqual(t, ad.Reward, int64(50))
	}
}

func TestSeedIfEmptyRunsOnce(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	seeded, err := SeedIfEmpty(ctx, store, 3)
	require.NoError(t, err)
	assert.Len(t, seeded, 3)

	seeded, err = SeedIfEmpty(ctx, store, 3)
	require.NoError(t, err)
	assert.Empty(t, seeded)

	ads, err := store.ListAds(ctx)
	require.NoError(t, err)
	assert.Len(t, ads, 3)
}
