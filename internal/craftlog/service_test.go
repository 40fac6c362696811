package craftlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthvale/forgecore/internal/domain"
)

const testPlayerID = "55555555-5555-5555-5555-555555555555"

type fakeLogRepo struct {
	lastFilter domain.CraftingLogFilter
	lastSince  time.Time
	lastLimit  int
	logs       []domain.CraftingLog
	popular    []domain.RecipePopularity
}

func (f *fakeLogRepo) AppendCraftingLog(_ context.Context, entry *domain.CraftingLog) error {
	f.logs = append(f.logs, *entry)
	return nil
}

func (f *fakeLogRepo) ListCraftingLogs(_ context.Context, filter domain.CraftingLogFilter) ([]domain.CraftingLog, error) {
	f.lastFilter = filter
	return f.logs, nil
}

func (f *fakeLogRepo) GetPopularRecipes(_ context.Context, since time.Time, limit int) ([]domain.RecipePopularity, error) {
	f.lastSince = since
	f.lastLimit = limit
	return f.popular, nil
}

func TestGetPlayerHistory(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLogRepo{logs: []domain.CraftingLog{{RecipeID: 1, Success: true}}}
	svc := NewService(repo)

	t.Run("pins the player and applies defaults", func(t *testing.T) {
		got, err := svc.GetPlayerHistory(ctx, testPlayerID, domain.CraftingLogFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, testPlayerID, repo.lastFilter.PlayerID)
		assert.Equal(t, DefaultHistoryLimit, repo.lastFilter.Limit)
	})

	t.Run("caps oversized limits", func(t *testing.T) {
		_, err := svc.GetPlayerHistory(ctx, testPlayerID, domain.CraftingLogFilter{Limit: 5000})
		require.NoError(t, err)
		assert.Equal(t, MaxHistoryLimit, repo.lastFilter.Limit)
	})

	t.Run("a caller-supplied player id in the filter is overridden", func(t *testing.T) {
		_, err := svc.GetPlayerHistory(ctx, testPlayerID, domain.CraftingLogFilter{PlayerID: "someone-else"})
		require.NoError(t, err)
		assert.Equal(t, testPlayerID, repo.lastFilter.PlayerID)
	})

	t.Run("empty player id rejected", func(t *testing.T) {
		_, err := svc.GetPlayerHistory(ctx, "", domain.CraftingLogFilter{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGetPopularRecipes(t *testing.T) {
	ctx := context.Background()
	repo := &fakeLogRepo{popular: []domain.RecipePopularity{{RecipeID: 1, TimesCrafted: 9}}}
	svc := NewService(repo)

	got, err := svc.GetPopularRecipes(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, DefaultPopularLimit, repo.lastLimit)

	// Default window is a trailing week
	expected := time.Now().UTC().AddDate(0, 0, -DefaultPopularDays)
	assert.WithinDuration(t, expected, repo.lastSince, time.Minute)

	_, err = svc.GetPopularRecipes(ctx, 30, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastLimit)
}
