package knowledge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/event"
)

const testPlayerID = "11111111-1111-1111-1111-111111111111"

type ledgerKey struct {
	playerID string
	recipeID int
}

// fakeKnowledgeRepo is an in-memory repository.Knowledge
type fakeKnowledgeRepo struct {
	entries map[ledgerKey]domain.PlayerKnownRecipe
}

func newFakeKnowledgeRepo() *fakeKnowledgeRepo {
	return &fakeKnowledgeRepo{entries: make(map[ledgerKey]domain.PlayerKnownRecipe)}
}

func (f *fakeKnowledgeRepo) GetKnownRecipe(_ context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error) {
	if e, ok := f.entries[ledgerKey{playerID, recipeID}]; ok {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeKnowledgeRepo) ListKnownRecipes(_ context.Context, playerID string) ([]domain.PlayerKnownRecipe, error) {
	var out []domain.PlayerKnownRecipe
	for k, e := range f.entries {
		if k.playerID == playerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeKnowledgeRepo) CreateKnownRecipe(_ context.Context, known *domain.PlayerKnownRecipe) error {
	key := ledgerKey{known.PlayerID, known.RecipeID}
	if _, ok := f.entries[key]; ok {
		return domain.ErrRecipeAlreadyKnown
	}
	f.entries[key] = *known
	return nil
}

func (f *fakeKnowledgeRepo) UpdateKnownRecipe(_ context.Context, known *domain.PlayerKnownRecipe) error {
	key := ledgerKey{known.PlayerID, known.RecipeID}
	if _, ok := f.entries[key]; !ok {
		return domain.ErrRecipeNotKnown
	}
	f.entries[key] = *known
	return nil
}

func (f *fakeKnowledgeRepo) DeleteKnownRecipe(_ context.Context, playerID string, recipeID int) error {
	key := ledgerKey{playerID, recipeID}
	if _, ok := f.entries[key]; !ok {
		return domain.ErrRecipeNotKnown
	}
	delete(f.entries, key)
	return nil
}

// fakeCatalog is a map-backed RecipeCatalog
type fakeCatalog struct {
	recipes map[int]domain.Recipe
}

func (f *fakeCatalog) GetRecipe(_ context.Context, id int) (*domain.Recipe, error) {
	if r, ok := f.recipes[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func newTestService() (Service, *fakeKnowledgeRepo, *event.MemoryBus) {
	repo := newFakeKnowledgeRepo()
	cat := &fakeCatalog{recipes: map[int]domain.Recipe{
		1: {ID: 1, Name: "Smelt Iron", Category: "smelting"},
		2: {ID: 2, Name: "Saw Planks", Category: "carpentry"},
	}}
	bus := event.NewMemoryBus()
	return NewService(repo, cat, bus), repo, bus
}

func TestLearnRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("learn publishes event and writes ledger", func(t *testing.T) {
		svc, _, bus := newTestService()

		var published []event.Event
		bus.Subscribe(event.Type(domain.EventTypeRecipeLearned), func(_ context.Context, e event.Event) error {
			published = append(published, e)
			return nil
		})

		entry, err := svc.LearnRecipe(ctx, testPlayerID, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, entry.MasteryLevel)
		assert.Equal(t, 0, entry.TimesCrafted)
		assert.False(t, entry.DiscoveryDate.IsZero())

		require.Len(t, published, 1)
		payload, ok := published[0].Payload.(event.RecipeLearnedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, "Smelt Iron", payload.RecipeName)

		known, err := svc.IsRecipeKnown(ctx, testPlayerID, 1)
		require.NoError(t, err)
		assert.True(t, known)
	})

	t.Run("learning twice fails", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.LearnRecipe(ctx, testPlayerID, 1)
		require.NoError(t, err)
		_, err = svc.LearnRecipe(ctx, testPlayerID, 1)
		assert.ErrorIs(t, err, domain.ErrRecipeAlreadyKnown)
	})

	t.Run("unknown recipe fails", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.LearnRecipe(ctx, testPlayerID, 99)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("empty player id fails", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.LearnRecipe(ctx, "", 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestForgetRecipe(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.LearnRecipe(ctx, testPlayerID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.ForgetRecipe(ctx, testPlayerID, 1))

	known, err := svc.IsRecipeKnown(ctx, testPlayerID, 1)
	require.NoError(t, err)
	assert.False(t, known)

	t.Run("forgetting an unknown recipe fails", func(t *testing.T) {
		assert.ErrorIs(t, svc.ForgetRecipe(ctx, testPlayerID, 1), domain.ErrRecipeNotKnown)
	})
}

func TestListKnownRecipes(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	_, err := svc.LearnRecipe(ctx, testPlayerID, 1)
	require.NoError(t, err)
	_, err = svc.LearnRecipe(ctx, testPlayerID, 2)
	require.NoError(t, err)

	details, err := svc.ListKnownRecipes(ctx, testPlayerID)
	require.NoError(t, err)
	require.Len(t, details, 2)

	names := map[int]string{}
	for _, d := range details {
		names[d.RecipeID] = d.RecipeName
	}
	assert.Equal(t, "Smelt Iron", names[1])
	assert.Equal(t, "Saw Planks", names[2])

	t.Run("entries for removed recipes keep their ledger data", func(t *testing.T) {
		// Simulate a recipe deleted from the catalog after being learned
		repo.entries[ledgerKey{testPlayerID, 42}] = domain.PlayerKnownRecipe{
			PlayerID: testPlayerID, RecipeID: 42, TimesCrafted: 3,
		}

		details, err := svc.ListKnownRecipes(ctx, testPlayerID)
		require.NoError(t, err)
		require.Len(t, details, 3)
		for _, d := range details {
			if d.RecipeID == 42 {
				assert.Empty(t, d.RecipeName)
				assert.Equal(t, 3, d.TimesCrafted)
			}
		}
	})
}

func TestMasteryLevelForCount(t *testing.T) {
	cases := []struct {
		crafted int
		level   int
	}{
		{0, 0}, {4, 0}, {5, 1}, {14, 1}, {15, 2}, {29, 2},
		{30, 3}, {49, 3}, {50, 4}, {74, 4}, {75, 5}, {1000, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, domain.MasteryLevelForCount(tc.crafted), "crafted=%d", tc.crafted)
	}
}
