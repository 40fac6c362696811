package crafting_bench

import (
	"context"
	"testing"
	"time"

	"github.com/hearthvale/forgecore/internal/crafting"
	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/event"
	"github.com/hearthvale/forgecore/internal/repository"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

type StubCatalog struct {
	recipe *domain.Recipe
}

func (s *StubCatalog) GetRecipe(ctx context.Context, id int) (*domain.Recipe, error) {
	return s.recipe, nil
}

func (s *StubCatalog) GetMaterial(ctx context.Context, id int) (*domain.Material, error) {
	return &domain.Material{ID: id, Name: "stub material"}, nil
}

type StubKnowledge struct{}

func (s *StubKnowledge) GetKnownRecipe(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error) {
	// Fresh entry per call so mastery bookkeeping mutates safely across iterations
	return &domain.PlayerKnownRecipe{
		PlayerID:      playerID,
		RecipeID:      recipeID,
		DiscoveryDate: time.Now(),
		MasteryLevel:  1,
		TimesCrafted:  10,
	}, nil
}

type StubTxBeginner struct{}

func (s *StubTxBeginner) BeginTx(ctx context.Context) (repository.Tx, error) {
	return &StubTx{}, nil
}

type StubTx struct{}

func (s *StubTx) GetKnownRecipeForUpdate(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error) {
	return &domain.PlayerKnownRecipe{
		PlayerID:     playerID,
		RecipeID:     recipeID,
		MasteryLevel: 1,
		TimesCrafted: 10,
	}, nil
}
func (s *StubTx) UpsertKnownRecipe(ctx context.Context, known *domain.PlayerKnownRecipe) error {
	return nil
}
func (s *StubTx) AppendCraftingLog(ctx context.Context, entry *domain.CraftingLog) error {
	return nil
}
func (s *StubTx) Commit(ctx context.Context) error   { return nil }
func (s *StubTx) Rollback(ctx context.Context) error { return nil }

type StubInventory struct{}

func (s *StubInventory) RemoveItem(ctx context.Context, playerID string, materialID int, quantity float64) error {
	return nil
}
func (s *StubInventory) AddItem(ctx context.Context, playerID string, materialID int, quantity float64, quality int) error {
	return nil
}

type StubSkills struct{}

func (s *StubSkills) AddSkillExperience(ctx context.Context, playerID string, skillName string, amount float64) error {
	return nil
}

// StubBus implements event.Bus
type StubBus struct{}

func (b *StubBus) Publish(ctx context.Context, e event.Event) error { return nil }
func (b *StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

func benchRecipe() *domain.Recipe {
	return &domain.Recipe{
		ID:                  1,
		Name:                "forge_iron_sword",
		Category:            "smithing",
		CraftingTimeSeconds: 120,
		DifficultyLevel:     3,
		QualityRange:        domain.QualityRange{Min: 1, Max: 5},
		Ingredients: []domain.RecipeIngredient{
			{MaterialID: 1, Quantity: 3, ConsumedInCrafting: true},
			{MaterialID: 2, Quantity: 1, ConsumedInCrafting: true},
			{MaterialID: 3, Quantity: 2, ConsumedInCrafting: true},
		},
		Outputs: []domain.RecipeOutput{
			{MaterialID: 4, Quantity: 1, IsPrimary: true, Chance: 1.0},
		},
		RequiredSkills: []domain.SkillRequirement{
			{SkillName: "smithing", Level: 2, AffectsQuality: true, AffectsSpeed: true},
		},
		ExperienceGained: []domain.ExperienceAward{
			{SkillName: "smithing", Amount: 25},
		},
	}
}

func benchContext() *domain.CraftContext {
	return &domain.CraftContext{
		Inventory: map[int]float64{1: 100, 2: 100, 3: 100},
		Skills:    map[string]int{"smithing": 5},
	}
}

// --- Benchmark Functions ---

// BenchmarkCraft measures one full craft resolution with all collaborators stubbed.
func BenchmarkCraft(b *testing.B) {
	svc := crafting.NewService(
		&StubCatalog{recipe: benchRecipe()},
		&StubKnowledge{},
		&StubTxBeginner{},
		&StubInventory{},
		&StubSkills{},
		&StubBus{},
	)

	ctx := context.Background()
	craftCtx := benchContext()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := svc.Craft(ctx, "bench-player", 1, 1, craftCtx)
		if err != nil {
			b.Fatalf("Craft failed: %v", err)
		}
	}
}

// BenchmarkCanCraft measures the eligibility check path alone.
func BenchmarkCanCraft(b *testing.B) {
	svc := crafting.NewService(
		&StubCatalog{recipe: benchRecipe()},
		&StubKnowledge{},
		&StubTxBeginner{},
		&StubInventory{},
		&StubSkills{},
		&StubBus{},
	)

	ctx := context.Background()
	craftCtx := benchContext()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := svc.CanCraft(ctx, "bench-player", 1, 1, craftCtx)
		if err != nil {
			b.Fatalf("CanCraft failed: %v", err)
		}
	}
}
