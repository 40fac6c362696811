package repository

import (
	"context"

	"github.com/hearthvale/forgecore/internal/domain"
)

// Tx defines the interface for transactional crafting operations. The
// crafting engine updates the knowledge ledger and appends the log entry in
// one transaction so a crash cannot advance mastery without a matching
// history row.
type Tx interface {
	GetKnownRecipeForUpdate(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error)
	UpsertKnownRecipe(ctx context.Context, known *domain.PlayerKnownRecipe) error
	AppendCraftingLog(ctx context.Context, entry *domain.CraftingLog) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
