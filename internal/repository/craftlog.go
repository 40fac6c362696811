package repository

import (
	"context"
	"time"

	"github.com/hearthvale/forgecore/internal/domain"
)

// CraftingLog defines the interface for the append-only crafting log.
// Entries are never updated or deleted; the only read-back into game logic
// is the popular-recipes aggregation.
type CraftingLog interface {
	AppendCraftingLog(ctx context.Context, entry *domain.CraftingLog) error
	ListCraftingLogs(ctx context.Context, filter domain.CraftingLogFilter) ([]domain.CraftingLog, error)
	GetPopularRecipes(ctx context.Context, since time.Time, limit int) ([]domain.RecipePopularity, error)
}
