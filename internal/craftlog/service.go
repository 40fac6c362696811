package craftlog

import (
	"context"
	"fmt"
	"time"

	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/repository"
)

// Default query bounds
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
	DefaultPopularLimit = 10
	DefaultPopularDays  = 7
)

// Service is the read side of the crafting log: player history and the
// popular-recipes aggregation. Writes happen inside the crafting engine's
// transaction, never here.
type Service interface {
	GetPlayerHistory(ctx context.Context, playerID string, filter domain.CraftingLogFilter) ([]domain.CraftingLog, error)
	GetPopularRecipes(ctx context.Context, days, limit int) ([]domain.RecipePopularity, error)
}

type service struct {
	repo repository.CraftingLog
}

// NewService creates a new crafting log service
func NewService(repo repository.CraftingLog) Service {
	return &service{repo: repo}
}

// GetPlayerHistory retrieves a player's crafting attempts, newest first
func (s *service) GetPlayerHistory(ctx context.Context, playerID string, filter domain.CraftingLogFilter) ([]domain.CraftingLog, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	filter.PlayerID = playerID
	if filter.Limit <= 0 {
		filter.Limit = DefaultHistoryLimit
	}
	if filter.Limit > MaxHistoryLimit {
		filter.Limit = MaxHistoryLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.ListCraftingLogs(ctx, filter)
}

// GetPopularRecipes aggregates the most-crafted recipes over a trailing
// window of days
func (s *service) GetPopularRecipes(ctx context.Context, days, limit int) ([]domain.RecipePopularity, error) {
	if days <= 0 {
		days = DefaultPopularDays
	}
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	return s.repo.GetPopularRecipes(ctx, since, limit)
}
