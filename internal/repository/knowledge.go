package repository

import (
	"context"

	"github.com/hearthvale/forgecore/internal/domain"
)

// Knowledge defines the interface for the player-recipe knowledge ledger.
// GetKnownRecipe returns (nil, nil) when the player does not know the recipe.
type Knowledge interface {
	GetKnownRecipe(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error)
	ListKnownRecipes(ctx context.Context, playerID string) ([]domain.PlayerKnownRecipe, error)
	CreateKnownRecipe(ctx context.Context, known *domain.PlayerKnownRecipe) error
	UpdateKnownRecipe(ctx context.Context, known *domain.PlayerKnownRecipe) error
	DeleteKnownRecipe(ctx context.Context, playerID string, recipeID int) error
}
