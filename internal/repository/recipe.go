package repository

import (
	"context"

	"github.com/hearthvale/forgecore/internal/domain"
)

// Recipe defines the interface for recipe catalog persistence.
// Lookups return (nil, nil) when the recipe does not exist.
//
// UpdateRecipe fully replaces the recipe's child rows (ingredients, outputs,
// skill requirements) with the supplied set - delete-then-reinsert, not a diff.
type Recipe interface {
	GetRecipeByID(ctx context.Context, id int) (*domain.Recipe, error)
	GetRecipeByName(ctx context.Context, name string) (*domain.Recipe, error)
	ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
	ListDiscoverableRecipes(ctx context.Context) ([]domain.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) (int, error)
	UpdateRecipe(ctx context.Context, id int, recipe *domain.Recipe) error
	DeleteRecipe(ctx context.Context, id int) error
}
