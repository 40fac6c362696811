package knowledge

import (
	"context"
	"fmt"
	"time"

	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/event"
	"github.com/hearthvale/forgecore/internal/logger"
	"github.com/hearthvale/forgecore/internal/repository"
)

// RecipeCatalog is the slice of the catalog the ledger needs: recipe
// existence and display data. Satisfied by catalog.Service.
type RecipeCatalog interface {
	GetRecipe(ctx context.Context, id int) (*domain.Recipe, error)
}

// KnownRecipeDetail is a ledger entry joined with its catalog recipe for
// player-facing listings
type KnownRecipeDetail struct {
	domain.PlayerKnownRecipe
	RecipeName string `json:"recipe_name"`
	Category   string `json:"recipe_category,omitempty"`
}

// Service is the player-recipe knowledge ledger. It tracks which recipes a
// player can craft and their mastery progression per recipe.
type Service interface {
	LearnRecipe(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error)
	ForgetRecipe(ctx context.Context, playerID string, recipeID int) error
	IsRecipeKnown(ctx context.Context, playerID string, recipeID int) (bool, error)
	GetKnownRecipe(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error)
	ListKnownRecipes(ctx context.Context, playerID string) ([]KnownRecipeDetail, error)
}

type service struct {
	repo     repository.Knowledge
	catalog  RecipeCatalog
	eventBus event.Bus
}

// NewService creates a new knowledge ledger service
func NewService(repo repository.Knowledge, catalogSvc RecipeCatalog, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		catalog:  catalogSvc,
		eventBus: eventBus,
	}
}

// LearnRecipe adds a recipe to the player's ledger at mastery level 0.
// Learning a recipe the player already knows is an error; learning a recipe
// that does not exist is an error.
func (s *service) LearnRecipe(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	log := logger.FromContext(ctx)

	recipe, err := s.catalog.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		log.Warn(LogMsgUnknownRecipeRef, "player_id", playerID, "recipe_id", recipeID)
		return nil, fmt.Errorf("%w: %d", domain.ErrRecipeNotFound, recipeID)
	}

	existing, err := s.repo.GetKnownRecipe(ctx, playerID, recipeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Debug(LogMsgAlreadyKnown, "player_id", playerID, "recipe_id", recipeID)
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeAlreadyKnown, recipe.Name)
	}

	entry := &domain.PlayerKnownRecipe{
		PlayerID:      playerID,
		RecipeID:      recipeID,
		DiscoveryDate: time.Now().UTC(),
	}
	if err := s.repo.CreateKnownRecipe(ctx, entry); err != nil {
		return nil, err
	}

	log.Info(LogMsgRecipeLearned, "player_id", playerID, "recipe_id", recipeID, "recipe_name", recipe.Name)
	if err := s.eventBus.Publish(ctx, event.NewRecipeLearnedEvent(playerID, recipeID, recipe.Name)); err != nil {
		log.Error(LogMsgPublishFailed, "error", err, "event_type", domain.EventTypeRecipeLearned)
	}
	return entry, nil
}

// ForgetRecipe removes a recipe from the player's ledger, discarding any
// mastery progress
func (s *service) ForgetRecipe(ctx context.Context, playerID string, recipeID int) error {
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	if err := s.repo.DeleteKnownRecipe(ctx, playerID, recipeID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgRecipeForgotten, "player_id", playerID, "recipe_id", recipeID)
	return nil
}

// IsRecipeKnown reports whether the player's ledger contains the recipe
func (s *service) IsRecipeKnown(ctx context.Context, playerID string, recipeID int) (bool, error) {
	entry, err := s.repo.GetKnownRecipe(ctx, playerID, recipeID)
	if err != nil {
		return false, err
	}
	return entry != nil, nil
}

// GetKnownRecipe retrieves one ledger entry, or (nil, nil) when the player
// does not know the recipe
func (s *service) GetKnownRecipe(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error) {
	return s.repo.GetKnownRecipe(ctx, playerID, recipeID)
}

// ListKnownRecipes retrieves the player's ledger joined with recipe names.
// Entries whose recipe has since left the catalog are listed without a name
// rather than dropped.
func (s *service) ListKnownRecipes(ctx context.Context, playerID string) ([]KnownRecipeDetail, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}

	entries, err := s.repo.ListKnownRecipes(ctx, playerID)
	if err != nil {
		return nil, err
	}

	details := make([]KnownRecipeDetail, 0, len(entries))
	for _, entry := range entries {
		detail := KnownRecipeDetail{PlayerKnownRecipe: entry}
		recipe, err := s.catalog.GetRecipe(ctx, entry.RecipeID)
		if err != nil {
			return nil, err
		}
		if recipe != nil {
			detail.RecipeName = recipe.Name
			detail.Category = recipe.Category
		}
		details = append(details, detail)
	}
	return details, nil
}
