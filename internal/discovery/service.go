package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/event"
	"github.com/hearthvale/forgecore/internal/logger"
	"github.com/hearthvale/forgecore/internal/repository"
)

// Candidates is the slice of the catalog the scorer consults. Satisfied by
// catalog.Service.
type Candidates interface {
	ListDiscoverableRecipes(ctx context.Context) ([]domain.Recipe, error)
}

// Service matches a free-form offering of items against undiscovered recipes
// and unlocks the best match above the threshold
type Service interface {
	// AttemptDiscovery scores every discoverable recipe the player does not
	// already know against the offered bag. A no-match outcome is a result,
	// not an error.
	AttemptDiscovery(ctx context.Context, playerID string, offered map[int]float64, dctx *domain.CraftContext) (*domain.DiscoveryResult, error)
}

type service struct {
	catalog  Candidates
	ledger   repository.Knowledge
	eventBus event.Bus
}

// NewService creates a new discovery service. eventBus may be nil.
func NewService(catalog Candidates, ledger repository.Knowledge, eventBus event.Bus) Service {
	return &service{
		catalog:  catalog,
		ledger:   ledger,
		eventBus: eventBus,
	}
}

// AttemptDiscovery finds the best-scoring unknown recipe for the offering.
// Candidates are scanned in catalog order (ascending recipe ID), and only a
// strictly better score displaces the current best, so equal scores resolve
// to the lowest recipe ID.
func (s *service) AttemptDiscovery(ctx context.Context, playerID string, offered map[int]float64, dctx *domain.CraftContext) (*domain.DiscoveryResult, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if len(offered) == 0 {
		return &domain.DiscoveryResult{Discovered: false, Message: MsgEmptyOffering}, nil
	}
	log := logger.FromContext(ctx)

	candidates, err := s.catalog.ListDiscoverableRecipes(ctx)
	if err != nil {
		return nil, err
	}

	var best *domain.Recipe
	bestScore := 0.0
	for i := range candidates {
		recipe := &candidates[i]

		known, err := s.ledger.GetKnownRecipe(ctx, playerID, recipe.ID)
		if err != nil {
			return nil, err
		}
		if known != nil {
			continue
		}

		score := scoreRecipe(recipe, offered, dctx)
		if score > bestScore {
			best = recipe
			bestScore = score
		}
	}

	// The score must strictly exceed the threshold
	if best == nil || bestScore <= DiscoveryThreshold {
		log.Debug(LogMsgNoDiscovery, "player_id", playerID, "best_score", bestScore)
		return &domain.DiscoveryResult{
			Discovered: false,
			Score:      bestScore,
			Message:    MsgNoMatch,
		}, nil
	}

	entry := &domain.PlayerKnownRecipe{
		PlayerID:      playerID,
		RecipeID:      best.ID,
		DiscoveryDate: time.Now().UTC(),
	}
	if err := s.ledger.CreateKnownRecipe(ctx, entry); err != nil {
		return nil, err
	}

	log.Info(LogMsgRecipeDiscovered,
		"player_id", playerID, "recipe_id", best.ID, "recipe_name", best.Name, "score", bestScore)

	if s.eventBus != nil {
		discoveredEvent := event.NewRecipeDiscoveredEvent(playerID, best.ID, best.Name, bestScore)
		if err := s.eventBus.Publish(ctx, discoveredEvent); err != nil {
			log.Error(LogMsgPublishFailed, "error", err, "event_type", domain.EventTypeRecipeDiscovered)
		}
	}

	return &domain.DiscoveryResult{
		Discovered: true,
		RecipeID:   best.ID,
		RecipeName: best.Name,
		Score:      bestScore,
		Message:    MsgDiscovered,
	}, nil
}
