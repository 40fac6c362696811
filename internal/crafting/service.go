package crafting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthvale/forgecore/internal/concurrency"
	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/event"
	"github.com/hearthvale/forgecore/internal/logger"
	"github.com/hearthvale/forgecore/internal/repository"
	"github.com/hearthvale/forgecore/internal/utils"
)

// RecipeCatalog is the slice of the catalog the engine needs. Satisfied by
// catalog.Service.
type RecipeCatalog interface {
	GetRecipe(ctx context.Context, id int) (*domain.Recipe, error)
	GetMaterial(ctx context.Context, id int) (*domain.Material, error)
}

// KnowledgeReader is the read side of the knowledge ledger used for
// eligibility checks. Writes go through the transaction instead.
type KnowledgeReader interface {
	GetKnownRecipe(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error)
}

// TxBeginner starts the transaction that couples the mastery update to the
// crafting log append
type TxBeginner interface {
	BeginTx(ctx context.Context) (repository.Tx, error)
}

// Inventory is the player inventory collaborator. The engine deducts
// consumed ingredients and grants outputs through it; it never reads from it
// (eligibility reads the caller's snapshot instead).
type Inventory interface {
	RemoveItem(ctx context.Context, playerID string, materialID int, quantity float64) error
	AddItem(ctx context.Context, playerID string, materialID int, quantity float64, quality int) error
}

// Skills is the player skills collaborator
type Skills interface {
	AddSkillExperience(ctx context.Context, playerID string, skillName string, amount float64) error
}

// Service resolves crafting attempts end-to-end: eligibility, outcome roll,
// ingredient consumption, output production, experience, mastery, and the
// crafting log.
type Service interface {
	// CanCraft checks eligibility without side effects. Ineligibility is
	// (false, reason, nil); errors are infrastructure faults only.
	CanCraft(ctx context.Context, playerID string, recipeID, quantity int, craftCtx *domain.CraftContext) (bool, string, error)
	// Craft resolves one attempt. Both successful and failed crafts return a
	// result, not an error; the Success flag and Message carry the outcome.
	Craft(ctx context.Context, playerID string, recipeID, quantity int, craftCtx *domain.CraftContext) (*domain.CraftResult, error)
}

type service struct {
	catalog   RecipeCatalog
	knowledge KnowledgeReader
	tx        TxBeginner
	inventory Inventory
	skills    Skills
	eventBus  event.Bus
	locks     *concurrency.LockManager

	// randFloat is swappable for deterministic tests
	randFloat func() float64
}

// NewService creates a new crafting service. eventBus may be nil when no
// external system subscribes to craft events.
func NewService(
	catalog RecipeCatalog,
	knowledgeReader KnowledgeReader,
	tx TxBeginner,
	inventory Inventory,
	skills Skills,
	eventBus event.Bus,
) Service {
	return &service{
		catalog:   catalog,
		knowledge: knowledgeReader,
		tx:        tx,
		inventory: inventory,
		skills:    skills,
		eventBus:  eventBus,
		locks:     concurrency.NewLockManager(),
		randFloat: utils.RandomFloat,
	}
}

// CanCraft checks every eligibility gate in order and fails closed on the
// first miss. Omitted context categories skip their checks; the caller opts
// into which constraints apply.
func (s *service) CanCraft(ctx context.Context, playerID string, recipeID, quantity int, craftCtx *domain.CraftContext) (bool, string, error) {
	_, _, ok, reason, err := s.checkEligibility(ctx, playerID, recipeID, quantity, craftCtx)
	return ok, reason, err
}

func (s *service) checkEligibility(ctx context.Context, playerID string, recipeID, quantity int, craftCtx *domain.CraftContext) (*domain.Recipe, *domain.PlayerKnownRecipe, bool, string, error) {
	recipe, err := s.catalog.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, nil, false, "", err
	}
	if recipe == nil {
		return nil, nil, false, ReasonRecipeNotFound, nil
	}

	known, err := s.knowledge.GetKnownRecipe(ctx, playerID, recipeID)
	if err != nil {
		return nil, nil, false, "", err
	}
	if known == nil {
		return recipe, nil, false, ReasonRecipeNotKnown, nil
	}

	if craftCtx == nil {
		craftCtx = &domain.CraftContext{}
	}

	if craftCtx.Skills != nil {
		for _, req := range recipe.RequiredSkills {
			if craftCtx.SkillLevel(req.SkillName) < req.Level {
				return recipe, known, false, fmt.Sprintf(ReasonSkillTooLow, req.SkillName, req.Level), nil
			}
		}
	}

	if craftCtx.Tools != nil {
		for _, tool := range recipe.RequiredTools {
			if !craftCtx.HasTool(tool) {
				return recipe, known, false, fmt.Sprintf(ReasonMissingTool, tool), nil
			}
		}
	}

	if craftCtx.Stations != nil && recipe.RequiredStationType != "" {
		if !craftCtx.HasStation(recipe.RequiredStationType) {
			return recipe, known, false, fmt.Sprintf(ReasonMissingStation, recipe.RequiredStationType), nil
		}
	}

	if craftCtx.Inventory != nil {
		for _, ing := range recipe.Ingredients {
			needed := ing.Quantity * float64(quantity)
			have := craftCtx.Inventory[ing.MaterialID]
			if have < needed {
				name := fmt.Sprintf("material %d", ing.MaterialID)
				if material, err := s.catalog.GetMaterial(ctx, ing.MaterialID); err == nil && material != nil {
					name = material.Name
				}
				return recipe, known, false, fmt.Sprintf(ReasonNotEnoughOf, name, needed, have), nil
			}
		}
	}

	if craftCtx.Location != nil && !recipe.AllowedInRegion(craftCtx.Location.Region) {
		return recipe, known, false, fmt.Sprintf(ReasonRegionRestricted, craftCtx.Location.Region), nil
	}

	return recipe, known, true, "", nil
}

// Craft resolves one crafting attempt. Attempts are serialized per player so
// two concurrent crafts cannot both pass eligibility against the same
// inventory snapshot.
func (s *service) Craft(ctx context.Context, playerID string, recipeID, quantity int, craftCtx *domain.CraftContext) (*domain.CraftResult, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(lockKeyPrefix + playerID)
	lock.Lock()
	defer lock.Unlock()

	recipe, known, eligible, reason, err := s.checkEligibility(ctx, playerID, recipeID, quantity, craftCtx)
	if err != nil {
		return nil, err
	}
	if !eligible {
		log.Info(LogMsgCraftIneligible, "player_id", playerID, "recipe_id", recipeID, "reason", reason)
		result := &domain.CraftResult{
			Success:           false,
			Message:           reason,
			RecipeID:          recipeID,
			QuantityAttempted: quantity,
		}
		if recipe != nil {
			result.RecipeName = recipe.Name
		}
		return result, nil
	}

	if craftCtx == nil {
		craftCtx = &domain.CraftContext{}
	}

	chance := successChance(recipe, craftCtx.Skills)
	quality := craftQuality(recipe, craftCtx.Skills, craftCtx.QualityModifier)
	duration := craftTime(recipe, craftCtx.Skills, quantity)
	success := s.randFloat() < chance

	result := &domain.CraftResult{
		Success:             success,
		RecipeID:            recipe.ID,
		RecipeName:          recipe.Name,
		QuantityAttempted:   quantity,
		SuccessChance:       chance,
		CraftingTimeSeconds: duration,
	}

	// Consumed ingredients are lost on failure too
	for _, ing := range recipe.Ingredients {
		if !ing.ConsumedInCrafting {
			continue
		}
		deducted := ing.Quantity * float64(quantity)
		if err := s.inventory.RemoveItem(ctx, playerID, ing.MaterialID, deducted); err != nil {
			return nil, fmt.Errorf("failed to consume ingredient %d: %w", ing.MaterialID, err)
		}
		result.IngredientsConsumed = append(result.IngredientsConsumed, domain.ItemQuantity{
			MaterialID: ing.MaterialID,
			Quantity:   deducted,
		})
	}

	if success {
		if err := s.applySuccess(ctx, playerID, recipe, quantity, quality, result); err != nil {
			return nil, err
		}
	} else {
		result.Message = MsgCraftFailed
		if err := s.applyFailure(ctx, playerID, recipe, quantity, result); err != nil {
			return nil, err
		}
	}

	if err := s.persistAttempt(ctx, playerID, recipe, known, result, craftCtx); err != nil {
		return nil, err
	}

	log.Info(LogMsgCraftResolved,
		"player_id", playerID,
		"recipe_id", recipe.ID,
		"success", result.Success,
		"quantity", quantity,
		"quality", result.Quality,
		"chance", chance)

	if s.eventBus != nil {
		craftEvent := event.NewItemCraftedEvent(event.ItemCraftedPayloadV1{
			PlayerID:            playerID,
			RecipeID:            recipe.ID,
			RecipeName:          recipe.Name,
			Success:             result.Success,
			QuantityAttempted:   quantity,
			QuantityProduced:    result.QuantityProduced,
			Quality:             result.Quality,
			IngredientsConsumed: result.IngredientsConsumed,
			OutputsProduced:     result.OutputsProduced,
			ExperienceGained:    result.ExperienceGained,
			StationUsed:         recipe.RequiredStationType,
			CraftingLocation:    regionOf(craftCtx),
		})
		if err := s.eventBus.Publish(ctx, craftEvent); err != nil {
			log.Error(LogMsgPublishFailed, "error", err, "event_type", domain.EventTypeItemCrafted)
		}
	}

	return result, nil
}

// applySuccess grants the primary output, rolls byproducts, and awards
// experience
func (s *service) applySuccess(ctx context.Context, playerID string, recipe *domain.Recipe, quantity, quality int, result *domain.CraftResult) error {
	result.Message = MsgCraftSucceeded
	result.Quality = quality

	primary := recipe.PrimaryOutput()
	if primary == nil {
		return fmt.Errorf("%w: recipe %d has no primary output", domain.ErrInvalidRecipe, recipe.ID)
	}

	produced := primary.Quantity * float64(quantity)
	if err := s.inventory.AddItem(ctx, playerID, primary.MaterialID, produced, quality); err != nil {
		return fmt.Errorf("failed to grant primary output: %w", err)
	}
	result.QuantityProduced = produced
	result.OutputsProduced = append(result.OutputsProduced, domain.ItemQuantity{
		MaterialID: primary.MaterialID,
		Quantity:   produced,
		Quality:    quality,
	})

	// Byproducts roll independently, once per attempt
	for _, byproduct := range recipe.Byproducts() {
		if s.randFloat() >= byproduct.Chance {
			continue
		}
		byQuality := quality + int(byproduct.QualityModifier)
		if byQuality < 1 {
			byQuality = 1
		}
		byQty := byproduct.Quantity * float64(quantity)
		if err := s.inventory.AddItem(ctx, playerID, byproduct.MaterialID, byQty, byQuality); err != nil {
			return fmt.Errorf("failed to grant byproduct: %w", err)
		}
		result.OutputsProduced = append(result.OutputsProduced, domain.ItemQuantity{
			MaterialID: byproduct.MaterialID,
			Quantity:   byQty,
			Quality:    byQuality,
		})
	}

	for _, award := range recipe.ExperienceGained {
		amount := xpAmount(award.Amount, quantity, quality)
		if err := s.skills.AddSkillExperience(ctx, playerID, award.SkillName, amount); err != nil {
			return fmt.Errorf("failed to award experience: %w", err)
		}
		result.ExperienceGained = append(result.ExperienceGained, domain.ExperienceAward{
			SkillName: award.SkillName,
			Amount:    amount,
		})
	}

	return nil
}

// applyFailure rolls any consolation failure-outputs at quality 1
func (s *service) applyFailure(ctx context.Context, playerID string, recipe *domain.Recipe, quantity int, result *domain.CraftResult) error {
	for _, out := range recipe.FailureOutputs {
		if s.randFloat() >= out.Chance {
			continue
		}
		qty := out.Quantity * float64(quantity)
		if err := s.inventory.AddItem(ctx, playerID, out.MaterialID, qty, 1); err != nil {
			return fmt.Errorf("failed to grant failure output: %w", err)
		}
		result.OutputsProduced = append(result.OutputsProduced, domain.ItemQuantity{
			MaterialID: out.MaterialID,
			Quantity:   qty,
			Quality:    1,
		})
	}
	return nil
}

// persistAttempt writes the mastery update and the log entry in one
// transaction so a crash cannot advance mastery without a history row
func (s *service) persistAttempt(ctx context.Context, playerID string, recipe *domain.Recipe, known *domain.PlayerKnownRecipe, result *domain.CraftResult, craftCtx *domain.CraftContext) error {
	tx, err := s.tx.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	if result.Success {
		current, err := tx.GetKnownRecipeForUpdate(ctx, playerID, recipe.ID)
		if err != nil {
			return err
		}
		if current == nil {
			current = known
		}

		oldLevel := current.MasteryLevel
		advanced := current.RecordCraft(result.Quality)
		if err := tx.UpsertKnownRecipe(ctx, current); err != nil {
			return err
		}

		result.MasteryLevel = current.MasteryLevel
		result.TimesCrafted = current.TimesCrafted
		result.MasteryAdvanced = advanced

		if advanced && s.eventBus != nil {
			masteryEvent := event.NewMasteryAdvancedEvent(playerID, recipe.ID, oldLevel, current.MasteryLevel, current.TimesCrafted)
			if err := s.eventBus.Publish(ctx, masteryEvent); err != nil {
				logger.FromContext(ctx).Error(LogMsgPublishFailed, "error", err, "event_type", domain.EventTypeMasteryAdvanced)
			}
		}
	} else {
		result.MasteryLevel = known.MasteryLevel
		result.TimesCrafted = known.TimesCrafted
	}

	entry := &domain.CraftingLog{
		ID:                  uuid.NewString(),
		PlayerID:            playerID,
		RecipeID:            recipe.ID,
		Timestamp:           time.Now().UTC(),
		Success:             result.Success,
		QuantityAttempted:   result.QuantityAttempted,
		QuantityProduced:    result.QuantityProduced,
		QualityAchieved:     result.Quality,
		IngredientsConsumed: result.IngredientsConsumed,
		OutputsProduced:     result.OutputsProduced,
		ExperienceGained:    result.ExperienceGained,
		CraftingLocation:    regionOf(craftCtx),
		StationUsed:         recipe.RequiredStationType,
		BusinessID:          craftCtx.BusinessID,
	}
	if err := tx.AppendCraftingLog(ctx, entry); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func regionOf(craftCtx *domain.CraftContext) string {
	if craftCtx == nil || craftCtx.Location == nil {
		return ""
	}
	return craftCtx.Location.Region
}
