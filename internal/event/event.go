package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hearthvale/forgecore/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Typed event payloads for type safety

// ItemCraftedPayloadV1 is the typed payload for crafting attempt events.
// It carries the same snapshot data the crafting log records so external
// systems (quests, achievements) can subscribe without reading the log.
type ItemCraftedPayloadV1 struct {
	PlayerID            string                   `json:"player_id"`
	RecipeID            int                      `json:"recipe_id"`
	RecipeName          string                   `json:"recipe_name"`
	Success             bool                     `json:"success"`
	QuantityAttempted   int                      `json:"quantity_attempted"`
	QuantityProduced    float64                  `json:"quantity_produced"`
	Quality             int                      `json:"quality"`
	IngredientsConsumed []domain.ItemQuantity    `json:"ingredients_consumed,omitempty"`
	OutputsProduced     []domain.ItemQuantity    `json:"outputs_produced,omitempty"`
	ExperienceGained    []domain.ExperienceAward `json:"experience_gained,omitempty"`
	CraftingLocation    string                   `json:"crafting_location,omitempty"`
	StationUsed         string                   `json:"station_used,omitempty"`
	Timestamp           int64                    `json:"timestamp"`
}

// RecipeDiscoveredPayloadV1 is the typed payload for recipe discovery events
type RecipeDiscoveredPayloadV1 struct {
	PlayerID   string  `json:"player_id"`
	RecipeID   int     `json:"recipe_id"`
	RecipeName string  `json:"recipe_name"`
	Score      float64 `json:"score"`
	Timestamp  int64   `json:"timestamp"`
}

// RecipeLearnedPayloadV1 is the typed payload for directly learned recipes
type RecipeLearnedPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	RecipeID   int    `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Timestamp  int64  `json:"timestamp"`
}

// MasteryAdvancedPayloadV1 is the typed payload for mastery level advances
type MasteryAdvancedPayloadV1 struct {
	PlayerID     string `json:"player_id"`
	RecipeID     int    `json:"recipe_id"`
	OldLevel     int    `json:"old_level"`
	NewLevel     int    `json:"new_level"`
	TimesCrafted int    `json:"times_crafted"`
	Timestamp    int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewItemCraftedEvent creates a crafting attempt event
func NewItemCraftedEvent(payload ItemCraftedPayloadV1) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeItemCrafted),
		Payload: payload,
		Metadata: map[string]interface{}{
			domain.MetadataKeyRecipeName: payload.RecipeName,
			domain.MetadataKeyQuantity:   payload.QuantityAttempted,
			domain.MetadataKeySource:     "crafting",
		},
	}
}

// NewRecipeDiscoveredEvent creates a recipe discovery event
func NewRecipeDiscoveredEvent(playerID string, recipeID int, recipeName string, score float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeRecipeDiscovered),
		Payload: RecipeDiscoveredPayloadV1{
			PlayerID:   playerID,
			RecipeID:   recipeID,
			RecipeName: recipeName,
			Score:      score,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			domain.MetadataKeyRecipeName: recipeName,
			domain.MetadataKeySource:     "discovery",
		},
	}
}

// NewRecipeLearnedEvent creates a recipe learned event
func NewRecipeLearnedEvent(playerID string, recipeID int, recipeName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeRecipeLearned),
		Payload: RecipeLearnedPayloadV1{
			PlayerID:   playerID,
			RecipeID:   recipeID,
			RecipeName: recipeName,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewMasteryAdvancedEvent creates a mastery advance event
func NewMasteryAdvancedEvent(playerID string, recipeID, oldLevel, newLevel, timesCrafted int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeMasteryAdvanced),
		Payload: MasteryAdvancedPayloadV1{
			PlayerID:     playerID,
			RecipeID:     recipeID,
			OldLevel:     oldLevel,
			NewLevel:     newLevel,
			TimesCrafted: timesCrafted,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a worker-pool dispatch could replace this
	// if handlers ever become slow.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
