package domain

// EventType identifies a domain event published on the event bus
type EventType string

const (
	// EventTypeItemCrafted fires on every resolved crafting attempt,
	// success or failure. External systems (quests, achievements)
	// subscribe to it.
	EventTypeItemCrafted EventType = "player_crafted_item"

	// EventTypeRecipeDiscovered fires when a discovery attempt unlocks a recipe
	EventTypeRecipeDiscovered EventType = "player_discovered_recipe"

	// EventTypeRecipeLearned fires when a recipe is learned directly
	EventTypeRecipeLearned EventType = "player_learned_recipe"

	// EventTypeMasteryAdvanced fires when a player-recipe mastery level increases
	EventTypeMasteryAdvanced EventType = "player_mastery_advanced"
)

// Metadata keys used in event metadata maps
const (
	MetadataKeyRecipeName = "recipe_name"
	MetadataKeyQuantity   = "quantity"
	MetadataKeySource     = "source"
)
