package domain

import "time"

// ItemQuantity is an item/quantity pair snapshotted into the crafting log
type ItemQuantity struct {
	MaterialID int     `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	Quality    int     `json:"quality,omitempty"`
}

// CraftingLog is an immutable append-only record of one crafting attempt.
// It exists for history and analytics; resolution logic never reads it back
// except for popular-recipe aggregation.
type CraftingLog struct {
	ID                  string            `json:"log_id"`
	PlayerID            string            `json:"player_id"`
	RecipeID            int               `json:"recipe_id"`
	Timestamp           time.Time         `json:"timestamp"`
	Success             bool              `json:"success"`
	QuantityAttempted   int               `json:"quantity_attempted"`
	QuantityProduced    float64           `json:"quantity_produced"`
	QualityAchieved     int               `json:"quality_achieved"`
	IngredientsConsumed []ItemQuantity    `json:"ingredients_consumed,omitempty"`
	OutputsProduced     []ItemQuantity    `json:"outputs_produced,omitempty"`
	ExperienceGained    []ExperienceAward `json:"experience_gained,omitempty"`
	CraftingLocation    string            `json:"crafting_location,omitempty"`
	StationUsed         string            `json:"station_used,omitempty"`
	BusinessID          *string           `json:"business_id,omitempty"`
}

// RecipePopularity is one row of the popular-recipes aggregation
type RecipePopularity struct {
	RecipeID     int     `json:"recipe_id"`
	RecipeName   string  `json:"recipe_name"`
	TimesCrafted int     `json:"times_crafted"`
	SuccessRate  float64 `json:"success_rate"`
}
