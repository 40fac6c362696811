package domain

// Location identifies where a craft is taking place
type Location struct {
	Region string `json:"region"`
}

// CraftContext is the caller-supplied bundle of contextual snapshots for one
// crafting or discovery attempt. Every category is optional: a nil category
// opts the caller out of the corresponding eligibility check.
type CraftContext struct {
	// Inventory maps material ID to the quantity the player holds
	Inventory map[int]float64 `json:"inventory,omitempty"`
	// Skills maps skill name to the player's current level
	Skills map[string]int `json:"skills,omitempty"`
	// Tools is the set of tool identifiers available to the player
	Tools []string `json:"tools,omitempty"`
	// Stations is the set of crafting station types at the player's location
	Stations []string `json:"stations,omitempty"`
	// Location carries the region the craft happens in
	Location *Location `json:"location,omitempty"`
	// BusinessID optionally attributes the craft to a player business
	BusinessID *string `json:"business_id,omitempty"`
	// QualityModifier is an additive caller-supplied quality adjustment
	QualityModifier float64 `json:"quality_modifier,omitempty"`
}

// HasTool reports whether the context's tool set contains the tool.
// A nil tool set means the caller opted out of tool checks.
func (c *CraftContext) HasTool(tool string) bool {
	for _, t := range c.Tools {
		if t == tool {
			return true
		}
	}
	return false
}

// HasStation reports whether the context's station set contains the station type
func (c *CraftContext) HasStation(station string) bool {
	for _, s := range c.Stations {
		if s == station {
			return true
		}
	}
	return false
}

// SkillLevel returns the player's level for a skill, zero when absent
func (c *CraftContext) SkillLevel(name string) int {
	if c.Skills == nil {
		return 0
	}
	return c.Skills[name]
}

// CraftResult is the structured outcome of one crafting attempt. Both craft
// success and craft failure are represented here; only infrastructure faults
// surface as errors.
type CraftResult struct {
	Success             bool              `json:"success"`
	Message             string            `json:"message"`
	RecipeID            int               `json:"recipe_id"`
	RecipeName          string            `json:"recipe_name"`
	QuantityAttempted   int               `json:"quantity_attempted"`
	QuantityProduced    float64           `json:"quantity_produced"`
	Quality             int               `json:"quality"`
	SuccessChance       float64           `json:"success_chance"`
	CraftingTimeSeconds float64           `json:"crafting_time_seconds"`
	IngredientsConsumed []ItemQuantity    `json:"ingredients_consumed,omitempty"`
	OutputsProduced     []ItemQuantity    `json:"outputs_produced,omitempty"`
	ExperienceGained    []ExperienceAward `json:"experience_gained,omitempty"`
	MasteryLevel        int               `json:"mastery_level"`
	TimesCrafted        int               `json:"times_crafted"`
	MasteryAdvanced     bool              `json:"mastery_advanced,omitempty"`
}

// DiscoveryResult is the structured outcome of one discovery attempt
type DiscoveryResult struct {
	Discovered bool    `json:"discovered"`
	RecipeID   int     `json:"recipe_id,omitempty"`
	RecipeName string  `json:"recipe_name,omitempty"`
	Score      float64 `json:"score"`
	Message    string  `json:"message"`
}
