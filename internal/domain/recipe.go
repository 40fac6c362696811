package domain

// RecipeIngredient is a single material requirement for a recipe
type RecipeIngredient struct {
	MaterialID         int     `json:"material_id"`
	Quantity           float64 `json:"quantity"`
	ConsumedInCrafting bool    `json:"consumed_in_crafting"`
	CanBeSubstituted   bool    `json:"can_be_substituted,omitempty"`
	Substitutes        []int   `json:"substitutes,omitempty"`
}

// RecipeOutput is a material produced by a recipe. The primary output always
// has Chance 1.0; byproducts and failure outputs roll independently.
type RecipeOutput struct {
	MaterialID      int     `json:"material_id"`
	Quantity        float64 `json:"quantity"`
	IsPrimary       bool    `json:"is_primary,omitempty"`
	Chance          float64 `json:"chance"`
	QualityModifier float64 `json:"quality_modifier,omitempty"`
}

// SkillRequirement is a minimum skill level gate on a recipe
type SkillRequirement struct {
	SkillName      string `json:"skill_name"`
	Level          int    `json:"level"`
	AffectsQuality bool   `json:"affects_quality,omitempty"`
	AffectsSpeed   bool   `json:"affects_speed,omitempty"`
}

// ExperienceAward is the base experience granted per craft for a skill
type ExperienceAward struct {
	SkillName string  `json:"skill_name"`
	Amount    float64 `json:"amount"`
}

// QualityRange bounds the quality value a craft can produce
type QualityRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Recipe defines a crafting transformation: ingredients in, outputs out,
// gated by skills, tools, station, and region.
type Recipe struct {
	ID                  int                `json:"recipe_id"`
	Name                string             `json:"name"`
	Description         string             `json:"description,omitempty"`
	Category            string             `json:"recipe_category"`
	CraftingTimeSeconds int                `json:"crafting_time_seconds"`
	RequiredStationType string             `json:"required_station_type,omitempty"`
	RequiredTools       []string           `json:"required_tools,omitempty"`
	DifficultyLevel     int                `json:"difficulty_level"`
	IsDiscoverable      bool               `json:"is_discoverable"`
	QualityRange        QualityRange       `json:"quality_range"`
	Ingredients         []RecipeIngredient `json:"ingredients"`
	Outputs             []RecipeOutput     `json:"outputs"`
	FailureOutputs      []RecipeOutput     `json:"failure_outputs,omitempty"`
	RequiredSkills      []SkillRequirement `json:"required_skills,omitempty"`
	UnlockConditions    Properties         `json:"unlock_conditions,omitempty"`
	ExperienceGained    []ExperienceAward  `json:"experience_gained,omitempty"`
	RegionSpecific      []string           `json:"region_specific,omitempty"`
}

// PrimaryOutput returns the output flagged primary. Exactly one output
// carries the flag on a valid recipe; nil is returned for malformed data.
func (r *Recipe) PrimaryOutput() *RecipeOutput {
	for i := range r.Outputs {
		if r.Outputs[i].IsPrimary {
			return &r.Outputs[i]
		}
	}
	return nil
}

// Byproducts returns the non-primary success outputs
func (r *Recipe) Byproducts() []RecipeOutput {
	var byproducts []RecipeOutput
	for _, out := range r.Outputs {
		if !out.IsPrimary {
			byproducts = append(byproducts, out)
		}
	}
	return byproducts
}

// AllowedInRegion reports whether the recipe may be crafted in the region.
// An empty RegionSpecific set means the recipe has no regional restriction.
func (r *Recipe) AllowedInRegion(region string) bool {
	if len(r.RegionSpecific) == 0 {
		return true
	}
	for _, allowed := range r.RegionSpecific {
		if allowed == region {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of a recipe definition
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return ErrInvalidRecipe
	}
	if r.CraftingTimeSeconds <= 0 {
		return ErrInvalidRecipe
	}
	if r.DifficultyLevel < 1 {
		return ErrInvalidRecipe
	}
	if r.QualityRange.Min < 1 || r.QualityRange.Max < r.QualityRange.Min {
		return ErrInvalidRecipe
	}
	primaries := 0
	for _, out := range r.Outputs {
		if out.IsPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		return ErrInvalidRecipe
	}
	for _, ing := range r.Ingredients {
		if ing.Quantity <= 0 {
			return ErrInvalidRecipe
		}
	}
	return nil
}
