package discovery

import (
	"github.com/hearthvale/forgecore/internal/domain"
)

// scoreRecipe rates how well an offered bag of items matches one candidate
// recipe, normalized to [0,1]. Recipes with no ingredients score zero
// outright: there is nothing to discover from nothing.
func scoreRecipe(recipe *domain.Recipe, offered map[int]float64, dctx *domain.CraftContext) float64 {
	if len(recipe.Ingredients) == 0 {
		return 0
	}

	presence, fidelity := ingredientScores(recipe, offered)
	tool := toolScore(recipe, dctx)
	station := stationScore(recipe, dctx)
	skill := skillScore(recipe, dctx)

	return WeightIngredientPresence*presence +
		WeightQuantityFidelity*fidelity +
		WeightToolMatch*tool +
		WeightStationMatch*station +
		WeightSkillMatch*skill
}

// ingredientScores computes the presence fraction (with the extraneous-item
// penalty applied) and the quantity fidelity averaged over matched
// ingredients only
func ingredientScores(recipe *domain.Recipe, offered map[int]float64) (presence, fidelity float64) {
	required := make(map[int]float64, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		required[ing.MaterialID] += ing.Quantity
	}

	matched := 0
	fidelitySum := 0.0
	for id, reqQty := range required {
		offQty := offered[id]
		if offQty <= 0 {
			continue
		}
		matched++
		if offQty >= reqQty {
			ratio := offQty / reqQty
			if ratio > ExcessRatioCap {
				ratio = ExcessRatioCap
			}
			fidelitySum += 1 - (ratio-1)/2
		} else {
			fidelitySum += offQty / reqQty
		}
	}

	presence = float64(matched) / float64(len(required))
	if matched > 0 {
		fidelity = fidelitySum / float64(matched)
	}

	extraneous := 0
	for id, qty := range offered {
		if qty <= 0 {
			continue
		}
		if _, ok := required[id]; !ok {
			extraneous++
		}
	}
	penalty := ExtraneousPenaltyPerItem * float64(extraneous)
	if penalty > MaxExtraneousPenalty {
		penalty = MaxExtraneousPenalty
	}
	presence -= penalty
	if presence < 0 {
		presence = 0
	}

	return presence, fidelity
}

// toolScore is 1.0 when the caller supplied no tool context or the recipe
// needs no tools, else the fraction of required tools available
func toolScore(recipe *domain.Recipe, dctx *domain.CraftContext) float64 {
	if dctx == nil || dctx.Tools == nil || len(recipe.RequiredTools) == 0 {
		return 1.0
	}
	have := 0
	for _, tool := range recipe.RequiredTools {
		if dctx.HasTool(tool) {
			have++
		}
	}
	return float64(have) / float64(len(recipe.RequiredTools))
}

// stationScore is 1.0 when the caller supplied no station context or the
// recipe needs no station, else all-or-nothing on the single requirement
func stationScore(recipe *domain.Recipe, dctx *domain.CraftContext) float64 {
	if dctx == nil || dctx.Stations == nil || recipe.RequiredStationType == "" {
		return 1.0
	}
	if dctx.HasStation(recipe.RequiredStationType) {
		return 1.0
	}
	return 0.0
}

// skillScore is 1.0 when the caller supplied no skill context or the recipe
// has no skill requirements, else the fraction of requirements met
func skillScore(recipe *domain.Recipe, dctx *domain.CraftContext) float64 {
	if dctx == nil || dctx.Skills == nil || len(recipe.RequiredSkills) == 0 {
		return 1.0
	}
	met := 0
	for _, req := range recipe.RequiredSkills {
		if dctx.SkillLevel(req.SkillName) >= req.Level {
			met++
		}
	}
	return float64(met) / float64(len(recipe.RequiredSkills))
}
