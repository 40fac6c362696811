package crafting

import (
	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/utils"
)

// successChance computes the probability of a successful craft from recipe
// difficulty and the player's skill surplus over each requirement. The
// deficit branch is defensive: eligibility already rejects under-levelled
// players, so it only fires if the caller skipped the skill check.
func successChance(recipe *domain.Recipe, skills map[string]int) float64 {
	chance := utils.Clamp(1.0-float64(recipe.DifficultyLevel-1)*ChancePerDifficulty,
		MinSuccessChance, MaxSuccessChance)

	if skills != nil {
		for _, req := range recipe.RequiredSkills {
			delta := skills[req.SkillName] - req.Level
			if delta > 0 {
				chance += float64(delta) * ChancePerSurplusLevel
			} else if delta < 0 {
				chance += float64(delta) * ChancePerDeficitLevel
			}
		}
	}

	return utils.Clamp(chance, MinSuccessChance, MaxSuccessChance)
}

// craftQuality computes the integer quality of a craft: base 1, plus skill
// surplus on quality-affecting requirements, plus the caller's modifier,
// clamped into the recipe's declared range and truncated
func craftQuality(recipe *domain.Recipe, skills map[string]int, modifier float64) int {
	quality := BaseQuality
	if skills != nil {
		for _, req := range recipe.RequiredSkills {
			if !req.AffectsQuality {
				continue
			}
			delta := skills[req.SkillName] - req.Level
			quality += float64(delta) * QualityPerSurplusLevel
		}
	}
	quality += modifier

	truncated := int(utils.Clamp(quality,
		float64(recipe.QualityRange.Min), float64(recipe.QualityRange.Max)))
	if truncated < 1 {
		truncated = 1
	}
	return truncated
}

// craftTime computes the total crafting time in seconds. Speed-affecting
// skills with surplus levels reduce the per-unit time by 2% per level, capped
// at a 50% reduction; each batch unit past the first costs 80% of one unit.
func craftTime(recipe *domain.Recipe, skills map[string]int, quantity int) float64 {
	reduction := 0.0
	if skills != nil {
		for _, req := range recipe.RequiredSkills {
			if !req.AffectsSpeed {
				continue
			}
			delta := skills[req.SkillName] - req.Level
			if delta > 0 {
				reduction += float64(delta) * SpeedBonusPerLevel
			}
		}
	}
	if reduction > MaxSpeedReduction {
		reduction = MaxSpeedReduction
	}

	unitTime := float64(recipe.CraftingTimeSeconds) * (1 - reduction)
	if quantity <= 1 {
		return unitTime
	}
	return unitTime * (1 + BatchTimeFactor*float64(quantity-1))
}

// xpAmount scales a base experience award by batch size and quality
func xpAmount(base float64, quantity, quality int) float64 {
	return base * float64(quantity) * (1 + float64(quality-1)*XPQualityBonus)
}
