package domain

import "time"

// MasteryThresholds are the cumulative craft counts at which the mastery
// level of a player-recipe pair advances. Index == mastery level.
var MasteryThresholds = []int{0, 5, 15, 30, 50, 75}

// MasteryLevelMax is the highest attainable mastery level
const MasteryLevelMax = 5

// MasteryLevelForCount returns the mastery level for a cumulative craft count
func MasteryLevelForCount(timesCrafted int) int {
	level := 0
	for i, threshold := range MasteryThresholds {
		if timesCrafted >= threshold {
			level = i
		}
	}
	if level > MasteryLevelMax {
		level = MasteryLevelMax
	}
	return level
}

// PlayerKnownRecipe is one row of the player-recipe knowledge ledger
type PlayerKnownRecipe struct {
	PlayerID              string    `json:"player_id"`
	RecipeID              int       `json:"recipe_id"`
	DiscoveryDate         time.Time `json:"discovery_date"`
	MasteryLevel          int       `json:"mastery_level"`
	TimesCrafted          int       `json:"times_crafted"`
	HighestQualityCrafted int       `json:"highest_quality_crafted"`
}

// RecordCraft updates the ledger entry after a successful craft and reports
// whether the mastery level advanced
func (k *PlayerKnownRecipe) RecordCraft(quality int) bool {
	k.TimesCrafted++
	if quality > k.HighestQualityCrafted {
		k.HighestQualityCrafted = quality
	}
	newLevel := MasteryLevelForCount(k.TimesCrafted)
	if newLevel > k.MasteryLevel {
		k.MasteryLevel = newLevel
		return true
	}
	return false
}
