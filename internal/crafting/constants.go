package crafting

// Success chance tuning. Difficulty reduces the base chance, surplus skill
// levels add it back.
const (
	ChancePerDifficulty   = 0.1
	ChancePerSurplusLevel = 0.05
	ChancePerDeficitLevel = 0.1
	MinSuccessChance      = 0.1
	MaxSuccessChance      = 0.99
)

// Quality tuning
const (
	BaseQuality            = 1.0
	QualityPerSurplusLevel = 0.2
)

// Crafting time tuning. Speed skills shave off up to half the base time;
// each batch unit past the first costs 80% of a single craft.
const (
	SpeedBonusPerLevel = 0.02
	MaxSpeedReduction  = 0.5
	BatchTimeFactor    = 0.8
)

// Experience scales with quality above 1
const XPQualityBonus = 0.1

// Ineligibility reasons returned by CanCraft
const (
	ReasonRecipeNotFound   = "recipe not found"
	ReasonRecipeNotKnown   = "you have not learned this recipe"
	ReasonSkillTooLow      = "requires %s level %d"
	ReasonMissingTool      = "missing required tool: %s"
	ReasonMissingStation   = "requires a %s station"
	ReasonNotEnoughOf      = "not enough %s (need %.6g, have %.6g)"
	ReasonRegionRestricted = "this recipe cannot be crafted in %s"
)

// Result messages
const (
	MsgCraftSucceeded = "Crafting succeeded"
	MsgCraftFailed    = "Crafting failed, materials were lost"
)

// Log Messages
const (
	LogMsgCraftResolved   = "Craft attempt resolved"
	LogMsgCraftIneligible = "Craft attempt rejected"
	LogMsgPublishFailed   = "Failed to publish event"
)

// lockKeyPrefix namespaces per-player craft locks
const lockKeyPrefix = "craft:"
