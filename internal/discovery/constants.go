package discovery

// Score weights. Ingredient presence dominates; the four secondary signals
// share the remainder equally.
const (
	WeightIngredientPresence = 0.6
	WeightQuantityFidelity   = 0.1
	WeightToolMatch          = 0.1
	WeightStationMatch       = 0.1
	WeightSkillMatch         = 0.1
)

// Extraneous items in the offered bag erode the presence score
const (
	ExtraneousPenaltyPerItem = 0.1
	MaxExtraneousPenalty     = 0.5
)

// Excess quantities are tolerated up to twice the requirement
const ExcessRatioCap = 2.0

// DiscoveryThreshold is the minimum score that unlocks a recipe
const DiscoveryThreshold = 0.7

// Result messages
const (
	MsgDiscovered    = "You have discovered a new recipe!"
	MsgNoMatch       = "Nothing comes of this combination"
	MsgEmptyOffering = "No items were offered"
)

// Log Messages
const (
	LogMsgRecipeDiscovered = "Recipe discovered"
	LogMsgNoDiscovery      = "Discovery attempt found no match"
	LogMsgPublishFailed    = "Failed to publish event"
)
