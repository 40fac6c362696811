package catalog

// List pagination bounds
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Cache sizes for by-ID lookups. Catalogs are small and read-heavy; the
// crafting and discovery paths hit the same few entries repeatedly.
const (
	MaterialCacheSize = 512
	RecipeCacheSize   = 256
)

// Fuzzy-search bounds for "did you mean" suggestions
const (
	MaxSuggestionDistance = 3
	DefaultSuggestions    = 5
)

// Log Messages
const (
	LogMsgMaterialCreated = "Material created"
	LogMsgMaterialUpdated = "Material updated"
	LogMsgMaterialDeleted = "Material deleted"
	LogMsgRecipeCreated   = "Recipe created"
	LogMsgRecipeUpdated   = "Recipe updated"
	LogMsgRecipeDeleted   = "Recipe deleted"
)
