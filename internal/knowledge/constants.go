package knowledge

// Log Messages
const (
	LogMsgRecipeLearned    = "Recipe learned"
	LogMsgRecipeForgotten  = "Recipe forgotten"
	LogMsgPublishFailed    = "Failed to publish event"
	LogMsgAlreadyKnown     = "Recipe already known, learn skipped"
	LogMsgUnknownRecipeRef = "Learn requested for unknown recipe"
)
