package handler

import (
	"errors"
	"net/http"

	"github.com/hearthvale/forgecore/internal/domain"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidIDParam    = "Invalid id parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Catalog operation error messages
	ErrMsgListMaterialsFailed = "Failed to list materials"
	ErrMsgListRecipesFailed   = "Failed to list recipes"

	// Crafting operation error messages
	ErrMsgCraftFailed        = "Failed to resolve craft"
	ErrMsgCraftPreviewFailed = "Failed to check craft eligibility"

	// Discovery operation error messages
	ErrMsgDiscoveryFailed = "Failed to resolve discovery attempt"

	// Knowledge operation error messages
	ErrMsgListKnownRecipesFailed = "Failed to list known recipes"

	// History operation error messages
	ErrMsgGetHistoryFailed = "Failed to retrieve crafting history"
	ErrMsgGetPopularFailed = "Failed to retrieve popular recipes"
)

// User-facing error messages for mapped domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgMaterialNotFoundHTTP   = "Material not found"
	ErrMsgMaterialExistsHTTP     = "A material with that name already exists"
	ErrMsgRecipeNotFoundHTTP     = "Recipe not found"
	ErrMsgRecipeExistsHTTP       = "A recipe with that name already exists"
	ErrMsgInvalidRecipeHTTP      = "Recipe definition is invalid"
	ErrMsgRecipeNotKnownHTTP     = "Recipe is not in the player's ledger"
	ErrMsgRecipeAlreadyKnownHTTP = "Recipe is already known"
	ErrMsgInsufficientItemsHTTP  = "Not enough materials"
	ErrMsgInvalidInputHTTP       = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// user-friendly messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrMaterialNotFound):
		return http.StatusNotFound, ErrMsgMaterialNotFoundHTTP
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundHTTP
	case errors.Is(err, domain.ErrRecipeNotKnown):
		return http.StatusNotFound, ErrMsgRecipeNotKnownHTTP
	case errors.Is(err, domain.ErrMaterialExists):
		return http.StatusConflict, ErrMsgMaterialExistsHTTP
	case errors.Is(err, domain.ErrRecipeExists):
		return http.StatusConflict, ErrMsgRecipeExistsHTTP
	case errors.Is(err, domain.ErrRecipeAlreadyKnown):
		return http.StatusConflict, ErrMsgRecipeAlreadyKnownHTTP
	case errors.Is(err, domain.ErrInvalidRecipe):
		return http.StatusBadRequest, ErrMsgInvalidRecipeHTTP
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgInsufficientItemsHTTP
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputHTTP
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
