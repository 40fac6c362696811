package handler

import (
	"net/http"

	"github.com/hearthvale/forgecore/internal/knowledge"
	"github.com/hearthvale/forgecore/internal/logger"
)

// KnowledgeRequest is the body for learn and forget operations
type KnowledgeRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	RecipeID int    `json:"recipe_id" validate:"required,gte=1"`
}

// KnownRecipeResponse reports whether a single recipe is in the ledger
type KnownRecipeResponse struct {
	Known bool `json:"known"`
}

// HandleLearnRecipe adds a recipe to a player's ledger
// @Summary Learn recipe
// @Description Add a recipe to the player's knowledge ledger at mastery level 0
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body KnowledgeRequest true "Player and recipe"
// @Success 201 {object} domain.PlayerKnownRecipe
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /knowledge/learn [post]
func HandleLearnRecipe(svc knowledge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req KnowledgeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Learn recipe"); err != nil {
			return
		}

		known, err := svc.LearnRecipe(r.Context(), req.PlayerID, req.RecipeID)
		if err != nil {
			respondServiceError(w, r, "Learn recipe", err)
			return
		}

		log.Info("Recipe learned", "player_id", req.PlayerID, "recipe_id", req.RecipeID)
		respondJSON(w, http.StatusCreated, known)
	}
}

// HandleForgetRecipe removes a recipe from a player's ledger
// @Summary Forget recipe
// @Description Remove a recipe from the player's knowledge ledger, discarding mastery progress
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body KnowledgeRequest true "Player and recipe"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /knowledge/forget [post]
func HandleForgetRecipe(svc knowledge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req KnowledgeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Forget recipe"); err != nil {
			return
		}

		if err := svc.ForgetRecipe(r.Context(), req.PlayerID, req.RecipeID); err != nil {
			respondServiceError(w, r, "Forget recipe", err)
			return
		}

		log.Info("Recipe forgotten", "player_id", req.PlayerID, "recipe_id", req.RecipeID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Recipe forgotten"})
	}
}

// HandleListKnownRecipes returns a player's full knowledge ledger
// @Summary List known recipes
// @Description List every recipe in the player's ledger with mastery progress
// @Tags knowledge
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /knowledge [get]
func HandleListKnownRecipes(svc knowledge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		known, err := svc.ListKnownRecipes(r.Context(), playerID)
		if err != nil {
			log.Error("Failed to list known recipes", "error", err, "player_id", playerID)
			respondError(w, http.StatusInternalServerError, ErrMsgListKnownRecipesFailed)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: known})
	}
}

// HandleGetKnownRecipe returns one ledger entry, or whether it exists
// @Summary Get known recipe
// @Description Get a single ledger entry with mastery progress
// @Tags knowledge
// @Produce json
// @Param player_id query string true "Player ID"
// @Param id path int true "Recipe ID"
// @Success 200 {object} domain.PlayerKnownRecipe
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /knowledge/{id} [get]
func HandleGetKnownRecipe(svc knowledge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}
		recipeID, ok := GetIDParam(r, w)
		if !ok {
			return
		}

		known, err := svc.GetKnownRecipe(r.Context(), playerID, recipeID)
		if err != nil {
			respondServiceError(w, r, "Get known recipe", err)
			return
		}

		respondJSON(w, http.StatusOK, known)
	}
}
