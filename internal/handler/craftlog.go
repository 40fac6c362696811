package handler

import (
	"net/http"

	"github.com/hearthvale/forgecore/internal/craftlog"
	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/logger"
)

// HandleGetCraftingHistory returns a player's crafting attempts, newest first
// @Summary Get crafting history
// @Description Get a player's crafting log, optionally filtered by recipe or outcome
// @Tags history
// @Produce json
// @Param player_id query string true "Player ID"
// @Param recipe_id query int false "Only attempts of this recipe"
// @Param success_only query bool false "Only successful attempts"
// @Param skip query int false "Pagination offset"
// @Param limit query int false "Page size"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /history [get]
func HandleGetCraftingHistory(svc craftlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		filter := domain.CraftingLogFilter{
			RecipeID:    GetOptionalIntQueryParam(r, "recipe_id", 0),
			SuccessOnly: r.URL.Query().Get("success_only") == "true",
			Skip:        GetOptionalIntQueryParam(r, "skip", 0),
			Limit:       GetOptionalIntQueryParam(r, "limit", 0),
		}

		logs, err := svc.GetPlayerHistory(r.Context(), playerID, filter)
		if err != nil {
			log.Error("Failed to retrieve crafting history", "error", err, "player_id", playerID)
			respondError(w, http.StatusInternalServerError, ErrMsgGetHistoryFailed)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: logs})
	}
}

// HandleGetPopularRecipes returns the most-crafted recipes over a trailing window
// @Summary Get popular recipes
// @Description Get the most-crafted recipes with success rates over a trailing day window
// @Tags history
// @Produce json
// @Param days query int false "Trailing window in days (default 7)"
// @Param limit query int false "Number of recipes (default 10)"
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/popular [get]
func HandleGetPopularRecipes(svc craftlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		days := GetOptionalIntQueryParam(r, "days", 0)
		limit := GetOptionalIntQueryParam(r, "limit", 0)

		popular, err := svc.GetPopularRecipes(r.Context(), days, limit)
		if err != nil {
			log.Error("Failed to retrieve popular recipes", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetPopularFailed)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: popular})
	}
}
