package handler

import (
	"net/http"

	"github.com/hearthvale/forgecore/internal/crafting"
	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/logger"
)

// CraftRequest is the body for craft and craft-preview operations. The
// context snapshots are optional; omitting a category opts the caller out of
// the corresponding eligibility check.
type CraftRequest struct {
	PlayerID string               `json:"player_id" validate:"required,uuid"`
	RecipeID int                  `json:"recipe_id" validate:"required,gte=1"`
	Quantity int                  `json:"quantity" validate:"gte=0"`
	Context  *domain.CraftContext `json:"context,omitempty"`
}

// CraftPreviewResponse is the eligibility-check response
type CraftPreviewResponse struct {
	CanCraft bool   `json:"can_craft"`
	Reason   string `json:"reason,omitempty"`
}

// HandleCraft resolves one crafting attempt
// @Summary Craft
// @Description Attempt to craft a recipe. Failed crafts are a result, not an error: ingredients are still consumed and failure outputs granted.
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Craft details"
// @Success 200 {object} domain.CraftResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /craft [post]
func HandleCraft(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
			return
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}

		result, err := svc.Craft(r.Context(), req.PlayerID, req.RecipeID, quantity, req.Context)
		if err != nil {
			log.Error("Failed to resolve craft", "error", err, "player_id", req.PlayerID, "recipe_id", req.RecipeID)
			respondError(w, http.StatusInternalServerError, ErrMsgCraftFailed)
			return
		}

		log.Info("Craft resolved",
			"player_id", req.PlayerID,
			"recipe_id", req.RecipeID,
			"success", result.Success,
			"quality", result.Quality)

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleCraftPreview checks crafting eligibility without side effects
// @Summary Preview craft eligibility
// @Description Check whether a craft would be allowed to start, without consuming anything
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Craft details"
// @Success 200 {object} CraftPreviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /craft/preview [post]
func HandleCraftPreview(svc crafting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft preview"); err != nil {
			return
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}

		canCraft, reason, err := svc.CanCraft(r.Context(), req.PlayerID, req.RecipeID, quantity, req.Context)
		if err != nil {
			log.Error("Failed to check craft eligibility", "error", err, "player_id", req.PlayerID, "recipe_id", req.RecipeID)
			respondError(w, http.StatusInternalServerError, ErrMsgCraftPreviewFailed)
			return
		}

		respondJSON(w, http.StatusOK, CraftPreviewResponse{CanCraft: canCraft, Reason: reason})
	}
}
