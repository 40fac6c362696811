package handler

import (
	"net/http"
	"strconv"

	"github.com/hearthvale/forgecore/internal/discovery"
	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/logger"
)

// DiscoveryRequest is the body for a discovery attempt. Offered maps material
// ID (as a JSON string key) to the quantity placed on the table.
type DiscoveryRequest struct {
	PlayerID string               `json:"player_id" validate:"required,uuid"`
	Offered  map[string]float64   `json:"offered" validate:"required,min=1"`
	Context  *domain.CraftContext `json:"context,omitempty"`
}

// HandleAttemptDiscovery scores the offered ingredients against unknown
// discoverable recipes
// @Summary Attempt recipe discovery
// @Description Offer a bag of ingredients; the best-matching unknown recipe is learned if its score clears the threshold
// @Tags discovery
// @Accept json
// @Produce json
// @Param request body DiscoveryRequest true "Offered ingredients"
// @Success 200 {object} domain.DiscoveryResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /discovery [post]
func HandleAttemptDiscovery(svc discovery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req DiscoveryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Attempt discovery"); err != nil {
			return
		}

		offered := make(map[int]float64, len(req.Offered))
		for key, quantity := range req.Offered {
			materialID, err := strconv.Atoi(key)
			if err != nil || materialID <= 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}
			offered[materialID] = quantity
		}

		result, err := svc.AttemptDiscovery(r.Context(), req.PlayerID, offered, req.Context)
		if err != nil {
			respondServiceError(w, r, "Attempt discovery", err)
			return
		}

		log.Info("Discovery attempt resolved",
			"player_id", req.PlayerID,
			"discovered", result.Discovered,
			"score", result.Score)

		respondJSON(w, http.StatusOK, result)
	}
}
