package handler

import (
	"net/http"
	"strings"

	"github.com/hearthvale/forgecore/internal/catalog"
	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/logger"
)

// MaterialRequest is the body for material create and update operations
type MaterialRequest struct {
	Name             string            `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description      string            `json:"description,omitempty" validate:"max=2000"`
	MaterialType     string            `json:"material_type" validate:"required,materialtype"`
	Rarity           string            `json:"rarity" validate:"required,rarity"`
	BaseValue        float64           `json:"base_value" validate:"gte=0"`
	Weight           float64           `json:"weight" validate:"gte=0"`
	IsCraftable      bool              `json:"is_craftable"`
	SourceTags       []string          `json:"source_tags,omitempty"`
	IllicitInRegions []string          `json:"illicit_in_regions,omitempty"`
	Properties       domain.Properties `json:"properties,omitempty"`
}

func (req *MaterialRequest) toDomain() *domain.Material {
	return &domain.Material{
		Name:             req.Name,
		Description:      req.Description,
		MaterialType:     domain.MaterialType(strings.ToUpper(req.MaterialType)),
		Rarity:           domain.Rarity(strings.ToUpper(req.Rarity)),
		BaseValue:        req.BaseValue,
		Weight:           req.Weight,
		IsCraftable:      req.IsCraftable,
		SourceTags:       req.SourceTags,
		IllicitInRegions: req.IllicitInRegions,
		Properties:       req.Properties,
	}
}

// HandleGetMaterial returns a single material by ID
// @Summary Get material
// @Description Get a material by its catalog ID
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} domain.Material
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /materials/{id} [get]
func HandleGetMaterial(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w)
		if !ok {
			return
		}

		material, err := svc.GetMaterial(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get material", err)
			return
		}

		respondJSON(w, http.StatusOK, material)
	}
}

// HandleGetMaterialByName returns a material by exact name, with near-miss
// suggestions when the lookup fails
// @Summary Get material by name
// @Description Get a material by exact name. A miss includes close-name suggestions.
// @Tags materials
// @Produce json
// @Param name query string true "Material name"
// @Success 200 {object} domain.Material
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} SuggestionResponse
// @Router /materials/by-name [get]
func HandleGetMaterialByName(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		name, ok := GetQueryParam(r, w, "name")
		if !ok {
			return
		}

		material, err := svc.GetMaterialByName(r.Context(), name)
		if err != nil {
			suggestions, suggestErr := svc.SuggestMaterials(r.Context(), name, 0)
			if suggestErr != nil {
				log.Warn("Material suggestion lookup failed", "error", suggestErr)
			}
			status, message := mapServiceErrorToUserMessage(err)
			respondJSON(w, status, SuggestionResponse{Error: message, Suggestions: suggestions})
			return
		}

		respondJSON(w, http.StatusOK, material)
	}
}

// HandleListMaterials returns materials matching the query filters
// @Summary List materials
// @Description List catalog materials. Filters are mutually exclusive; the first one present wins.
// @Tags materials
// @Produce json
// @Param type query string false "Material type"
// @Param rarity query string false "Rarity"
// @Param source_tag query string false "Source tag"
// @Param search query string false "Name substring"
// @Param craftable query bool false "Only craftable materials"
// @Param skip query int false "Pagination offset"
// @Param limit query int false "Page size"
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /materials [get]
func HandleListMaterials(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter := domain.MaterialFilter{
			MaterialType:  domain.MaterialType(strings.ToUpper(r.URL.Query().Get("type"))),
			Rarity:        domain.Rarity(strings.ToUpper(r.URL.Query().Get("rarity"))),
			SourceTag:     r.URL.Query().Get("source_tag"),
			Search:        r.URL.Query().Get("search"),
			CraftableOnly: r.URL.Query().Get("craftable") == "true",
			Skip:          GetOptionalIntQueryParam(r, "skip", 0),
			Limit:         GetOptionalIntQueryParam(r, "limit", 0),
		}

		materials, err := svc.ListMaterials(r.Context(), filter)
		if err != nil {
			log.Error("Failed to list materials", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListMaterialsFailed)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: materials})
	}
}

// HandleCreateMaterial registers a new material in the catalog
// @Summary Create material
// @Description Register a new material
// @Tags materials
// @Accept json
// @Produce json
// @Param request body MaterialRequest true "Material definition"
// @Success 201 {object} domain.Material
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /materials [post]
func HandleCreateMaterial(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req MaterialRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create material"); err != nil {
			return
		}

		material, err := svc.CreateMaterial(r.Context(), req.toDomain())
		if err != nil {
			respondServiceError(w, r, "Create material", err)
			return
		}

		log.Info("Material created", "material_id", material.ID, "name", material.Name)
		respondJSON(w, http.StatusCreated, material)
	}
}

// HandleUpdateMaterial replaces a material definition
// @Summary Update material
// @Description Replace an existing material definition
// @Tags materials
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body MaterialRequest true "Material definition"
// @Success 200 {object} domain.Material
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /materials/{id} [put]
func HandleUpdateMaterial(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := GetIDParam(r, w)
		if !ok {
			return
		}

		var req MaterialRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update material"); err != nil {
			return
		}

		material, err := svc.UpdateMaterial(r.Context(), id, req.toDomain())
		if err != nil {
			respondServiceError(w, r, "Update material", err)
			return
		}

		log.Info("Material updated", "material_id", material.ID, "name", material.Name)
		respondJSON(w, http.StatusOK, material)
	}
}

// HandleDeleteMaterial removes a material from the catalog
// @Summary Delete material
// @Description Remove a material from the catalog
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /materials/{id} [delete]
func HandleDeleteMaterial(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := GetIDParam(r, w)
		if !ok {
			return
		}

		if err := svc.DeleteMaterial(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete material", err)
			return
		}

		log.Info("Material deleted", "material_id", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Material deleted"})
	}
}
