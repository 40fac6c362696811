package handler

import (
	"net/http"

	"github.com/hearthvale/forgecore/internal/catalog"
	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/logger"
)

// RecipeRequest is the body for recipe create and update operations. The
// nested slices mirror domain.Recipe; structural invariants (exactly one
// primary output, positive quantities) are enforced by the catalog service.
type RecipeRequest struct {
	Name                string                    `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description         string                    `json:"description,omitempty" validate:"max=2000"`
	Category            string                    `json:"recipe_category" validate:"required,max=50"`
	CraftingTimeSeconds int                       `json:"crafting_time_seconds" validate:"gt=0"`
	RequiredStationType string                    `json:"required_station_type,omitempty"`
	RequiredTools       []string                  `json:"required_tools,omitempty"`
	DifficultyLevel     int                       `json:"difficulty_level" validate:"gte=1,max=10"`
	IsDiscoverable      bool                      `json:"is_discoverable"`
	QualityRange        domain.QualityRange       `json:"quality_range"`
	Ingredients         []domain.RecipeIngredient `json:"ingredients"`
	Outputs             []domain.RecipeOutput     `json:"outputs" validate:"required,min=1"`
	FailureOutputs      []domain.RecipeOutput     `json:"failure_outputs,omitempty"`
	RequiredSkills      []domain.SkillRequirement `json:"required_skills,omitempty"`
	UnlockConditions    domain.Properties         `json:"unlock_conditions,omitempty"`
	ExperienceGained    []domain.ExperienceAward  `json:"experience_gained,omitempty"`
	RegionSpecific      []string                  `json:"region_specific,omitempty"`
}

func (req *RecipeRequest) toDomain() *domain.Recipe {
	return &domain.Recipe{
		Name:                req.Name,
		Description:         req.Description,
		Category:            req.Category,
		CraftingTimeSeconds: req.CraftingTimeSeconds,
		RequiredStationType: req.RequiredStationType,
		RequiredTools:       req.RequiredTools,
		DifficultyLevel:     req.DifficultyLevel,
		IsDiscoverable:      req.IsDiscoverable,
		QualityRange:        req.QualityRange,
		Ingredients:         req.Ingredients,
		Outputs:             req.Outputs,
		FailureOutputs:      req.FailureOutputs,
		RequiredSkills:      req.RequiredSkills,
		UnlockConditions:    req.UnlockConditions,
		ExperienceGained:    req.ExperienceGained,
		RegionSpecific:      req.RegionSpecific,
	}
}

// HandleGetRecipe returns a single recipe by ID
// @Summary Get recipe
// @Description Get a recipe with its full ingredient, output, and skill lists
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{id} [get]
func HandleGetRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w)
		if !ok {
			return
		}

		recipe, err := svc.GetRecipe(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get recipe", err)
			return
		}

		respondJSON(w, http.StatusOK, recipe)
	}
}

// HandleGetRecipeByName returns a recipe by exact name, with near-miss
// suggestions when the lookup fails
// @Summary Get recipe by name
// @Description Get a recipe by exact name. A miss includes close-name suggestions.
// @Tags recipes
// @Produce json
// @Param name query string true "Recipe name"
// @Success 200 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} SuggestionResponse
// @Router /recipes/by-name [get]
func HandleGetRecipeByName(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		name, ok := GetQueryParam(r, w, "name")
		if !ok {
			return
		}

		recipe, err := svc.GetRecipeByName(r.Context(), name)
		if err != nil {
			suggestions, suggestErr := svc.SuggestRecipes(r.Context(), name, 0)
			if suggestErr != nil {
				log.Warn("Recipe suggestion lookup failed", "error", suggestErr)
			}
			status, message := mapServiceErrorToUserMessage(err)
			respondJSON(w, status, SuggestionResponse{Error: message, Suggestions: suggestions})
			return
		}

		respondJSON(w, http.StatusOK, recipe)
	}
}

// HandleListRecipes returns recipes matching the query filters
// @Summary List recipes
// @Description List recipes. Filters are mutually exclusive; the first one present wins.
// @Tags recipes
// @Produce json
// @Param category query string false "Recipe category"
// @Param station query string false "Required station type"
// @Param output_material query int false "Material ID produced on success"
// @Param using_material query int false "Material ID used as ingredient"
// @Param search query string false "Name substring"
// @Param region query string false "Region the recipe must be craftable in"
// @Param discoverable query bool false "Only discoverable recipes"
// @Param skip query int false "Pagination offset"
// @Param limit query int false "Page size"
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes [get]
func HandleListRecipes(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter := domain.RecipeFilter{
			Category:         r.URL.Query().Get("category"),
			StationType:      r.URL.Query().Get("station"),
			OutputMaterial:   GetOptionalIntQueryParam(r, "output_material", 0),
			UsingMaterial:    GetOptionalIntQueryParam(r, "using_material", 0),
			Search:           r.URL.Query().Get("search"),
			Region:           r.URL.Query().Get("region"),
			DiscoverableOnly: r.URL.Query().Get("discoverable") == "true",
			Skip:             GetOptionalIntQueryParam(r, "skip", 0),
			Limit:            GetOptionalIntQueryParam(r, "limit", 0),
		}

		recipes, err := svc.ListRecipes(r.Context(), filter)
		if err != nil {
			log.Error("Failed to list recipes", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListRecipesFailed)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: recipes})
	}
}

// HandleListRecipesUsingMaterial returns recipes with the material as an
// ingredient or accepted substitute
// @Summary List recipes using a material
// @Description List recipes that take the material as an ingredient or substitute
// @Tags recipes
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /materials/{id}/uses [get]
func HandleListRecipesUsingMaterial(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w)
		if !ok {
			return
		}

		recipes, err := svc.ListRecipesUsingMaterial(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "List recipes using material", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: recipes})
	}
}

// HandleListRecipesProducingMaterial returns recipes whose success outputs
// include the material
// @Summary List recipes producing a material
// @Description List recipes that produce the material on success
// @Tags recipes
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /materials/{id}/sources [get]
func HandleListRecipesProducingMaterial(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w)
		if !ok {
			return
		}

		recipes, err := svc.ListRecipesProducingMaterial(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "List recipes producing material", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: recipes})
	}
}

// HandleCreateRecipe registers a new recipe
// @Summary Create recipe
// @Description Register a new recipe with its ingredients, outputs, and skill gates
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body RecipeRequest true "Recipe definition"
// @Success 201 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /recipes [post]
func HandleCreateRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
			return
		}

		recipe, err := svc.CreateRecipe(r.Context(), req.toDomain())
		if err != nil {
			respondServiceError(w, r, "Create recipe", err)
			return
		}

		log.Info("Recipe created", "recipe_id", recipe.ID, "name", recipe.Name)
		respondJSON(w, http.StatusCreated, recipe)
	}
}

// HandleUpdateRecipe replaces a recipe definition
// @Summary Update recipe
// @Description Replace an existing recipe definition including all child lists
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body RecipeRequest true "Recipe definition"
// @Success 200 {object} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /recipes/{id} [put]
func HandleUpdateRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := GetIDParam(r, w)
		if !ok {
			return
		}

		var req RecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update recipe"); err != nil {
			return
		}

		recipe, err := svc.UpdateRecipe(r.Context(), id, req.toDomain())
		if err != nil {
			respondServiceError(w, r, "Update recipe", err)
			return
		}

		log.Info("Recipe updated", "recipe_id", recipe.ID, "name", recipe.Name)
		respondJSON(w, http.StatusOK, recipe)
	}
}

// HandleDeleteRecipe removes a recipe from the catalog
// @Summary Delete recipe
// @Description Remove a recipe from the catalog
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{id} [delete]
func HandleDeleteRecipe(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, ok := GetIDParam(r, w)
		if !ok {
			return
		}

		if err := svc.DeleteRecipe(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete recipe", err)
			return
		}

		log.Info("Recipe deleted", "recipe_id", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Recipe deleted"})
	}
}
