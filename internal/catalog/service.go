package catalog

import (
	"context"
	"fmt"

	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/logger"
	"github.com/hearthvale/forgecore/internal/repository"
)

// Service is the read/write surface of the material and recipe catalogs.
// Get operations return (nil, nil) for missing entries; mutations return
// sentinel errors on collisions and missing targets.
type Service interface {
	GetMaterial(ctx context.Context, id int) (*domain.Material, error)
	GetMaterialByName(ctx context.Context, name string) (*domain.Material, error)
	ListMaterials(ctx context.Context, filter domain.MaterialFilter) ([]domain.Material, error)
	CreateMaterial(ctx context.Context, material *domain.Material) (*domain.Material, error)
	UpdateMaterial(ctx context.Context, id int, material *domain.Material) (*domain.Material, error)
	DeleteMaterial(ctx context.Context, id int) error
	SuggestMaterials(ctx context.Context, query string, limit int) ([]string, error)

	GetRecipe(ctx context.Context, id int) (*domain.Recipe, error)
	GetRecipeByName(ctx context.Context, name string) (*domain.Recipe, error)
	ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
	ListDiscoverableRecipes(ctx context.Context) ([]domain.Recipe, error)
	ListRecipesUsingMaterial(ctx context.Context, materialID int) ([]domain.Recipe, error)
	ListRecipesProducingMaterial(ctx context.Context, materialID int) ([]domain.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, id int, recipe *domain.Recipe) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id int) error
	SuggestRecipes(ctx context.Context, query string, limit int) ([]string, error)
}

type service struct {
	materials repository.Material
	recipes   repository.Recipe

	materialCache *entityCache[domain.Material]
	recipeCache   *entityCache[domain.Recipe]
}

// NewService creates a new catalog service
func NewService(materials repository.Material, recipes repository.Recipe) Service {
	return &service{
		materials:     materials,
		recipes:       recipes,
		materialCache: newEntityCache[domain.Material](MaterialCacheSize),
		recipeCache:   newEntityCache[domain.Recipe](RecipeCacheSize),
	}
}

// normalizeLimit clamps a requested page size into the allowed range
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func validateMaterial(material *domain.Material) error {
	if material == nil || material.Name == "" {
		return fmt.Errorf("%w: material name is required", domain.ErrInvalidInput)
	}
	if !material.Rarity.Valid() {
		return fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, material.Rarity)
	}
	if material.BaseValue < 0 || material.Weight < 0 {
		return fmt.Errorf("%w: base value and weight must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}

// GetMaterial retrieves a material by ID, serving repeat lookups from cache
func (s *service) GetMaterial(ctx context.Context, id int) (*domain.Material, error) {
	if cached, ok := s.materialCache.get(id); ok {
		return &cached, nil
	}

	material, err := s.materials.GetMaterialByID(ctx, id)
	if err != nil || material == nil {
		return nil, err
	}
	s.materialCache.put(id, *material)
	return material, nil
}

// GetMaterialByName retrieves a material by its unique name
func (s *service) GetMaterialByName(ctx context.Context, name string) (*domain.Material, error) {
	return s.materials.GetMaterialByName(ctx, name)
}

// ListMaterials retrieves a page of materials matching the filter
func (s *service) ListMaterials(ctx context.Context, filter domain.MaterialFilter) ([]domain.Material, error) {
	filter.Limit = normalizeLimit(filter.Limit)
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.materials.ListMaterials(ctx, filter)
}

// CreateMaterial validates and inserts a new material
func (s *service) CreateMaterial(ctx context.Context, material *domain.Material) (*domain.Material, error) {
	if err := validateMaterial(material); err != nil {
		return nil, err
	}

	existing, err := s.materials.GetMaterialByName(ctx, material.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMaterialExists, material.Name)
	}

	id, err := s.materials.CreateMaterial(ctx, material)
	if err != nil {
		return nil, err
	}
	material.ID = id

	logger.FromContext(ctx).Info(LogMsgMaterialCreated, "material_id", id, "name", material.Name)
	return material, nil
}

// UpdateMaterial validates and replaces an existing material
func (s *service) UpdateMaterial(ctx context.Context, id int, material *domain.Material) (*domain.Material, error) {
	if err := validateMaterial(material); err != nil {
		return nil, err
	}

	// Renaming onto another material's name is a collision
	existing, err := s.materials.GetMaterialByName(ctx, material.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, fmt.Errorf("%w: %s", domain.ErrMaterialExists, material.Name)
	}

	if err := s.materials.UpdateMaterial(ctx, id, material); err != nil {
		return nil, err
	}
	material.ID = id
	s.materialCache.invalidate(id)

	logger.FromContext(ctx).Info(LogMsgMaterialUpdated, "material_id", id, "name", material.Name)
	return material, nil
}

// DeleteMaterial removes a material from the catalog
func (s *service) DeleteMaterial(ctx context.Context, id int) error {
	if err := s.materials.DeleteMaterial(ctx, id); err != nil {
		return err
	}
	s.materialCache.invalidate(id)

	logger.FromContext(ctx).Info(LogMsgMaterialDeleted, "material_id", id)
	return nil
}

// SuggestMaterials returns catalog names close to the query for typo recovery
func (s *service) SuggestMaterials(ctx context.Context, query string, limit int) ([]string, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrInvalidInput)
	}

	materials, err := s.materials.ListMaterials(ctx, domain.MaterialFilter{Limit: MaxListLimit})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(materials))
	for i, m := range materials {
		names[i] = m.Name
	}
	return suggestNames(names, query, limit), nil
}

// GetRecipe retrieves a recipe by ID, serving repeat lookups from cache
func (s *service) GetRecipe(ctx context.Context, id int) (*domain.Recipe, error) {
	if cached, ok := s.recipeCache.get(id); ok {
		return &cached, nil
	}

	recipe, err := s.recipes.GetRecipeByID(ctx, id)
	if err != nil || recipe == nil {
		return nil, err
	}
	s.recipeCache.put(id, *recipe)
	return recipe, nil
}

// GetRecipeByName retrieves a recipe by its unique name
func (s *service) GetRecipeByName(ctx context.Context, name string) (*domain.Recipe, error) {
	return s.recipes.GetRecipeByName(ctx, name)
}

// ListRecipes retrieves a page of recipes matching the filter
func (s *service) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	filter.Limit = normalizeLimit(filter.Limit)
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.recipes.ListRecipes(ctx, filter)
}

// ListDiscoverableRecipes retrieves all recipes eligible for discovery
func (s *service) ListDiscoverableRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipes.ListDiscoverableRecipes(ctx)
}

// ListRecipesUsingMaterial retrieves recipes with the material as an ingredient
func (s *service) ListRecipesUsingMaterial(ctx context.Context, materialID int) ([]domain.Recipe, error) {
	return s.recipes.ListRecipes(ctx, domain.RecipeFilter{UsingMaterial: materialID, Limit: MaxListLimit})
}

// ListRecipesProducingMaterial retrieves recipes with the material as a
// success output
func (s *service) ListRecipesProducingMaterial(ctx context.Context, materialID int) ([]domain.Recipe, error) {
	return s.recipes.ListRecipes(ctx, domain.RecipeFilter{OutputMaterial: materialID, Limit: MaxListLimit})
}

// validateRecipeRefs checks that every material the recipe references exists
func (s *service) validateRecipeRefs(ctx context.Context, recipe *domain.Recipe) error {
	check := func(materialID int) error {
		material, err := s.GetMaterial(ctx, materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return fmt.Errorf("%w: recipe references material %d", domain.ErrMaterialNotFound, materialID)
		}
		return nil
	}

	for _, ing := range recipe.Ingredients {
		if err := check(ing.MaterialID); err != nil {
			return err
		}
		for _, sub := range ing.Substitutes {
			if err := check(sub); err != nil {
				return err
			}
		}
	}
	for _, out := range recipe.Outputs {
		if err := check(out.MaterialID); err != nil {
			return err
		}
	}
	for _, out := range recipe.FailureOutputs {
		if err := check(out.MaterialID); err != nil {
			return err
		}
	}
	return nil
}

// CreateRecipe validates and inserts a new recipe aggregate
func (s *service) CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	if recipe == nil {
		return nil, fmt.Errorf("%w: recipe is required", domain.ErrInvalidInput)
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateRecipeRefs(ctx, recipe); err != nil {
		return nil, err
	}

	existing, err := s.recipes.GetRecipeByName(ctx, recipe.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeExists, recipe.Name)
	}

	id, err := s.recipes.CreateRecipe(ctx, recipe)
	if err != nil {
		return nil, err
	}
	recipe.ID = id

	logger.FromContext(ctx).Info(LogMsgRecipeCreated, "recipe_id", id, "name", recipe.Name)
	return recipe, nil
}

// UpdateRecipe validates and replaces an existing recipe aggregate
func (s *service) UpdateRecipe(ctx context.Context, id int, recipe *domain.Recipe) (*domain.Recipe, error) {
	if recipe == nil {
		return nil, fmt.Errorf("%w: recipe is required", domain.ErrInvalidInput)
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateRecipeRefs(ctx, recipe); err != nil {
		return nil, err
	}

	existing, err := s.recipes.GetRecipeByName(ctx, recipe.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeExists, recipe.Name)
	}

	if err := s.recipes.UpdateRecipe(ctx, id, recipe); err != nil {
		return nil, err
	}
	recipe.ID = id
	s.recipeCache.invalidate(id)

	logger.FromContext(ctx).Info(LogMsgRecipeUpdated, "recipe_id", id, "name", recipe.Name)
	return recipe, nil
}

// DeleteRecipe removes a recipe from the catalog
func (s *service) DeleteRecipe(ctx context.Context, id int) error {
	if err := s.recipes.DeleteRecipe(ctx, id); err != nil {
		return err
	}
	s.recipeCache.invalidate(id)

	logger.FromContext(ctx).Info(LogMsgRecipeDeleted, "recipe_id", id)
	return nil
}

// SuggestRecipes returns recipe names close to the query for typo recovery
func (s *service) SuggestRecipes(ctx context.Context, query string, limit int) ([]string, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrInvalidInput)
	}

	recipes, err := s.recipes.ListRecipes(ctx, domain.RecipeFilter{Limit: MaxListLimit})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name
	}
	return suggestNames(names, query, limit), nil
}
