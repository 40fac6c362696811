package handler

import (
	"context"
	"errors"

	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/knowledge"
)

// Hand-written stubs with function fields. Only the methods a test installs
// are expected to be called; the rest fail loudly.

var errUnexpectedCall = errors.New("unexpected call")

type stubCatalog struct {
	getMaterial        func(ctx context.Context, id int) (*domain.Material, error)
	getMaterialByName  func(ctx context.Context, name string) (*domain.Material, error)
	listMaterials      func(ctx context.Context, filter domain.MaterialFilter) ([]domain.Material, error)
	createMaterial     func(ctx context.Context, material *domain.Material) (*domain.Material, error)
	updateMaterial     func(ctx context.Context, id int, material *domain.Material) (*domain.Material, error)
	deleteMaterial     func(ctx context.Context, id int) error
	suggestMaterials   func(ctx context.Context, query string, limit int) ([]string, error)
	getRecipe          func(ctx context.Context, id int) (*domain.Recipe, error)
	getRecipeByName    func(ctx context.Context, name string) (*domain.Recipe, error)
	listRecipes        func(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
	listDiscoverable   func(ctx context.Context) ([]domain.Recipe, error)
	listUsingMaterial  func(ctx context.Context, materialID int) ([]domain.Recipe, error)
	listProducing      func(ctx context.Context, materialID int) ([]domain.Recipe, error)
	createRecipe       func(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	updateRecipe       func(ctx context.Context, id int, recipe *domain.Recipe) (*domain.Recipe, error)
	deleteRecipe       func(ctx context.Context, id int) error
	suggestRecipes     func(ctx context.Context, query string, limit int) ([]string, error)
}

func (s *stubCatalog) GetMaterial(ctx context.Context, id int) (*domain.Material, error) {
	if s.getMaterial == nil {
		return nil, errUnexpectedCall
	}
	return s.getMaterial(ctx, id)
}

func (s *stubCatalog) GetMaterialByName(ctx context.Context, name string) (*domain.Material, error) {
	if s.getMaterialByName == nil {
		return nil, errUnexpectedCall
	}
	return s.getMaterialByName(ctx, name)
}

func (s *stubCatalog) ListMaterials(ctx context.Context, filter domain.MaterialFilter) ([]domain.Material, error) {
	if s.listMaterials == nil {
		return nil, errUnexpectedCall
	}
	return s.listMaterials(ctx, filter)
}

func (s *stubCatalog) CreateMaterial(ctx context.Context, material *domain.Material) (*domain.Material, error) {
	if s.createMaterial == nil {
		return nil, errUnexpectedCall
	}
	return s.createMaterial(ctx, material)
}

func (s *stubCatalog) UpdateMaterial(ctx context.Context, id int, material *domain.Material) (*domain.Material, error) {
	if s.updateMaterial == nil {
		return nil, errUnexpectedCall
	}
	return s.updateMaterial(ctx, id, material)
}

func (s *stubCatalog) DeleteMaterial(ctx context.Context, id int) error {
	if s.deleteMaterial == nil {
		return errUnexpectedCall
	}
	return s.deleteMaterial(ctx, id)
}

func (s *stubCatalog) SuggestMaterials(ctx context.Context, query string, limit int) ([]string, error) {
	if s.suggestMaterials == nil {
		return nil, nil
	}
	return s.suggestMaterials(ctx, query, limit)
}

func (s *stubCatalog) GetRecipe(ctx context.Context, id int) (*domain.Recipe, error) {
	if s.getRecipe == nil {
		return nil, errUnexpectedCall
	}
	return s.getRecipe(ctx, id)
}

func (s *stubCatalog) GetRecipeByName(ctx context.Context, name string) (*domain.Recipe, error) {
	if s.getRecipeByName == nil {
		return nil, errUnexpectedCall
	}
	return s.getRecipeByName(ctx, name)
}

func (s *stubCatalog) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	if s.listRecipes == nil {
		return nil, errUnexpectedCall
	}
	return s.listRecipes(ctx, filter)
}

func (s *stubCatalog) ListDiscoverableRecipes(ctx context.Context) ([]domain.Recipe, error) {
	if s.listDiscoverable == nil {
		return nil, errUnexpectedCall
	}
	return s.listDiscoverable(ctx)
}

func (s *stubCatalog) ListRecipesUsingMaterial(ctx context.Context, materialID int) ([]domain.Recipe, error) {
	if s.listUsingMaterial == nil {
		return nil, errUnexpectedCall
	}
	return s.listUsingMaterial(ctx, materialID)
}

func (s *stubCatalog) ListRecipesProducingMaterial(ctx context.Context, materialID int) ([]domain.Recipe, error) {
	if s.listProducing == nil {
		return nil, errUnexpectedCall
	}
	return s.listProducing(ctx, materialID)
}

func (s *stubCatalog) CreateRecipe(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	if s.createRecipe == nil {
		return nil, errUnexpectedCall
	}
	return s.createRecipe(ctx, recipe)
}

func (s *stubCatalog) UpdateRecipe(ctx context.Context, id int, recipe *domain.Recipe) (*domain.Recipe, error) {
	if s.updateRecipe == nil {
		return nil, errUnexpectedCall
	}
	return s.updateRecipe(ctx, id, recipe)
}

func (s *stubCatalog) DeleteRecipe(ctx context.Context, id int) error {
	if s.deleteRecipe == nil {
		return errUnexpectedCall
	}
	return s.deleteRecipe(ctx, id)
}

func (s *stubCatalog) SuggestRecipes(ctx context.Context, query string, limit int) ([]string, error) {
	if s.suggestRecipes == nil {
		return nil, nil
	}
	return s.suggestRecipes(ctx, query, limit)
}

type stubCrafting struct {
	canCraft func(ctx context.Context, playerID string, recipeID, quantity int, craftCtx *domain.CraftContext) (bool, string, error)
	craft    func(ctx context.Context, playerID string, recipeID, quantity int, craftCtx *domain.CraftContext) (*domain.CraftResult, error)
}

func (s *stubCrafting) CanCraft(ctx context.Context, playerID string, recipeID, quantity int, craftCtx *domain.CraftContext) (bool, string, error) {
	if s.canCraft == nil {
		return false, "", errUnexpectedCall
	}
	return s.canCraft(ctx, playerID, recipeID, quantity, craftCtx)
}

func (s *stubCrafting) Craft(ctx context.Context, playerID string, recipeID, quantity int, craftCtx *domain.CraftContext) (*domain.CraftResult, error) {
	if s.craft == nil {
		return nil, errUnexpectedCall
	}
	return s.craft(ctx, playerID, recipeID, quantity, craftCtx)
}

type stubKnowledge struct {
	learn     func(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error)
	forget    func(ctx context.Context, playerID string, recipeID int) error
	isKnown   func(ctx context.Context, playerID string, recipeID int) (bool, error)
	getKnown  func(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error)
	listKnown func(ctx context.Context, playerID string) ([]knowledge.KnownRecipeDetail, error)
}

func (s *stubKnowledge) LearnRecipe(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error) {
	if s.learn == nil {
		return nil, errUnexpectedCall
	}
	return s.learn(ctx, playerID, recipeID)
}

func (s *stubKnowledge) ForgetRecipe(ctx context.Context, playerID string, recipeID int) error {
	if s.forget == nil {
		return errUnexpectedCall
	}
	return s.forget(ctx, playerID, recipeID)
}

func (s *stubKnowledge) IsRecipeKnown(ctx context.Context, playerID string, recipeID int) (bool, error) {
	if s.isKnown == nil {
		return false, errUnexpectedCall
	}
	return s.isKnown(ctx, playerID, recipeID)
}

func (s *stubKnowledge) GetKnownRecipe(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error) {
	if s.getKnown == nil {
		return nil, errUnexpectedCall
	}
	return s.getKnown(ctx, playerID, recipeID)
}

func (s *stubKnowledge) ListKnownRecipes(ctx context.Context, playerID string) ([]knowledge.KnownRecipeDetail, error) {
	if s.listKnown == nil {
		return nil, errUnexpectedCall
	}
	return s.listKnown(ctx, playerID)
}

type stubDiscovery struct {
	attempt func(ctx context.Context, playerID string, offered map[int]float64, dctx *domain.CraftContext) (*domain.DiscoveryResult, error)
}

func (s *stubDiscovery) AttemptDiscovery(ctx context.Context, playerID string, offered map[int]float64, dctx *domain.CraftContext) (*domain.DiscoveryResult, error) {
	if s.attempt == nil {
		return nil, errUnexpectedCall
	}
	return s.attempt(ctx, playerID, offered, dctx)
}

type stubCraftlog struct {
	history func(ctx context.Context, playerID string, filter domain.CraftingLogFilter) ([]domain.CraftingLog, error)
	popular func(ctx context.Context, days, limit int) ([]domain.RecipePopularity, error)
}

func (s *stubCraftlog) GetPlayerHistory(ctx context.Context, playerID string, filter domain.CraftingLogFilter) ([]domain.CraftingLog, error) {
	if s.history == nil {
		return nil, errUnexpectedCall
	}
	return s.history(ctx, playerID, filter)
}

func (s *stubCraftlog) GetPopularRecipes(ctx context.Context, days, limit int) ([]domain.RecipePopularity, error) {
	if s.popular == nil {
		return nil, errUnexpectedCall
	}
	return s.popular(ctx, days, limit)
}

type stubPool struct {
	pingErr error
}

func (s *stubPool) Ping(context.Context) error { return s.pingErr }
func (s *stubPool) Close()                     {}
