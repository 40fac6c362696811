package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hearthvale/forgecore/internal/config"
	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/logger"
	"github.com/hearthvale/forgecore/internal/validation"
)

// materialConfig is one entry of the materials seed file
type materialConfig struct {
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	MaterialType     string            `json:"material_type"`
	Rarity           string            `json:"rarity"`
	BaseValue        float64           `json:"base_value"`
	Weight           float64           `json:"weight"`
	IsCraftable      bool              `json:"is_craftable,omitempty"`
	SourceTags       []string          `json:"source_tags,omitempty"`
	IllicitInRegions []string          `json:"illicit_in_regions,omitempty"`
	Properties       domain.Properties `json:"properties,omitempty"`
}

type materialsFile struct {
	Materials []materialConfig `json:"materials"`
}

// Recipe seed entries reference materials by name; the loader resolves names
// to catalog IDs during sync.
type ingredientConfig struct {
	Material           string   `json:"material"`
	Quantity           float64  `json:"quantity"`
	ConsumedInCrafting bool     `json:"consumed_in_crafting"`
	CanBeSubstituted   bool     `json:"can_be_substituted,omitempty"`
	Substitutes        []string `json:"substitutes,omitempty"`
}

type outputConfig struct {
	Material        string  `json:"material"`
	Quantity        float64 `json:"quantity"`
	IsPrimary       bool    `json:"is_primary,omitempty"`
	Chance          float64 `json:"chance"`
	QualityModifier float64 `json:"quality_modifier,omitempty"`
}

type recipeConfig struct {
	Name                string                    `json:"name"`
	Description         string                    `json:"description,omitempty"`
	Category            string                    `json:"recipe_category"`
	CraftingTimeSeconds int                       `json:"crafting_time_seconds"`
	RequiredStationType string                    `json:"required_station_type,omitempty"`
	RequiredTools       []string                  `json:"required_tools,omitempty"`
	DifficultyLevel     int                       `json:"difficulty_level"`
	IsDiscoverable      bool                      `json:"is_discoverable,omitempty"`
	QualityRange        domain.QualityRange       `json:"quality_range"`
	Ingredients         []ingredientConfig        `json:"ingredients"`
	Outputs             []outputConfig            `json:"outputs"`
	FailureOutputs      []outputConfig            `json:"failure_outputs,omitempty"`
	RequiredSkills      []domain.SkillRequirement `json:"required_skills,omitempty"`
	ExperienceGained    []domain.ExperienceAward  `json:"experience_gained,omitempty"`
	RegionSpecific      []string                  `json:"region_specific,omitempty"`
}

type recipesFile struct {
	Recipes []recipeConfig `json:"recipes"`
}

// Loader seeds the catalog from JSON config files. Loading is idempotent:
// entries whose names already exist in the catalog are skipped, so it is safe
// to run on every startup.
type Loader struct {
	catalog   Service
	validator validation.SchemaValidator
	configDir string
}

// NewLoader creates a new catalog Loader rooted at configDir
func NewLoader(catalog Service, validator validation.SchemaValidator, configDir string) *Loader {
	return &Loader{
		catalog:   catalog,
		validator: validator,
		configDir: configDir,
	}
}

// Load validates and syncs both seed files into the catalog
func (l *Loader) Load(ctx context.Context) error {
	if err := l.LoadMaterials(ctx); err != nil {
		return err
	}
	return l.LoadRecipes(ctx)
}

// LoadMaterials validates and syncs the materials seed file
func (l *Loader) LoadMaterials(ctx context.Context) error {
	dataPath := filepath.Join(l.configDir, config.ConfigFileMaterials)
	schemaPath := filepath.Join(l.configDir, config.SchemaFileMaterials)

	if err := l.validator.ValidateFile(dataPath, schemaPath); err != nil {
		return fmt.Errorf("materials config invalid: %w", err)
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read materials config: %w", err)
	}
	var file materialsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse materials config: %w", err)
	}

	log := logger.FromContext(ctx)
	created := 0
	for _, mc := range file.Materials {
		existing, err := l.catalog.GetMaterialByName(ctx, mc.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		material := &domain.Material{
			Name:             mc.Name,
			Description:      mc.Description,
			MaterialType:     domain.MaterialType(mc.MaterialType),
			Rarity:           domain.Rarity(mc.Rarity),
			BaseValue:        mc.BaseValue,
			Weight:           mc.Weight,
			IsCraftable:      mc.IsCraftable,
			SourceTags:       mc.SourceTags,
			IllicitInRegions: mc.IllicitInRegions,
			Properties:       mc.Properties,
		}
		if _, err := l.catalog.CreateMaterial(ctx, material); err != nil {
			return fmt.Errorf("failed to seed material %s: %w", mc.Name, err)
		}
		created++
	}

	log.Info("Materials seeded", "total", len(file.Materials), "created", created)
	return nil
}

// LoadRecipes validates and syncs the recipes seed file. Material references
// that cannot be resolved get placeholder catalog entries so recipe data can
// land ahead of its materials.
func (l *Loader) LoadRecipes(ctx context.Context) error {
	dataPath := filepath.Join(l.configDir, config.ConfigFileRecipes)
	schemaPath := filepath.Join(l.configDir, config.SchemaFileRecipes)

	if err := l.validator.ValidateFile(dataPath, schemaPath); err != nil {
		return fmt.Errorf("recipes config invalid: %w", err)
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read recipes config: %w", err)
	}
	var file recipesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse recipes config: %w", err)
	}

	log := logger.FromContext(ctx)
	created := 0
	for _, rc := range file.Recipes {
		existing, err := l.catalog.GetRecipeByName(ctx, rc.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		recipe, err := l.resolveRecipe(ctx, rc)
		if err != nil {
			return fmt.Errorf("failed to resolve recipe %s: %w", rc.Name, err)
		}
		if _, err := l.catalog.CreateRecipe(ctx, recipe); err != nil {
			return fmt.Errorf("failed to seed recipe %s: %w", rc.Name, err)
		}
		created++
	}

	log.Info("Recipes seeded", "total", len(file.Recipes), "created", created)
	return nil
}

// resolveMaterialID maps a seed-file material name to a catalog ID, creating
// a placeholder material when the name is not yet in the catalog
func (l *Loader) resolveMaterialID(ctx context.Context, name string) (int, error) {
	material, err := l.catalog.GetMaterialByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if material != nil {
		return material.ID, nil
	}

	logger.FromContext(ctx).Warn("Creating placeholder for unresolved material reference", "name", name)
	placeholder, err := l.catalog.CreateMaterial(ctx, &domain.Material{
		Name:         name,
		Description:  "Placeholder pending catalog entry",
		MaterialType: domain.MaterialTypeCrafted,
		Rarity:       domain.RarityCommon,
	})
	if err != nil {
		return 0, err
	}
	return placeholder.ID, nil
}

func (l *Loader) resolveRecipe(ctx context.Context, rc recipeConfig) (*domain.Recipe, error) {
	recipe := &domain.Recipe{
		Name:                rc.Name,
		Description:         rc.Description,
		Category:            rc.Category,
		CraftingTimeSeconds: rc.CraftingTimeSeconds,
		RequiredStationType: rc.RequiredStationType,
		RequiredTools:       rc.RequiredTools,
		DifficultyLevel:     rc.DifficultyLevel,
		IsDiscoverable:      rc.IsDiscoverable,
		QualityRange:        rc.QualityRange,
		RequiredSkills:      rc.RequiredSkills,
		ExperienceGained:    rc.ExperienceGained,
		RegionSpecific:      rc.RegionSpecific,
	}

	for _, ic := range rc.Ingredients {
		id, err := l.resolveMaterialID(ctx, ic.Material)
		if err != nil {
			return nil, err
		}
		var subs []int
		for _, sub := range ic.Substitutes {
			subID, err := l.resolveMaterialID(ctx, sub)
			if err != nil {
				return nil, err
			}
			subs = append(subs, subID)
		}
		recipe.Ingredients = append(recipe.Ingredients, domain.RecipeIngredient{
			MaterialID:         id,
			Quantity:           ic.Quantity,
			ConsumedInCrafting: ic.ConsumedInCrafting,
			CanBeSubstituted:   ic.CanBeSubstituted,
			Substitutes:        subs,
		})
	}

	resolveOutputs := func(configs []outputConfig) ([]domain.RecipeOutput, error) {
		var outputs []domain.RecipeOutput
		for _, oc := range configs {
			id, err := l.resolveMaterialID(ctx, oc.Material)
			if err != nil {
				return nil, err
			}
			outputs = append(outputs, domain.RecipeOutput{
				MaterialID:      id,
				Quantity:        oc.Quantity,
				IsPrimary:       oc.IsPrimary,
				Chance:          oc.Chance,
				QualityModifier: oc.QualityModifier,
			})
		}
		return outputs, nil
	}

	var err error
	if recipe.Outputs, err = resolveOutputs(rc.Outputs); err != nil {
		return nil, err
	}
	if recipe.FailureOutputs, err = resolveOutputs(rc.FailureOutputs); err != nil {
		return nil, err
	}
	return recipe, nil
}
