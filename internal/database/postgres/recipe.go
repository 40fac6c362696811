package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthvale/forgecore/internal/domain"
)

const recipeColumns = `recipe_id, name, description, recipe_category, crafting_time_seconds, required_station_type, required_tools, difficulty_level, is_discoverable, quality_min, quality_max, unlock_conditions, region_specific`

// RecipeRepository implements the recipe catalog repository for PostgreSQL.
// Recipes span five tables; reads assemble the full aggregate, and writes
// replace child rows wholesale rather than diffing them.
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var rec domain.Recipe
	var unlockJSON []byte
	err := row.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Category,
		&rec.CraftingTimeSeconds, &rec.RequiredStationType, &rec.RequiredTools,
		&rec.DifficultyLevel, &rec.IsDiscoverable,
		&rec.QualityRange.Min, &rec.QualityRange.Max, &unlockJSON, &rec.RegionSpecific)
	if err != nil {
		return nil, err
	}
	if len(unlockJSON) > 0 {
		if err := json.Unmarshal(unlockJSON, &rec.UnlockConditions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal unlock conditions: %w", err)
		}
	}
	return &rec, nil
}

// loadRecipeChildren fills in the ingredient, output, skill, and experience
// rows for an already-scanned recipe header
func loadRecipeChildren(ctx context.Context, q queryer, rec *domain.Recipe) error {
	rows, err := q.Query(ctx,
		`SELECT material_id, quantity, consumed_in_crafting, can_be_substituted, substitutes
		 FROM recipe_ingredients WHERE recipe_id = $1 ORDER BY position`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to query recipe ingredients: %w", err)
	}
	for rows.Next() {
		var ing domain.RecipeIngredient
		if err := rows.Scan(&ing.MaterialID, &ing.Quantity, &ing.ConsumedInCrafting,
			&ing.CanBeSubstituted, &ing.Substitutes); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan ingredient row: %w", err)
		}
		rec.Ingredients = append(rec.Ingredients, ing)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = q.Query(ctx,
		`SELECT material_id, quantity, is_primary, chance, quality_modifier, is_failure_output
		 FROM recipe_outputs WHERE recipe_id = $1 ORDER BY position`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to query recipe outputs: %w", err)
	}
	for rows.Next() {
		var out domain.RecipeOutput
		var isFailure bool
		if err := rows.Scan(&out.MaterialID, &out.Quantity, &out.IsPrimary,
			&out.Chance, &out.QualityModifier, &isFailure); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan output row: %w", err)
		}
		if isFailure {
			rec.FailureOutputs = append(rec.FailureOutputs, out)
		} else {
			rec.Outputs = append(rec.Outputs, out)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = q.Query(ctx,
		`SELECT skill_name, level, affects_quality, affects_speed
		 FROM recipe_skills WHERE recipe_id = $1 ORDER BY skill_name`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to query recipe skills: %w", err)
	}
	for rows.Next() {
		var sk domain.SkillRequirement
		if err := rows.Scan(&sk.SkillName, &sk.Level, &sk.AffectsQuality, &sk.AffectsSpeed); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan skill row: %w", err)
		}
		rec.RequiredSkills = append(rec.RequiredSkills, sk)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = q.Query(ctx,
		`SELECT skill_name, amount
		 FROM recipe_experience WHERE recipe_id = $1 ORDER BY skill_name`, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to query recipe experience: %w", err)
	}
	for rows.Next() {
		var award domain.ExperienceAward
		if err := rows.Scan(&award.SkillName, &award.Amount); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan experience row: %w", err)
		}
		rec.ExperienceGained = append(rec.ExperienceGained, award)
	}
	rows.Close()
	return rows.Err()
}

// GetRecipeByID retrieves a full recipe aggregate by ID
func (r *RecipeRepository) GetRecipeByID(ctx context.Context, id int) (*domain.Recipe, error) {
	rec, err := scanRecipe(r.db.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE recipe_id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe by id: %w", err)
	}
	if err := loadRecipeChildren(ctx, r.db, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetRecipeByName retrieves a full recipe aggregate by its unique name
func (r *RecipeRepository) GetRecipeByName(ctx context.Context, name string) (*domain.Recipe, error) {
	rec, err := scanRecipe(r.db.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE name = $1`, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe by name: %w", err)
	}
	if err := loadRecipeChildren(ctx, r.db, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListRecipes retrieves recipes matching the filter, ordered by ID.
// Filter fields follow the first-match-wins convention of RecipeFilter.
func (r *RecipeRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes`
	var args []any

	switch {
	case filter.Category != "":
		query += ` WHERE recipe_category = $1`
		args = append(args, filter.Category)
	case filter.StationType != "":
		query += ` WHERE required_station_type = $1`
		args = append(args, filter.StationType)
	case filter.OutputMaterial != 0:
		query += ` WHERE recipe_id IN (SELECT recipe_id FROM recipe_outputs WHERE material_id = $1 AND NOT is_failure_output)`
		args = append(args, filter.OutputMaterial)
	case filter.UsingMaterial != 0:
		query += ` WHERE recipe_id IN (SELECT recipe_id FROM recipe_ingredients WHERE material_id = $1)`
		args = append(args, filter.UsingMaterial)
	case filter.Search != "":
		query += ` WHERE (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')`
		args = append(args, filter.Search)
	case filter.Region != "":
		query += ` WHERE (region_specific = '{}' OR $1 = ANY(region_specific))`
		args = append(args, filter.Region)
	case filter.DiscoverableOnly:
		query += ` WHERE is_discoverable`
	}

	query += ` ORDER BY recipe_id`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
	}
	if filter.Skip > 0 {
		query += fmt.Sprintf(` OFFSET %d`, filter.Skip)
	}

	return r.queryRecipes(ctx, query, args...)
}

// ListDiscoverableRecipes retrieves all recipes flagged discoverable
func (r *RecipeRepository) ListDiscoverableRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return r.queryRecipes(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE is_discoverable ORDER BY recipe_id`)
}

func (r *RecipeRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	var recipes []domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		recipes = append(recipes, *rec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range recipes {
		if err := loadRecipeChildren(ctx, r.db, &recipes[i]); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

// CreateRecipe inserts a new recipe aggregate and returns its assigned ID
func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe *domain.Recipe) (int, error) {
	unlockJSON, err := marshalProperties(recipe.UnlockConditions)
	if err != nil {
		return 0, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var id int
	err = tx.QueryRow(ctx,
		`INSERT INTO recipes (name, description, recipe_category, crafting_time_seconds, required_station_type, required_tools, difficulty_level, is_discoverable, quality_min, quality_max, unlock_conditions, region_specific)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING recipe_id`,
		recipe.Name, recipe.Description, recipe.Category, recipe.CraftingTimeSeconds,
		recipe.RequiredStationType, textArray(recipe.RequiredTools), recipe.DifficultyLevel,
		recipe.IsDiscoverable, recipe.QualityRange.Min, recipe.QualityRange.Max,
		unlockJSON, textArray(recipe.RegionSpecific),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrRecipeExists
		}
		return 0, fmt.Errorf("failed to create recipe: %w", err)
	}

	if err := insertRecipeChildren(ctx, tx, id, recipe); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit recipe insert: %w", err)
	}
	return id, nil
}

// UpdateRecipe replaces the recipe header and all of its child rows
func (r *RecipeRepository) UpdateRecipe(ctx context.Context, id int, recipe *domain.Recipe) error {
	unlockJSON, err := marshalProperties(recipe.UnlockConditions)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx,
		`UPDATE recipes
		 SET name = $2, description = $3, recipe_category = $4, crafting_time_seconds = $5,
		     required_station_type = $6, required_tools = $7, difficulty_level = $8,
		     is_discoverable = $9, quality_min = $10, quality_max = $11,
		     unlock_conditions = $12, region_specific = $13
		 WHERE recipe_id = $1`,
		id, recipe.Name, recipe.Description, recipe.Category, recipe.CraftingTimeSeconds,
		recipe.RequiredStationType, textArray(recipe.RequiredTools), recipe.DifficultyLevel,
		recipe.IsDiscoverable, recipe.QualityRange.Min, recipe.QualityRange.Max,
		unlockJSON, textArray(recipe.RegionSpecific),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRecipeExists
		}
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}

	for _, table := range []string{"recipe_ingredients", "recipe_outputs", "recipe_skills", "recipe_experience"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE recipe_id = $1`, id); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertRecipeChildren(ctx, tx, id, recipe); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recipe update: %w", err)
	}
	return nil
}

// DeleteRecipe removes a recipe; child rows cascade
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE recipe_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func insertRecipeChildren(ctx context.Context, q queryer, recipeID int, recipe *domain.Recipe) error {
	for i, ing := range recipe.Ingredients {
		subs := ing.Substitutes
		if subs == nil {
			subs = []int{}
		}
		_, err := q.Exec(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, position, material_id, quantity, consumed_in_crafting, can_be_substituted, substitutes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			recipeID, i, ing.MaterialID, ing.Quantity, ing.ConsumedInCrafting, ing.CanBeSubstituted, subs)
		if err != nil {
			return fmt.Errorf("failed to insert recipe ingredient: %w", err)
		}
	}

	pos := 0
	insertOutput := func(out domain.RecipeOutput, isFailure bool) error {
		_, err := q.Exec(ctx,
			`INSERT INTO recipe_outputs (recipe_id, position, material_id, quantity, is_primary, chance, quality_modifier, is_failure_output)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			recipeID, pos, out.MaterialID, out.Quantity, out.IsPrimary, out.Chance, out.QualityModifier, isFailure)
		pos++
		return err
	}
	for _, out := range recipe.Outputs {
		if err := insertOutput(out, false); err != nil {
			return fmt.Errorf("failed to insert recipe output: %w", err)
		}
	}
	for _, out := range recipe.FailureOutputs {
		if err := insertOutput(out, true); err != nil {
			return fmt.Errorf("failed to insert failure output: %w", err)
		}
	}

	for _, sk := range recipe.RequiredSkills {
		_, err := q.Exec(ctx,
			`INSERT INTO recipe_skills (recipe_id, skill_name, level, affects_quality, affects_speed)
			 VALUES ($1, $2, $3, $4, $5)`,
			recipeID, sk.SkillName, sk.Level, sk.AffectsQuality, sk.AffectsSpeed)
		if err != nil {
			return fmt.Errorf("failed to insert recipe skill: %w", err)
		}
	}

	for _, award := range recipe.ExperienceGained {
		_, err := q.Exec(ctx,
			`INSERT INTO recipe_experience (recipe_id, skill_name, amount)
			 VALUES ($1, $2, $3)`,
			recipeID, award.SkillName, award.Amount)
		if err != nil {
			return fmt.Errorf("failed to insert recipe experience: %w", err)
		}
	}

	return nil
}
