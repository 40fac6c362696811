package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthvale/forgecore/internal/domain"
)

const knownRecipeColumns = `player_id, recipe_id, discovery_date, mastery_level, times_crafted, highest_quality_crafted`

// KnowledgeRepository implements the player-recipe knowledge ledger for PostgreSQL
type KnowledgeRepository struct {
	db *pgxpool.Pool
}

// NewKnowledgeRepository creates a new KnowledgeRepository
func NewKnowledgeRepository(db *pgxpool.Pool) *KnowledgeRepository {
	return &KnowledgeRepository{db: db}
}

func scanKnownRecipe(row pgx.Row) (*domain.PlayerKnownRecipe, error) {
	var known domain.PlayerKnownRecipe
	var playerUUID uuid.UUID
	err := row.Scan(&playerUUID, &known.RecipeID, &known.DiscoveryDate,
		&known.MasteryLevel, &known.TimesCrafted, &known.HighestQualityCrafted)
	if err != nil {
		return nil, err
	}
	known.PlayerID = playerUUID.String()
	return &known, nil
}

func getKnownRecipe(ctx context.Context, q queryer, playerID string, recipeID int, forUpdate bool) (*domain.PlayerKnownRecipe, error) {
	playerUUID, err := uuid.Parse(playerID)
	if err != nil {
		return nil, fmt.Errorf("invalid player id: %w", err)
	}

	query := `SELECT ` + knownRecipeColumns + ` FROM player_known_recipes WHERE player_id = $1 AND recipe_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	known, err := scanKnownRecipe(q.QueryRow(ctx, query, playerUUID, recipeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get known recipe: %w", err)
	}
	return known, nil
}

func upsertKnownRecipe(ctx context.Context, q queryer, known *domain.PlayerKnownRecipe) error {
	playerUUID, err := uuid.Parse(known.PlayerID)
	if err != nil {
		return fmt.Errorf("invalid player id: %w", err)
	}

	_, err = q.Exec(ctx,
		`INSERT INTO player_known_recipes (player_id, recipe_id, discovery_date, mastery_level, times_crafted, highest_quality_crafted)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (player_id, recipe_id) DO UPDATE
		 SET mastery_level = EXCLUDED.mastery_level,
		     times_crafted = EXCLUDED.times_crafted,
		     highest_quality_crafted = EXCLUDED.highest_quality_crafted`,
		playerUUID, known.RecipeID, known.DiscoveryDate,
		known.MasteryLevel, known.TimesCrafted, known.HighestQualityCrafted)
	if err != nil {
		return fmt.Errorf("failed to upsert known recipe: %w", err)
	}
	return nil
}

// GetKnownRecipe retrieves one ledger entry, or (nil, nil) when absent
func (r *KnowledgeRepository) GetKnownRecipe(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error) {
	return getKnownRecipe(ctx, r.db, playerID, recipeID, false)
}

// ListKnownRecipes retrieves all ledger entries for a player, oldest discovery first
func (r *KnowledgeRepository) ListKnownRecipes(ctx context.Context, playerID string) ([]domain.PlayerKnownRecipe, error) {
	playerUUID, err := uuid.Parse(playerID)
	if err != nil {
		return nil, fmt.Errorf("invalid player id: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+knownRecipeColumns+` FROM player_known_recipes
		 WHERE player_id = $1 ORDER BY discovery_date, recipe_id`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list known recipes: %w", err)
	}
	defer rows.Close()

	var known []domain.PlayerKnownRecipe
	for rows.Next() {
		entry, err := scanKnownRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan known recipe row: %w", err)
		}
		known = append(known, *entry)
	}
	return known, rows.Err()
}

// CreateKnownRecipe inserts a fresh ledger entry
func (r *KnowledgeRepository) CreateKnownRecipe(ctx context.Context, known *domain.PlayerKnownRecipe) error {
	playerUUID, err := uuid.Parse(known.PlayerID)
	if err != nil {
		return fmt.Errorf("invalid player id: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO player_known_recipes (player_id, recipe_id, discovery_date, mastery_level, times_crafted, highest_quality_crafted)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		playerUUID, known.RecipeID, known.DiscoveryDate,
		known.MasteryLevel, known.TimesCrafted, known.HighestQualityCrafted)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRecipeAlreadyKnown
		}
		return fmt.Errorf("failed to create known recipe: %w", err)
	}
	return nil
}

// UpdateKnownRecipe replaces the mutable fields of a ledger entry
func (r *KnowledgeRepository) UpdateKnownRecipe(ctx context.Context, known *domain.PlayerKnownRecipe) error {
	playerUUID, err := uuid.Parse(known.PlayerID)
	if err != nil {
		return fmt.Errorf("invalid player id: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE player_known_recipes
		 SET mastery_level = $3, times_crafted = $4, highest_quality_crafted = $5
		 WHERE player_id = $1 AND recipe_id = $2`,
		playerUUID, known.RecipeID, known.MasteryLevel, known.TimesCrafted, known.HighestQualityCrafted)
	if err != nil {
		return fmt.Errorf("failed to update known recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotKnown
	}
	return nil
}

// DeleteKnownRecipe removes a ledger entry (the player forgets the recipe)
func (r *KnowledgeRepository) DeleteKnownRecipe(ctx context.Context, playerID string, recipeID int) error {
	playerUUID, err := uuid.Parse(playerID)
	if err != nil {
		return fmt.Errorf("invalid player id: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM player_known_recipes WHERE player_id = $1 AND recipe_id = $2`,
		playerUUID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to delete known recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotKnown
	}
	return nil
}
