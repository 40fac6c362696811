package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthvale/forgecore/internal/domain"
)

// CraftingLogRepository implements the append-only crafting log for PostgreSQL
type CraftingLogRepository struct {
	db *pgxpool.Pool
}

// NewCraftingLogRepository creates a new CraftingLogRepository
func NewCraftingLogRepository(db *pgxpool.Pool) *CraftingLogRepository {
	return &CraftingLogRepository{db: db}
}

func appendCraftingLog(ctx context.Context, q queryer, entry *domain.CraftingLog) error {
	logUUID, err := uuid.Parse(entry.ID)
	if err != nil {
		return fmt.Errorf("invalid log id: %w", err)
	}
	playerUUID, err := uuid.Parse(entry.PlayerID)
	if err != nil {
		return fmt.Errorf("invalid player id: %w", err)
	}

	consumed, err := marshalItemQuantities(entry.IngredientsConsumed)
	if err != nil {
		return err
	}
	produced, err := marshalItemQuantities(entry.OutputsProduced)
	if err != nil {
		return err
	}
	xp, err := json.Marshal(entry.ExperienceGained)
	if err != nil {
		return fmt.Errorf("failed to marshal experience gained: %w", err)
	}
	if entry.ExperienceGained == nil {
		xp = []byte("[]")
	}

	_, err = q.Exec(ctx,
		`INSERT INTO crafting_logs (log_id, player_id, recipe_id, created_at, success, quantity_attempted, quantity_produced, quality_achieved, ingredients_consumed, outputs_produced, experience_gained, crafting_location, station_used, business_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		logUUID, playerUUID, entry.RecipeID, entry.Timestamp, entry.Success,
		entry.QuantityAttempted, entry.QuantityProduced, entry.QualityAchieved,
		consumed, produced, xp, entry.CraftingLocation, entry.StationUsed, entry.BusinessID)
	if err != nil {
		return fmt.Errorf("failed to append crafting log: %w", err)
	}
	return nil
}

func marshalItemQuantities(items []domain.ItemQuantity) ([]byte, error) {
	if items == nil {
		return []byte("[]"), nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item quantities: %w", err)
	}
	return data, nil
}

// AppendCraftingLog inserts one immutable crafting attempt record
func (r *CraftingLogRepository) AppendCraftingLog(ctx context.Context, entry *domain.CraftingLog) error {
	return appendCraftingLog(ctx, r.db, entry)
}

// ListCraftingLogs retrieves log entries matching the filter, newest first.
// Unlike the catalog filters, log filter fields combine with AND.
func (r *CraftingLogRepository) ListCraftingLogs(ctx context.Context, filter domain.CraftingLogFilter) ([]domain.CraftingLog, error) {
	query := `SELECT log_id, player_id, recipe_id, created_at, success, quantity_attempted, quantity_produced, quality_achieved, ingredients_consumed, outputs_produced, experience_gained, crafting_location, station_used, business_id
	 FROM crafting_logs WHERE TRUE`
	var args []any

	if filter.PlayerID != "" {
		playerUUID, err := uuid.Parse(filter.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("invalid player id: %w", err)
		}
		args = append(args, playerUUID)
		query += fmt.Sprintf(` AND player_id = $%d`, len(args))
	}
	if filter.RecipeID != 0 {
		args = append(args, filter.RecipeID)
		query += fmt.Sprintf(` AND recipe_id = $%d`, len(args))
	}
	if filter.SuccessOnly {
		query += ` AND success`
	}

	query += ` ORDER BY created_at DESC, log_id`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
	}
	if filter.Skip > 0 {
		query += fmt.Sprintf(` OFFSET %d`, filter.Skip)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list crafting logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.CraftingLog
	for rows.Next() {
		var entry domain.CraftingLog
		var logUUID, playerUUID uuid.UUID
		var consumed, produced, xp []byte
		err := rows.Scan(&logUUID, &playerUUID, &entry.RecipeID, &entry.Timestamp,
			&entry.Success, &entry.QuantityAttempted, &entry.QuantityProduced, &entry.QualityAchieved,
			&consumed, &produced, &xp, &entry.CraftingLocation, &entry.StationUsed, &entry.BusinessID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crafting log row: %w", err)
		}
		entry.ID = logUUID.String()
		entry.PlayerID = playerUUID.String()
		if err := json.Unmarshal(consumed, &entry.IngredientsConsumed); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ingredients consumed: %w", err)
		}
		if err := json.Unmarshal(produced, &entry.OutputsProduced); err != nil {
			return nil, fmt.Errorf("failed to unmarshal outputs produced: %w", err)
		}
		if err := json.Unmarshal(xp, &entry.ExperienceGained); err != nil {
			return nil, fmt.Errorf("failed to unmarshal experience gained: %w", err)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// GetPopularRecipes aggregates craft counts and success rates since the cutoff
func (r *CraftingLogRepository) GetPopularRecipes(ctx context.Context, since time.Time, limit int) ([]domain.RecipePopularity, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT l.recipe_id, r.name, COUNT(*) AS times_crafted,
		        AVG(CASE WHEN l.success THEN 1.0 ELSE 0.0 END) AS success_rate
		 FROM crafting_logs l
		 JOIN recipes r ON r.recipe_id = l.recipe_id
		 WHERE l.created_at >= $1
		 GROUP BY l.recipe_id, r.name
		 ORDER BY times_crafted DESC, l.recipe_id
		 LIMIT $2`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular recipes: %w", err)
	}
	defer rows.Close()

	var popular []domain.RecipePopularity
	for rows.Next() {
		var p domain.RecipePopularity
		if err := rows.Scan(&p.RecipeID, &p.RecipeName, &p.TimesCrafted, &p.SuccessRate); err != nil {
			return nil, fmt.Errorf("failed to scan popularity row: %w", err)
		}
		popular = append(popular, p)
	}
	return popular, rows.Err()
}
