package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthvale/forgecore/internal/domain"
)

const materialColumns = `material_id, name, description, material_type, rarity, base_value, weight, is_craftable, source_tags, illicit_in_regions, properties`

// MaterialRepository implements the material catalog repository for PostgreSQL
type MaterialRepository struct {
	db *pgxpool.Pool
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func scanMaterial(row pgx.Row) (*domain.Material, error) {
	var m domain.Material
	var propsJSON []byte
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.MaterialType, &m.Rarity,
		&m.BaseValue, &m.Weight, &m.IsCraftable, &m.SourceTags, &m.IllicitInRegions, &propsJSON)
	if err != nil {
		return nil, err
	}
	if len(propsJSON) > 0 {
		if err := json.Unmarshal(propsJSON, &m.Properties); err != nil {
			return nil, fmt.Errorf("failed to unmarshal material properties: %w", err)
		}
	}
	return &m, nil
}

// GetMaterialByID retrieves a material by its ID
func (r *MaterialRepository) GetMaterialByID(ctx context.Context, id int) (*domain.Material, error) {
	m, err := scanMaterial(r.db.QueryRow(ctx,
		`SELECT `+materialColumns+` FROM materials WHERE material_id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get material by id: %w", err)
	}
	return m, nil
}

// GetMaterialByName retrieves a material by its unique name
func (r *MaterialRepository) GetMaterialByName(ctx context.Context, name string) (*domain.Material, error) {
	m, err := scanMaterial(r.db.QueryRow(ctx,
		`SELECT `+materialColumns+` FROM materials WHERE name = $1`, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get material by name: %w", err)
	}
	return m, nil
}

// ListMaterials retrieves materials matching the filter, ordered by ID.
// Filter fields follow the first-match-wins convention of MaterialFilter.
func (r *MaterialRepository) ListMaterials(ctx context.Context, filter domain.MaterialFilter) ([]domain.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials`
	var args []any

	switch {
	case filter.MaterialType != "":
		query += ` WHERE material_type = $1`
		args = append(args, string(filter.MaterialType))
	case filter.Rarity != "":
		query += ` WHERE rarity = $1`
		args = append(args, string(filter.Rarity))
	case filter.SourceTag != "":
		query += ` WHERE $1 = ANY(source_tags)`
		args = append(args, filter.SourceTag)
	case filter.Search != "":
		query += ` WHERE (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')`
		args = append(args, filter.Search)
	case filter.CraftableOnly:
		query += ` WHERE is_craftable`
	}

	query += ` ORDER BY material_id`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
	}
	if filter.Skip > 0 {
		query += fmt.Sprintf(` OFFSET %d`, filter.Skip)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	defer rows.Close()

	var materials []domain.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material row: %w", err)
		}
		materials = append(materials, *m)
	}
	return materials, rows.Err()
}

// CreateMaterial inserts a new material and returns its assigned ID
func (r *MaterialRepository) CreateMaterial(ctx context.Context, material *domain.Material) (int, error) {
	propsJSON, err := marshalProperties(material.Properties)
	if err != nil {
		return 0, err
	}

	var id int
	err = r.db.QueryRow(ctx,
		`INSERT INTO materials (name, description, material_type, rarity, base_value, weight, is_craftable, source_tags, illicit_in_regions, properties)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING material_id`,
		material.Name, material.Description, string(material.MaterialType), string(material.Rarity),
		material.BaseValue, material.Weight, material.IsCraftable,
		textArray(material.SourceTags), textArray(material.IllicitInRegions), propsJSON,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrMaterialExists
		}
		return 0, fmt.Errorf("failed to create material: %w", err)
	}
	return id, nil
}

// UpdateMaterial replaces a material's fields
func (r *MaterialRepository) UpdateMaterial(ctx context.Context, id int, material *domain.Material) error {
	propsJSON, err := marshalProperties(material.Properties)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE materials
		 SET name = $2, description = $3, material_type = $4, rarity = $5, base_value = $6,
		     weight = $7, is_craftable = $8, source_tags = $9, illicit_in_regions = $10, properties = $11
		 WHERE material_id = $1`,
		id, material.Name, material.Description, string(material.MaterialType), string(material.Rarity),
		material.BaseValue, material.Weight, material.IsCraftable,
		textArray(material.SourceTags), textArray(material.IllicitInRegions), propsJSON,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMaterialExists
		}
		return fmt.Errorf("failed to update material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMaterialNotFound
	}
	return nil
}

// DeleteMaterial removes a material from the catalog
func (r *MaterialRepository) DeleteMaterial(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM materials WHERE material_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMaterialNotFound
	}
	return nil
}

// marshalProperties serializes a properties map, defaulting empty maps to {}
func marshalProperties(props domain.Properties) ([]byte, error) {
	if len(props) == 0 {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal properties: %w", err)
	}
	return data, nil
}

// textArray normalizes nil slices so the TEXT[] column never receives NULL
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
