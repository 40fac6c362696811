package repository

import (
	"context"

	"github.com/hearthvale/forgecore/internal/domain"
)

// Material defines the interface for material catalog persistence.
// Lookups return (nil, nil) when the material does not exist; errors are
// reserved for infrastructure faults.
type Material interface {
	GetMaterialByID(ctx context.Context, id int) (*domain.Material, error)
	GetMaterialByName(ctx context.Context, name string) (*domain.Material, error)
	ListMaterials(ctx context.Context, filter domain.MaterialFilter) ([]domain.Material, error)
	CreateMaterial(ctx context.Context, material *domain.Material) (int, error)
	UpdateMaterial(ctx context.Context, id int, material *domain.Material) error
	DeleteMaterial(ctx context.Context, id int) error
}
