package player

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hearthvale/forgecore/internal/domain"
)

// Stack is one inventory slot: a material at a quality tier
type Stack struct {
	MaterialID int     `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	Quality    int     `json:"quality"`
}

type stackKey struct {
	materialID int
	quality    int
}

// MemoryInventory is a mutex-guarded in-memory inventory collaborator.
// Quantities are tracked per material and quality tier; removal drains lower
// quality stacks first.
type MemoryInventory struct {
	mu     sync.RWMutex
	stacks map[string]map[stackKey]float64
}

// NewMemoryInventory creates a new MemoryInventory
func NewMemoryInventory() *MemoryInventory {
	return &MemoryInventory{stacks: make(map[string]map[stackKey]float64)}
}

// AddItem adds quantity of a material at the given quality to the player
func (inv *MemoryInventory) AddItem(_ context.Context, playerID string, materialID int, quantity float64, quality int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if quality < 1 {
		quality = 1
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.stacks[playerID] == nil {
		inv.stacks[playerID] = make(map[stackKey]float64)
	}
	inv.stacks[playerID][stackKey{materialID, quality}] += quantity
	return nil
}

// RemoveItem removes quantity of a material across quality tiers, lowest
// quality first
func (inv *MemoryInventory) RemoveItem(_ context.Context, playerID string, materialID int, quantity float64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	stacks := inv.stacks[playerID]
	total := 0.0
	for key, qty := range stacks {
		if key.materialID == materialID {
			total += qty
		}
	}
	if total < quantity {
		return fmt.Errorf("%w: material %d (need %.6g, have %.6g)",
			domain.ErrInsufficientQuantity, materialID, quantity, total)
	}

	var qualities []int
	for key := range stacks {
		if key.materialID == materialID {
			qualities = append(qualities, key.quality)
		}
	}
	sort.Ints(qualities)

	remaining := quantity
	for _, quality := range qualities {
		if remaining <= 0 {
			break
		}
		key := stackKey{materialID, quality}
		qty := stacks[key]
		if qty > remaining {
			stacks[key] = qty - remaining
			remaining = 0
		} else {
			remaining -= qty
			delete(stacks, key)
		}
	}
	return nil
}

// GetQuantity returns the player's total quantity of a material across all
// quality tiers
func (inv *MemoryInventory) GetQuantity(_ context.Context, playerID string, materialID int) (float64, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	total := 0.0
	for key, qty := range inv.stacks[playerID] {
		if key.materialID == materialID {
			total += qty
		}
	}
	return total, nil
}

// Snapshot returns the player's inventory as material ID to total quantity,
// the shape CraftContext.Inventory expects
func (inv *MemoryInventory) Snapshot(_ context.Context, playerID string) (map[int]float64, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	snapshot := make(map[int]float64)
	for key, qty := range inv.stacks[playerID] {
		snapshot[key.materialID] += qty
	}
	return snapshot, nil
}

// ListStacks returns the player's inventory broken out by quality tier
func (inv *MemoryInventory) ListStacks(_ context.Context, playerID string) ([]Stack, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	var stacks []Stack
	for key, qty := range inv.stacks[playerID] {
		stacks = append(stacks, Stack{MaterialID: key.materialID, Quantity: qty, Quality: key.quality})
	}
	return stacks, nil
}
