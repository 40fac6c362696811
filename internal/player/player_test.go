package player

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthvale/forgecore/internal/domain"
)

const testPlayerID = "66666666-6666-6666-6666-666666666666"

func TestMemoryInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("add and query", func(t *testing.T) {
		inv := NewMemoryInventory()
		require.NoError(t, inv.AddItem(ctx, testPlayerID, 1, 5, 1))
		require.NoError(t, inv.AddItem(ctx, testPlayerID, 1, 3, 2))

		total, err := inv.GetQuantity(ctx, testPlayerID, 1)
		require.NoError(t, err)
		assert.Equal(t, 8.0, total)

		snapshot, err := inv.Snapshot(ctx, testPlayerID)
		require.NoError(t, err)
		assert.Equal(t, map[int]float64{1: 8}, snapshot)
	})

	t.Run("remove drains lowest quality first", func(t *testing.T) {
		inv := NewMemoryInventory()
		require.NoError(t, inv.AddItem(ctx, testPlayerID, 1, 5, 1))
		require.NoError(t, inv.AddItem(ctx, testPlayerID, 1, 3, 3))

		require.NoError(t, inv.RemoveItem(ctx, testPlayerID, 1, 6))

		stacks, err := inv.ListStacks(ctx, testPlayerID)
		require.NoError(t, err)
		require.Len(t, stacks, 1)
		assert.Equal(t, 3, stacks[0].Quality)
		assert.Equal(t, 2.0, stacks[0].Quantity)
	})

	t.Run("remove more than held fails", func(t *testing.T) {
		inv := NewMemoryInventory()
		require.NoError(t, inv.AddItem(ctx, testPlayerID, 1, 2, 1))
		err := inv.RemoveItem(ctx, testPlayerID, 1, 5)
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	})

	t.Run("quality below one normalizes to one", func(t *testing.T) {
		inv := NewMemoryInventory()
		require.NoError(t, inv.AddItem(ctx, testPlayerID, 1, 2, 0))
		stacks, err := inv.ListStacks(ctx, testPlayerID)
		require.NoError(t, err)
		require.Len(t, stacks, 1)
		assert.Equal(t, 1, stacks[0].Quality)
	})

	t.Run("invalid quantities rejected", func(t *testing.T) {
		inv := NewMemoryInventory()
		assert.ErrorIs(t, inv.AddItem(ctx, testPlayerID, 1, 0, 1), domain.ErrInvalidInput)
		assert.ErrorIs(t, inv.RemoveItem(ctx, testPlayerID, 1, -1), domain.ErrInvalidInput)
	})

	t.Run("concurrent adds do not lose updates", func(t *testing.T) {
		inv := NewMemoryInventory()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = inv.AddItem(ctx, testPlayerID, 7, 1, 1)
			}()
		}
		wg.Wait()

		total, err := inv.GetQuantity(ctx, testPlayerID, 7)
		require.NoError(t, err)
		assert.Equal(t, 50.0, total)
	})
}

func TestMemorySkills(t *testing.T) {
	ctx := context.Background()

	t.Run("levels derive from experience", func(t *testing.T) {
		skills := NewMemorySkills()
		require.NoError(t, skills.AddSkillExperience(ctx, testPlayerID, "smithing", 250))

		level, err := skills.GetSkillLevel(ctx, testPlayerID, "smithing")
		require.NoError(t, err)
		assert.Equal(t, 2, level)

		snapshot, err := skills.Snapshot(ctx, testPlayerID)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"smithing": 2}, snapshot)
	})

	t.Run("untrained skill is level zero", func(t *testing.T) {
		skills := NewMemorySkills()
		level, err := skills.GetSkillLevel(ctx, testPlayerID, "alchemy")
		require.NoError(t, err)
		assert.Zero(t, level)
	})

	t.Run("experience accumulates", func(t *testing.T) {
		skills := NewMemorySkills()
		require.NoError(t, skills.AddSkillExperience(ctx, testPlayerID, "smithing", 60))
		require.NoError(t, skills.AddSkillExperience(ctx, testPlayerID, "smithing", 60))

		level, err := skills.GetSkillLevel(ctx, testPlayerID, "smithing")
		require.NoError(t, err)
		assert.Equal(t, 1, level)
	})

	t.Run("invalid input rejected", func(t *testing.T) {
		skills := NewMemorySkills()
		assert.ErrorIs(t, skills.AddSkillExperience(ctx, testPlayerID, "", 10), domain.ErrInvalidInput)
		assert.ErrorIs(t, skills.AddSkillExperience(ctx, testPlayerID, "smithing", -5), domain.ErrInvalidInput)
	})
}
