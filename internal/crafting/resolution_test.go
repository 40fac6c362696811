package crafting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/utils"
)

func recipeWithDifficulty(d int) *domain.Recipe {
	return &domain.Recipe{
		ID:                  1,
		Name:                "Test Recipe",
		CraftingTimeSeconds: 60,
		DifficultyLevel:     d,
		QualityRange:        domain.QualityRange{Min: 1, Max: 5},
	}
}

func TestSuccessChanceByDifficulty(t *testing.T) {
	for d := 1; d <= 10; d++ {
		expected := utils.Clamp(1.0-float64(d-1)*0.1, 0.1, 0.99)
		got := successChance(recipeWithDifficulty(d), nil)
		assert.InDelta(t, expected, got, 1e-9, "difficulty %d", d)
	}
}

func TestSuccessChanceSkillSurplus(t *testing.T) {
	recipe := recipeWithDifficulty(5)
	recipe.RequiredSkills = []domain.SkillRequirement{
		{SkillName: "smithing", Level: 3},
	}

	t.Run("surplus adds 0.05 per level", func(t *testing.T) {
		base := successChance(recipe, map[string]int{"smithing": 3})
		plusTwo := successChance(recipe, map[string]int{"smithing": 5})
		assert.InDelta(t, base+0.10, plusTwo, 1e-9)
	})

	t.Run("monotone in delta", func(t *testing.T) {
		prev := 0.0
		for lvl := 3; lvl <= 20; lvl++ {
			got := successChance(recipe, map[string]int{"smithing": lvl})
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
	})

	t.Run("never exceeds ceiling", func(t *testing.T) {
		got := successChance(recipe, map[string]int{"smithing": 100})
		assert.InDelta(t, 0.99, got, 1e-9)
	})

	t.Run("deficit penalized 0.1 per level", func(t *testing.T) {
		base := successChance(recipe, map[string]int{"smithing": 3})
		minusTwo := successChance(recipe, map[string]int{"smithing": 1})
		assert.InDelta(t, base-0.2, minusTwo, 1e-9)
	})

	t.Run("never below floor", func(t *testing.T) {
		got := successChance(recipe, map[string]int{"smithing": -100})
		assert.InDelta(t, 0.1, got, 1e-9)
	})
}

func TestCraftQuality(t *testing.T) {
	recipe := recipeWithDifficulty(2)
	recipe.RequiredSkills = []domain.SkillRequirement{
		{SkillName: "smithing", Level: 1, AffectsQuality: true},
		{SkillName: "strength", Level: 1, AffectsQuality: false},
	}

	t.Run("base quality is 1", func(t *testing.T) {
		assert.Equal(t, 1, craftQuality(recipe, map[string]int{"smithing": 1, "strength": 1}, 0))
	})

	t.Run("quality skills contribute 0.2 per surplus level", func(t *testing.T) {
		// 1 + 10*0.2 = 3
		assert.Equal(t, 3, craftQuality(recipe, map[string]int{"smithing": 11, "strength": 1}, 0))
	})

	t.Run("non-quality skills never contribute", func(t *testing.T) {
		assert.Equal(t, 1, craftQuality(recipe, map[string]int{"smithing": 1, "strength": 50}, 0))
	})

	t.Run("caller modifier applies", func(t *testing.T) {
		assert.Equal(t, 3, craftQuality(recipe, map[string]int{"smithing": 1, "strength": 1}, 2.4))
	})

	t.Run("clamped to recipe range", func(t *testing.T) {
		assert.Equal(t, 5, craftQuality(recipe, map[string]int{"smithing": 100}, 0))
		assert.Equal(t, 1, craftQuality(recipe, map[string]int{"smithing": -100}, -50))
	})

	t.Run("monotone in surplus", func(t *testing.T) {
		prev := 0
		for lvl := 1; lvl <= 30; lvl++ {
			q := craftQuality(recipe, map[string]int{"smithing": lvl, "strength": 1}, 0)
			assert.GreaterOrEqual(t, q, prev)
			prev = q
		}
	})
}

func TestCraftTime(t *testing.T) {
	recipe := recipeWithDifficulty(1)
	recipe.RequiredSkills = []domain.SkillRequirement{
		{SkillName: "smithing", Level: 1, AffectsSpeed: true},
	}

	t.Run("single craft uses base time", func(t *testing.T) {
		assert.InDelta(t, 60.0, craftTime(recipe, nil, 1), 1e-9)
	})

	t.Run("batch of five costs 4.2x", func(t *testing.T) {
		assert.InDelta(t, 60.0*4.2, craftTime(recipe, nil, 5), 1e-9)
	})

	t.Run("speed surplus reduces 2 percent per level", func(t *testing.T) {
		got := craftTime(recipe, map[string]int{"smithing": 6}, 1)
		assert.InDelta(t, 60.0*0.9, got, 1e-9)
	})

	t.Run("reduction capped at half", func(t *testing.T) {
		got := craftTime(recipe, map[string]int{"smithing": 1000}, 1)
		assert.InDelta(t, 30.0, got, 1e-9)
	})

	t.Run("deficit never slows below base", func(t *testing.T) {
		got := craftTime(recipe, map[string]int{"smithing": 0}, 1)
		assert.InDelta(t, 60.0, got, 1e-9)
	})
}

func TestXPAmount(t *testing.T) {
	cases := []struct {
		base     float64
		quantity int
		quality  int
		want     float64
	}{
		{10, 1, 1, 10},
		{10, 1, 3, 12},
		{10, 5, 1, 50},
		{10, 2, 4, 26},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("base%.0f_q%d_qty%d", tc.base, tc.quality, tc.quantity), func(t *testing.T) {
			assert.InDelta(t, tc.want, xpAmount(tc.base, tc.quantity, tc.quality), 1e-9)
		})
	}
}
