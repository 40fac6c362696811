package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthvale/forgecore/internal/domain"
)

func potionRecipe() *domain.Recipe {
	return &domain.Recipe{
		ID:   1,
		Name: "Healing Salve",
		Ingredients: []domain.RecipeIngredient{
			{MaterialID: 1, Quantity: 2},
			{MaterialID: 2, Quantity: 1},
		},
	}
}

func TestScoreRecipeExactMatch(t *testing.T) {
	// Right items, right quantities, no extras, no tool/station/skill
	// requirements: every sub-score is 1.0
	offered := map[int]float64{1: 2, 2: 1}
	assert.InDelta(t, 1.0, scoreRecipe(potionRecipe(), offered, nil), 1e-9)
}

func TestScoreRecipeZeroIngredients(t *testing.T) {
	empty := &domain.Recipe{ID: 2, Name: "Nothing"}
	assert.Zero(t, scoreRecipe(empty, map[int]float64{1: 100}, nil))
}

func TestIngredientScores(t *testing.T) {
	recipe := potionRecipe()

	t.Run("partial presence", func(t *testing.T) {
		presence, _ := ingredientScores(recipe, map[int]float64{1: 2})
		assert.InDelta(t, 0.5, presence, 1e-9)
	})

	t.Run("shortage penalized linearly", func(t *testing.T) {
		_, fidelity := ingredientScores(recipe, map[int]float64{1: 1, 2: 1})
		// material 1: 1/2 = 0.5; material 2 exact: 1.0; average 0.75
		assert.InDelta(t, 0.75, fidelity, 1e-9)
	})

	t.Run("excess penalized gently and capped", func(t *testing.T) {
		_, atDouble := ingredientScores(recipe, map[int]float64{1: 4, 2: 1})
		// ratio 2 -> 1-(2-1)/2 = 0.5, averaged with 1.0 -> 0.75
		assert.InDelta(t, 0.75, atDouble, 1e-9)

		_, atTenfold := ingredientScores(recipe, map[int]float64{1: 20, 2: 1})
		assert.InDelta(t, atDouble, atTenfold, 1e-9)
	})

	t.Run("fidelity averages matched only", func(t *testing.T) {
		_, fidelity := ingredientScores(recipe, map[int]float64{1: 2})
		assert.InDelta(t, 1.0, fidelity, 1e-9)
	})

	t.Run("extraneous items erode presence", func(t *testing.T) {
		presence, _ := ingredientScores(recipe, map[int]float64{1: 2, 2: 1, 50: 1, 51: 1})
		assert.InDelta(t, 0.8, presence, 1e-9)
	})

	t.Run("extraneous penalty caps at half", func(t *testing.T) {
		offered := map[int]float64{1: 2, 2: 1}
		for id := 100; id < 110; id++ {
			offered[id] = 1
		}
		presence, _ := ingredientScores(recipe, offered)
		assert.InDelta(t, 0.5, presence, 1e-9)
	})

	t.Run("presence never goes negative", func(t *testing.T) {
		offered := map[int]float64{}
		for id := 100; id < 110; id++ {
			offered[id] = 1
		}
		presence, _ := ingredientScores(recipe, offered)
		assert.Zero(t, presence)
	})

	t.Run("zero quantities do not count as present", func(t *testing.T) {
		presence, _ := ingredientScores(recipe, map[int]float64{1: 0, 2: 1})
		assert.InDelta(t, 0.5, presence, 1e-9)
	})
}

func TestContextSubScores(t *testing.T) {
	recipe := potionRecipe()
	recipe.RequiredTools = []string{"mortar", "pestle"}
	recipe.RequiredStationType = "alchemy_table"
	recipe.RequiredSkills = []domain.SkillRequirement{
		{SkillName: "alchemy", Level: 3},
		{SkillName: "herbalism", Level: 1},
	}

	t.Run("nil context scores full marks", func(t *testing.T) {
		assert.InDelta(t, 1.0, toolScore(recipe, nil), 1e-9)
		assert.InDelta(t, 1.0, stationScore(recipe, nil), 1e-9)
		assert.InDelta(t, 1.0, skillScore(recipe, nil), 1e-9)
	})

	t.Run("fractional tool match", func(t *testing.T) {
		dctx := &domain.CraftContext{Tools: []string{"mortar"}}
		assert.InDelta(t, 0.5, toolScore(recipe, dctx), 1e-9)
	})

	t.Run("station is all or nothing", func(t *testing.T) {
		assert.Zero(t, stationScore(recipe, &domain.CraftContext{Stations: []string{"forge"}}))
		assert.InDelta(t, 1.0, stationScore(recipe, &domain.CraftContext{Stations: []string{"alchemy_table"}}), 1e-9)
	})

	t.Run("fractional skill match", func(t *testing.T) {
		dctx := &domain.CraftContext{Skills: map[string]int{"alchemy": 1, "herbalism": 2}}
		assert.InDelta(t, 0.5, skillScore(recipe, dctx), 1e-9)
	})

	t.Run("no requirements scores full marks", func(t *testing.T) {
		plain := potionRecipe()
		dctx := &domain.CraftContext{Tools: []string{}, Stations: []string{}, Skills: map[string]int{}}
		assert.InDelta(t, 1.0, toolScore(plain, dctx), 1e-9)
		assert.InDelta(t, 1.0, stationScore(plain, dctx), 1e-9)
		assert.InDelta(t, 1.0, skillScore(plain, dctx), 1e-9)
	})
}
