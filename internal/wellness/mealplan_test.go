package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestMealPlan_GoalKeywords(t *testing.T) {
	for _, tt := range []struct {
		goal     string
		calories int
	}{
		{"I want to lose weight", 1500},
		{"maintain my current weight", 2000},
		{"gain muscle", 2500},
		{"get shredded", 2000},
	} {
		plan := SuggestMealPlan(tt.goal, "none")
		assert.Equal(t, tt.calories, plan.Macros.Calories, "goal %q", tt.goal)
	}
}

func TestSuggestMealPlan_MacroMath(t *testing.T) {
	plan := SuggestMealPlan("lose weight", "keto")

	// 1500 kcal on a 25/70/5 keto split, at 4 kcal per gram of protein
	// and carbs, 9 per gram of fat.
	assert.Equal(t, 1500, plan.Macros.Calories)
	assert.Equal(t, 93, plan.Macros.ProteinG)
	assert.Equal(t, 116, plan.Macros.FatG)
	assert.Equal(t, 18, plan.Macros.CarbsG)
}

func TestSuggestMealPlan_MealsComeFromDietTable(t *testing.T) {
	for _, diet := range []string{"keto", "mediterranean", "none"} {
		plan := SuggestMealPlan("maintain", diet)
		table := mealTables[diet]
		assert.Contains(t, table["breakfast"], plan.Breakfast)
		assert.Contains(t, table["lunch"], plan.Lunch)
		assert.Contains(t, table["dinner"], plan.Dinner)
	}
}

func TestSuggestMealPlan_UnknownDietFallsBack(t *testing.T) {
	plan := SuggestMealPlan("maintain", "carnivore")
	table := mealTables["none"]
	assert.Contains(t, table["breakfast"], plan.Breakfast)

	// Default ratios are 30/30/40.
	assert.Equal(t, 150, plan.Macros.ProteinG)
	assert.Equal(t, 66, plan.Macros.FatG)
	assert.Equal(t, 200, plan.Macros.CarbsG)
}
