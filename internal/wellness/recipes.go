package wellness

import (
	"fmt"
	"math/rand"
	"strings"
)

// Recipe is one entry of the static recipe table.
type Recipe struct {
	Name         string
	Ingredients  []string
	Calories     int
	DietType     string
	Instructions string
}

var recipes = []Recipe{
	{
		Name:         "Keto Avocado Salad",
		Ingredients:  []string{"Avocado", "Lettuce", "Olive oil", "Lemon juice", "Salt"},
		Calories:     350,
		DietType:     "keto",
		Instructions: "Mix all ingredients and serve chilled.",
	},
	{
		Name:         "Mediterranean Quinoa Salad",
		Ingredients:  []string{"Quinoa", "Tomatoes", "Cucumber", "Feta cheese", "Olive oil"},
		Calories:     400,
		DietType:     "mediterranean",
		Instructions: "Cook quinoa, chop vegetables, mix all with olive oil and feta.",
	},
	{
		Name:         "Grilled Chicken Wrap",
		Ingredients:  []string{"Chicken breast", "Whole wheat wrap", "Lettuce", "Tomato", "Mustard"},
		Calories:     450,
		DietType:     "none",
		Instructions: "Grill chicken, assemble wrap with vegetables and mustard.",
	},
}

// SuggestRecipe picks a random recipe matching the filters. A non-positive
// maxCalories or empty dietType disables that filter. ok is false when
// nothing matches.
func SuggestRecipe(maxCalories int, dietType string) (Recipe, bool) {
	diet := strings.ToLower(dietType)

	var filtered []Recipe
	for _, r := range recipes {
		if diet != "" && r.DietType != diet {
			continue
		}
		if maxCalories > 0 && r.Calories > maxCalories {
			continue
		}
		filtered = append(filtered, r)
	}

	if len(filtered) == 0 {
		return Recipe{}, false
	}
	return filtered[rand.Intn(len(filtered))], true
}

// Format renders the recipe for console output.
func (r Recipe) Format() string {
	return fmt.Sprintf("%s:\nIngredients: %s\nInstructions: %s\nCalories: %d",
		r.Name, strings.Join(r.Ingredients, ", "), r.Instructions, r.Calories)
}
