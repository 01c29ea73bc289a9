package wellness

import (
	"math/rand"
	"strings"
)

// Macros is the daily macronutrient breakdown of a meal plan.
type Macros struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	FatG     int `json:"fat_g"`
	CarbsG   int `json:"carbs_g"`
}

// MealPlan is one day of suggested meals with its macro targets.
type MealPlan struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Macros    Macros `json:"macronutrients"`
}

var calorieTargets = []struct {
	keyword  string
	calories int
}{
	{"lose", 1500},
	{"maintain", 2000},
	{"gain", 2500},
}

type macroRatios struct {
	protein, fat, carbs float64
}

var dietRatios = map[string]macroRatios{
	"keto":          {protein: 0.25, fat: 0.70, carbs: 0.05},
	"mediterranean": {protein: 0.30, fat: 0.35, carbs: 0.35},
	"none":          {protein: 0.30, fat: 0.30, carbs: 0.40},
}

var mealTables = map[string]map[string][]string{
	"keto": {
		"breakfast": {"Scrambled eggs with avocado", "Keto pancakes with berries"},
		"lunch":     {"Grilled chicken salad with olive oil dressing", "Zucchini noodles with pesto and chicken"},
		"dinner":    {"Salmon with asparagus", "Beef stir-fry with broccoli"},
	},
	"mediterranean": {
		"breakfast": {"Greek yogurt with nuts and honey", "Oatmeal with fruits"},
		"lunch":     {"Lentil soup with a side of whole wheat bread", "Quinoa salad with chickpeas and vegetables"},
		"dinner":    {"Grilled fish with roasted vegetables", "Chicken skewers with a side of couscous"},
	},
	"none": {
		"breakfast": {"Oatmeal with fruits and nuts", "Scrambled eggs with whole wheat toast"},
		"lunch":     {"Grilled chicken salad", "Turkey and avocado wrap"},
		"dinner":    {"Baked salmon with sweet potato", "Lean beef with mixed vegetables"},
	},
}

// SuggestMealPlan builds a one-day meal plan. The calorie target comes from
// the first goal keyword found (lose/maintain/gain, default 2000) and the
// macro split from the diet preference.
func SuggestMealPlan(goal, dietPreference string) MealPlan {
	target := 2000
	goalLower := strings.ToLower(goal)
	for _, t := range calorieTargets {
		if strings.Contains(goalLower, t.keyword) {
			target = t.calories
			break
		}
	}

	diet := strings.ToLower(dietPreference)
	ratios, ok := dietRatios[diet]
	if !ok {
		diet = "none"
		ratios = dietRatios[diet]
	}

	// Protein and carbs carry 4 kcal per gram, fat 9.
	macros := Macros{
		Calories: target,
		ProteinG: int(float64(target) * ratios.protein / 4),
		FatG:     int(float64(target) * ratios.fat / 9),
		CarbsG:   int(float64(target) * ratios.carbs / 4),
	}

	table := mealTables[diet]
	return MealPlan{
		Breakfast: pick(table["breakfast"]),
		Lunch:     pick(table["lunch"]),
		Dinner:    pick(table["dinner"]),
		Macros:    macros,
	}
}

func pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rand.Intn(len(options))]
}
