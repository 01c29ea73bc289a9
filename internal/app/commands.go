package app

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"buddybot/internal/wellness"
)

func (a *App) cmdAdd(ctx context.Context, path string) {
	if path == "" {
		a.warn.Println("Usage: /add <path>")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		a.warn.Printf("Could not read %s: %v\n", path, err)
		return
	}

	addCtx, cancel := context.WithTimeout(ctx, a.cfg.EmbedTimeout)
	defer cancel()

	status, err := a.kb.AddDocument(addCtx, data, filepath.Base(path))
	if err != nil {
		a.warn.Printf("Could not add %s: %v\n", filepath.Base(path), err)
		return
	}
	a.info.Println(status)
}

func (a *App) cmdList() {
	docs, err := a.kb.ListDocuments()
	if err != nil {
		a.warn.Printf("Could not list documents: %v\n", err)
		return
	}
	if len(docs) == 0 {
		a.info.Println("The knowledge base is currently empty.")
		return
	}
	a.info.Println("Documents:")
	for _, doc := range docs {
		a.info.Printf("- %s\n", doc)
	}
}

func (a *App) cmdClear() {
	status, err := a.kb.Clear()
	if err != nil {
		a.warn.Printf("Could not clear the knowledge base: %v\n", err)
		return
	}
	a.info.Println(status)
}

func (a *App) cmdBMI(args []string) {
	if len(args) != 2 {
		a.warn.Println("Usage: /bmi <height-cm> <weight-kg>")
		return
	}
	height, err1 := strconv.ParseFloat(args[0], 64)
	weight, err2 := strconv.ParseFloat(args[1], 64)
	if err1 != nil || err2 != nil {
		a.warn.Println("Please enter valid height and weight.")
		return
	}
	a.bot.Println(wellness.FormatBMI(height, weight))
}

func (a *App) cmdPlan(args []string) {
	if len(args) == 0 {
		a.warn.Println("Usage: /plan <goal> [diet]")
		return
	}

	diet := "none"
	goal := strings.Join(args, " ")
	if last := strings.ToLower(args[len(args)-1]); last == "keto" || last == "mediterranean" {
		diet = last
		goal = strings.Join(args[:len(args)-1], " ")
	}

	plan := wellness.SuggestMealPlan(goal, diet)
	a.bot.Printf("Breakfast: %s\nLunch: %s\nDinner: %s\n", plan.Breakfast, plan.Lunch, plan.Dinner)
	a.bot.Printf("Targets: %d kcal, %dg protein, %dg fat, %dg carbs\n",
		plan.Macros.Calories, plan.Macros.ProteinG, plan.Macros.FatG, plan.Macros.CarbsG)
}

func (a *App) cmdMeal(args []string) {
	if len(args) == 0 {
		a.warn.Println("Usage: /meal <name> [calories]")
		return
	}

	name := strings.Join(args, " ")
	calories := 0
	if n, err := strconv.Atoi(args[len(args)-1]); err == nil && len(args) > 1 {
		calories = n
		name = strings.Join(args[:len(args)-1], " ")
	}
	if calories == 0 {
		// No calorie estimate available without a food database.
		calories = len(name) * 10
	}

	feedback, err := a.tracker.AddMeal(name, calories, "")
	if err != nil {
		a.warn.Printf("Could not log the meal: %v\n", err)
		return
	}
	a.info.Println(feedback)
}

func (a *App) cmdSummary() {
	summary, err := a.tracker.Summary("")
	if err != nil {
		a.warn.Printf("Could not read the calorie log: %v\n", err)
		return
	}
	a.bot.Println(summary)
}

func (a *App) cmdResetCalories() {
	status, err := a.tracker.Reset("")
	if err != nil {
		a.warn.Printf("Could not reset the calorie log: %v\n", err)
		return
	}
	a.info.Println(status)
}

func (a *App) cmdWorkout(args []string) {
	if len(args) != 3 {
		a.warn.Println("Usage: /workout <level> <minutes> <location>")
		return
	}
	minutes, err := strconv.Atoi(args[1])
	if err != nil {
		a.warn.Println("Minutes must be a number.")
		return
	}
	a.bot.Println(wellness.SuggestWorkout(args[0], minutes, args[2]))
}

func (a *App) cmdQuote() {
	quote := a.boosts.DailyQuote()
	if quote == "" {
		a.info.Println("Quote already given today.")
		return
	}
	a.bot.Println(quote)
}

func (a *App) cmdRecipe(args []string) {
	maxCalories := 0
	diet := ""
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			maxCalories = n
		} else {
			diet = arg
		}
	}

	recipe, ok := wellness.SuggestRecipe(maxCalories, diet)
	if !ok {
		a.info.Println("No recipes found matching your criteria.")
		return
	}
	a.bot.Println(recipe.Format())
}
