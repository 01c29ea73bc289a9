// Package tracker persists a daily calorie log in a local sqlite database.
package tracker

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const createMealsTable = `
CREATE TABLE IF NOT EXISTS meals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	meal TEXT NOT NULL,
	calories INTEGER NOT NULL
)`

// Tracker is a keyed-append calorie log. Dates are ISO "2006-01-02"
// strings; an empty date means today.
type Tracker struct {
	db          *sql.DB
	dailyTarget int
}

func Open(path string, dailyTarget int) (*Tracker, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open calorie database: %w", err)
	}
	if _, err := db.Exec(createMealsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("init calorie database: %w", err)
	}
	if dailyTarget <= 0 {
		dailyTarget = 2000
	}
	return &Tracker{db: db, dailyTarget: dailyTarget}, nil
}

func (t *Tracker) Close() error {
	return t.db.Close()
}

// AddMeal logs a meal and returns a running summary line for the day,
// including a warning once the daily target is exceeded.
func (t *Tracker) AddMeal(meal string, calories int, date string) (string, error) {
	if calories <= 0 {
		return "Please enter a valid calorie amount.", nil
	}
	if date == "" {
		date = today()
	}

	if _, err := t.db.Exec(`INSERT INTO meals (date, meal, calories) VALUES (?, ?, ?)`, date, meal, calories); err != nil {
		return "", fmt.Errorf("log meal: %w", err)
	}

	total, err := t.Total(date)
	if err != nil {
		return "", err
	}

	feedback := fmt.Sprintf("Added %q with %d calories. Total for %s: %d calories.", meal, calories, date, total)
	if total > t.dailyTarget {
		feedback += fmt.Sprintf(" Warning: you have exceeded your daily calorie target of %d calories.", t.dailyTarget)
	}
	return feedback, nil
}

// Total returns the calories logged for the given day.
func (t *Tracker) Total(date string) (int, error) {
	if date == "" {
		date = today()
	}

	var total sql.NullInt64
	if err := t.db.QueryRow(`SELECT SUM(calories) FROM meals WHERE date = ?`, date).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum calories: %w", err)
	}
	return int(total.Int64), nil
}

// Summary lists the meals logged for the given day with the running total.
func (t *Tracker) Summary(date string) (string, error) {
	if date == "" {
		date = today()
	}

	rows, err := t.db.Query(`SELECT meal, calories FROM meals WHERE date = ? ORDER BY id`, date)
	if err != nil {
		return "", fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	var buf strings.Builder
	count := 0
	total := 0
	for rows.Next() {
		var meal string
		var calories int
		if err := rows.Scan(&meal, &calories); err != nil {
			return "", fmt.Errorf("scan meal: %w", err)
		}
		if count == 0 {
			fmt.Fprintf(&buf, "Meals for %s:\n", date)
		}
		fmt.Fprintf(&buf, "- %s: %d calories\n", meal, calories)
		count++
		total += calories
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("list meals: %w", err)
	}

	if count == 0 {
		return fmt.Sprintf("No meals logged yet for %s.", date), nil
	}

	fmt.Fprintf(&buf, "\nTotal Calories: %d\nDaily Target: %d calories", total, t.dailyTarget)
	if total > t.dailyTarget {
		buf.WriteString("\nWarning: you have exceeded your daily calorie target!")
	}
	return buf.String(), nil
}

// Reset removes the log entries for the given day.
func (t *Tracker) Reset(date string) (string, error) {
	if date == "" {
		date = today()
	}

	if _, err := t.db.Exec(`DELETE FROM meals WHERE date = ?`, date); err != nil {
		return "", fmt.Errorf("reset calorie log: %w", err)
	}
	return fmt.Sprintf("Calorie tracker has been reset for %s.", date), nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}
