// Package wellness holds the static coaching utilities: BMI, meal plans,
// workouts, motivational content, recipes and coping tips. Everything here
// is a lookup table; the only state is the daily-quote latch in Boosts.
package wellness

import (
	"errors"
	"fmt"
)

// BMI computes the body mass index from height in centimeters and weight in
// kilograms, with its standard category.
func BMI(heightCM, weightKG float64) (float64, string, error) {
	if heightCM <= 0 || weightKG <= 0 {
		return 0, "", errors.New("height and weight must be positive")
	}

	h := heightCM / 100
	bmi := weightKG / (h * h)

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25:
		category = "Normal weight"
	case bmi < 30:
		category = "Overweight"
	default:
		category = "Obesity"
	}

	return bmi, category, nil
}

// FormatBMI renders a BMI result as a user-facing sentence.
func FormatBMI(heightCM, weightKG float64) string {
	bmi, category, err := BMI(heightCM, weightKG)
	if err != nil {
		return "Please enter valid height and weight."
	}
	return fmt.Sprintf("Your BMI is %.2f (%s)", bmi, category)
}
