package wellness

import (
	"sort"
	"strings"
)

var workouts = map[string]map[string]map[int][]string{
	"beginner": {
		"home": {
			15: {"10 min light cardio (jumping jacks, high knees)", "5 min stretching"},
			30: {"15 min bodyweight circuit (squats, push-ups, lunges)", "10 min cardio", "5 min stretching"},
			60: {"20 min bodyweight strength training", "30 min brisk walking or jogging", "10 min stretching"},
		},
		"gym": {
			30: {"10 min treadmill warm-up", "15 min machine circuit (leg press, chest press)", "5 min cool-down"},
			60: {"10 min warm-up", "30 min full-body workout using machines", "15 min elliptical", "5 min stretching"},
		},
	},
	"intermediate": {
		"home": {
			30: {"20 min HIIT workout", "10 min core exercises"},
			60: {"30 min dumbbell workout", "20 min running", "10 min stretching"},
		},
		"gym": {
			45: {"10 min warm-up", "30 min free weights (squats, deadlifts, bench press)", "5 min cool-down"},
			75: {"15 min warm-up", "45 min strength training (split routine)", "15 min rowing machine"},
		},
	},
}

// SuggestWorkout returns a workout for the given fitness level, available
// minutes and location. Unknown levels fall back to beginner, unknown
// locations to home, and an unlisted duration picks the nearest available
// slot (shorter wins a tie).
func SuggestWorkout(level string, minutes int, location string) string {
	byLocation, ok := workouts[strings.ToLower(level)]
	if !ok {
		byLocation = workouts["beginner"]
	}

	slots, ok := byLocation[strings.ToLower(location)]
	if !ok {
		slots = byLocation["home"]
	}

	if plan, ok := slots[minutes]; ok {
		return strings.Join(plan, "\n")
	}

	durations := make([]int, 0, len(slots))
	for d := range slots {
		durations = append(durations, d)
	}
	sort.Ints(durations)

	best := durations[0]
	for _, d := range durations[1:] {
		if abs(d-minutes) < abs(best-minutes) {
			best = d
		}
	}
	return strings.Join(slots[best], "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
