package wellness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestWorkout_ExactSlot(t *testing.T) {
	plan := SuggestWorkout("beginner", 30, "home")
	assert.Equal(t, strings.Join(workouts["beginner"]["home"][30], "\n"), plan)
}

func TestSuggestWorkout_UnknownLevelFallsBackToBeginner(t *testing.T) {
	plan := SuggestWorkout("elite", 30, "home")
	assert.Equal(t, SuggestWorkout("beginner", 30, "home"), plan)
}

func TestSuggestWorkout_UnknownLocationFallsBackToHome(t *testing.T) {
	plan := SuggestWorkout("intermediate", 30, "office")
	assert.Equal(t, SuggestWorkout("intermediate", 30, "home"), plan)
}

func TestSuggestWorkout_NearestDuration(t *testing.T) {
	// Beginner home slots are 15, 30 and 60 minutes.
	assert.Equal(t, SuggestWorkout("beginner", 15, "home"), SuggestWorkout("beginner", 10, "home"))
	assert.Equal(t, SuggestWorkout("beginner", 30, "home"), SuggestWorkout("beginner", 35, "home"))
	assert.Equal(t, SuggestWorkout("beginner", 60, "home"), SuggestWorkout("beginner", 90, "home"))
}

func TestSuggestWorkout_TieGoesToShorterSlot(t *testing.T) {
	// 45 is equidistant from the 30 and 60 minute slots.
	assert.Equal(t, SuggestWorkout("beginner", 30, "home"), SuggestWorkout("beginner", 45, "home"))
}

func TestSuggestWorkout_CaseInsensitive(t *testing.T) {
	assert.Equal(t, SuggestWorkout("beginner", 30, "gym"), SuggestWorkout("Beginner", 30, "GYM"))
}
