package tracker

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := Open(filepath.Join(t.TempDir(), "calories.db"), 2000)
	require.NoError(t, err)
	t.Cleanup(func() { tr.Close() })
	return tr
}

func TestAddMeal_And_Total(t *testing.T) {
	tr := newTestTracker(t)

	feedback, err := tr.AddMeal("oatmeal", 350, "2026-09-01")
	require.NoError(t, err)
	assert.Contains(t, feedback, `"oatmeal"`)
	assert.Contains(t, feedback, "350")
	assert.NotContains(t, feedback, "Warning")

	total, err := tr.Total("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 350, total)
}

func TestAddMeal_RejectsNonPositiveCalories(t *testing.T) {
	tr := newTestTracker(t)

	feedback, err := tr.AddMeal("air", 0, "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "Please enter a valid calorie amount.", feedback)

	total, err := tr.Total("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestAddMeal_WarnsOverDailyTarget(t *testing.T) {
	tr := newTestTracker(t)

	_, err := tr.AddMeal("feast", 1900, "2026-09-01")
	require.NoError(t, err)

	feedback, err := tr.AddMeal("dessert", 400, "2026-09-01")
	require.NoError(t, err)
	assert.Contains(t, feedback, "exceeded your daily calorie target")
}

func TestSummary(t *testing.T) {
	tr := newTestTracker(t)

	summary, err := tr.Summary("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "No meals logged yet for 2026-09-01.", summary)

	_, err = tr.AddMeal("oatmeal", 350, "2026-09-01")
	require.NoError(t, err)
	_, err = tr.AddMeal("salad", 250, "2026-09-01")
	require.NoError(t, err)

	summary, err = tr.Summary("2026-09-01")
	require.NoError(t, err)
	assert.Contains(t, summary, "- oatmeal: 350 calories")
	assert.Contains(t, summary, "- salad: 250 calories")
	assert.Contains(t, summary, "Total Calories: 600")
	assert.Contains(t, summary, "Daily Target: 2000")
}

func TestReset_OnlyClearsGivenDay(t *testing.T) {
	tr := newTestTracker(t)

	_, err := tr.AddMeal("oatmeal", 350, "2026-09-01")
	require.NoError(t, err)
	_, err = tr.AddMeal("salad", 250, "2026-09-02")
	require.NoError(t, err)

	status, err := tr.Reset("2026-09-01")
	require.NoError(t, err)
	assert.Contains(t, status, "2026-09-01")

	total, err := tr.Total("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	total, err = tr.Total("2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, 250, total)
}

func TestOpen_DefaultTarget(t *testing.T) {
	tr, err := Open(filepath.Join(t.TempDir(), "c.db"), 0)
	require.NoError(t, err)
	defer tr.Close()
	assert.Equal(t, 2000, tr.dailyTarget)
}
