package nutrition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func sampleTargets() Targets {
	return Targets{
		Calories: 2000,
		Macros:   Macros{Protein: 150, Carbs: 250, Fats: 60, Fiber: 25},
	}
}

func sampleDay() []Entry {
	return []Entry{
		FoodEntry(Nutrients{Calories: 600, Protein: 40, Carbs: 70, Fiber: 8, Fat: 20}, noon),
		FoodEntry(Nutrients{Calories: 450, Protein: 30, Carbs: 50, Fiber: 4, Fat: 15}, noon.Add(2*time.Hour)),
		WorkoutEntry(300, noon.Add(3*time.Hour)),
		WaterEntry(16, noon.Add(4*time.Hour)),
	}
}

func TestAggregateTotals(t *testing.T) {
	b := Aggregate(sampleDay(), sampleTargets())

	// workouts subtract from calories, water contributes nothing
	assert.Equal(t, 750.0, b.Totals.Calories) // 600 + 450 - 300
	assert.Equal(t, 70.0, b.Totals.Protein)
	assert.Equal(t, 120.0, b.Totals.Carbs)
	assert.Equal(t, 35.0, b.Totals.Fats)
	assert.Equal(t, 12.0, b.Totals.Fiber)

	assert.Equal(t, 1250.0, b.Remaining.Calories)
	assert.Equal(t, 80.0, b.Remaining.Protein)
	assert.Equal(t, 130.0, b.Remaining.Carbs)
	assert.Equal(t, 25.0, b.Remaining.Fats)
	assert.Equal(t, 13.0, b.Remaining.Fiber)
}

func TestAggregateRemainingClampsAtZero(t *testing.T) {
	entries := []Entry{
		FoodEntry(Nutrients{Calories: 5000, Protein: 400, Carbs: 600, Fiber: 80, Fat: 200}, noon),
	}

	b := Aggregate(entries, sampleTargets())
	assert.Equal(t, 0.0, b.Remaining.Calories)
	assert.Equal(t, 0.0, b.Remaining.Protein)
	assert.Equal(t, 0.0, b.Remaining.Carbs)
	assert.Equal(t, 0.0, b.Remaining.Fats)
	assert.Equal(t, 0.0, b.Remaining.Fiber)
}

func TestAggregateOrderIndependent(t *testing.T) {
	entries := sampleDay()
	reversed := make([]Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	assert.Equal(t, Aggregate(entries, sampleTargets()), Aggregate(reversed, sampleTargets()))
}

func TestAggregateIdempotent(t *testing.T) {
	entries := sampleDay()
	first := Aggregate(entries, sampleTargets())
	second := Aggregate(entries, sampleTargets())
	assert.Equal(t, first, second)
}

func TestAggregateWorkoutOnly(t *testing.T) {
	b := Aggregate([]Entry{WorkoutEntry(400, noon)}, sampleTargets())

	// calories can go negative pre-clamp; macros stay untouched
	assert.Equal(t, -400.0, b.Totals.Calories)
	assert.Equal(t, 0.0, b.Totals.Protein)
	assert.Equal(t, 0.0, b.Totals.Carbs)
	assert.Equal(t, 0.0, b.Totals.Fats)
	assert.Equal(t, 2400.0, b.Remaining.Calories)
}

func TestAggregateEmpty(t *testing.T) {
	b := Aggregate(nil, sampleTargets())
	assert.Equal(t, Totals{}, b.Totals)
	assert.Equal(t, 2000.0, b.Remaining.Calories)
}

func dayEntry(daysAgo int) Entry {
	return FoodEntry(Nutrients{Calories: 100}, noon.AddDate(0, 0, -daysAgo))
}

func TestStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, Streak(nil, noon))
}

func TestStreakRequiresToday(t *testing.T) {
	// most recent entry is yesterday: no unbroken run ending today
	assert.Equal(t, 0, Streak([]Entry{dayEntry(1), dayEntry(2)}, noon))
}

func TestStreakStopsAtGap(t *testing.T) {
	entries := []Entry{dayEntry(0), dayEntry(1), dayEntry(3)}
	assert.Equal(t, 2, Streak(entries, noon))
}

func TestStreakUnbrokenRun(t *testing.T) {
	entries := []Entry{dayEntry(0), dayEntry(1), dayEntry(2), dayEntry(3)}
	assert.Equal(t, 4, Streak(entries, noon))
}

func TestStreakMonotonicUnderTodayEntry(t *testing.T) {
	without := []Entry{dayEntry(1), dayEntry(2)}
	with := append([]Entry{dayEntry(0)}, without...)

	require.Equal(t, 0, Streak(without, noon))
	assert.Equal(t, 3, Streak(with, noon))
}

func TestStreakMultipleEntriesSameDay(t *testing.T) {
	entries := []Entry{dayEntry(0), dayEntry(0), WaterEntry(8, noon)}
	assert.Equal(t, 1, Streak(entries, noon))
}

// The reference time's location decides where the day boundary falls: an
// entry late in the UTC evening is already "tomorrow" east of Greenwich.
func TestStreakUsesReferenceLocation(t *testing.T) {
	east := time.FixedZone("UTC+3", 3*60*60)
	lateEvening := time.Date(2024, 5, 9, 22, 0, 0, 0, time.UTC) // 2024-05-10 01:00 in UTC+3

	refUTC := time.Date(2024, 5, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Streak([]Entry{FoodEntry(Nutrients{}, lateEvening)}, refUTC))

	refEast := refUTC.In(east) // 2024-05-10 02:00 local
	assert.Equal(t, 1, Streak([]Entry{FoodEntry(Nutrients{}, lateEvening)}, refEast))

	// same instant, but in UTC the entry still belongs to the 9th
	refEastNextDay := time.Date(2024, 5, 10, 12, 0, 0, 0, east)
	assert.Equal(t, 0, Streak([]Entry{FoodEntry(Nutrients{}, refUTC)}, refEastNextDay.In(time.UTC)))
}

func TestDayString(t *testing.T) {
	ts := time.Date(2024, 5, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-09", DayString(ts, time.UTC))
	assert.Equal(t, "2024-05-10", DayString(ts, time.FixedZone("UTC+3", 3*60*60)))
}

func TestWaterHelpers(t *testing.T) {
	entries := []Entry{
		WaterEntry(8, noon),
		WaterEntry(16, noon.Add(time.Hour)),
		FoodEntry(Nutrients{Calories: 200}, noon),
	}
	assert.Equal(t, 24.0, WaterOunces(entries))

	assert.Equal(t, 104.0, WaterGoalFor(GenderMale))
	assert.Equal(t, 74.0, WaterGoalFor(GenderFemale))
	assert.Equal(t, 104.0, WaterGoalFor("unspecified"))
}
