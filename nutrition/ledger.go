package nutrition

import (
	"math"
	"time"
)

// EntryKind discriminates the three entry variants.
type EntryKind string

const (
	EntryFood    EntryKind = "food"
	EntryWorkout EntryKind = "workout"
	EntryWater   EntryKind = "water"
)

// Nutrients is a nutrition snapshot in kcal / grams. The zero value means
// "nothing", so absent fields contribute zero without any nil checks.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
	Fat      float64 `json:"fat"`
}

// Scale returns the nutrients multiplied by a quantity. Used when an entry
// is created: per-unit nutrients are scaled once and stored scaled.
func (n Nutrients) Scale(quantity float64) Nutrients {
	return Nutrients{
		Calories: n.Calories * quantity,
		Protein:  n.Protein * quantity,
		Carbs:    n.Carbs * quantity,
		Fiber:    n.Fiber * quantity,
		Fat:      n.Fat * quantity,
	}
}

// Entry is one logged event. Exactly one variant's fields are meaningful,
// selected by Kind; use the constructors below rather than filling the
// struct by hand.
type Entry struct {
	Kind      EntryKind
	CreatedAt time.Time

	// food
	Nutrients Nutrients

	// workout
	CaloriesBurned float64

	// water
	Ounces float64
}

// FoodEntry builds a food entry from an already-scaled nutrition snapshot.
func FoodEntry(n Nutrients, createdAt time.Time) Entry {
	return Entry{Kind: EntryFood, Nutrients: n, CreatedAt: createdAt}
}

// WorkoutEntry builds a workout entry. Burned calories count against the
// day's consumed calories, never toward macros.
func WorkoutEntry(caloriesBurned float64, createdAt time.Time) Entry {
	return Entry{Kind: EntryWorkout, CaloriesBurned: caloriesBurned, CreatedAt: createdAt}
}

// WaterEntry builds a water entry (ounces). Water never contributes to
// calorie or macro totals.
func WaterEntry(ounces float64, createdAt time.Time) Entry {
	return Entry{Kind: EntryWater, Ounces: ounces, CreatedAt: createdAt}
}

// Totals is the reduction of one day's entries.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

// Balance pairs a day's totals with the remaining-to-target amounts.
type Balance struct {
	Totals    Totals `json:"totals"`
	Remaining Totals `json:"remaining"`
}

// Aggregate reduces a day's entries against the given targets. The caller
// supplies only the entries belonging to the day of interest; no date
// filtering happens here. Workouts subtract from consumed calories, water
// contributes nothing. Remaining values are clamped at zero per nutrient —
// there is no over-target signal.
func Aggregate(entries []Entry, targets Targets) Balance {
	var t Totals
	for _, e := range entries {
		switch e.Kind {
		case EntryWorkout:
			t.Calories -= e.CaloriesBurned
		case EntryFood:
			t.Calories += e.Nutrients.Calories
			t.Protein += e.Nutrients.Protein
			t.Carbs += e.Nutrients.Carbs
			t.Fats += e.Nutrients.Fat
			t.Fiber += e.Nutrients.Fiber
		}
	}

	return Balance{
		Totals: t,
		Remaining: Totals{
			Calories: math.Max(targets.Calories-t.Calories, 0),
			Protein:  math.Max(targets.Macros.Protein-t.Protein, 0),
			Carbs:    math.Max(targets.Macros.Carbs-t.Carbs, 0),
			Fats:     math.Max(targets.Macros.Fats-t.Fats, 0),
			Fiber:    math.Max(targets.Macros.Fiber-t.Fiber, 0),
		},
	}
}

// DayString normalizes a timestamp to its YYYY-MM-DD calendar day in loc.
// The local calendar day of the reference clock is the single source of
// truth for day bucketing everywhere in the app.
func DayString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// Streak counts consecutive calendar days with at least one entry, walking
// backward from the day of ref (in ref's location). A day without entries
// ends the run; if ref's own day has no entry the streak is 0.
func Streak(entries []Entry, ref time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	loc := ref.Location()
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[DayString(e.CreatedAt, loc)] = struct{}{}
	}

	streak := 0
	for day := ref; ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[DayString(day, loc)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// Per-gender daily water goals in ounces, from the water-tracking variant
// of the dashboard. Unknown gender gets the male goal.
var waterGoals = map[string]float64{
	GenderMale:   104,
	GenderFemale: 74,
}

// WaterGoalFor returns the daily water goal in ounces for a gender.
func WaterGoalFor(gender string) float64 {
	if g, ok := waterGoals[gender]; ok {
		return g
	}
	return waterGoals[GenderMale]
}

// WaterOunces sums the water entries in a day's entry list.
func WaterOunces(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		if e.Kind == EntryWater {
			total += e.Ounces
		}
	}
	return total
}
