package models

import (
	"gorm.io/gorm"

	"github.com/Himanagi/Calorie-tracker-app/nutrition"
)

// Entry is one logged event, discriminated by Type ("food" | "workout" |
// "water"). Only the columns of the matching variant are populated. Entries
// are immutable once created: the only operations are create and delete.
type Entry struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Type   string `gorm:"index;not null"`
	Date   string `gorm:"index;not null"` // local calendar day, YYYY-MM-DD

	// food — nutrition snapshot, already scaled by Quantity at creation
	FoodName string
	Quantity float64
	Unit     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fiber    float64
	Fat      float64

	// workout
	WorkoutName    string
	CaloriesBurned float64

	// water
	Amount float64 // ounces
}

// ToLedger converts the stored row into the ledger's entry type.
func (e Entry) ToLedger() nutrition.Entry {
	switch e.Type {
	case string(nutrition.EntryWorkout):
		return nutrition.WorkoutEntry(e.CaloriesBurned, e.CreatedAt)
	case string(nutrition.EntryWater):
		return nutrition.WaterEntry(e.Amount, e.CreatedAt)
	default:
		return nutrition.FoodEntry(nutrition.Nutrients{
			Calories: e.Calories,
			Protein:  e.Protein,
			Carbs:    e.Carbs,
			Fiber:    e.Fiber,
			Fat:      e.Fat,
		}, e.CreatedAt)
	}
}

// ToLedgerEntries converts a slice of rows for the ledger.
func ToLedgerEntries(rows []Entry) []nutrition.Entry {
	out := make([]nutrition.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToLedger())
	}
	return out
}
