// Package nutrition holds the pure calculation core of the app: daily
// calorie/macro targets derived from a user profile, and the daily ledger
// that reduces logged entries into totals, remaining amounts and streaks.
// Everything here is a total function over its inputs — no I/O, no errors.
package nutrition

import "math"

// Profile attribute enums. Unrecognized values never fail; they fall back
// to the default multiplier / no goal adjustment.
const (
	GenderMale   = "male"
	GenderFemale = "female"

	ActivityNotActive      = "not_active"
	ActivitySlightlyActive = "slightly_active"
	ActivityActive         = "active"
	ActivityVeryActive     = "very_active"

	GoalLoseWeight = "lose_weight"
	GoalGainWeight = "gain_weight"
	GoalGainMuscle = "gain_muscle"
	GoalMaintain   = "maintain"
)

// activityMultipliers is the single source of truth for valid activity
// levels. Anything else gets defaultActivityMultiplier.
var activityMultipliers = map[string]float64{
	ActivityNotActive:      1.2,
	ActivitySlightlyActive: 1.375,
	ActivityActive:         1.55,
	ActivityVeryActive:     1.725,
}

const (
	defaultActivityMultiplier = 1.2

	// The app never collects a birth date; every BMR is computed as if the
	// user were 30. Intentional product simplification, not a placeholder.
	assumedAge = 30

	lbsPerKg = 0.453592
	cmPerFt  = 30.48
	cmPerIn  = 2.54

	// DefaultFiberTargetGrams is the daily fiber target when no other
	// source supplies one.
	DefaultFiberTargetGrams = 25
)

// Profile is the slice of the user record the calculator needs.
// DesiredWeightLbs, when set, is used instead of the current weight.
type Profile struct {
	Gender           string
	HeightFeet       int
	HeightInches     int
	WeightLbs        float64
	DesiredWeightLbs *float64
	Activity         string
	Goal             string
}

// Macros are daily gram targets per macronutrient.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
	Fiber   float64 `json:"fiber"`
}

// Targets are a user's daily calorie and macro targets. They are derived,
// never stored: recomputed from the profile on every read.
type Targets struct {
	Calories float64 `json:"calories"`
	Macros   Macros  `json:"macros"`
}

// ComputeTargets derives daily targets from a profile using Mifflin-St Jeor
// BMR, an activity multiplier, a ±500 kcal goal adjustment and a fixed macro
// split (protein by body weight, fat at 25% of calories, carbs from the
// remainder). It does not validate: zero or missing fields flow through the
// arithmetic and produce degenerate but well-defined numbers.
func ComputeTargets(p Profile) Targets {
	heightCm := float64(p.HeightFeet)*cmPerFt + float64(p.HeightInches)*cmPerIn

	weightLbs := p.WeightLbs
	if p.DesiredWeightLbs != nil {
		weightLbs = *p.DesiredWeightLbs
	}
	weightKg := weightLbs * lbsPerKg

	bmr := 10*weightKg + 6.25*heightCm - 5*assumedAge
	if p.Gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[p.Activity]
	if !ok {
		mult = defaultActivityMultiplier
	}

	calories := bmr * mult
	switch p.Goal {
	case GoalLoseWeight:
		calories -= 500
	case GoalGainWeight, GoalGainMuscle:
		calories += 500
	}
	calories = math.Round(calories)

	protein := 1.6 * weightKg
	switch p.Goal {
	case GoalGainMuscle:
		protein = 2.2 * weightKg
	case GoalLoseWeight:
		protein = 2.0 * weightKg
	}

	proteinCal := protein * 4
	fatCal := calories * 0.25
	fat := fatCal / 9
	carbs := (calories - (proteinCal + fatCal)) / 4

	return Targets{
		Calories: calories,
		Macros: Macros{
			Protein: math.Round(protein),
			Carbs:   math.Round(carbs),
			Fats:    math.Round(fat),
			Fiber:   DefaultFiberTargetGrams,
		},
	}
}
