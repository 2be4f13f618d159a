package models

import (
	"gorm.io/gorm"
)

// User carries credentials plus the onboarding-quiz profile the target
// calculator reads. DesiredWeightLbs is nullable: it is only kept while the
// goal is lose_weight or gain_weight.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	FirstName        string
	Gender           string // "male" | "female"
	HeightFeet       int
	HeightInches     int
	WeightLbs        float64
	DesiredWeightLbs *float64
	Activity         string // not_active | slightly_active | active | very_active
	Goal             string // lose_weight | gain_weight | gain_muscle | maintain
	Onboarded        bool
}
