package services

import (
	"github.com/Himanagi/Calorie-tracker-app/config"
	"github.com/Himanagi/Calorie-tracker-app/models"
	"github.com/Himanagi/Calorie-tracker-app/nutrition"
)

func FindUserByEmail(email string) (models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

func GetUser(userID uint) (models.User, error) {
	var user models.User
	err := config.DB.First(&user, userID).Error
	return user, err
}

// ProfileOf maps a stored user onto the calculator's profile shape.
func ProfileOf(u models.User) nutrition.Profile {
	return nutrition.Profile{
		Gender:           u.Gender,
		HeightFeet:       u.HeightFeet,
		HeightInches:     u.HeightInches,
		WeightLbs:        u.WeightLbs,
		DesiredWeightLbs: u.DesiredWeightLbs,
		Activity:         u.Activity,
		Goal:             u.Goal,
	}
}

// OnboardingAnswers is the quiz result that completes a profile.
type OnboardingAnswers struct {
	FirstName     string
	Goal          string
	Activity      string
	Gender        string
	HeightFeet    int
	HeightInches  int
	WeightLbs     float64
	GoalWeightLbs *float64
}

func CompleteOnboarding(userID uint, a OnboardingAnswers) (models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return models.User{}, err
	}

	user.FirstName = a.FirstName
	user.Goal = a.Goal
	user.Activity = a.Activity
	user.Gender = a.Gender
	user.HeightFeet = a.HeightFeet
	user.HeightInches = a.HeightInches
	user.WeightLbs = a.WeightLbs
	user.DesiredWeightLbs = a.GoalWeightLbs
	user.Onboarded = true

	if err := config.DB.Save(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateProfile applies the profile-panel edit: current weight always, goal
// and desired weight only when the goal is being changed. Desired weight is
// kept only for lose_weight / gain_weight; other goals clear it.
func UpdateProfile(userID uint, weightLbs float64, goal *string, desiredWeightLbs *float64) (models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return models.User{}, err
	}

	user.WeightLbs = weightLbs
	if goal != nil {
		user.Goal = *goal
		if *goal == nutrition.GoalLoseWeight || *goal == nutrition.GoalGainWeight {
			user.DesiredWeightLbs = desiredWeightLbs
		} else {
			user.DesiredWeightLbs = nil
		}
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
