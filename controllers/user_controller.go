package controllers

import (
	"net/http"

	"github.com/Himanagi/Calorie-tracker-app/nutrition"
	"github.com/Himanagi/Calorie-tracker-app/services"

	"github.com/gin-gonic/gin"
)

// profileResponse is the stored profile plus its freshly computed targets.
// Targets are never persisted; they are recomputed on every read.
func profileResponse(c *gin.Context, userID uint) {
	user, err := services.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":            user.Email,
		"firstName":        user.FirstName,
		"gender":           user.Gender,
		"heightFeet":       user.HeightFeet,
		"heightInches":     user.HeightInches,
		"weightLbs":        user.WeightLbs,
		"desiredWeightLbs": user.DesiredWeightLbs,
		"activity":         user.Activity,
		"goal":             user.Goal,
		"onboarded":        user.Onboarded,
		"targets":          nutrition.ComputeTargets(services.ProfileOf(user)),
	})
}

func GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	profileResponse(c, userID)
}

type UpdateProfileInput struct {
	WeightLbs        float64  `json:"weightLbs" binding:"required"`
	Goal             *string  `json:"goal"`
	DesiredWeightLbs *float64 `json:"desiredWeightLbs"`
}

func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := services.UpdateProfile(userID, input.WeightLbs, input.Goal, input.DesiredWeightLbs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	profileResponse(c, userID)
}

type OnboardingInput struct {
	FirstName     string   `json:"firstName" binding:"required"`
	Goal          string   `json:"goal" binding:"required"`
	Activity      string   `json:"activity" binding:"required"`
	Gender        string   `json:"gender" binding:"required"`
	HeightFeet    int      `json:"heightFeet" binding:"required"`
	HeightInches  *int     `json:"heightInches" binding:"required"`
	WeightLbs     float64  `json:"weightLbs" binding:"required"`
	GoalWeightLbs *float64 `json:"goalWeightLbs"`
}

func CompleteOnboarding(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := services.CompleteOnboarding(userID, services.OnboardingAnswers{
		FirstName:     input.FirstName,
		Goal:          input.Goal,
		Activity:      input.Activity,
		Gender:        input.Gender,
		HeightFeet:    input.HeightFeet,
		HeightInches:  *input.HeightInches,
		WeightLbs:     input.WeightLbs,
		GoalWeightLbs: input.GoalWeightLbs,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	profileResponse(c, userID)
}
