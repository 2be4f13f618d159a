package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Himanagi/Calorie-tracker-app/nutrition"
	"github.com/Himanagi/Calorie-tracker-app/services"

	"github.com/gin-gonic/gin"
)

type FoodEntryInput struct {
	FoodName  string              `json:"foodName" binding:"required"`
	Quantity  float64             `json:"quantity" binding:"required,gt=0"`
	Unit      string              `json:"unit"`
	Nutrients nutrition.Nutrients `json:"nutrients"` // per unit; scaled server-side
}

func LogFood(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input FoodEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.LogFood(userID, input.FoodName, input.Quantity, input.Nutrients, input.Unit, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

type WorkoutEntryInput struct {
	WorkoutName    string  `json:"workoutName" binding:"required"`
	CaloriesBurned float64 `json:"caloriesBurned" binding:"required,gt=0"`
}

func LogWorkout(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input WorkoutEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.LogWorkout(userID, input.WorkoutName, input.CaloriesBurned, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

type WaterEntryInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"` // ounces
}

func LogWater(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input WaterEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.LogWater(userID, input.Amount, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func ListEntries(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	date := c.Query("date")
	if date == "" {
		date = nutrition.DayString(time.Now(), time.Local)
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	entries, err := services.ListEntriesByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "entries": entries})
}

func DeleteEntry(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := services.DeleteEntry(userID, uint(id)); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
