package services

import (
	"errors"
	"time"

	"github.com/Himanagi/Calorie-tracker-app/config"
	"github.com/Himanagi/Calorie-tracker-app/models"
	"github.com/Himanagi/Calorie-tracker-app/nutrition"
)

var ErrEntryNotFound = errors.New("entry not found")

// LogFood stores a food entry. Nutrients come in per unit and are scaled by
// quantity once, here — the stored snapshot is final (entries are immutable).
func LogFood(userID uint, foodName string, quantity float64, perUnit nutrition.Nutrients, unit string, now time.Time) (models.Entry, error) {
	scaled := perUnit.Scale(quantity)
	entry := models.Entry{
		UserID:   userID,
		Type:     string(nutrition.EntryFood),
		Date:     nutrition.DayString(now, now.Location()),
		FoodName: foodName,
		Quantity: quantity,
		Unit:     unit,
		Calories: scaled.Calories,
		Protein:  scaled.Protein,
		Carbs:    scaled.Carbs,
		Fiber:    scaled.Fiber,
		Fat:      scaled.Fat,
	}
	err := config.DB.Create(&entry).Error
	return entry, err
}

func LogWorkout(userID uint, workoutName string, caloriesBurned float64, now time.Time) (models.Entry, error) {
	entry := models.Entry{
		UserID:         userID,
		Type:           string(nutrition.EntryWorkout),
		Date:           nutrition.DayString(now, now.Location()),
		WorkoutName:    workoutName,
		CaloriesBurned: caloriesBurned,
	}
	err := config.DB.Create(&entry).Error
	return entry, err
}

func LogWater(userID uint, ounces float64, now time.Time) (models.Entry, error) {
	entry := models.Entry{
		UserID: userID,
		Type:   string(nutrition.EntryWater),
		Date:   nutrition.DayString(now, now.Location()),
		Amount: ounces,
	}
	err := config.DB.Create(&entry).Error
	return entry, err
}

// ListEntriesByDate returns one local calendar day's entries, oldest first.
func ListEntriesByDate(userID uint, date string) ([]models.Entry, error) {
	var entries []models.Entry
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at asc").
		Find(&entries).Error
	return entries, err
}

// ListAllEntries returns every entry a user has logged; the streak
// computation needs the full history, not a single day.
func ListAllEntries(userID uint) ([]models.Entry, error) {
	var entries []models.Entry
	err := config.DB.
		Where("user_id = ?", userID).
		Find(&entries).Error
	return entries, err
}

// DeleteEntry removes an entry, scoped to its owner.
func DeleteEntry(userID, entryID uint) error {
	result := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.Entry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// BackfillEntryDates fills in the date column for old rows created before
// the date string existed, deriving it from created_at. Returns the number
// of rows fixed.
func BackfillEntryDates(userID uint) (int64, error) {
	var entries []models.Entry
	err := config.DB.
		Where("user_id = ? AND (date = '' OR date IS NULL)", userID).
		Find(&entries).Error
	if err != nil {
		return 0, err
	}

	var fixed int64
	for _, e := range entries {
		date := nutrition.DayString(e.CreatedAt, time.Local)
		err := config.DB.Model(&models.Entry{}).
			Where("id = ?", e.ID).
			Update("date", date).Error
		if err != nil {
			return fixed, err
		}
		fixed++
	}
	return fixed, nil
}
