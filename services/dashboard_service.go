package services

import (
	"time"

	"github.com/Himanagi/Calorie-tracker-app/models"
	"github.com/Himanagi/Calorie-tracker-app/nutrition"
)

// Dashboard is everything the main screen renders: the profile-derived
// targets, today's totals and remaining amounts, water progress and the
// logging streak.
type Dashboard struct {
	FirstName string            `json:"firstName"`
	Date      string            `json:"date"`
	Targets   nutrition.Targets `json:"targets"`
	Totals    nutrition.Totals  `json:"totals"`
	Remaining nutrition.Totals  `json:"remaining"`
	WaterOz   float64           `json:"waterOz"`
	WaterGoal float64           `json:"waterGoalOz"`
	Streak    int               `json:"streak"`
}

// GetDashboard recomputes the full dashboard from scratch: targets from the
// profile, totals from today's entries, streak from the whole history. The
// reference time's location defines "today".
func GetDashboard(userID uint, now time.Time) (*Dashboard, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	targets := nutrition.ComputeTargets(ProfileOf(user))

	today := nutrition.DayString(now, now.Location())
	rows, err := ListEntriesByDate(userID, today)
	if err != nil {
		return nil, err
	}
	dayEntries := models.ToLedgerEntries(rows)
	balance := nutrition.Aggregate(dayEntries, targets)

	allRows, err := ListAllEntries(userID)
	if err != nil {
		return nil, err
	}
	streak := nutrition.Streak(models.ToLedgerEntries(allRows), now)

	return &Dashboard{
		FirstName: user.FirstName,
		Date:      today,
		Targets:   targets,
		Totals:    balance.Totals,
		Remaining: balance.Remaining,
		WaterOz:   nutrition.WaterOunces(dayEntries),
		WaterGoal: nutrition.WaterGoalFor(user.Gender),
		Streak:    streak,
	}, nil
}

// GetDailyStats returns the totals for an arbitrary past day (the
// profile-panel "previous stats" view). Remaining is computed against the
// current targets, since targets are never persisted per day.
func GetDailyStats(userID uint, date string) (*nutrition.Balance, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}
	targets := nutrition.ComputeTargets(ProfileOf(user))

	rows, err := ListEntriesByDate(userID, date)
	if err != nil {
		return nil, err
	}

	balance := nutrition.Aggregate(models.ToLedgerEntries(rows), targets)
	return &balance, nil
}
