package services

import (
	"math"

	"nutriplan/models"
)

// activityMultipliers scale BMR to total daily energy expenditure.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityVery:      1.725,
}

const (
	defaultActivityMultiplier = 1.2
	goalCalorieAdjustment     = 500
)

// BasalMetabolicRate returns the Mifflin-St Jeor BMR for the profile.
// Only "male" uses the male constant; every other gender uses the female one.
func BasalMetabolicRate(p models.UserProfile) float64 {
	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == models.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultiplier returns the TDEE factor for an activity level.
// Unknown levels are treated as sedentary.
func ActivityMultiplier(level string) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return defaultActivityMultiplier
}

// ComputeDailyCalorieTarget turns a profile into a daily calorie target:
// BMR times the activity multiplier, shifted by 500 kcal for weight goals,
// rounded once at the end. It never fails; inputs are validated upstream.
func ComputeDailyCalorieTarget(p models.UserProfile) int {
	tdee := BasalMetabolicRate(p) * ActivityMultiplier(p.ActivityLevel)
	switch p.Goal {
	case models.GoalLoseWeight:
		tdee -= goalCalorieAdjustment
	case models.GoalGainWeight:
		tdee += goalCalorieAdjustment
	}
	return int(math.Round(tdee))
}
