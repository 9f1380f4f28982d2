package service

import (
	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/model"
)

// weekDays is the window the dashboard uses for workout frequency.
const weekDays = 7

type DaySummary struct {
	Date              string            `json:"date"`
	Profile           model.Profile     `json:"profile"`
	CaloriesConsumed  float64           `json:"calories_consumed"`
	CaloriesBurned    int               `json:"calories_burned"`
	NetCalories       float64           `json:"net_calories"`
	WorkoutMinutes    int               `json:"workout_minutes"`
	WorkoutFrequency  int               `json:"workout_frequency"`
	TargetCalories    int               `json:"target_calories"`
	RemainingCalories float64           `json:"remaining_calories"`
	CalorieProgress   int               `json:"calorie_progress_pct"`
	BMI               fitness.BMIResult `json:"bmi"`
	MacroTargets      fitness.Macros    `json:"macro_targets"`
	Meals             []model.Meal      `json:"meals"`
	Workouts          []model.Workout   `json:"workouts"`
}

// Today gathers the dashboard numbers for date (today when empty).
// Remaining calories ignore exercise, matching the daily target definition.
func (t *Tracker) Today(date string) (*DaySummary, error) {
	p, err := t.requireProfile()
	if err != nil {
		return nil, err
	}
	date = t.dateOrToday(date)
	meals, err := t.MealsByDate(date)
	if err != nil {
		return nil, err
	}
	workouts, err := t.WorkoutsByDate(date)
	if err != nil {
		return nil, err
	}
	freq, err := t.WorkoutFrequency(weekDays)
	if err != nil {
		return nil, err
	}

	target := p.DailyCalories
	if target <= 0 {
		target = fitness.DailyCalories(*p)
	}
	s := &DaySummary{
		Date:             date,
		Profile:          *p,
		CaloriesConsumed: sumMealCalories(meals),
		WorkoutMinutes:   sumWorkoutMinutes(workouts),
		WorkoutFrequency: freq,
		TargetCalories:   target,
		BMI:              fitness.BMI(p.Weight, p.Height),
		MacroTargets:     fitness.MacroTargets(float64(target), p.Goal),
		Meals:            meals,
		Workouts:         workouts,
	}
	for _, w := range workouts {
		s.CaloriesBurned += w.CaloriesBurned.Int()
	}
	s.NetCalories = s.CaloriesConsumed - float64(s.CaloriesBurned)
	s.RemainingCalories = float64(target) - s.CaloriesConsumed
	s.CalorieProgress = fitness.Progress(s.CaloriesConsumed, float64(target))
	return s, nil
}
