package service

import (
	"math"
	"sort"

	"github.com/saadjs/fitmentor/internal/model"
)

// AverageCalories is the mean daily intake over the most recent days that
// have at least one meal, rounded to the nearest kcal.
func (t *Tracker) AverageCalories(days int) (int, error) {
	if err := validatePositiveInt("days", days); err != nil {
		return 0, err
	}
	all, err := loadDated[model.Meal](t, KeyMeals)
	if err != nil {
		return 0, err
	}
	keys := recentDates(all, days, true)
	if len(keys) == 0 {
		return 0, nil
	}
	var sum float64
	for _, k := range keys {
		sum += sumMealCalories(all[k])
	}
	return int(math.Round(sum / float64(len(keys)))), nil
}

func (t *Tracker) AverageWorkoutMinutes(days int) (int, error) {
	if err := validatePositiveInt("days", days); err != nil {
		return 0, err
	}
	all, err := loadDated[model.Workout](t, KeyWorkouts)
	if err != nil {
		return 0, err
	}
	keys := recentDates(all, days, true)
	if len(keys) == 0 {
		return 0, nil
	}
	sum := 0
	for _, k := range keys {
		sum += sumWorkoutMinutes(all[k])
	}
	return int(math.Round(float64(sum) / float64(len(keys)))), nil
}

// WorkoutFrequency counts how many of the most recent days date keys hold at
// least one workout. Keys emptied by deletes still occupy a slot.
func (t *Tracker) WorkoutFrequency(days int) (int, error) {
	if err := validatePositiveInt("days", days); err != nil {
		return 0, err
	}
	all, err := loadDated[model.Workout](t, KeyWorkouts)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, k := range recentDates(all, days, false) {
		if len(all[k]) > 0 {
			count++
		}
	}
	return count, nil
}

// DayTotals is one date key's aggregate, used by the stats report.
type DayTotals struct {
	Date           string  `json:"date"`
	Calories       float64 `json:"calories"`
	Meals          int     `json:"meals"`
	WorkoutMinutes int     `json:"workout_minutes"`
	CaloriesBurned int     `json:"calories_burned"`
	Workouts       int     `json:"workouts"`
}

// History returns per-date totals for the most recent days date keys present
// in either collection, newest first.
func (t *Tracker) History(days int) ([]DayTotals, error) {
	if err := validatePositiveInt("days", days); err != nil {
		return nil, err
	}
	meals, err := loadDated[model.Meal](t, KeyMeals)
	if err != nil {
		return nil, err
	}
	workouts, err := loadDated[model.Workout](t, KeyWorkouts)
	if err != nil {
		return nil, err
	}

	union := map[string][]struct{}{}
	for k := range meals {
		union[k] = nil
	}
	for k := range workouts {
		union[k] = nil
	}
	keys := recentDates(union, days, false)

	out := make([]DayTotals, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		k := keys[i]
		row := DayTotals{
			Date:           k,
			Calories:       sumMealCalories(meals[k]),
			Meals:          len(meals[k]),
			WorkoutMinutes: sumWorkoutMinutes(workouts[k]),
			Workouts:       len(workouts[k]),
		}
		for _, w := range workouts[k] {
			row.CaloriesBurned += w.CaloriesBurned.Int()
		}
		out = append(out, row)
	}
	return out, nil
}

// recentDates returns up to n keys in ascending order, taking the lexically
// greatest. YYYY-MM-DD keys sort chronologically.
func recentDates[T any](all map[string][]T, n int, skipEmpty bool) []string {
	keys := make([]string, 0, len(all))
	for k, v := range all {
		if skipEmpty && len(v) == 0 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}
	return keys
}
