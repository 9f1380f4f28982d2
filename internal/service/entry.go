package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/model"
)

// Collection names one of the date-partitioned entry maps.
type Collection string

const (
	Meals    Collection = "meals"
	Workouts Collection = "workouts"
)

func ParseCollection(value string) (Collection, error) {
	switch Collection(normalizeName(value)) {
	case Meals, "meal":
		return Meals, nil
	case Workouts, "workout":
		return Workouts, nil
	default:
		return "", fmt.Errorf("unknown collection %q (expected meals or workouts)", value)
	}
}

// AddMeal assigns an id and timestamp and files the meal under today's date.
func (t *Tracker) AddMeal(m model.Meal) (model.Meal, error) {
	all, err := loadDated[model.Meal](t, KeyMeals)
	if err != nil {
		return model.Meal{}, err
	}
	id, now := t.stamp()
	m.ID = id
	m.Timestamp = now.UTC()
	day := fitness.DateString(now)
	all[day] = append(all[day], m)
	if err := t.write(KeyMeals, all); err != nil {
		return model.Meal{}, err
	}
	return m, nil
}

func (t *Tracker) AddWorkout(w model.Workout) (model.Workout, error) {
	all, err := loadDated[model.Workout](t, KeyWorkouts)
	if err != nil {
		return model.Workout{}, err
	}
	id, now := t.stamp()
	w.ID = id
	w.Timestamp = now.UTC()
	day := fitness.DateString(now)
	all[day] = append(all[day], w)
	if err := t.write(KeyWorkouts, all); err != nil {
		return model.Workout{}, err
	}
	return w, nil
}

// MealsByDate returns the meals filed under date in insertion order. An empty
// date means today; a date with nothing logged yields an empty slice.
func (t *Tracker) MealsByDate(date string) ([]model.Meal, error) {
	return entriesOn[model.Meal](t, KeyMeals, t.dateOrToday(date))
}

func (t *Tracker) WorkoutsByDate(date string) ([]model.Workout, error) {
	return entriesOn[model.Workout](t, KeyWorkouts, t.dateOrToday(date))
}

func (t *Tracker) EntriesByDate(c Collection, date string) ([]model.Entry, error) {
	switch c {
	case Meals:
		meals, err := t.MealsByDate(date)
		return asEntries(meals), err
	case Workouts:
		workouts, err := t.WorkoutsByDate(date)
		return asEntries(workouts), err
	default:
		return nil, fmt.Errorf("unknown collection %q", c)
	}
}

// DeleteEntry removes one entry from the list filed under date (today when
// empty). Other dates are untouched and an emptied date key is kept.
func (t *Tracker) DeleteEntry(c Collection, id, date string) error {
	date = t.dateOrToday(date)
	switch c {
	case Meals:
		return deleteDated[model.Meal](t, KeyMeals, id, date)
	case Workouts:
		return deleteDated[model.Workout](t, KeyWorkouts, id, date)
	default:
		return fmt.Errorf("unknown collection %q", c)
	}
}

func (t *Tracker) TotalCalories(date string) (float64, error) {
	meals, err := t.MealsByDate(date)
	if err != nil {
		return 0, err
	}
	return sumMealCalories(meals), nil
}

func (t *Tracker) TotalWorkoutMinutes(date string) (int, error) {
	workouts, err := t.WorkoutsByDate(date)
	if err != nil {
		return 0, err
	}
	return sumWorkoutMinutes(workouts), nil
}

func (t *Tracker) TotalCaloriesBurned(date string) (int, error) {
	workouts, err := t.WorkoutsByDate(date)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, w := range workouts {
		total += w.CaloriesBurned.Int()
	}
	return total, nil
}

func sumMealCalories(meals []model.Meal) float64 {
	var total float64
	for _, m := range meals {
		total += m.Calories.Float()
	}
	return total
}

func sumWorkoutMinutes(workouts []model.Workout) int {
	total := 0
	for _, w := range workouts {
		total += w.Duration.Int()
	}
	return total
}

func entriesOn[T any](t *Tracker, key, date string) ([]T, error) {
	all, err := loadDated[T](t, key)
	if err != nil {
		return nil, err
	}
	list := all[date]
	if list == nil {
		list = []T{}
	}
	return list, nil
}

func deleteDated[T model.Entry](t *Tracker, key, id, date string) error {
	all, err := loadDated[T](t, key)
	if err != nil {
		return err
	}
	list, ok := all[date]
	if !ok {
		return fmt.Errorf("%w: nothing logged on %s", ErrNotFound, date)
	}
	kept := make([]T, 0, len(list))
	for _, e := range list {
		if e.EntryID() != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(list) {
		return fmt.Errorf("%w: entry %s on %s", ErrNotFound, id, date)
	}
	all[date] = kept
	return t.write(key, all)
}

func asEntries[T model.Entry](list []T) []model.Entry {
	out := make([]model.Entry, 0, len(list))
	for _, e := range list {
		out = append(out, e)
	}
	return out
}

type MealInput struct {
	Type     model.MealType
	Food     string
	Calories float64
	Protein  *float64
	Carbs    *float64
	Fats     *float64
}

// LogMeal validates the input and records it for today.
func (t *Tracker) LogMeal(in MealInput) (model.Meal, error) {
	if _, err := t.requireProfile(); err != nil {
		return model.Meal{}, err
	}
	mealType, err := ParseMealType(string(in.Type))
	if err != nil {
		return model.Meal{}, err
	}
	food := strings.TrimSpace(in.Food)
	if food == "" {
		return model.Meal{}, fmt.Errorf("food is required")
	}
	if err := validateRange("calories", in.Calories, fitness.Validation.Calories, " kcal"); err != nil {
		return model.Meal{}, err
	}
	macros := []struct {
		name  string
		value *float64
	}{{"protein", in.Protein}, {"carbs", in.Carbs}, {"fats", in.Fats}}
	for _, m := range macros {
		if m.value == nil {
			continue
		}
		if err := validateRange(m.name, *m.value, fitness.Validation.Macros, " g"); err != nil {
			return model.Meal{}, err
		}
	}
	return t.AddMeal(model.Meal{
		Type:     mealType,
		Food:     food,
		Calories: model.Amount(in.Calories),
		Protein:  model.AmountPtr(in.Protein),
		Carbs:    model.AmountPtr(in.Carbs),
		Fats:     model.AmountPtr(in.Fats),
	})
}

func ParseMealType(value string) (model.MealType, error) {
	for _, mt := range model.MealTypes {
		if strings.EqualFold(strings.TrimSpace(value), string(mt)) {
			return mt, nil
		}
	}
	return "", fmt.Errorf("meal type must be one of Breakfast, Lunch, Snack, Dinner")
}

type WorkoutInput struct {
	Type      model.WorkoutType
	Duration  int
	Intensity model.Intensity
	Sets      *int
	Reps      *int
}

// LogWorkout derives calories burned from the profile weight, so a profile
// must exist.
func (t *Tracker) LogWorkout(in WorkoutInput) (model.Workout, error) {
	p, err := t.requireProfile()
	if err != nil {
		return model.Workout{}, err
	}
	kind := model.WorkoutType(normalizeName(string(in.Type)))
	if _, ok := fitness.WorkoutTypes[kind]; !ok {
		return model.Workout{}, fmt.Errorf("unknown workout type %q", in.Type)
	}
	if err := validateRange("duration", float64(in.Duration), fitness.Validation.Duration, " min"); err != nil {
		return model.Workout{}, err
	}
	intensity := model.Intensity(normalizeName(string(in.Intensity)))
	if intensity == "" {
		intensity = model.IntensityMedium
	}
	switch intensity {
	case model.IntensityLow, model.IntensityMedium, model.IntensityHigh:
	default:
		return model.Workout{}, fmt.Errorf("intensity must be one of low, medium, high")
	}

	w := model.Workout{
		Type:           kind,
		Duration:       model.Amount(in.Duration),
		Intensity:      intensity,
		CaloriesBurned: model.Amount(fitness.CaloriesBurned(kind, float64(in.Duration), intensity, p.Weight)),
	}
	if in.Sets != nil || in.Reps != nil {
		if !kind.Strength() {
			return model.Workout{}, fmt.Errorf("sets and reps only apply to strength workouts")
		}
		if in.Sets != nil {
			if err := validatePositiveInt("sets", *in.Sets); err != nil {
				return model.Workout{}, err
			}
			v := model.Amount(*in.Sets)
			w.Sets = &v
		}
		if in.Reps != nil {
			if err := validatePositiveInt("reps", *in.Reps); err != nil {
				return model.Workout{}, err
			}
			v := model.Amount(*in.Reps)
			w.Reps = &v
		}
	}
	return t.AddWorkout(w)
}
