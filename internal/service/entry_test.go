package service_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/saadjs/fitmentor/internal/model"
	"github.com/saadjs/fitmentor/internal/service"
)

func TestAddMealAssignsUniqueIDsAndFilesUnderToday(t *testing.T) {
	t.Parallel()
	tr, _, _ := newTestTracker(t)

	// the clock does not move, so every id comes from the same millisecond
	ids := map[string]bool{}
	for i := 0; i < 5; i++ {
		m, err := tr.AddMeal(model.Meal{Type: model.MealBreakfast, Food: "Oats", Calories: 300})
		if err != nil {
			t.Fatalf("add meal %d: %v", i, err)
		}
		if ids[m.ID] {
			t.Fatalf("duplicate id %s", m.ID)
		}
		ids[m.ID] = true
		if !m.Timestamp.Equal(testStart) {
			t.Fatalf("unexpected timestamp %v", m.Timestamp)
		}
	}

	meals, err := tr.MealsByDate("2026-03-05")
	if err != nil {
		t.Fatalf("meals by date: %v", err)
	}
	if len(meals) != 5 {
		t.Fatalf("expected 5 meals on 2026-03-05, got %d", len(meals))
	}
	today, err := tr.MealsByDate("")
	if err != nil {
		t.Fatalf("meals for today: %v", err)
	}
	if len(today) != 5 {
		t.Fatalf("empty date should mean today, got %d meals", len(today))
	}

	other, err := tr.MealsByDate("2026-03-04")
	if err != nil {
		t.Fatalf("meals for other date: %v", err)
	}
	if other == nil || len(other) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", other)
	}
}

func TestEntriesFollowTheClockAcrossMidnight(t *testing.T) {
	t.Parallel()
	tr, _, clock := newTestTracker(t)
	mustCreateProfile(t, tr)

	if _, err := tr.LogWorkout(service.WorkoutInput{Type: "walking", Duration: 20, Intensity: "low"}); err != nil {
		t.Fatalf("log workout: %v", err)
	}
	clock.Advance(15 * time.Hour)
	if _, err := tr.LogWorkout(service.WorkoutInput{Type: "yoga", Duration: 30, Intensity: "low"}); err != nil {
		t.Fatalf("log workout: %v", err)
	}

	for date, want := range map[string]int{"2026-03-05": 20, "2026-03-06": 30} {
		got, err := tr.TotalWorkoutMinutes(date)
		if err != nil {
			t.Fatalf("minutes on %s: %v", date, err)
		}
		if got != want {
			t.Fatalf("expected %d minutes on %s, got %d", want, date, got)
		}
	}
}

func TestDeleteEntry(t *testing.T) {
	t.Parallel()
	tr, store, _ := newTestTracker(t)
	mustSet(t, store, service.KeyMeals, `{
		"2026-03-04": [{"id": "a", "type": "Lunch", "food": "Rice", "calories": 400}],
		"2026-03-05": [
			{"id": "b", "type": "Breakfast", "food": "Eggs", "calories": 200},
			{"id": "c", "type": "Dinner", "food": "Soup", "calories": 250}
		]
	}`)

	if err := tr.DeleteEntry(service.Meals, "b", ""); err != nil {
		t.Fatalf("delete meal: %v", err)
	}
	today, err := tr.MealsByDate("")
	if err != nil {
		t.Fatalf("meals by date: %v", err)
	}
	if len(today) != 1 || today[0].ID != "c" {
		t.Fatalf("expected only meal c left, got %+v", today)
	}

	if err := tr.DeleteEntry(service.Meals, "a", "2026-03-05"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for id on another date, got %v", err)
	}
	if err := tr.DeleteEntry(service.Meals, "a", "2026-01-01"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing date, got %v", err)
	}
	if err := tr.DeleteEntry(service.Workouts, "a", "2026-03-04"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong collection, got %v", err)
	}

	yesterday, err := tr.MealsByDate("2026-03-04")
	if err != nil {
		t.Fatalf("meals by date: %v", err)
	}
	if len(yesterday) != 1 {
		t.Fatalf("other dates must be untouched, got %d meals", len(yesterday))
	}

	if err := tr.DeleteEntry(service.Meals, "c", ""); err != nil {
		t.Fatalf("delete last meal: %v", err)
	}
	raw, _, _ := store.Get(service.KeyMeals)
	if !strings.Contains(raw, `"2026-03-05":[]`) {
		t.Fatalf("emptied date key should be kept, got %s", raw)
	}
}

func TestEntriesByDateGeneric(t *testing.T) {
	t.Parallel()
	tr, _, _ := newTestTracker(t)
	mustCreateProfile(t, tr)

	w, err := tr.LogWorkout(service.WorkoutInput{Type: "running", Duration: 30})
	if err != nil {
		t.Fatalf("log workout: %v", err)
	}
	entries, err := tr.EntriesByDate(service.Workouts, "")
	if err != nil {
		t.Fatalf("entries by date: %v", err)
	}
	if len(entries) != 1 || entries[0].EntryID() != w.ID {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if _, err := tr.EntriesByDate("sleep", ""); err == nil {
		t.Fatalf("expected unknown collection error")
	}

	c, err := service.ParseCollection("Meal")
	if err != nil || c != service.Meals {
		t.Fatalf("parse collection: %v %v", c, err)
	}
}

func TestTotalsTreatNonNumericAsZero(t *testing.T) {
	t.Parallel()
	tr, store, _ := newTestTracker(t)
	mustSet(t, store, service.KeyMeals, `{"2026-03-05": [
		{"id": "1", "calories": "350"},
		{"id": "2", "calories": "lots"},
		{"id": "3", "calories": true},
		{"id": "4"},
		{"id": "5", "calories": 120.5}
	]}`)
	mustSet(t, store, service.KeyWorkouts, `{"2026-03-05": [
		{"id": "6", "duration": "25", "caloriesBurned": "140"},
		{"id": "7", "duration": null, "caloriesBurned": {}}
	]}`)

	kcal, err := tr.TotalCalories("")
	if err != nil {
		t.Fatalf("total calories: %v", err)
	}
	if kcal != 470.5 {
		t.Fatalf("expected 470.5 kcal, got %v", kcal)
	}
	minutes, err := tr.TotalWorkoutMinutes("")
	if err != nil {
		t.Fatalf("total minutes: %v", err)
	}
	burned, err := tr.TotalCaloriesBurned("")
	if err != nil {
		t.Fatalf("total burned: %v", err)
	}
	if minutes != 25 || burned != 140 {
		t.Fatalf("expected 25 min / 140 kcal, got %d / %d", minutes, burned)
	}
}

func TestCorruptCollectionIsNotOverwritten(t *testing.T) {
	t.Parallel()
	tr, store, _ := newTestTracker(t)
	mustSet(t, store, service.KeyMeals, `["not", "a", "map"]`)

	if _, err := tr.AddMeal(model.Meal{Type: model.MealLunch, Food: "Rice", Calories: 400}); !errors.Is(err, service.ErrCorruptData) {
		t.Fatalf("expected ErrCorruptData, got %v", err)
	}
	raw, _, _ := store.Get(service.KeyMeals)
	if raw != `["not", "a", "map"]` {
		t.Fatalf("corrupt document was rewritten: %s", raw)
	}
}

func TestLogMealValidation(t *testing.T) {
	t.Parallel()
	tr, _, _ := newTestTracker(t)

	if _, err := tr.LogMeal(service.MealInput{Type: "Lunch", Food: "Rice", Calories: 400}); !errors.Is(err, service.ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
	mustCreateProfile(t, tr)

	bad := []service.MealInput{
		{Type: "brunch", Food: "Toast", Calories: 200},
		{Type: "Lunch", Food: " ", Calories: 200},
		{Type: "Lunch", Food: "Feast", Calories: 5001},
		{Type: "Lunch", Food: "Debt", Calories: -1},
		{Type: "Lunch", Food: "Shake", Calories: 300, Protein: floatPtr(501)},
	}
	for _, in := range bad {
		if _, err := tr.LogMeal(in); err == nil {
			t.Fatalf("expected validation error for %+v", in)
		}
	}
	total, err := tr.TotalCalories("")
	if err != nil {
		t.Fatalf("total calories: %v", err)
	}
	if total != 0 {
		t.Fatalf("invalid meals must not be stored, total=%v", total)
	}

	m, err := tr.LogMeal(service.MealInput{Type: "snack", Food: " Apple ", Calories: 95, Carbs: floatPtr(25)})
	if err != nil {
		t.Fatalf("log meal: %v", err)
	}
	if m.Type != model.MealSnack || m.Food != "Apple" || m.Carbs == nil || *m.Carbs != 25 || m.Protein != nil {
		t.Fatalf("unexpected meal %+v", m)
	}
}

func TestLogWorkoutDerivesCaloriesBurned(t *testing.T) {
	t.Parallel()
	tr, _, _ := newTestTracker(t)

	if _, err := tr.LogWorkout(service.WorkoutInput{Type: "running", Duration: 30}); !errors.Is(err, service.ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
	mustCreateProfile(t, tr)

	w, err := tr.LogWorkout(service.WorkoutInput{Type: "Running", Duration: 30, Intensity: "medium"})
	if err != nil {
		t.Fatalf("log workout: %v", err)
	}
	// 30 min * 0.1 kcal/min/kg * 80 kg
	if w.CaloriesBurned != 240 || w.Intensity != model.IntensityMedium {
		t.Fatalf("unexpected workout %+v", w)
	}

	s, err := tr.LogWorkout(service.WorkoutInput{Type: "strength", Duration: 45, Intensity: "high", Sets: intPtr(4), Reps: intPtr(8)})
	if err != nil {
		t.Fatalf("log strength workout: %v", err)
	}
	if s.Sets == nil || *s.Sets != 4 || s.Reps == nil || *s.Reps != 8 {
		t.Fatalf("expected sets and reps, got %+v", s)
	}

	bad := []service.WorkoutInput{
		{Type: "swimming", Duration: 30},
		{Type: "yoga", Duration: 0},
		{Type: "yoga", Duration: 301},
		{Type: "yoga", Duration: 30, Intensity: "extreme"},
		{Type: "yoga", Duration: 30, Sets: intPtr(3)},
		{Type: "strength", Duration: 30, Reps: intPtr(0)},
	}
	for _, in := range bad {
		if _, err := tr.LogWorkout(in); err == nil {
			t.Fatalf("expected validation error for %+v", in)
		}
	}
	workouts, err := tr.WorkoutsByDate("")
	if err != nil {
		t.Fatalf("workouts by date: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("expected 2 stored workouts, got %d", len(workouts))
	}
}
