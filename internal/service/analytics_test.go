package service_test

import (
	"testing"
)

const seededMeals = `{
	"2026-03-01": [{"id": "1", "calories": 500}, {"id": "2", "calories": "700"}],
	"2026-03-02": [],
	"2026-03-03": [{"id": "3", "calories": 1000}],
	"2026-03-04": [{"id": "4", "calories": "abc"}, {"id": "5", "calories": 800}]
}`

const seededWorkouts = `{
	"2026-03-01": [{"id": "6", "duration": 20, "caloriesBurned": 100}],
	"2026-03-02": [],
	"2026-03-03": [{"id": "7", "duration": 30, "caloriesBurned": 150}],
	"2026-03-04": [{"id": "8", "duration": "45", "caloriesBurned": 200}]
}`

func TestAveragesSkipEmptyDays(t *testing.T) {
	t.Parallel()
	tr, store, _ := newTestTracker(t)
	mustSet(t, store, "fitness_mentor_meals", seededMeals)
	mustSet(t, store, "fitness_mentor_workouts", seededWorkouts)

	cases := []struct {
		name string
		run  func() (int, error)
		want int
	}{
		{"calories over 2 days", func() (int, error) { return tr.AverageCalories(2) }, 900},
		{"calories over 10 days", func() (int, error) { return tr.AverageCalories(10) }, 1000},
		{"minutes over 2 days", func() (int, error) { return tr.AverageWorkoutMinutes(2) }, 38},
		{"minutes over 7 days", func() (int, error) { return tr.AverageWorkoutMinutes(7) }, 32},
	}
	for _, tc := range cases {
		got, err := tc.run()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestWorkoutFrequencyCountsEmptiedDaysInWindow(t *testing.T) {
	t.Parallel()
	tr, store, _ := newTestTracker(t)
	mustSet(t, store, "fitness_mentor_workouts", seededWorkouts)

	for days, want := range map[int]int{1: 1, 3: 2, 7: 3} {
		got, err := tr.WorkoutFrequency(days)
		if err != nil {
			t.Fatalf("frequency(%d): %v", days, err)
		}
		if got != want {
			t.Fatalf("frequency(%d): expected %d, got %d", days, want, got)
		}
	}
}

func TestAnalyticsOnEmptyStore(t *testing.T) {
	t.Parallel()
	tr, _, _ := newTestTracker(t)

	avg, err := tr.AverageCalories(7)
	if err != nil || avg != 0 {
		t.Fatalf("expected 0 average on empty store, got %d (%v)", avg, err)
	}
	freq, err := tr.WorkoutFrequency(7)
	if err != nil || freq != 0 {
		t.Fatalf("expected 0 frequency on empty store, got %d (%v)", freq, err)
	}
	if _, err := tr.AverageCalories(0); err == nil {
		t.Fatalf("expected error for non-positive window")
	}
	if _, err := tr.WorkoutFrequency(-1); err == nil {
		t.Fatalf("expected error for non-positive window")
	}
}

func TestHistoryMergesCollections(t *testing.T) {
	t.Parallel()
	tr, store, _ := newTestTracker(t)
	mustSet(t, store, "fitness_mentor_meals", seededMeals)
	mustSet(t, store, "fitness_mentor_workouts", `{"2026-03-05": [{"id": "9", "duration": 15, "caloriesBurned": 60}]}`)

	rows, err := tr.History(3)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Date != "2026-03-05" || rows[0].Meals != 0 || rows[0].WorkoutMinutes != 15 || rows[0].CaloriesBurned != 60 {
		t.Fatalf("unexpected newest row %+v", rows[0])
	}
	if rows[1].Date != "2026-03-04" || rows[1].Calories != 800 || rows[1].Meals != 2 {
		t.Fatalf("unexpected second row %+v", rows[1])
	}
	if rows[2].Date != "2026-03-03" {
		t.Fatalf("unexpected oldest row %+v", rows[2])
	}
}
