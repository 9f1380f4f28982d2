package service

import (
	"errors"
	"sort"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/model"
)

type DoctorReport struct {
	CorruptKeys      []string `json:"corrupt_keys,omitempty"`
	InvalidDateKeys  int      `json:"invalid_date_keys"`
	DuplicateIDs     int      `json:"duplicate_ids"`
	UndatedProgress  int      `json:"undated_progress"`
	UnsortedProgress bool     `json:"unsorted_progress"`
	FixedProgress    bool     `json:"fixed_progress,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return len(r.CorruptKeys) == 0 && r.InvalidDateKeys == 0 && r.DuplicateIDs == 0 &&
		r.UndatedProgress == 0 && !r.UnsortedProgress
}

// RunDoctor inspects every stored collection. With fix set, an out-of-order
// progress list is re-sorted; nothing else is rewritten.
func (t *Tracker) RunDoctor(fix bool) (DoctorReport, error) {
	report := DoctorReport{}
	seen := map[string]bool{}
	countID := func(id string) {
		if seen[id] {
			report.DuplicateIDs++
		}
		seen[id] = true
	}

	if _, err := t.LoadProfile(); err != nil {
		if !errors.Is(err, ErrCorruptData) {
			return report, err
		}
		report.CorruptKeys = append(report.CorruptKeys, KeyProfile)
	}

	meals, err := loadDated[model.Meal](t, KeyMeals)
	switch {
	case errors.Is(err, ErrCorruptData):
		report.CorruptKeys = append(report.CorruptKeys, KeyMeals)
	case err != nil:
		return report, err
	default:
		for day, list := range meals {
			report.InvalidDateKeys += invalidDateKey(day)
			for _, m := range list {
				countID(m.ID)
			}
		}
	}

	workouts, err := loadDated[model.Workout](t, KeyWorkouts)
	switch {
	case errors.Is(err, ErrCorruptData):
		report.CorruptKeys = append(report.CorruptKeys, KeyWorkouts)
	case err != nil:
		return report, err
	default:
		for day, list := range workouts {
			report.InvalidDateKeys += invalidDateKey(day)
			for _, w := range list {
				countID(w.ID)
			}
		}
	}

	progress, err := t.AllProgress()
	switch {
	case errors.Is(err, ErrCorruptData):
		report.CorruptKeys = append(report.CorruptKeys, KeyProgress)
	case err != nil:
		return report, err
	default:
		for _, e := range progress {
			countID(e.ID)
			if _, ok := progressDate(e.Date); !ok {
				report.UndatedProgress++
			}
		}
		sorted := append([]model.ProgressEntry(nil), progress...)
		sortProgress(sorted)
		for i := range sorted {
			if sorted[i].ID != progress[i].ID {
				report.UnsortedProgress = true
				break
			}
		}
		if report.UnsortedProgress && fix {
			if err := t.write(KeyProgress, sorted); err != nil {
				return report, err
			}
			report.FixedProgress = true
		}
	}

	sort.Strings(report.CorruptKeys)
	return report, nil
}

func invalidDateKey(day string) int {
	if _, err := fitness.ParseDate(day); err != nil {
		return 1
	}
	return 0
}
