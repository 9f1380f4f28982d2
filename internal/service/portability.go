package service

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"

	"github.com/saadjs/fitmentor/internal/model"
)

// BackupInterval is how long an export stays fresh before the reminder fires.
const BackupInterval = 7 * 24 * time.Hour

type ExportSnapshot struct {
	Version    string                     `json:"version"`
	Profile    *model.Profile             `json:"profile"`
	Meals      map[string][]model.Meal    `json:"meals"`
	Workouts   map[string][]model.Workout `json:"workouts"`
	Progress   []model.ProgressEntry      `json:"progress"`
	ExportDate time.Time                  `json:"exportDate"`
}

// ExportData gathers every collection. A corrupt collection fails the export
// instead of exporting it as empty.
func (t *Tracker) ExportData() (*ExportSnapshot, error) {
	profile, err := t.LoadProfile()
	if err != nil {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	meals, err := loadDated[model.Meal](t, KeyMeals)
	if err != nil {
		return nil, fmt.Errorf("export meals: %w", err)
	}
	workouts, err := loadDated[model.Workout](t, KeyWorkouts)
	if err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}
	progress, err := t.AllProgress()
	if err != nil {
		return nil, fmt.Errorf("export progress: %w", err)
	}
	return &ExportSnapshot{
		Version:    SchemaVersion,
		Profile:    profile,
		Meals:      meals,
		Workouts:   workouts,
		Progress:   progress,
		ExportDate: t.now().UTC(),
	}, nil
}

func WriteExportJSON(w io.Writer, snap *ExportSnapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// WriteExportXLSX renders the snapshot as a workbook with one sheet per
// collection. Dated collections are flattened oldest date first.
func WriteExportXLSX(w io.Writer, snap *ExportSnapshot) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if err := f.SetSheetName(f.GetSheetName(0), "Profile"); err != nil {
		return fmt.Errorf("rename profile sheet: %w", err)
	}
	sheets := []struct {
		name string
		rows [][]any
	}{
		{"Profile", profileRows(snap)},
		{"Meals", mealRows(snap.Meals)},
		{"Workouts", workoutRows(snap.Workouts)},
		{"Progress", progressRows(snap.Progress)},
	}
	for _, s := range sheets {
		if s.name != "Profile" {
			if _, err := f.NewSheet(s.name); err != nil {
				return fmt.Errorf("create %s sheet: %w", s.name, err)
			}
		}
		if err := setRows(f, s.name, s.rows); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

func profileRows(snap *ExportSnapshot) [][]any {
	rows := [][]any{
		{"Field", "Value"},
		{"Version", snap.Version},
		{"Exported At", snap.ExportDate.Format(time.RFC3339)},
	}
	p := snap.Profile
	if p == nil {
		return rows
	}
	rows = append(rows,
		[]any{"Name", p.Name},
		[]any{"Age", p.Age},
		[]any{"Gender", string(p.Gender)},
		[]any{"Height (cm)", p.Height},
		[]any{"Weight (kg)", p.Weight},
		[]any{"Activity Level", string(p.ActivityLevel)},
		[]any{"Goal", string(p.Goal)},
		[]any{"BMI", p.BMI},
		[]any{"BMI Category", p.BMICategory},
		[]any{"Daily Calories", p.DailyCalories},
		[]any{"Created At", p.CreatedAt.Format(time.RFC3339)},
	)
	if p.UpdatedAt != nil {
		rows = append(rows, []any{"Updated At", p.UpdatedAt.Format(time.RFC3339)})
	}
	return rows
}

func mealRows(all map[string][]model.Meal) [][]any {
	rows := [][]any{{"Date", "ID", "Timestamp", "Type", "Food", "Calories", "Protein", "Carbs", "Fats"}}
	for _, day := range sortedKeys(all) {
		for _, m := range all[day] {
			rows = append(rows, []any{
				day, m.ID, m.Timestamp.Format(time.RFC3339), string(m.Type), m.Food,
				m.Calories.Float(), optional(m.Protein), optional(m.Carbs), optional(m.Fats),
			})
		}
	}
	return rows
}

func workoutRows(all map[string][]model.Workout) [][]any {
	rows := [][]any{{"Date", "ID", "Timestamp", "Type", "Duration (min)", "Intensity", "Calories Burned", "Sets", "Reps"}}
	for _, day := range sortedKeys(all) {
		for _, w := range all[day] {
			rows = append(rows, []any{
				day, w.ID, w.Timestamp.Format(time.RFC3339), string(w.Type), w.Duration.Float(),
				string(w.Intensity), w.CaloriesBurned.Float(), optional(w.Sets), optional(w.Reps),
			})
		}
	}
	return rows
}

func progressRows(list []model.ProgressEntry) [][]any {
	rows := [][]any{{"Date", "ID", "Weight (kg)", "Waist (cm)", "Notes"}}
	for _, e := range list {
		rows = append(rows, []any{e.Date, e.ID, e.Weight.Float(), optional(e.Waist), e.Notes})
	}
	return rows
}

func optional(a *model.Amount) any {
	if a == nil {
		return ""
	}
	return a.Float()
}

func sortedKeys[T any](all map[string][]T) []string {
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarkExported records a successful export for the backup reminder.
func (t *Tracker) MarkExported(at time.Time) error {
	if err := t.store.Set(KeyLastExport, at.UTC().Format(time.RFC3339)); err != nil {
		t.log.WithError(err).Error("record export time")
		return fmt.Errorf("write %s: %w", KeyLastExport, err)
	}
	return nil
}

// BackupReminderDue reports whether a profile exists and no export has been
// recorded within BackupInterval of now.
func (t *Tracker) BackupReminderDue(now time.Time) (bool, error) {
	if !t.HasProfile() {
		return false, nil
	}
	raw, ok, err := t.store.Get(KeyLastExport)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", KeyLastExport, err)
	}
	if !ok {
		return true, nil
	}
	last, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t.log.WithField("value", raw).Warn("unreadable last export time")
		return true, nil
	}
	return now.Sub(last) > BackupInterval, nil
}

// ClearAllData removes every user collection but keeps the version stamp.
// Every key is attempted; failures are combined.
func (t *Tracker) ClearAllData() error {
	var err error
	for _, key := range []string{KeyProfile, KeyMeals, KeyWorkouts, KeyProgress, KeyLastExport} {
		if rmErr := t.store.Remove(key); rmErr != nil {
			err = multierr.Append(err, fmt.Errorf("remove %s: %w", key, rmErr))
		}
	}
	if err != nil {
		t.log.WithError(err).Error("clear all data")
		return err
	}
	t.log.Info("all user data cleared")
	return nil
}
