package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/model"
)

// AddProgressEntry assigns an id, appends and re-sorts the list newest date
// first. Entries whose date cannot be parsed sink to the end.
func (t *Tracker) AddProgressEntry(e model.ProgressEntry) (model.ProgressEntry, error) {
	list, err := t.AllProgress()
	if err != nil {
		return model.ProgressEntry{}, err
	}
	e.ID, _ = t.stamp()
	list = append(list, e)
	sortProgress(list)
	if err := t.write(KeyProgress, list); err != nil {
		return model.ProgressEntry{}, err
	}
	return e, nil
}

func (t *Tracker) DeleteProgressEntry(id string) error {
	list, err := t.AllProgress()
	if err != nil {
		return err
	}
	kept := make([]model.ProgressEntry, 0, len(list))
	for _, e := range list {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(list) {
		return fmt.Errorf("%w: progress entry %s", ErrNotFound, id)
	}
	return t.write(KeyProgress, kept)
}

// AllProgress returns the stored list, newest first.
func (t *Tracker) AllProgress() ([]model.ProgressEntry, error) {
	list := []model.ProgressEntry{}
	if _, err := t.read(KeyProgress, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.ProgressEntry{}
	}
	return list, nil
}

func (t *Tracker) LatestWeight() (float64, bool, error) {
	list, err := t.AllProgress()
	if err != nil || len(list) == 0 {
		return 0, false, err
	}
	return list[0].Weight.Float(), true, nil
}

func (t *Tracker) StartingWeight() (float64, bool, error) {
	list, err := t.AllProgress()
	if err != nil || len(list) == 0 {
		return 0, false, err
	}
	return list[len(list)-1].Weight.Float(), true, nil
}

type ProgressInput struct {
	// Date defaults to today.
	Date   string
	Weight float64
	Waist  *float64
	Notes  string
}

func (t *Tracker) LogProgress(in ProgressInput) (model.ProgressEntry, error) {
	if _, err := t.requireProfile(); err != nil {
		return model.ProgressEntry{}, err
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = t.today()
	}
	if _, err := fitness.ParseDate(date); err != nil {
		return model.ProgressEntry{}, err
	}
	if err := validateRange("weight", in.Weight, fitness.Validation.Weight, " kg"); err != nil {
		return model.ProgressEntry{}, err
	}
	if in.Waist != nil && *in.Waist <= 0 {
		return model.ProgressEntry{}, fmt.Errorf("waist must be > 0")
	}
	return t.AddProgressEntry(model.ProgressEntry{
		Date:   date,
		Weight: model.Amount(in.Weight),
		Waist:  model.AmountPtr(in.Waist),
		Notes:  strings.TrimSpace(in.Notes),
	})
}

func sortProgress(list []model.ProgressEntry) {
	sort.SliceStable(list, func(i, j int) bool {
		a, aok := progressDate(list[i].Date)
		b, bok := progressDate(list[j].Date)
		if aok != bok {
			return aok
		}
		return a.After(b)
	})
}

func progressDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if d, err := time.Parse(fitness.DateLayout, value); err == nil {
		return d, true
	}
	if d, err := time.Parse(time.RFC3339, value); err == nil {
		return d, true
	}
	return time.Time{}, false
}
