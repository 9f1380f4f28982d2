package service_test

import (
	"testing"

	"github.com/saadjs/fitmentor/internal/service"
)

func TestDoctorOnHealthyStore(t *testing.T) {
	t.Parallel()
	tr, _, _ := newTestTracker(t)
	seedEverything(t, tr)

	report, err := tr.RunDoctor(false)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !report.Healthy() {
		t.Fatalf("expected healthy report, got %+v", report)
	}
}

func TestDoctorFindsProblemsAndResortsProgress(t *testing.T) {
	t.Parallel()
	tr, store, _ := newTestTracker(t)
	mustSet(t, store, service.KeyProfile, "nope")
	mustSet(t, store, service.KeyMeals, `{"2026-03-05": [{"id": "1"}], "yesterday": [{"id": "1"}]}`)
	mustSet(t, store, service.KeyProgress, `[
		{"id": "p1", "date": "2026-01-01", "weight": 82},
		{"id": "p2", "date": "2026-02-01", "weight": 81},
		{"id": "p3", "date": "?", "weight": 80}
	]`)

	report, err := tr.RunDoctor(false)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(report.CorruptKeys) != 1 || report.CorruptKeys[0] != service.KeyProfile {
		t.Fatalf("expected corrupt profile, got %v", report.CorruptKeys)
	}
	if report.InvalidDateKeys != 1 || report.DuplicateIDs != 1 || report.UndatedProgress != 1 || !report.UnsortedProgress {
		t.Fatalf("unexpected report %+v", report)
	}

	report, err = tr.RunDoctor(true)
	if err != nil {
		t.Fatalf("doctor fix: %v", err)
	}
	if !report.FixedProgress {
		t.Fatalf("expected progress to be fixed")
	}
	list, err := tr.AllProgress()
	if err != nil {
		t.Fatalf("all progress: %v", err)
	}
	if list[0].ID != "p2" || list[1].ID != "p1" || list[2].ID != "p3" {
		t.Fatalf("unexpected order after fix %+v", list)
	}
}
