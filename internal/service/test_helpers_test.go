package service_test

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saadjs/fitmentor/internal/db"
	"github.com/saadjs/fitmentor/internal/kv"
	"github.com/saadjs/fitmentor/internal/service"
)

var testStart = time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestTracker(t *testing.T) (*service.Tracker, *kv.Memory, *fakeClock) {
	t.Helper()
	store := kv.NewMemory(0)
	clock := &fakeClock{now: testStart}
	tr := service.NewTracker(store, service.WithClock(clock.Now), service.WithLogger(quietLogger()))
	if err := tr.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return tr, store, clock
}

func newSQLiteTracker(t *testing.T) *service.Tracker {
	t.Helper()
	sqldb, err := db.Open(filepath.Join(t.TempDir(), "fitmentor.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	tr := service.NewTracker(kv.NewSQLite(sqldb, 0), service.WithLogger(quietLogger()))
	t.Cleanup(func() { _ = tr.Close() })
	if err := tr.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return tr
}

func defaultProfileInput() service.ProfileInput {
	return service.ProfileInput{
		Name:          "Asha",
		Age:           30,
		Gender:        "male",
		Height:        180,
		Weight:        80,
		ActivityLevel: "moderately",
		Goal:          "maintain",
	}
}

func mustCreateProfile(t *testing.T, tr *service.Tracker) {
	t.Helper()
	if _, err := tr.CreateProfile(defaultProfileInput()); err != nil {
		t.Fatalf("create profile: %v", err)
	}
}

func mustSet(t *testing.T, store kv.Store, key, value string) {
	t.Helper()
	if err := store.Set(key, value); err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
}

var errBoom = errors.New("boom")

// flakyStore fails Remove for the listed keys and every Set once failSets is true.
type flakyStore struct {
	*kv.Memory
	failRemove map[string]bool
	failSets   bool
}

func (f *flakyStore) Set(key, value string) error {
	if f.failSets {
		return errBoom
	}
	return f.Memory.Set(key, value)
}

func (f *flakyStore) Remove(key string) error {
	if f.failRemove[key] {
		return errBoom
	}
	return f.Memory.Remove(key)
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
