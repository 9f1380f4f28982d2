// Package service owns every persisted collection: the profile, the dated
// meal and workout maps, the progress list and the lifecycle keys.
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/kv"
)

const (
	keyPrefix     = "fitness_mentor_"
	KeyProfile    = keyPrefix + "profile"
	KeyMeals      = keyPrefix + "meals"
	KeyWorkouts   = keyPrefix + "workouts"
	KeyProgress   = keyPrefix + "progress"
	KeyVersion    = keyPrefix + "version"
	KeyLastExport = keyPrefix + "last_export"

	SchemaVersion = "1.0.0"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNoProfile     = errors.New("no profile: run onboarding first")
	ErrProfileExists = errors.New("profile already exists")
	ErrCorruptData   = errors.New("stored data is corrupt")
)

type Tracker struct {
	store  kv.Store
	now    func() time.Time
	log    logrus.FieldLogger
	lastID int64
}

type Option func(*Tracker)

// WithClock replaces time.Now. The returned time's location decides which
// calendar day new entries are filed under.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Tracker) {
		t.log = log
	}
}

func NewTracker(store kv.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		now:   time.Now,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Close() error {
	return t.store.Close()
}

// Initialize stamps the schema version the first time it runs.
func (t *Tracker) Initialize() error {
	_, ok, err := t.store.Get(KeyVersion)
	if err != nil {
		t.log.WithError(err).Error("read schema version")
		return fmt.Errorf("read version: %w", err)
	}
	if ok {
		return nil
	}
	if err := t.store.Set(KeyVersion, SchemaVersion); err != nil {
		t.log.WithError(err).Error("stamp schema version")
		return fmt.Errorf("stamp version: %w", err)
	}
	t.log.WithField("version", SchemaVersion).Info("storage initialized")
	return nil
}

// Version returns the stamped schema version, or "" before Initialize.
func (t *Tracker) Version() (string, error) {
	v, _, err := t.store.Get(KeyVersion)
	if err != nil {
		return "", fmt.Errorf("read version: %w", err)
	}
	return v, nil
}

func (t *Tracker) today() string {
	return fitness.DateString(t.now())
}

func (t *Tracker) dateOrToday(date string) string {
	if date == "" {
		return t.today()
	}
	return date
}

// stamp returns a fresh entry id and the creation time. Ids are millisecond
// tokens bumped past the previous one so two writes in the same millisecond
// never collide.
func (t *Tracker) stamp() (string, time.Time) {
	now := t.now()
	id := now.UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return strconv.FormatInt(id, 10), now
}

// read decodes the document under key into dst. ok is false when the key is
// absent; undecodable documents yield ErrCorruptData.
func (t *Tracker) read(key string, dst any) (bool, error) {
	raw, ok, err := t.store.Get(key)
	if err != nil {
		t.log.WithError(err).WithField("key", key).Error("read from store")
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		t.log.WithError(err).WithField("key", key).Error("decode stored document")
		return false, fmt.Errorf("%w: %s: %v", ErrCorruptData, key, err)
	}
	return true, nil
}

func (t *Tracker) write(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		t.log.WithError(err).WithField("key", key).Error("encode document")
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := t.store.Set(key, string(raw)); err != nil {
		t.log.WithError(err).WithField("key", key).Error("write to store")
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func loadDated[T any](t *Tracker, key string) (map[string][]T, error) {
	all := map[string][]T{}
	if _, err := t.read(key, &all); err != nil {
		return nil, err
	}
	if all == nil {
		all = map[string][]T{}
	}
	return all, nil
}
