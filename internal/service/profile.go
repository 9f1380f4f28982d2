package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/model"
)

type ProfileInput struct {
	Name          string
	Age           int
	Gender        model.Gender
	Height        float64
	Weight        float64
	ActivityLevel model.ActivityLevel
	Goal          model.Goal
}

func (t *Tracker) SaveProfile(p model.Profile) error {
	return t.write(KeyProfile, p)
}

// LoadProfile returns nil, nil when no profile has been saved.
func (t *Tracker) LoadProfile() (*model.Profile, error) {
	var p *model.Profile
	ok, err := t.read(KeyProfile, &p)
	if err != nil || !ok {
		return nil, err
	}
	return p, nil
}

// HasProfile treats a corrupt profile as missing.
func (t *Tracker) HasProfile() bool {
	p, err := t.LoadProfile()
	return err == nil && p != nil
}

func (t *Tracker) requireProfile() (*model.Profile, error) {
	p, err := t.LoadProfile()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	return p, nil
}

// CreateProfile is the onboarding step. A corrupt stored profile may be
// replaced; a readable one may not.
func (t *Tracker) CreateProfile(in ProfileInput) (*model.Profile, error) {
	in, err := normalizeProfileInput(in)
	if err != nil {
		return nil, err
	}
	existing, err := t.LoadProfile()
	switch {
	case errors.Is(err, ErrCorruptData):
		t.log.WithError(err).Warn("replacing unreadable profile")
	case err != nil:
		return nil, err
	case existing != nil:
		return nil, ErrProfileExists
	}

	p := in.apply(model.Profile{})
	p.CreatedAt = t.now().UTC()
	if err := t.SaveProfile(p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile replaces every editable field and re-derives BMI and the
// daily calorie target. CreatedAt is preserved.
func (t *Tracker) UpdateProfile(in ProfileInput) (*model.Profile, error) {
	in, err := normalizeProfileInput(in)
	if err != nil {
		return nil, err
	}
	current, err := t.requireProfile()
	if err != nil {
		return nil, err
	}
	p := in.apply(*current)
	updated := t.now().UTC()
	p.UpdatedAt = &updated
	if err := t.SaveProfile(p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (in ProfileInput) apply(p model.Profile) model.Profile {
	p.Name = in.Name
	p.Age = in.Age
	p.Gender = in.Gender
	p.Height = in.Height
	p.Weight = in.Weight
	p.ActivityLevel = in.ActivityLevel
	p.Goal = in.Goal

	bmi := fitness.BMI(p.Weight, p.Height)
	p.BMI = bmi.Value
	p.BMICategory = bmi.Category
	p.DailyCalories = fitness.DailyCalories(p)
	return p
}

func normalizeProfileInput(in ProfileInput) (ProfileInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, fmt.Errorf("name is required")
	}
	if err := validateRange("age", float64(in.Age), fitness.Validation.Age, ""); err != nil {
		return in, err
	}
	if err := validateRange("height", in.Height, fitness.Validation.Height, " cm"); err != nil {
		return in, err
	}
	if err := validateRange("weight", in.Weight, fitness.Validation.Weight, " kg"); err != nil {
		return in, err
	}

	in.Gender = model.Gender(normalizeName(string(in.Gender)))
	if in.Gender != model.GenderMale && in.Gender != model.GenderFemale {
		return in, fmt.Errorf("gender must be male or female")
	}
	in.ActivityLevel = model.ActivityLevel(normalizeName(string(in.ActivityLevel)))
	if _, ok := fitness.ActivityLevels[in.ActivityLevel]; !ok {
		return in, fmt.Errorf("activity level must be one of sedentary, lightly, moderately, very")
	}
	in.Goal = model.Goal(normalizeName(string(in.Goal)))
	if _, ok := fitness.Goals[in.Goal]; !ok {
		return in, fmt.Errorf("goal must be one of lose, maintain, build, stamina")
	}
	return in, nil
}
