package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLightly    ActivityLevel = "lightly"
	ActivityModerately ActivityLevel = "moderately"
	ActivityVery       ActivityLevel = "very"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalBuild    Goal = "build"
	GoalStamina  Goal = "stamina"
)

type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealSnack     MealType = "Snack"
	MealDinner    MealType = "Dinner"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealSnack, MealDinner}

type WorkoutType string

const (
	WorkoutWalking  WorkoutType = "walking"
	WorkoutRunning  WorkoutType = "running"
	WorkoutYoga     WorkoutType = "yoga"
	WorkoutStrength WorkoutType = "strength"
	WorkoutHIIT     WorkoutType = "hiit"
	WorkoutCycling  WorkoutType = "cycling"
	WorkoutCustom   WorkoutType = "custom"
)

var WorkoutTypes = []WorkoutType{
	WorkoutWalking, WorkoutRunning, WorkoutYoga, WorkoutStrength, WorkoutHIIT, WorkoutCycling, WorkoutCustom,
}

// Strength reports whether sets and reps apply to the workout type.
func (w WorkoutType) Strength() bool {
	return w == WorkoutStrength
}

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Profile is the single onboarding record. DailyCalories caches the derived
// calorie target and is recomputed whenever the profile is edited.
type Profile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Height        float64       `json:"height"`
	Weight        float64       `json:"weight"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
	BMI           float64       `json:"bmi"`
	BMICategory   string        `json:"bmiCategory"`
	DailyCalories int           `json:"dailyCalories"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     *time.Time    `json:"updatedAt,omitempty"`
}

// Entry is anything stored in a dated collection.
type Entry interface {
	EntryID() string
}

type Meal struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      MealType  `json:"type"`
	Food      string    `json:"food"`
	Calories  Amount    `json:"calories"`
	Protein   *Amount   `json:"protein,omitempty"`
	Carbs     *Amount   `json:"carbs,omitempty"`
	Fats      *Amount   `json:"fats,omitempty"`
}

func (m Meal) EntryID() string { return m.ID }

type Workout struct {
	ID             string      `json:"id"`
	Timestamp      time.Time   `json:"timestamp"`
	Type           WorkoutType `json:"type"`
	Duration       Amount      `json:"duration"`
	Intensity      Intensity   `json:"intensity"`
	CaloriesBurned Amount      `json:"caloriesBurned"`
	Sets           *Amount     `json:"sets,omitempty"`
	Reps           *Amount     `json:"reps,omitempty"`
}

func (w Workout) EntryID() string { return w.ID }

// ProgressEntry carries a user-chosen calendar date instead of being bucketed
// by creation day.
type ProgressEntry struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight Amount  `json:"weight"`
	Waist  *Amount `json:"waist,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}

func (p ProgressEntry) EntryID() string { return p.ID }
