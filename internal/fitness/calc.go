package fitness

import (
	"math"

	"github.com/saadjs/fitmentor/internal/model"
)

// fallbackDailyCalories is used when age, height or weight are missing.
const fallbackDailyCalories = 2000

type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Color    string  `json:"color"`
}

// BMI computes weight(kg) / height(m)^2 rounded to one decimal and buckets it.
// Non-positive inputs yield the unknown category with value 0.
func BMI(weightKg, heightCm float64) BMIResult {
	unknown := BMIResult{Category: BMIUnknown, Label: "Unknown", Color: "#6b7280"}
	if weightKg <= 0 || heightCm <= 0 || math.IsNaN(weightKg) || math.IsNaN(heightCm) {
		return unknown
	}
	meters := heightCm / 100
	value := roundTo(weightKg/(meters*meters), 1)

	for _, band := range BMIBands {
		if value >= band.Min && value < band.Max {
			return BMIResult{Value: value, Category: band.Category, Label: band.Label, Color: band.Color}
		}
	}
	unknown.Value = value
	return unknown
}

// DailyCalories is the Mifflin-St Jeor BMR scaled by the activity multiplier
// plus the goal offset. Unknown activity levels scale by 1.2 and unknown goals
// add nothing.
func DailyCalories(p model.Profile) int {
	if p.Age <= 0 || p.Height <= 0 || p.Weight <= 0 {
		return fallbackDailyCalories
	}

	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier := 1.2
	if info, ok := ActivityLevels[p.ActivityLevel]; ok {
		multiplier = info.Multiplier
	}
	tdee := bmr * multiplier
	if info, ok := Goals[p.Goal]; ok {
		tdee += info.CalorieAdjustment
	}
	return int(math.Round(tdee))
}

// CaloriesBurned estimates duration * burn rate * body weight. Missing inputs
// or an unknown workout type give 0.
func CaloriesBurned(kind model.WorkoutType, durationMin float64, intensity model.Intensity, weightKg float64) int {
	if kind == "" || durationMin <= 0 || intensity == "" || weightKg <= 0 {
		return 0
	}
	info, ok := WorkoutTypes[kind]
	if !ok {
		return 0
	}
	rate, ok := info.BurnRate[intensity]
	if !ok {
		rate = defaultBurnRate
	}
	return int(math.Round(durationMin * rate * weightKg))
}

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type macroSplit struct {
	protein, carbs, fats float64
}

var macroSplits = map[model.Goal]macroSplit{
	model.GoalLose:    {protein: 0.35, carbs: 0.40, fats: 0.25},
	model.GoalBuild:   {protein: 0.30, carbs: 0.45, fats: 0.25},
	model.GoalStamina: {protein: 0.25, carbs: 0.50, fats: 0.25},
}

var balancedSplit = macroSplit{protein: 0.30, carbs: 0.40, fats: 0.30}

// MacroTargets splits daily calories into grams; protein and carbs carry
// 4 kcal/g, fat 9 kcal/g.
func MacroTargets(calories float64, goal model.Goal) Macros {
	split, ok := macroSplits[goal]
	if !ok {
		split = balancedSplit
	}
	return Macros{
		Protein: int(math.Round(calories * split.protein / 4)),
		Carbs:   int(math.Round(calories * split.carbs / 4)),
		Fats:    int(math.Round(calories * split.fats / 9)),
	}
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func FitnessLevel(activity model.ActivityLevel, workoutsPerWeek float64) Level {
	switch {
	case activity == model.ActivitySedentary || workoutsPerWeek < 2:
		return LevelBeginner
	case activity == model.ActivityVery || workoutsPerWeek >= 5:
		return LevelAdvanced
	default:
		return LevelIntermediate
	}
}

// Progress is current/target as a whole percentage capped at 100.
func Progress(current, target float64) int {
	if target == 0 {
		return 0
	}
	return int(math.Min(math.Round(current/target*100), 100))
}

func Average(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return int(math.Round(sum / float64(len(values))))
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
