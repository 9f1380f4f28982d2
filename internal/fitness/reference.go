package fitness

import (
	"math"

	"github.com/saadjs/fitmentor/internal/model"
)

type ActivityInfo struct {
	Label       string
	Multiplier  float64
	Description string
}

var ActivityLevels = map[model.ActivityLevel]ActivityInfo{
	model.ActivitySedentary:  {Label: "Sedentary", Multiplier: 1.2, Description: "Little or no exercise"},
	model.ActivityLightly:    {Label: "Lightly Active", Multiplier: 1.375, Description: "Light exercise 1-3 days/week"},
	model.ActivityModerately: {Label: "Moderately Active", Multiplier: 1.55, Description: "Moderate exercise 3-5 days/week"},
	model.ActivityVery:       {Label: "Very Active", Multiplier: 1.725, Description: "Hard exercise 6-7 days/week"},
}

type GoalInfo struct {
	Label             string
	CalorieAdjustment float64
}

var Goals = map[model.Goal]GoalInfo{
	model.GoalLose:     {Label: "Lose Weight", CalorieAdjustment: -500},
	model.GoalMaintain: {Label: "Maintain Weight", CalorieAdjustment: 0},
	model.GoalBuild:    {Label: "Build Muscle", CalorieAdjustment: 300},
	model.GoalStamina:  {Label: "Improve Stamina", CalorieAdjustment: 0},
}

const (
	BMIUnknown     = "unknown"
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
)

// BMIBand is the half-open range [Min, Max).
type BMIBand struct {
	Category string
	Min      float64
	Max      float64
	Label    string
	Color    string
}

// BMIBands are contiguous and checked in order.
var BMIBands = []BMIBand{
	{Category: BMIUnderweight, Min: 0, Max: 18.5, Label: "Underweight", Color: "#3b82f6"},
	{Category: BMINormal, Min: 18.5, Max: 25, Label: "Normal", Color: "#10b981"},
	{Category: BMIOverweight, Min: 25, Max: 30, Label: "Overweight", Color: "#f59e0b"},
	{Category: BMIObese, Min: 30, Max: math.Inf(1), Label: "Obese", Color: "#ef4444"},
}

// BurnRates are kcal per minute per kg of body weight.
type BurnRates map[model.Intensity]float64

type WorkoutInfo struct {
	Label    string
	BurnRate BurnRates
}

var WorkoutTypes = map[model.WorkoutType]WorkoutInfo{
	model.WorkoutWalking:  {Label: "Walking", BurnRate: BurnRates{model.IntensityLow: 0.03, model.IntensityMedium: 0.045, model.IntensityHigh: 0.06}},
	model.WorkoutRunning:  {Label: "Running", BurnRate: BurnRates{model.IntensityLow: 0.08, model.IntensityMedium: 0.1, model.IntensityHigh: 0.12}},
	model.WorkoutYoga:     {Label: "Yoga", BurnRate: BurnRates{model.IntensityLow: 0.025, model.IntensityMedium: 0.035, model.IntensityHigh: 0.045}},
	model.WorkoutStrength: {Label: "Strength Training", BurnRate: BurnRates{model.IntensityLow: 0.04, model.IntensityMedium: 0.06, model.IntensityHigh: 0.08}},
	model.WorkoutHIIT:     {Label: "HIIT", BurnRate: BurnRates{model.IntensityLow: 0.09, model.IntensityMedium: 0.12, model.IntensityHigh: 0.15}},
	model.WorkoutCycling:  {Label: "Cycling", BurnRate: BurnRates{model.IntensityLow: 0.05, model.IntensityMedium: 0.08, model.IntensityHigh: 0.11}},
	model.WorkoutCustom:   {Label: "Custom", BurnRate: BurnRates{model.IntensityLow: 0.04, model.IntensityMedium: 0.06, model.IntensityHigh: 0.08}},
}

// defaultBurnRate applies when an intensity has no entry for its workout type.
const defaultBurnRate = 0.05

type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var Validation = struct {
	Age      Range
	Height   Range
	Weight   Range
	Calories Range
	Duration Range
	Macros   Range
}{
	Age:      Range{Min: 10, Max: 120},
	Height:   Range{Min: 100, Max: 250},
	Weight:   Range{Min: 30, Max: 300},
	Calories: Range{Min: 0, Max: 5000},
	Duration: Range{Min: 1, Max: 300},
	Macros:   Range{Min: 0, Max: 500},
}

type FoodSuggestion struct {
	Title string
	Items []string
	Tip   string
}

var FoodSuggestions = map[model.Goal]FoodSuggestion{
	model.GoalLose: {
		Title: "Weight Loss Foods",
		Items: []string{
			"Vegetable salad with lemon dressing",
			"Grilled chicken breast or paneer",
			"Boiled eggs (2-3)",
			"Greek yogurt with berries",
			"Steamed broccoli and carrots",
			"Lentil soup (dal)",
			"Cucumber and tomato salad",
			"Grilled fish with vegetables",
		},
		Tip: "Focus on high-fiber, low-calorie foods that keep you full longer.",
	},
	model.GoalBuild: {
		Title: "Muscle Building Foods",
		Items: []string{
			"Grilled chicken or turkey breast",
			"Paneer (cottage cheese)",
			"Chickpeas and lentils",
			"Greek yogurt or hung curd",
			"Eggs (whole or whites)",
			"Quinoa or brown rice",
			"Almonds and mixed nuts",
			"Protein smoothie with banana",
		},
		Tip: "Aim for high-protein foods to support muscle growth and recovery.",
	},
	model.GoalMaintain: {
		Title: "Balanced Nutrition",
		Items: []string{
			"Whole grain roti with vegetables",
			"Brown rice with dal",
			"Mixed vegetable curry",
			"Grilled chicken or fish",
			"Fresh fruit salad",
			"Oatmeal with nuts",
			"Paneer tikka",
			"Vegetable khichdi",
		},
		Tip: "Maintain a balanced diet with adequate proteins, carbs, and healthy fats.",
	},
	model.GoalStamina: {
		Title: "Energy Boosting Foods",
		Items: []string{
			"Oatmeal with banana",
			"Sweet potato",
			"Whole grain bread with peanut butter",
			"Brown rice with vegetables",
			"Dates and dried fruits",
			"Quinoa salad",
			"Smoothie with berries",
			"Trail mix with nuts and seeds",
		},
		Tip: "Choose complex carbs and nutrient-dense foods for sustained energy.",
	},
}

var WorkoutSuggestions = map[model.Goal]map[Level][]string{
	model.GoalLose: {
		LevelBeginner:     {"20-30 min brisk walking", "15 min beginner yoga", "20 min light cycling"},
		LevelIntermediate: {"25-30 min jogging", "20 min bodyweight circuit (squats, push-ups, lunges)", "30 min moderate cycling"},
		LevelAdvanced:     {"30 min HIIT workout", "40 min running", "45 min strength + cardio combo"},
	},
	model.GoalBuild: {
		LevelBeginner:     {"3 sets of squats, push-ups, planks (10-12 reps)", "Resistance band exercises (20 min)", "Yoga with strength focus (25 min)"},
		LevelIntermediate: {"4 sets of compound exercises (squats, deadlifts, rows)", "Dumbbell workout (30-40 min)", "Upper/lower body split routine"},
		LevelAdvanced:     {"Progressive overload strength training (45-60 min)", "5x5 compound lifts", "Strength + HIIT combination"},
	},
	model.GoalMaintain: {
		LevelBeginner:     {"30 min daily walk", "20 min yoga or stretching", "25 min easy cycling"},
		LevelIntermediate: {"30 min jogging 3x/week", "Full body workout 2x/week", "40 min cycling"},
		LevelAdvanced:     {"Mix of cardio and strength (40-50 min)", "Balanced workout routine 4-5x/week", "Varied intensity training"},
	},
	model.GoalStamina: {
		LevelBeginner:     {"25 min brisk walking with intervals", "20-30 min steady cycling", "15-20 min swimming (if available)"},
		LevelIntermediate: {"30-40 min steady-state running", "45 min cycling with intervals", "25 min cardio circuit"},
		LevelAdvanced:     {"50-60 min long-distance running", "60+ min endurance cycling", "40 min high-intensity cardio"},
	},
}
