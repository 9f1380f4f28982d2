package fitness

import (
	"sort"
	"strings"
)

type Exercise struct {
	Name string
	Sets int
	// Reps is free text: a count, a range, or a duration.
	Reps string
}

type ExerciseCategory struct {
	Key       string
	Label     string
	Exercises []Exercise
}

var exerciseCategories = []ExerciseCategory{
	{
		Key:   "strength_training",
		Label: "Strength Training",
		Exercises: []Exercise{
			{"Bench Press", 4, "8"},
			{"Dumbbell Shoulder Press", 3, "10"},
			{"Barbell Squats", 4, "8"},
			{"Deadlift", 3, "5"},
			{"Lat Pulldown", 3, "10"},
			{"Seated Row", 3, "10"},
			{"Bicep Curls", 3, "12"},
			{"Tricep Pushdown", 3, "12"},
		},
	},
	{
		Key:   "cardio",
		Label: "Cardio",
		Exercises: []Exercise{
			{"Treadmill Walking", 1, "20-30 min"},
			{"Treadmill Running", 1, "20-30 min"},
			{"Cycling", 1, "30-45 min"},
			{"Rowing Machine", 1, "20-30 min"},
			{"Elliptical", 1, "20-30 min"},
			{"Stair Climber", 1, "15-20 min"},
			{"Jump Rope", 3, "30-60 sec"},
		},
	},
	{
		Key:   "hiit",
		Label: "HIIT",
		Exercises: []Exercise{
			{"Sprint Intervals", 8, "30 sec on/30 sec off"},
			{"Burpees", 4, "15"},
			{"Battle Ropes", 3, "30 sec"},
			{"Kettlebell Swings", 3, "20"},
			{"Jump Squats", 3, "15"},
			{"Mountain Climbers", 3, "20"},
			{"Tabata Circuits", 8, "20 sec on/10 sec off"},
		},
	},
	{
		Key:   "functional_training",
		Label: "Functional Training",
		Exercises: []Exercise{
			{"TRX Rows", 3, "12"},
			{"Kettlebell Deadlifts", 3, "10"},
			{"Medicine Ball Slams", 3, "12"},
			{"Sled Push", 3, "30-50 meters"},
			{"Farmer's Carry", 3, "30-50 meters"},
			{"Box Step-ups", 3, "12"},
			{"Sandbag Squats", 3, "10"},
		},
	},
	{
		Key:   "core_training",
		Label: "Core Training",
		Exercises: []Exercise{
			{"Plank", 3, "30-60 sec"},
			{"Russian Twist", 3, "20"},
			{"Leg Raises", 3, "12"},
			{"Bicycle Crunches", 3, "20"},
			{"Cable Woodchoppers", 3, "15"},
			{"Ab Wheel Rollouts", 3, "10"},
			{"Side Plank", 3, "30-45 sec"},
		},
	},
	{
		Key:   "flexibility_mobility",
		Label: "Flexibility & Mobility",
		Exercises: []Exercise{
			{"Full Body Stretch", 1, "10-15 min"},
			{"Hamstring Stretch", 3, "30 sec each leg"},
			{"Hip Mobility Routine", 1, "10-15 min"},
			{"Shoulder Mobility Drills", 3, "10 per arm"},
			{"Yoga Flow", 1, "20-30 min"},
			{"Pilates Core Stretch", 1, "15-20 min"},
			{"Foam Rolling", 1, "10-15 min"},
		},
	},
	{
		Key:   "power_training",
		Label: "Power Training",
		Exercises: []Exercise{
			{"Box Jumps", 5, "5"},
			{"Plyometric Push-ups", 3, "8"},
			{"Medicine Ball Throws", 3, "10"},
			{"Olympic Clean", 5, "3"},
			{"Explosive Lunges", 3, "10"},
			{"Speed Ladder Drills", 3, "2x the length"},
		},
	},
	{
		Key:   "bodyweight_training",
		Label: "Bodyweight Training",
		Exercises: []Exercise{
			{"Push-ups", 3, "15"},
			{"Squats", 3, "20"},
			{"Lunges", 3, "12"},
			{"Pull-ups", 3, "8"},
			{"Dips", 3, "10"},
			{"Burpees", 3, "10"},
			{"Mountain Climbers", 3, "20"},
		},
	},
	{
		Key:   "machine_workouts",
		Label: "Machine Workouts",
		Exercises: []Exercise{
			{"Leg Press", 3, "12"},
			{"Chest Press Machine", 3, "12"},
			{"Lat Pulldown Machine", 3, "12"},
			{"Leg Extension", 3, "12"},
			{"Leg Curl", 3, "12"},
			{"Smith Machine Squats", 3, "10"},
			{"Pec Deck Fly", 3, "12"},
		},
	},
	{
		Key:   "split_routines",
		Label: "Split Routines",
		Exercises: []Exercise{
			{"Push Day (Chest/Shoulders/Triceps)", 4, "8-12"},
			{"Pull Day (Back/Biceps)", 4, "8-12"},
			{"Legs Day", 4, "8-12"},
			{"Upper Body Day", 4, "8-12"},
			{"Lower Body Day", 4, "8-12"},
			{"Full Body Strength Day", 3, "8-10"},
			{"Glutes & Core Day", 3, "10-15"},
		},
	},
}

// ExerciseCategories returns the catalogue in display order.
func ExerciseCategories() []ExerciseCategory {
	out := make([]ExerciseCategory, len(exerciseCategories))
	copy(out, exerciseCategories)
	return out
}

// ExercisesByCategory returns nil for an unknown key.
func ExercisesByCategory(key string) []Exercise {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range exerciseCategories {
		if c.Key == key {
			out := make([]Exercise, len(c.Exercises))
			copy(out, c.Exercises)
			return out
		}
	}
	return nil
}

// SearchExercises matches case-insensitively on name across all categories.
// Names shared by several categories are returned once.
func SearchExercises(query string) []Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	seen := map[string]bool{}
	out := make([]Exercise, 0)
	for _, c := range exerciseCategories {
		for _, e := range c.Exercises {
			if !strings.Contains(strings.ToLower(e.Name), q) || seen[e.Name] {
				continue
			}
			seen[e.Name] = true
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
