package mentor

import "github.com/saadjs/fitmentor/internal/model"

type Category string

const (
	OverCalories             Category = "overCalories"
	UnderCaloriesWithWorkout Category = "underCaloriesWithWorkout"
	UnderCaloriesNoWorkout   Category = "underCaloriesNoWorkout"
	NoWorkout                Category = "noWorkout"
	GoodDay                  Category = "goodDay"
	UnderweightLowCalories   Category = "underweightLowCalories"
	OverweightHighCalories   Category = "overweightHighCalories"
	NormalBMIActive          Category = "normalBMIActive"
	InconsistentWorkout      Category = "inconsistentWorkout"
	ConsistentEffort         Category = "consistentEffort"
)

var templates = map[Category][]string{
	OverCalories: {
		"You've exceeded your calorie target today. Try to reduce portion sizes and avoid sugary drinks.",
		"Calorie intake is above target. Consider lighter dinner options and skip late-night snacks.",
		"You're over your daily calorie goal. Focus on vegetables and lean proteins for remaining meals.",
	},
	UnderCaloriesWithWorkout: {
		"Excellent discipline today! Calorie intake is under control and you completed your workout. Keep it up!",
		"Great job! You're maintaining a calorie deficit and staying active. This is the path to success!",
		"Perfect balance today! Your nutrition and exercise are aligned with your goals. Well done!",
	},
	UnderCaloriesNoWorkout: {
		"Good calorie control, but don't forget to exercise! Even a 20-minute walk counts.",
		"You're eating well, but your body needs movement too. Try to fit in some activity today.",
		"Nutrition is on track, but add some physical activity to maximize results.",
	},
	NoWorkout: {
		"No workout logged yet. A 20-minute walk after dinner will still make today count.",
		"Haven't exercised today? It's not too late! Even 15 minutes of activity helps.",
		"Missing your workout today? Try some light stretching or a quick walk. Every bit counts!",
	},
	GoodDay: {
		"Fantastic day! Your calories and workout are perfectly balanced. This is how champions are made!",
		"You're crushing it today! Great nutrition and solid workout. Keep this momentum going!",
		"Perfect execution today! You're setting a great example of consistency. Proud of you!",
	},
	UnderweightLowCalories: {
		"Your BMI indicates you're underweight. Increase your calorie intake with healthy foods like nuts, dairy, and whole grains.",
		"You need to gain weight healthily. Add calorie-dense nutritious foods to your meals.",
	},
	OverweightHighCalories: {
		"Your BMI is on the higher side and your calorie intake is frequently above target. Focus on portion control.",
		"To improve your BMI, maintain a consistent calorie deficit and increase physical activity.",
	},
	NormalBMIActive: {
		"You're maintaining a healthy BMI and staying active. Great job maintaining your lifestyle!",
		"Perfect health markers! Your BMI is normal and you're consistently active. Keep it up!",
	},
	InconsistentWorkout: {
		"For best results, consistency matters. Try to exercise at least 4-5 days a week.",
		"Your workout frequency could improve. Aim for regular activity throughout the week.",
	},
	ConsistentEffort: {
		"Your consistency is impressive! Regular effort leads to lasting results.",
		"You're building great habits! Consistent nutrition and exercise will transform your health.",
	},
}

// Templates returns a copy of the message pool for a category.
func Templates(c Category) []string {
	return append([]string(nil), templates[c]...)
}

var motivational = map[model.Goal][]string{
	model.GoalLose: {
		"Every healthy choice brings you closer to your goal!",
		"Small steps lead to big changes. Keep going!",
		"You're stronger than your cravings!",
		"Progress, not perfection. You've got this!",
	},
	model.GoalBuild: {
		"Muscles are built with consistency and dedication!",
		"Every rep counts. Keep pushing!",
		"Fuel your body, train your muscles, see results!",
		"Strength doesn't come from what you can do, but from overcoming what you thought you couldn't!",
	},
	model.GoalMaintain: {
		"Balance is the key to sustainable health!",
		"Maintaining is just as important as achieving!",
		"You're doing great keeping your healthy lifestyle!",
		"Consistency in maintenance shows true discipline!",
	},
	model.GoalStamina: {
		"Endurance is built one workout at a time!",
		"Push your limits, expand your capacity!",
		"Stamina grows with every challenge you overcome!",
		"Keep moving, keep improving!",
	},
}

var quotes = []string{
	"The only bad workout is the one that didn't happen.",
	"Your body can stand almost anything. It's your mind you have to convince.",
	"Take care of your body. It's the only place you have to live.",
	"Fitness is not about being better than someone else. It's about being better than you used to be.",
	"The groundwork for all happiness is good health.",
}
