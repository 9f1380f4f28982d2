// Package mentor turns a day's aggregates and the user profile into canned
// coaching messages.
package mentor

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/model"
)

// Rand is the random source used for template picks and for the
// probabilistic secondary messages. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type Mentor struct {
	rng Rand
}

// New uses a time-seeded source when rng is nil.
func New(rng Rand) *Mentor {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Mentor{rng: rng}
}

// Day is the input to DailyFeedback.
type Day struct {
	Calories         float64
	WorkoutMinutes   int
	WorkoutFrequency int
	// Target falls back to the profile's daily calories when zero.
	Target float64
}

type Feedback struct {
	Categories []Category
	Messages   []string
}

func (f Feedback) String() string {
	return strings.Join(f.Messages, " ")
}

// DailyFeedback picks exactly one primary message and up to two secondary
// ones (BMI based, then consistency based).
func (m *Mentor) DailyFeedback(p model.Profile, d Day) Feedback {
	target := d.Target
	if target <= 0 {
		target = float64(p.DailyCalories)
	}
	if target <= 0 {
		target = float64(fitness.DailyCalories(p))
	}
	ratio := d.Calories / target
	bmi := fitness.BMI(p.Weight, p.Height)

	var fb Feedback
	add := func(c Category) {
		fb.Categories = append(fb.Categories, c)
		fb.Messages = append(fb.Messages, m.pick(templates[c]))
	}

	switch {
	case d.Calories > target*1.1:
		add(OverCalories)
	case d.Calories < target*0.9 && d.WorkoutMinutes > 0:
		add(UnderCaloriesWithWorkout)
	case d.Calories < target && d.WorkoutMinutes == 0:
		add(UnderCaloriesNoWorkout)
	case d.WorkoutMinutes == 0:
		add(NoWorkout)
	default:
		add(GoodDay)
	}

	switch bmi.Category {
	case fitness.BMIUnderweight:
		if d.Calories < target {
			add(UnderweightLowCalories)
		}
	case fitness.BMIOverweight, fitness.BMIObese:
		if ratio > 1.1 {
			add(OverweightHighCalories)
		}
	case fitness.BMINormal:
		if d.WorkoutMinutes > 0 && m.rng.Float64() > 0.7 {
			add(NormalBMIActive)
		}
	}

	if d.WorkoutFrequency < 3 && p.Goal != model.GoalMaintain {
		if m.rng.Float64() > 0.6 {
			add(InconsistentWorkout)
		}
	} else if d.WorkoutFrequency >= 5 {
		if m.rng.Float64() > 0.7 {
			add(ConsistentEffort)
		}
	}
	return fb
}

// ProgressInsights compares the newest and oldest entries of a list sorted
// newest first.
func (m *Mentor) ProgressInsights(p model.Profile, entries []model.ProgressEntry) string {
	if len(entries) < 2 {
		return "Keep logging your weight to track progress over time. Consistency is key!"
	}
	latest := entries[0]
	oldest := entries[len(entries)-1]
	change := latest.Weight.Float() - oldest.Weight.Float()

	insights := make([]string, 0, 2)
	switch p.Goal {
	case model.GoalLose:
		switch {
		case change < -2:
			insights = append(insights, fmt.Sprintf("Excellent progress! You've lost %.1f kg. Keep up the great work!", math.Abs(change)))
		case change < 0:
			insights = append(insights, fmt.Sprintf("You're on the right track! Lost %.1f kg so far. Stay consistent!", math.Abs(change)))
		case change > 0:
			insights = append(insights, fmt.Sprintf("Weight has increased by %.1f kg. Review your calorie intake and increase activity.", change))
		default:
			insights = append(insights, "Weight is stable. To lose weight, maintain a calorie deficit and exercise regularly.")
		}
	case model.GoalBuild:
		switch {
		case change > 2:
			insights = append(insights, fmt.Sprintf("Great muscle building progress! Gained %.1f kg. Ensure it's quality mass with proper nutrition.", change))
		case change > 0:
			insights = append(insights, fmt.Sprintf("You've gained %.1f kg. Keep focusing on protein and strength training!", change))
		case change < 0:
			insights = append(insights, fmt.Sprintf("Weight decreased by %.1f kg. Increase calorie intake to support muscle growth.", math.Abs(change)))
		default:
			insights = append(insights, "Weight is stable. To build muscle, increase calories and protein intake.")
		}
	default:
		if math.Abs(change) < 1 {
			insights = append(insights, fmt.Sprintf("Weight is well maintained! Fluctuation of only %.1f kg. Excellent!", math.Abs(change)))
		} else {
			insights = append(insights, fmt.Sprintf("Weight changed by %+.1f kg. Adjust diet if needed to maintain.", change))
		}
	}

	newest, errNew := fitness.ParseDate(latest.Date)
	first, errOld := fitness.ParseDate(oldest.Date)
	if errNew == nil && errOld == nil {
		days := math.Abs(newest.Sub(first).Hours() / 24)
		if days > 7 {
			weekly := change / days * 7
			if math.Abs(weekly) > 1 {
				insights = append(insights, fmt.Sprintf("Rapid change detected (%.1f kg/week). Aim for 0.5-1 kg per week for healthy progress.", weekly))
			}
		}
	}
	return strings.Join(insights, " ")
}

func (m *Mentor) MotivationalMessage(goal model.Goal) string {
	pool, ok := motivational[goal]
	if !ok {
		pool = motivational[model.GoalMaintain]
	}
	return m.pick(pool)
}

// Quote returns a quote roughly three times in ten.
func (m *Mentor) Quote() (string, bool) {
	if m.rng.Float64() <= 0.7 {
		return "", false
	}
	return m.pick(quotes), true
}

// MealTimingAdvice returns "" when the intake is on pace for the hour.
func MealTimingAdvice(hour int, consumed, target float64) string {
	remaining := target - consumed
	var pct float64
	if target > 0 {
		pct = consumed / target * 100
	}

	switch {
	case hour < 12:
		if pct < 20 {
			return "Don't skip breakfast! It kickstarts your metabolism."
		}
		if pct > 40 {
			return "You've had a big breakfast. Keep lunch and dinner lighter."
		}
	case hour < 17:
		if pct < 40 {
			return "Make sure to have a proper lunch to maintain energy levels."
		}
		if pct > 70 {
			return "You've consumed most of your calories. Keep dinner light and healthy."
		}
	default:
		if remaining < 300 {
			return "You have limited calories left. Choose a light, protein-rich dinner."
		}
		if remaining > 800 {
			return "You have calories to spare. Have a balanced dinner but avoid late-night snacking."
		}
	}
	return ""
}

func WorkoutTimingSuggestion(hour int, workedOut bool) string {
	if workedOut {
		return "Great job completing your workout today!"
	}
	switch {
	case hour < 12:
		return "Morning workouts boost energy for the whole day!"
	case hour < 17:
		return "Afternoon is a great time for a workout. Your body is warmed up!"
	case hour < 21:
		return "Evening workout can help relieve stress. Just don't exercise too close to bedtime!"
	default:
		return "It's getting late. A light walk or stretching would be perfect!"
	}
}

func (m *Mentor) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[m.rng.Intn(len(pool))]
}
