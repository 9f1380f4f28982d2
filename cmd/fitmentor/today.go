package fitmentor

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/mentor"
	"github.com/saadjs/fitmentor/internal/service"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Daily dashboard: calories, workouts, BMI and mentor feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			s, err := tr.Today(todayDate)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSummary(out, s)

			m := newMentor()
			fb := m.DailyFeedback(s.Profile, mentor.Day{
				Calories:         s.CaloriesConsumed,
				WorkoutMinutes:   s.WorkoutMinutes,
				WorkoutFrequency: s.WorkoutFrequency,
				Target:           float64(s.TargetCalories),
			})
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Mentor: %s\n", fb)

			current := now()
			if s.Date == fitness.DateString(current) {
				hour := current.Hour()
				if advice := mentor.MealTimingAdvice(hour, s.CaloriesConsumed, float64(s.TargetCalories)); advice != "" {
					fmt.Fprintf(out, "Meal timing: %s\n", advice)
				}
				fmt.Fprintf(out, "Workout timing: %s\n", mentor.WorkoutTimingSuggestion(hour, len(s.Workouts) > 0))
			}
			fmt.Fprintln(out, m.MotivationalMessage(s.Profile.Goal))
			if quote, ok := m.Quote(); ok {
				fmt.Fprintf(out, "\"%s\"\n", quote)
			}

			due, err := tr.BackupReminderDue(current)
			if err != nil {
				return err
			}
			if due {
				fmt.Fprintln(out, "Reminder: it has been over a week since your last export. Run `fitmentor export`.")
			}
			return nil
		})
	},
}

func printSummary(w io.Writer, s *service.DaySummary) {
	fmt.Fprintf(w, "Date: %s\n", s.Date)
	fmt.Fprintf(w, "Consumed: %s / %d kcal (%d%%)\n", formatAmount(s.CaloriesConsumed), s.TargetCalories, s.CalorieProgress)
	fmt.Fprintf(w, "Remaining: %s kcal\n", formatAmount(s.RemainingCalories))
	fmt.Fprintf(w, "Burned: %d kcal in %d min\n", s.CaloriesBurned, s.WorkoutMinutes)
	fmt.Fprintf(w, "Net: %s kcal\n", formatAmount(s.NetCalories))
	fmt.Fprintf(w, "Workouts this week: %d\n", s.WorkoutFrequency)
	fmt.Fprintf(w, "BMI: %.1f (%s)\n", s.BMI.Value, s.BMI.Label)
	fmt.Fprintf(w, "Macro targets: P %dg | C %dg | F %dg\n", s.MacroTargets.Protein, s.MacroTargets.Carbs, s.MacroTargets.Fats)

	if len(s.Meals) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "TIME\tTYPE\tFOOD\tKCAL")
		for _, m := range s.Meals {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", fitness.TimeString(m.Timestamp.Local()), m.Type, m.Food, formatAmount(m.Calories.Float()))
		}
	}
	if len(s.Workouts) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "TIME\tWORKOUT\tMIN\tKCAL")
		for _, wk := range s.Workouts {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", fitness.TimeString(wk.Timestamp.Local()), wk.Type, wk.Duration.Int(), wk.CaloriesBurned.Int())
		}
	}
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
