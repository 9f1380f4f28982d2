package fitmentor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/service"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Averages, workout frequency and weight trend over recent days",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := parseDaysArg(statsDays)
		if err != nil {
			return err
		}
		return withTracker(func(tr *service.Tracker) error {
			avgCalories, err := tr.AverageCalories(days)
			if err != nil {
				return err
			}
			avgMinutes, err := tr.AverageWorkoutMinutes(days)
			if err != nil {
				return err
			}
			freq, err := tr.WorkoutFrequency(days)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Window: last %d logged days\n", days)
			fmt.Fprintf(out, "Average calories: %d kcal\n", avgCalories)
			fmt.Fprintf(out, "Average workout: %d min\n", avgMinutes)
			fmt.Fprintf(out, "Workout days: %d\n", freq)

			latest, ok, err := tr.LatestWeight()
			if err != nil {
				return err
			}
			if ok {
				start, _, err := tr.StartingWeight()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Weight: %s kg (start %s kg, %+.1f)\n", formatAmount(latest), formatAmount(start), latest-start)
			}

			p, err := tr.LoadProfile()
			if err != nil {
				return err
			}
			if p != nil {
				weekly := float64(freq) * 7 / float64(days)
				fmt.Fprintf(out, "Fitness level: %s\n", fitness.FitnessLevel(p.ActivityLevel, weekly))
			}

			history, err := tr.History(days)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				return nil
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "DATE\tMEALS\tKCAL\tWORKOUTS\tMIN\tBURNED")
			for _, d := range history {
				fmt.Fprintf(out, "%s\t%d\t%s\t%d\t%d\t%d\n", d.Date, d.Meals, formatAmount(d.Calories), d.Workouts, d.WorkoutMinutes, d.CaloriesBurned)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsDays, "days", 7, "Number of recent days")
}
