package fitmentor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/model"
	"github.com/saadjs/fitmentor/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and review workouts",
}

var (
	workoutType      string
	workoutDuration  int
	workoutIntensity string
	workoutSets      int
	workoutReps      int
	workoutDate      string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout for today; calories burned are estimated from your weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		in := service.WorkoutInput{
			Type:      model.WorkoutType(workoutType),
			Duration:  workoutDuration,
			Intensity: model.Intensity(workoutIntensity),
			Sets:      optionalInt(flags.Changed("sets"), workoutSets),
			Reps:      optionalInt(flags.Changed("reps"), workoutReps),
		}
		return withTracker(func(tr *service.Tracker) error {
			w, err := tr.LogWorkout(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added workout %s: %s %d min (%s), ~%d kcal burned\n",
				w.ID, fitness.WorkoutTypes[w.Type].Label, w.Duration.Int(), w.Intensity, w.CaloriesBurned.Int())
			return nil
		})
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			workouts, err := tr.WorkoutsByDate(workoutDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tTYPE\tMIN\tINTENSITY\tKCAL\tSETS\tREPS")
			minutes, burned := 0, 0
			for _, w := range workouts {
				minutes += w.Duration.Int()
				burned += w.CaloriesBurned.Int()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%s\t%d\t%s\t%s\n",
					w.ID, fitness.TimeString(w.Timestamp.Local()), w.Type, w.Duration.Int(), w.Intensity,
					w.CaloriesBurned.Int(), optionalAmount(w.Sets), optionalAmount(w.Reps))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d min, %d kcal\n", minutes, burned)
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			if err := tr.DeleteEntry(service.Workouts, args[0], workoutDate); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %s\n", args[0])
			return nil
		})
	},
}

var workoutTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List workout types and burn rates (kcal/min/kg)",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "TYPE\tLABEL\tLOW\tMEDIUM\tHIGH")
		for _, kind := range model.WorkoutTypes {
			info := fitness.WorkoutTypes[kind]
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.3f\t%.3f\t%.3f\n", kind, info.Label,
				info.BurnRate[model.IntensityLow], info.BurnRate[model.IntensityMedium], info.BurnRate[model.IntensityHigh])
		}
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutDeleteCmd, workoutTypesCmd)

	workoutAddCmd.Flags().StringVar(&workoutType, "type", "", "Workout type: walking|running|yoga|strength|hiit|cycling|custom")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 0, "Duration in minutes (1-300)")
	workoutAddCmd.Flags().StringVar(&workoutIntensity, "intensity", "medium", "Intensity: low|medium|high")
	workoutAddCmd.Flags().IntVar(&workoutSets, "sets", 0, "Sets (strength only)")
	workoutAddCmd.Flags().IntVar(&workoutReps, "reps", 0, "Reps per set (strength only)")
	_ = workoutAddCmd.MarkFlagRequired("type")
	_ = workoutAddCmd.MarkFlagRequired("duration")

	for _, c := range []*cobra.Command{workoutListCmd, workoutDeleteCmd} {
		c.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default today)")
	}
}
