package fitmentor

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/model"
	"github.com/saadjs/fitmentor/internal/service"
)

var exerciseSearch string

var exercisesCmd = &cobra.Command{
	Use:   "exercises [category]",
	Short: "Browse the exercise library",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch {
		case strings.TrimSpace(exerciseSearch) != "":
			printExercises(out, fitness.SearchExercises(exerciseSearch))
		case len(args) == 1:
			list := fitness.ExercisesByCategory(args[0])
			if list == nil {
				return fmt.Errorf("unknown exercise category %q", args[0])
			}
			printExercises(out, list)
		default:
			fmt.Fprintln(out, "CATEGORY\tLABEL\tEXERCISES")
			for _, c := range fitness.ExerciseCategories() {
				fmt.Fprintf(out, "%s\t%s\t%d\n", c.Key, c.Label, len(c.Exercises))
			}
		}
		return nil
	},
}

func printExercises(w io.Writer, list []fitness.Exercise) {
	fmt.Fprintln(w, "NAME\tSETS\tREPS")
	for _, e := range list {
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.Name, e.Sets, e.Reps)
	}
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Food and workout ideas for your goal and fitness level",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			p, err := tr.LoadProfile()
			if err != nil {
				return err
			}
			if p == nil {
				return service.ErrNoProfile
			}
			freq, err := tr.WorkoutFrequency(7)
			if err != nil {
				return err
			}
			level := fitness.FitnessLevel(p.ActivityLevel, float64(freq))

			out := cmd.OutOrStdout()
			food, ok := fitness.FoodSuggestions[p.Goal]
			if !ok {
				food = fitness.FoodSuggestions[model.GoalMaintain]
			}
			fmt.Fprintf(out, "%s\n", food.Title)
			for _, item := range food.Items {
				fmt.Fprintf(out, "- %s\n", item)
			}
			fmt.Fprintf(out, "Tip: %s\n\n", food.Tip)

			fmt.Fprintf(out, "Workouts (%s)\n", level)
			byLevel, ok := fitness.WorkoutSuggestions[p.Goal]
			if !ok {
				byLevel = fitness.WorkoutSuggestions[model.GoalMaintain]
			}
			for _, item := range byLevel[level] {
				fmt.Fprintf(out, "- %s\n", item)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exercisesCmd, suggestCmd)
	exercisesCmd.Flags().StringVar(&exerciseSearch, "search", "", "Search exercise names across categories")
}
