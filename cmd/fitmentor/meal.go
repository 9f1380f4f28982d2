package fitmentor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/model"
	"github.com/saadjs/fitmentor/internal/service"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and review meals",
}

var (
	mealType     string
	mealFood     string
	mealCalories float64
	mealProtein  float64
	mealCarbs    float64
	mealFats     float64
	mealDate     string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		in := service.MealInput{
			Type:     model.MealType(mealType),
			Food:     mealFood,
			Calories: mealCalories,
			Protein:  optionalFloat(flags.Changed("protein"), mealProtein),
			Carbs:    optionalFloat(flags.Changed("carbs"), mealCarbs),
			Fats:     optionalFloat(flags.Changed("fats"), mealFats),
		}
		return withTracker(func(tr *service.Tracker) error {
			m, err := tr.LogMeal(in)
			if err != nil {
				return err
			}
			total, err := tr.TotalCalories("")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added meal %s: %s (%s kcal)\n", m.ID, m.Food, formatAmount(m.Calories.Float()))
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %s kcal\n", formatAmount(total))
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			meals, err := tr.MealsByDate(mealDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tTYPE\tFOOD\tKCAL\tP\tC\tF")
			var total float64
			for _, m := range meals {
				total += m.Calories.Float()
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					m.ID, fitness.TimeString(m.Timestamp.Local()), m.Type, m.Food, formatAmount(m.Calories.Float()),
					optionalAmount(m.Protein), optionalAmount(m.Carbs), optionalAmount(m.Fats))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s kcal\n", formatAmount(total))
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			if err := tr.DeleteEntry(service.Meals, args[0], mealDate); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", args[0])
			return nil
		})
	},
}

func optionalAmount(a *model.Amount) string {
	if a == nil {
		return "-"
	}
	return formatAmount(a.Float())
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealDeleteCmd)

	mealAddCmd.Flags().StringVar(&mealType, "type", "", "Meal type: Breakfast|Lunch|Snack|Dinner")
	mealAddCmd.Flags().StringVar(&mealFood, "food", "", "What you ate")
	mealAddCmd.Flags().Float64Var(&mealCalories, "calories", 0, "Calories (0-5000)")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein grams (optional)")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carb grams (optional)")
	mealAddCmd.Flags().Float64Var(&mealFats, "fats", 0, "Fat grams (optional)")
	_ = mealAddCmd.MarkFlagRequired("type")
	_ = mealAddCmd.MarkFlagRequired("food")
	_ = mealAddCmd.MarkFlagRequired("calories")

	for _, c := range []*cobra.Command{mealListCmd, mealDeleteCmd} {
		c.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
	}
}
