package fitmentor

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/model"
	"github.com/saadjs/fitmentor/internal/service"
)

var (
	profileName     string
	profileAge      int
	profileGender   string
	profileHeight   float64
	profileWeight   float64
	profileActivity string
	profileGoal     string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create your profile (required before logging)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProfileInput{
			Name:          profileName,
			Age:           profileAge,
			Gender:        model.Gender(profileGender),
			Height:        profileHeight,
			Weight:        profileWeight,
			ActivityLevel: model.ActivityLevel(profileActivity),
			Goal:          model.Goal(profileGoal),
		}
		return withTracker(func(tr *service.Tracker) error {
			p, err := tr.CreateProfile(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", p.Name)
			printProfile(cmd.OutOrStdout(), p)
			fmt.Fprintln(cmd.OutOrStdout(), newMentor().MotivationalMessage(p.Goal))
			return nil
		})
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile and derived targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			p, err := tr.LoadProfile()
			if err != nil {
				return err
			}
			if p == nil {
				return service.ErrNoProfile
			}
			printProfile(cmd.OutOrStdout(), p)
			return nil
		})
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields; BMI and calorie target are recomputed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			current, err := tr.LoadProfile()
			if err != nil {
				return err
			}
			if current == nil {
				return service.ErrNoProfile
			}
			in := service.ProfileInput{
				Name:          current.Name,
				Age:           current.Age,
				Gender:        current.Gender,
				Height:        current.Height,
				Weight:        current.Weight,
				ActivityLevel: current.ActivityLevel,
				Goal:          current.Goal,
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = profileName
			}
			if flags.Changed("age") {
				in.Age = profileAge
			}
			if flags.Changed("gender") {
				in.Gender = model.Gender(profileGender)
			}
			if flags.Changed("height") {
				in.Height = profileHeight
			}
			if flags.Changed("weight") {
				in.Weight = profileWeight
			}
			if flags.Changed("activity") {
				in.ActivityLevel = model.ActivityLevel(profileActivity)
			}
			if flags.Changed("goal") {
				in.Goal = model.Goal(profileGoal)
			}

			p, err := tr.UpdateProfile(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			printProfile(cmd.OutOrStdout(), p)
			return nil
		})
	},
}

func printProfile(w io.Writer, p *model.Profile) {
	bmi := fitness.BMI(p.Weight, p.Height)
	macros := fitness.MacroTargets(float64(p.DailyCalories), p.Goal)
	fmt.Fprintf(w, "Name: %s\n", p.Name)
	fmt.Fprintf(w, "Age: %d\n", p.Age)
	fmt.Fprintf(w, "Gender: %s\n", p.Gender)
	fmt.Fprintf(w, "Height: %s cm\n", formatAmount(p.Height))
	fmt.Fprintf(w, "Weight: %s kg\n", formatAmount(p.Weight))
	fmt.Fprintf(w, "Activity: %s\n", fitness.ActivityLevels[p.ActivityLevel].Label)
	fmt.Fprintf(w, "Goal: %s\n", fitness.Goals[p.Goal].Label)
	fmt.Fprintf(w, "BMI: %.1f (%s)\n", bmi.Value, bmi.Label)
	fmt.Fprintf(w, "Daily calories: %d kcal\n", p.DailyCalories)
	fmt.Fprintf(w, "Macro targets: P %dg | C %dg | F %dg\n", macros.Protein, macros.Carbs, macros.Fats)
	fmt.Fprintf(w, "Member since: %s\n", fitness.FriendlyDate(p.CreatedAt.Local()))
	if p.UpdatedAt != nil {
		fmt.Fprintf(w, "Last updated: %s\n", p.UpdatedAt.Local().Format(time.RFC3339))
	}
}

func init() {
	rootCmd.AddCommand(onboardCmd, profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd)

	for _, c := range []*cobra.Command{onboardCmd, profileUpdateCmd} {
		c.Flags().StringVar(&profileName, "name", "", "Your name")
		c.Flags().IntVar(&profileAge, "age", 0, "Age in years (10-120)")
		c.Flags().StringVar(&profileGender, "gender", "", "Gender: male or female")
		c.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm (100-250)")
		c.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg (30-300)")
		c.Flags().StringVar(&profileActivity, "activity", "", "Activity level: sedentary|lightly|moderately|very")
		c.Flags().StringVar(&profileGoal, "goal", "", "Goal: lose|maintain|build|stamina")
	}
	for _, name := range []string{"name", "age", "gender", "height", "weight", "activity", "goal"} {
		_ = onboardCmd.MarkFlagRequired(name)
	}
}
