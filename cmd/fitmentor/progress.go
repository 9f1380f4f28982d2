package fitmentor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitmentor/internal/service"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Track weight and waist over time",
}

var (
	progressDate   string
	progressWeight float64
	progressWaist  float64
	progressNotes  string
)

var progressAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a weigh-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProgressInput{
			Date:   progressDate,
			Weight: progressWeight,
			Waist:  optionalFloat(cmd.Flags().Changed("waist"), progressWaist),
			Notes:  progressNotes,
		}
		return withTracker(func(tr *service.Tracker) error {
			e, err := tr.LogProgress(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added progress entry %s: %s kg on %s\n", e.ID, formatAmount(e.Weight.Float()), e.Date)
			return nil
		})
	},
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weigh-ins, newest first, with mentor insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			entries, err := tr.AllProgress()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tWEIGHT\tWAIST\tNOTES")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, formatAmount(e.Weight.Float()), optionalAmount(e.Waist), e.Notes)
			}

			latest, ok, err := tr.LatestWeight()
			if err != nil || !ok {
				return err
			}
			start, _, err := tr.StartingWeight()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Change: %+.1f kg (from %s to %s)\n", latest-start, formatAmount(start), formatAmount(latest))

			p, err := tr.LoadProfile()
			if err != nil {
				return err
			}
			if p != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Insight: %s\n", newMentor().ProgressInsights(*p, entries))
			}
			return nil
		})
	},
}

var progressDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a weigh-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			if err := tr.DeleteProgressEntry(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted progress entry %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressAddCmd, progressListCmd, progressDeleteCmd)

	progressAddCmd.Flags().StringVar(&progressDate, "date", "", "Date YYYY-MM-DD (default today)")
	progressAddCmd.Flags().Float64Var(&progressWeight, "weight", 0, "Weight in kg (30-300)")
	progressAddCmd.Flags().Float64Var(&progressWaist, "waist", 0, "Waist in cm (optional)")
	progressAddCmd.Flags().StringVar(&progressNotes, "notes", "", "Notes")
	_ = progressAddCmd.MarkFlagRequired("weight")
}
