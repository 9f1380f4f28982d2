package fitmentor

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitmentor/internal/service"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			report, err := tr.RunDoctor(doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			corrupt := "none"
			if len(report.CorruptKeys) > 0 {
				corrupt = strings.Join(report.CorruptKeys, ", ")
			}
			fmt.Fprintf(out, "Corrupt keys: %s\n", corrupt)
			fmt.Fprintf(out, "Invalid date keys: %d\n", report.InvalidDateKeys)
			fmt.Fprintf(out, "Duplicate entry ids: %d\n", report.DuplicateIDs)
			fmt.Fprintf(out, "Undated progress entries: %d\n", report.UndatedProgress)
			fmt.Fprintf(out, "Progress out of order: %t\n", report.UnsortedProgress)
			if doctorFix {
				fmt.Fprintf(out, "Re-sorted progress: %t\n", report.FixedProgress)
				// Re-check after fixes so exit status reflects final state.
				report, err = tr.RunDoctor(false)
				if err != nil {
					return err
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Re-sort progress entries by date")
}
