package fitmentor

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitmentor/internal/service"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local fitmentor storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *service.Tracker) error {
			version, err := tr.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized fitmentor storage (schema %s)\n", version)
			if !tr.HasProfile() {
				fmt.Fprintln(cmd.OutOrStdout(), "Next: run `fitmentor onboard` to create your profile")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
