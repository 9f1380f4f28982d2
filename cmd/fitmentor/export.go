package fitmentor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitmentor/internal/fitness"
	"github.com/saadjs/fitmentor/internal/service"
)

var (
	exportFormat string
	exportOut    string
	resetYes     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON or XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(exportFormat))
		if format != "json" && format != "xlsx" {
			return fmt.Errorf("invalid --format value %q (use json|xlsx)", exportFormat)
		}
		out := exportOut
		if format == "xlsx" && out == "" {
			out = defaultExportName()
		}
		return withTracker(func(tr *service.Tracker) error {
			snap, err := tr.ExportData()
			if err != nil {
				return err
			}
			write := func(w io.Writer) error {
				if format == "xlsx" {
					return service.WriteExportXLSX(w, snap)
				}
				return service.WriteExportJSON(w, snap)
			}

			if out == "" {
				if err := write(cmd.OutOrStdout()); err != nil {
					return err
				}
				return tr.MarkExported(now())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err := write(f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close export file: %w", err)
			}
			if err := tr.MarkExported(now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the profile and every logged entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to delete all data without --yes (run `fitmentor export` first)")
		}
		return withTracker(func(tr *service.Tracker) error {
			if err := tr.ClearAllData(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
			return nil
		})
	},
}

func defaultExportName() string {
	return "fitmentor-export-" + fitness.DateString(now()) + ".xlsx"
}

func init() {
	rootCmd.AddCommand(exportCmd, resetCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json|xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path (json defaults to stdout, xlsx to a dated file)")
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm deleting all data")
}
