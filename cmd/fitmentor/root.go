package fitmentor

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "fitmentor",
	Short: "fitmentor logs meals, workouts and weight and coaches you through the day",
	Long: "fitmentor is a local-first fitness tracker: onboard once, then log meals, workouts and\n" +
		"weight progress and get a daily dashboard with BMI, calorie balance and mentor feedback.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (sqlite backend)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to TOML config file")
}
