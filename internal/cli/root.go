package cli

import (
	"os"

	"github.com/infrastructure-observatory/freshness/internal/config"
	"github.com/infrastructure-observatory/freshness/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "freshness",
	Short: "Detect stale information in timestamped datasets",
	Long: "Freshness models how information confidence decays over time and flags\n" +
		"dataset entries that have decayed below an acceptable threshold.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := os.Getenv("FRESHNESS_LOG")
		if level == "" {
			level = config.Default().Log.Level
		}
		logging.Init(level, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(policiesCmd)
	rootCmd.AddCommand(demoCmd)
}
