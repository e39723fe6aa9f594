package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/infrastructure-observatory/freshness/internal/config"
	"github.com/infrastructure-observatory/freshness/internal/scanner"
	"github.com/spf13/cobra"
)

var (
	checkThreshold  float64
	checkTopic      string
	checkVerbose    bool
	checkMaxAlerts  int
	checkOutput     string
	checkTimeFields []string
	checkConfField  string
)

var checkCmd = &cobra.Command{
	Use:   "check <dataset>",
	Short: "Check a dataset file for stale entries",
	Long:  "Scan a JSON or JSON-lines dataset and report entries whose decayed confidence falls below the threshold.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	defaults := config.Default().Scan
	checkCmd.Flags().Float64VarP(&checkThreshold, "threshold", "T", defaults.Threshold, "Confidence threshold (0.0-1.0)")
	checkCmd.Flags().StringVarP(&checkTopic, "topic", "p", defaults.Topic, "Topic type")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Show detailed alerts for stale entries")
	checkCmd.Flags().IntVar(&checkMaxAlerts, "max-alerts", defaults.MaxAlerts, "Maximum number of alerts to display")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Export results to a JSON report file")
	checkCmd.Flags().StringSliceVar(&checkTimeFields, "timestamp-fields", defaults.TimestampFields, "Candidate timestamp field names, first present wins")
	checkCmd.Flags().StringVar(&checkConfField, "confidence-field", defaults.ConfidenceField, "Field holding the initial confidence")
}

func runCheck(cmd *cobra.Command, args []string) error {
	res, err := scanner.ScanFile(args[0], scanner.Options{
		Topic:           checkTopic,
		Threshold:       checkThreshold,
		TimestampFields: checkTimeFields,
		ConfidenceField: checkConfField,
		Now:             time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, scanner.ErrDatasetNotFound) {
			return fmt.Errorf("could not find file %s", args[0])
		}
		return fmt.Errorf("analyze dataset: %w", err)
	}

	fmt.Println(res.Summary)

	if checkVerbose && len(res.Alerts) > 0 {
		rule := strings.Repeat("=", 50)
		fmt.Println()
		fmt.Println(rule)
		fmt.Println("STALE ENTRIES:")
		fmt.Println(rule)

		shown := res.Alerts
		if len(shown) > checkMaxAlerts {
			shown = shown[:checkMaxAlerts]
		}
		for _, alert := range shown {
			fmt.Printf("\nEntry #%d:\n", alert.Index)
			fmt.Printf("  Timestamp:  %s\n", alert.Timestamp)
			fmt.Printf("  Age:        %.1f days\n", alert.AgeDays)
			fmt.Printf("  Confidence: %.1f%%\n", alert.Confidence*100)
			fmt.Printf("  Reason:     %s\n", alert.Reason)
		}
		if remaining := len(res.Alerts) - checkMaxAlerts; remaining > 0 {
			fmt.Printf("\n... and %d more stale entries\n", remaining)
		}
	}

	if checkOutput != "" {
		if _, err := scanner.WriteReport(checkOutput, res); err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		fmt.Printf("\nResults exported to %s\n", checkOutput)
	}

	// Nonzero exit when stale entries were found, so batch tooling can branch.
	if res.StaleEntries > 0 {
		os.Exit(1)
	}
	return nil
}
