package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/infrastructure-observatory/freshness/internal/engine"
	"github.com/infrastructure-observatory/freshness/internal/policy"
	"github.com/spf13/cobra"
)

var (
	calcConfidence float64
	calcTimestamp  string
	calcTopic      string
	calcRate       float64
	calcFloor      float64
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate the freshness score for a single data point",
	RunE:  runCalculate,
}

func init() {
	calculateCmd.Flags().Float64VarP(&calcConfidence, "confidence", "c", 1.0, "Initial confidence (0.0-1.0)")
	calculateCmd.Flags().StringVarP(&calcTimestamp, "timestamp", "t", "", "Capture timestamp (ISO format, e.g. 2025-01-01)")
	calculateCmd.Flags().StringVarP(&calcTopic, "topic", "p", "ai_training", "Topic type (news, science, code, medical, ...)")
	calculateCmd.Flags().Float64Var(&calcRate, "rate", 0, "Override decay rate per day (requires --floor)")
	calculateCmd.Flags().Float64Var(&calcFloor, "floor", 0, "Override confidence floor (requires --rate)")
	calculateCmd.MarkFlagRequired("timestamp")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	rateSet := cmd.Flags().Changed("rate")
	floorSet := cmd.Flags().Changed("floor")
	if rateSet != floorSet {
		return fmt.Errorf("--rate and --floor must be given together")
	}

	now := time.Now().UTC()

	var (
		current float64
		err     error
	)
	p := policy.Lookup(calcTopic)
	if rateSet {
		p = policy.Policy{Rate: calcRate, Floor: calcFloor, Name: "Custom override"}
		current, err = engine.FreshnessWith(calcConfidence, calcTimestamp, engine.Override{Rate: calcRate, Floor: calcFloor}, now)
	} else {
		current, err = engine.Freshness(calcConfidence, calcTimestamp, calcTopic, now)
	}
	if err != nil {
		return err
	}

	age, err := engine.AgeInDaysString(calcTimestamp, now)
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 50)
	fmt.Println("Freshness Analysis")
	fmt.Println(rule)
	fmt.Printf("Initial confidence: %.1f%%\n", calcConfidence*100)
	fmt.Printf("Capture timestamp:  %s\n", calcTimestamp)
	fmt.Printf("Age:                %.1f days\n", age)
	fmt.Printf("Topic type:         %s\n", calcTopic)
	fmt.Printf("Decay policy:       %s\n", p.Name)
	fmt.Printf("Decay rate:         %.4f per day\n", p.Rate)
	fmt.Printf("Floor:              %.1f%%\n", p.Floor*100)
	fmt.Println(rule)
	fmt.Printf("Current confidence: %.1f%%\n", current*100)
	fmt.Println(statusLine(current))

	return nil
}

// statusLine maps a confidence value to its display band.
func statusLine(conf float64) string {
	switch {
	case conf < 0.3:
		return "WARNING: data is STALE (< 30% confidence)"
	case conf < 0.5:
		return "CAUTION: data is aging (< 50% confidence)"
	case conf < 0.7:
		return "OK: data is acceptable (50-70% confidence)"
	default:
		return "FRESH: data is fresh (> 70% confidence)"
	}
}
