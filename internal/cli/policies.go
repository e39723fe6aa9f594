package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/infrastructure-observatory/freshness/internal/engine"
	"github.com/infrastructure-observatory/freshness/internal/policy"
	"github.com/spf13/cobra"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List all available decay policies",
	Run:   runPolicies,
}

func runPolicies(cmd *cobra.Command, args []string) {
	rule := strings.Repeat("=", 70)
	fmt.Println("Available Decay Policies")
	fmt.Println(rule)

	for _, key := range policy.Keys() {
		p := policy.Lookup(key)
		fmt.Printf("\n%s\n", strings.ToUpper(key))
		fmt.Printf("  Name:        %s\n", p.Name)
		fmt.Printf("  Decay rate:  %.4f per day\n", p.Rate)
		fmt.Printf("  Floor:       %.1f%%\n", p.Floor*100)
		fmt.Printf("  Description: %s\n", p.Description)
	}

	fmt.Println()
	fmt.Println(rule)
	fmt.Println("Usage: freshness calculate --topic <policy_name> ...")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a quick demonstration",
	Run:   runDemo,
}

func runDemo(cmd *cobra.Command, args []string) {
	rule := strings.Repeat("=", 70)
	fmt.Println("Freshness Detector Demo")
	fmt.Println(rule)

	now := time.Now().UTC()
	examples := []struct {
		timestamp   string
		confidence  float64
		topic       string
		description string
	}{
		{"2025-12-01", 0.95, "ai_training", "Recent AI training data"},
		{"2024-06-01", 0.90, "ai_training", "6-month-old AI training data"},
		{"2023-01-01", 0.85, "ai_training", "2-year-old AI training data"},
		{"2025-12-01", 0.90, "news", "Recent news"},
		{"2024-01-01", 0.90, "news", "1-year-old news"},
		{"2020-01-01", 0.95, "history", "Historical fact"},
	}

	for _, ex := range examples {
		current, err := engine.Freshness(ex.confidence, ex.timestamp, ex.topic, now)
		if err != nil {
			continue
		}
		age, _ := engine.AgeInDaysString(ex.timestamp, now)

		fmt.Printf("\n%s:\n", ex.description)
		fmt.Printf("  Timestamp:  %s\n", ex.timestamp)
		fmt.Printf("  Age:        %.0f days\n", age)
		fmt.Printf("  Topic:      %s\n", ex.topic)
		fmt.Printf("  Initial:    %.1f%%\n", ex.confidence*100)
		fmt.Printf("  Current:    %.1f%%\n", current*100)
		fmt.Printf("  Status:     %s\n", statusLine(current))
	}

	fmt.Println()
	fmt.Println(rule)
	fmt.Println("Try: freshness check <your_dataset.json>")
}
