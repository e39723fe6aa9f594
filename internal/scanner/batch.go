package scanner

import (
	"time"

	"github.com/infrastructure-observatory/freshness/internal/engine"
)

// batchTimestampFields is the fixed candidate order for in-memory evaluation.
var batchTimestampFields = []string{"timestamp", "created_at", "date"}

// BatchResult is the reduced result shape for in-memory evaluation, suited
// for embedding in a pipeline rather than for display.
type BatchResult struct {
	TotalEntries int       `json:"total_entries"`
	StaleEntries int       `json:"stale_entries"`
	FreshEntries int       `json:"fresh_entries"`
	StaleIndices []int     `json:"stale_indices"`
	Confidences  []float64 `json:"confidences"`
}

// Evaluate scores an already-materialized collection against the topic's
// decay policy. Records without a usable timestamp, or that otherwise cannot
// be scored, are silently skipped from the stale/fresh tallies; there is no
// unparseable counter here. A zero now means the current wall-clock instant.
func Evaluate(entries []map[string]any, topic string, threshold float64, now time.Time) BatchResult {
	if now.IsZero() {
		now = time.Now().UTC()
	}

	res := BatchResult{
		TotalEntries: len(entries),
		StaleIndices: []int{},
		Confidences:  []float64{},
	}

	for i, entry := range entries {
		ts, ok := timestampOf(entry, batchTimestampFields)
		if !ok {
			continue
		}

		initial, ok := confidenceOf(entry, DefaultConfidenceField)
		if !ok {
			continue
		}

		conf, err := engine.Freshness(initial, ts, topic, now)
		if err != nil {
			continue
		}

		res.Confidences = append(res.Confidences, conf)
		if conf < threshold {
			res.StaleEntries++
			res.StaleIndices = append(res.StaleIndices, i)
		} else {
			res.FreshEntries++
		}
	}

	return res
}
