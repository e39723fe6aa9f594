// Package scanner walks collections of timestamped records and flags entries
// whose time-decayed confidence has dropped below an acceptable threshold.
package scanner

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/infrastructure-observatory/freshness/internal/engine"
	"github.com/infrastructure-observatory/freshness/internal/logging"
	"github.com/infrastructure-observatory/freshness/internal/policy"
)

var (
	// ErrDatasetNotFound is returned when the dataset file does not exist.
	ErrDatasetNotFound = errors.New("dataset not found")
	// ErrDecode is returned when input is neither a JSON value nor JSON lines.
	ErrDecode = errors.New("dataset not decodable")
)

// DefaultTimestampFields is the candidate order checked on each record;
// the first field present wins.
var DefaultTimestampFields = []string{"timestamp", "created_at", "date", "captured_at", "updated_at"}

// DefaultConfidenceField names the field holding a record's initial
// confidence. Records without it are scored from 1.0.
const DefaultConfidenceField = "confidence"

// Options configures a dataset scan. Zero values mean: topic "ai_training",
// threshold 0, default field names, wall-clock now.
type Options struct {
	Topic           string
	Threshold       float64
	TimestampFields []string
	ConfidenceField string
	Now             time.Time
}

// Alert flags one stale record, in input encounter order.
type Alert struct {
	Index      int     `json:"index"`
	Timestamp  string  `json:"timestamp"`
	AgeDays    float64 `json:"age_days"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// Result aggregates one scan. Confidence statistics cover scored records
// only; when nothing was scored they hold their defaults (0.0 / 1.0 / 0.0).
type Result struct {
	TotalEntries      int     `json:"total_entries"`
	StaleEntries      int     `json:"stale_entries"`
	FreshEntries      int     `json:"fresh_entries"`
	NoTimestamp       int     `json:"no_timestamp"`
	AverageConfidence float64 `json:"average_confidence"`
	MinConfidence     float64 `json:"min_confidence"`
	MaxConfidence     float64 `json:"max_confidence"`
	Alerts            []Alert `json:"alerts"`
	Summary           string  `json:"summary"`
	Policy            string  `json:"policy"`
}

// ScanFile reads and scans a JSON or JSON-lines dataset file.
func ScanFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Scan(f, opts)
}

// Scan decodes records from r and scans them. The input may be a single JSON
// value (an array, or one object treated as a one-element array) or
// newline-delimited JSON; detection is by trial.
func Scan(r io.Reader, opts Options) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, err
	}
	return scanRecords(records, opts), nil
}

// decodeRecords attempts a whole-document parse first, then falls back to one
// JSON value per non-blank line.
func decodeRecords(data []byte) ([]map[string]any, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var single map[string]any
	if err := json.Unmarshal(data, &single); err == nil {
		return []map[string]any{single}, nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("%w: bad line %q: %v", ErrDecode, truncate(line, 80), err)
		}
		records = append(records, rec)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}
	return records, nil
}

func scanRecords(records []map[string]any, opts Options) *Result {
	log := logging.Get()

	topic := opts.Topic
	if topic == "" {
		topic = "ai_training"
	}
	tsFields := opts.TimestampFields
	if len(tsFields) == 0 {
		tsFields = DefaultTimestampFields
	}
	confField := opts.ConfidenceField
	if confField == "" {
		confField = DefaultConfidenceField
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	res := &Result{
		MinConfidence: 1.0,
		MaxConfidence: 0.0,
		Alerts:        []Alert{},
		Policy:        policy.Lookup(topic).Name,
	}

	var confidences []float64
	for i, rec := range records {
		res.TotalEntries++

		ts, ok := timestampOf(rec, tsFields)
		if !ok {
			res.NoTimestamp++
			continue
		}

		initial, ok := confidenceOf(rec, confField)
		if !ok {
			log.Debug().Int("index", i).Msg("scan: non-numeric confidence, skipping")
			res.NoTimestamp++
			continue
		}

		conf, err := engine.Freshness(initial, ts, topic, now)
		if err != nil {
			log.Debug().Int("index", i).Err(err).Msg("scan: record not scorable, skipping")
			res.NoTimestamp++
			continue
		}
		confidences = append(confidences, conf)

		if conf < res.MinConfidence {
			res.MinConfidence = conf
		}
		if conf > res.MaxConfidence {
			res.MaxConfidence = conf
		}

		if conf < opts.Threshold {
			res.StaleEntries++
			age, _ := engine.AgeInDaysString(ts, now)
			res.Alerts = append(res.Alerts, Alert{
				Index:      i,
				Timestamp:  ts,
				AgeDays:    round1(age),
				Confidence: round3(conf),
				Reason: fmt.Sprintf("Confidence %.0f%% below threshold %.0f%%",
					conf*100, opts.Threshold*100),
			})
		} else {
			res.FreshEntries++
		}
	}

	if len(confidences) > 0 {
		sum := 0.0
		for _, c := range confidences {
			sum += c
		}
		res.AverageConfidence = sum / float64(len(confidences))
	}

	res.Summary = summarize(res, opts.Threshold)
	return res
}

// timestampOf returns the first candidate field present on the record, as
// text. A present-but-empty or non-text value does not fall through to later
// candidates: first match wins, usable or not.
func timestampOf(rec map[string]any, fields []string) (string, bool) {
	for _, f := range fields {
		v, ok := rec[f]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return "", false
		}
		return s, true
	}
	return "", false
}

// confidenceOf reads the record's initial confidence. Absent means 1.0;
// present but non-numeric means the record cannot be scored.
func confidenceOf(rec map[string]any, field string) (float64, bool) {
	v, ok := rec[field]
	if !ok {
		return 1.0, true
	}
	f, ok := v.(float64)
	return f, ok
}

func summarize(r *Result, threshold float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset Analysis Results\n")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Total entries: %d\n", r.TotalEntries)
	fmt.Fprintf(&b, "Fresh entries: %d (%.1f%%)\n", r.FreshEntries, pct(r.FreshEntries, r.TotalEntries))
	fmt.Fprintf(&b, "Stale entries: %d (%.1f%%)\n", r.StaleEntries, pct(r.StaleEntries, r.TotalEntries))
	fmt.Fprintf(&b, "No timestamp: %d (%.1f%%)\n", r.NoTimestamp, pct(r.NoTimestamp, r.TotalEntries))
	fmt.Fprintf(&b, "Average confidence: %.1f%%\n", r.AverageConfidence*100)
	fmt.Fprintf(&b, "Confidence range: %.1f%% - %.1f%%\n", r.MinConfidence*100, r.MaxConfidence*100)
	fmt.Fprintf(&b, "Decay policy: %s\n", r.Policy)
	fmt.Fprintf(&b, "Threshold: %.0f%%\n", threshold*100)
	fmt.Fprintf(&b, "Alerts: %d entries need review", len(r.Alerts))
	return b.String()
}

// pct is an explicit zero-denominator guard: a ratio over nothing is 0.
func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
func round3(f float64) float64 { return math.Round(f*1000) / 1000 }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
