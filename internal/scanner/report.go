package scanner

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Report is the exported form of a scan: the full Result plus provenance for
// audit pipelines that collect reports from many runs.
type Report struct {
	ScanID      string    `json:"scan_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Result
}

// WriteReport serializes the scan result to path as a single indented JSON
// document, stamped with a fresh scan id.
func WriteReport(path string, res *Result) (*Report, error) {
	rep := &Report{
		ScanID:      uuid.NewString(),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Result:      *res,
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return rep, nil
}

// ReadReport loads a previously exported report. Counts and alert order come
// back exactly as written.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &rep, nil
}
