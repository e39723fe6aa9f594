package engine

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestFreshnessNoDecayFixedPoint(t *testing.T) {
	// history: rate 0, floor 1.0. Any age yields exactly 1.0.
	for _, ts := range []string{"2026-02-28", "2000-01-01", "1950-06-15"} {
		got, err := Freshness(0.9, ts, "history", testNow)
		if err != nil {
			t.Fatalf("Freshness(%s): %v", ts, err)
		}
		if got != 1.0 {
			t.Errorf("history freshness at %s = %v, want 1.0", ts, got)
		}
	}
}

func TestFreshnessZeroRateOverride(t *testing.T) {
	// Rate 0 with a low floor returns the initial confidence unchanged.
	for _, ts := range []string{"2026-02-28", "2010-01-01"} {
		got, err := FreshnessWith(0.73, ts, Override{Rate: 0, Floor: 0.1}, testNow)
		if err != nil {
			t.Fatalf("FreshnessWith: %v", err)
		}
		if math.Abs(got-0.73) > 1e-12 {
			t.Errorf("zero-rate freshness = %v, want 0.73", got)
		}
	}
}

func TestFreshnessMonotonicInAge(t *testing.T) {
	prev := math.Inf(1)
	for days := 0; days <= 400; days += 40 {
		at := testNow.Add(-time.Duration(days) * 24 * time.Hour)
		got, err := FreshnessAt(0.9, at, "news", testNow)
		if err != nil {
			t.Fatalf("FreshnessAt: %v", err)
		}
		if got > prev {
			t.Errorf("freshness increased with age at %d days: %v > %v", days, got, prev)
		}
		prev = got
	}
}

func TestFreshnessFloorBound(t *testing.T) {
	// 25-year-old news decays far past the floor; the floor holds.
	got, err := Freshness(0.9, "2001-03-01", "news", testNow)
	if err != nil {
		t.Fatalf("Freshness: %v", err)
	}
	if got != 0.05 {
		t.Errorf("ancient news freshness = %v, want floor 0.05", got)
	}

	// Fresh record stays at most 1.0.
	got, err = Freshness(1.0, "2026-03-01", "news", testNow)
	if err != nil {
		t.Fatalf("Freshness: %v", err)
	}
	if got > 1.0 {
		t.Errorf("freshness exceeds 1.0: %v", got)
	}
}

func TestFreshnessKnownValue(t *testing.T) {
	// 10-day-old news at 0.9: 0.9 * e^(-0.1*10) = 0.9 * e^-1.
	got, err := Freshness(0.9, "2026-02-19", "news", testNow)
	if err != nil {
		t.Fatalf("Freshness: %v", err)
	}
	want := 0.9 * math.Exp(-1)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("freshness = %v, want %v", got, want)
	}
}

func TestFreshnessUnknownTopicUsesDefault(t *testing.T) {
	// Default policy: rate 0.01, floor 0.20. 100 days: 0.9 * e^-1.
	got, err := Freshness(0.9, testNow.Add(-100*24*time.Hour).Format("2006-01-02T15:04:05"), "no_such_topic", testNow)
	if err != nil {
		t.Fatalf("Freshness: %v", err)
	}
	want := 0.9 * math.Exp(-1)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("freshness = %v, want %v", got, want)
	}
}

func TestFreshnessRejectsBadConfidence(t *testing.T) {
	for _, c := range []float64{1.5, -0.1, math.NaN()} {
		if _, err := Freshness(c, "2026-01-01", "news", testNow); !errors.Is(err, ErrInvalidConfidence) {
			t.Errorf("Freshness(%v) err = %v, want ErrInvalidConfidence", c, err)
		}
		if _, err := FreshnessAt(c, testNow, "news", testNow); !errors.Is(err, ErrInvalidConfidence) {
			t.Errorf("FreshnessAt(%v) err = %v, want ErrInvalidConfidence", c, err)
		}
	}
}

func TestFreshnessBadTimestamp(t *testing.T) {
	if _, err := Freshness(0.9, "yesterday-ish", "news", testNow); !errors.Is(err, ErrBadTimestamp) {
		t.Errorf("err = %v, want ErrBadTimestamp", err)
	}
}

func TestFreshnessDeterministic(t *testing.T) {
	a, err := Freshness(0.85, "2025-07-01", "code", testNow)
	if err != nil {
		t.Fatalf("Freshness: %v", err)
	}
	b, _ := Freshness(0.85, "2025-07-01", "code", testNow)
	if a != b {
		t.Errorf("identical inputs gave %v and %v", a, b)
	}
}
