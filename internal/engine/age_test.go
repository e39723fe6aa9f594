package engine

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func TestParseTimestampLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-01-01", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-01-01T12:30:00", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01T12:30", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01 12:30:00", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01T12:30:00Z", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01T12:30:00+00:00", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01T12:30:00.500Z", time.Date(2025, 1, 1, 12, 30, 0, 500000000, time.UTC)},
	}

	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)
		if err != nil {
			t.Errorf("ParseTimestamp(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseTimestampNaiveIsUTC(t *testing.T) {
	got, err := ParseTimestamp("2025-06-15T08:00:00")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if !got.Equal(time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("naive timestamp not treated as UTC: %v", got)
	}
}

func TestParseTimestampOffset(t *testing.T) {
	// +02:00 offset: same instant as 10:00 UTC.
	got, err := ParseTimestamp("2025-06-15T12:00:00+02:00")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if !got.Equal(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("offset timestamp = %v, want 10:00 UTC", got.UTC())
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not a date", "January 1st 2025", "2025/01/01"} {
		if _, err := ParseTimestamp(in); !errors.Is(err, ErrBadTimestamp) {
			t.Errorf("ParseTimestamp(%q) err = %v, want ErrBadTimestamp", in, err)
		}
	}
}

func TestAgeInDays(t *testing.T) {
	at := testNow.Add(-30 * 24 * time.Hour)
	if got := AgeInDays(at, testNow); math.Abs(got-30) > 1e-9 {
		t.Errorf("AgeInDays = %v, want 30", got)
	}

	halfDay := testNow.Add(-12 * time.Hour)
	if got := AgeInDays(halfDay, testNow); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("AgeInDays = %v, want 0.5", got)
	}
}

func TestAgeInDaysFutureIsZero(t *testing.T) {
	future := testNow.Add(48 * time.Hour)
	if got := AgeInDays(future, testNow); got != 0 {
		t.Errorf("AgeInDays(future) = %v, want 0", got)
	}
}

func TestAgeInDaysString(t *testing.T) {
	got, err := AgeInDaysString("2026-02-01", testNow)
	if err != nil {
		t.Fatalf("AgeInDaysString: %v", err)
	}
	if math.Abs(got-28) > 1e-9 {
		t.Errorf("AgeInDaysString = %v, want 28", got)
	}

	if _, err := AgeInDaysString("bogus", testNow); !errors.Is(err, ErrBadTimestamp) {
		t.Errorf("expected ErrBadTimestamp, got %v", err)
	}
}
