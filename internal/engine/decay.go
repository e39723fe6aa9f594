// Package engine computes time-decayed confidence scores.
//
// Confidence erodes exponentially with age: C(t) = C0 * e^(-rate * t), with t
// in days, then clamps to [floor, 1.0]. The floor is a hard lower bound
// (residual trust never fully vanishes) and 1.0 a hard upper bound (decay
// never increases confidence). A rate of 0 is a true fixed point: the result
// is clamp(C0, floor, 1.0) at every age.
package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/infrastructure-observatory/freshness/internal/policy"
)

// ErrInvalidConfidence is returned when an initial confidence outside [0,1]
// is supplied. It is never silently clamped on input.
var ErrInvalidConfidence = errors.New("initial confidence out of range")

// Override replaces the policy table entirely for a single calculation.
// Both fields are always used together; there is no partial-override mode.
type Override struct {
	Rate  float64
	Floor float64
}

// Freshness computes the current confidence of information captured at the
// given timestamp, using the decay policy registered for topic. A zero now
// means the current wall-clock instant.
func Freshness(initial float64, timestamp, topic string, now time.Time) (float64, error) {
	p := policy.Lookup(topic)
	return FreshnessWith(initial, timestamp, Override{Rate: p.Rate, Floor: p.Floor}, now)
}

// FreshnessWith is Freshness with explicit decay parameters in place of a
// registered policy.
func FreshnessWith(initial float64, timestamp string, ov Override, now time.Time) (float64, error) {
	if err := validConfidence(initial); err != nil {
		return 0, err
	}
	age, err := AgeInDaysString(timestamp, now)
	if err != nil {
		return 0, err
	}
	return decay(initial, age, ov.Rate, ov.Floor), nil
}

// FreshnessAt is Freshness for a pre-parsed instant. It can only fail on an
// out-of-range initial confidence.
func FreshnessAt(initial float64, at time.Time, topic string, now time.Time) (float64, error) {
	if err := validConfidence(initial); err != nil {
		return 0, err
	}
	p := policy.Lookup(topic)
	return decay(initial, AgeInDays(at, now), p.Rate, p.Floor), nil
}

func validConfidence(c float64) error {
	if c < 0 || c > 1 || math.IsNaN(c) {
		return fmt.Errorf("%w: must be between 0 and 1, got %v", ErrInvalidConfidence, c)
	}
	return nil
}

// decay applies bounded exponential decay. Pure: identical arguments always
// yield the identical result.
func decay(initial, ageDays, rate, floor float64) float64 {
	decayed := initial * math.Exp(-rate*ageDays)
	if decayed < floor {
		return floor
	}
	if decayed > 1.0 {
		return 1.0
	}
	return decayed
}
