// Package policy defines the built-in decay policies that govern how fast
// information in a given topic loses confidence over time.
package policy

import "strings"

// Policy pairs a per-day exponential decay rate with a confidence floor.
// The floor models residual trust: decayed confidence never drops below it.
type Policy struct {
	Rate        float64 // decay constant per day; higher = faster staleness
	Floor       float64 // minimum attainable confidence, in [0,1]
	Name        string
	Description string
}

// Default is returned for any topic not in the built-in table.
var Default = Policy{
	Rate:        0.01,
	Floor:       0.20,
	Name:        "Default decay",
	Description: "General purpose decay rate",
}

// keys lists the built-in topics in their documented order.
var keys = []string{
	"news", "science", "code", "legal", "history",
	"medical", "ai_training", "social_media", "financial",
}

// policies is the closed set of built-in decay policies. The set is fixed;
// there is no registration API.
var policies = map[string]Policy{
	"news": {
		Rate:        0.10,
		Floor:       0.05,
		Name:        "Fast decay (news)",
		Description: "News and current events become stale quickly",
	},
	"science": {
		Rate:        0.002,
		Floor:       0.30,
		Name:        "Slow decay (science)",
		Description: "Scientific facts change slowly",
	},
	"code": {
		Rate:        0.005,
		Floor:       0.20,
		Name:        "Medium decay (code)",
		Description: "Code examples and APIs evolve moderately",
	},
	"legal": {
		Rate:        0.001,
		Floor:       0.40,
		Name:        "Very slow decay (legal)",
		Description: "Legal precedents are highly stable",
	},
	"history": {
		Rate:        0.0,
		Floor:       1.00,
		Name:        "No decay (history)",
		Description: "Historical facts don't change",
	},
	"medical": {
		Rate:        0.015,
		Floor:       0.25,
		Name:        "Medical guidelines",
		Description: "Medical knowledge updates regularly",
	},
	"ai_training": {
		Rate:        0.02,
		Floor:       0.15,
		Name:        "AI training data",
		Description: "AI/ML best practices evolve rapidly",
	},
	"social_media": {
		Rate:        0.15,
		Floor:       0.02,
		Name:        "Social media content",
		Description: "Social media trends change extremely fast",
	},
	"financial": {
		Rate:        0.08,
		Floor:       0.10,
		Name:        "Financial data",
		Description: "Market data and financial info changes quickly",
	},
}

// Lookup returns the decay policy for a topic. Matching is case-insensitive;
// unknown topics fall back to Default rather than failing.
func Lookup(topic string) Policy {
	if p, ok := policies[strings.ToLower(topic)]; ok {
		return p
	}
	return Default
}

// Keys returns the built-in topic names in documented order. The returned
// slice is a copy; callers may modify it freely.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
