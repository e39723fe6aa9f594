package config

// Config holds all freshness configuration.
// Types and defaults only; values are resolved from flags and environment in
// the CLI layer.
type Config struct {
	Scan ScanConfig `toml:"scan"`
	Log  LogConfig  `toml:"log"`
}

type ScanConfig struct {
	Topic           string   `toml:"topic"`            // default decay policy topic
	Threshold       float64  `toml:"threshold"`        // stale cutoff, exclusive
	TimestampFields []string `toml:"timestamp_fields"` // candidate order, first present wins
	ConfidenceField string   `toml:"confidence_field"`
	MaxAlerts       int      `toml:"max_alerts"` // display cap, not a scan cap
}

type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Scan: ScanConfig{
			Topic:           "ai_training",
			Threshold:       0.3,
			TimestampFields: []string{"timestamp", "created_at", "date", "captured_at", "updated_at"},
			ConfidenceField: "confidence",
			MaxAlerts:       10,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
