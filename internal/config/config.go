package config

// Config holds runtime configuration for the scoreboard process.
type Config struct {
	Metrics MetricsConfig
	Replay  ReplayConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Metrics: loadMetrics(),
		Replay:  loadReplay(),
	}
}
