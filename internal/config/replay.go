package config

// ReplayConfig controls the scripted scenario fed into the scoreboard at boot.
type ReplayConfig struct {
	Enabled  bool
	Scenario string
	Interval Duration // delay between scripted steps
}

func loadReplay() ReplayConfig {
	return ReplayConfig{
		Enabled:  boolEnvOrDefault(envReplayEnabled, defaultReplayEnabled),
		Scenario: envOrDefault(envReplayScenario, defaultReplayScenario),
		Interval: durationEnvOrDefault(envReplayInterval, defaultReplayInterval),
	}
}
