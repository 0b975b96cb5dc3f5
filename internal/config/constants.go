package config

import "time"

const (
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envReplayEnabled  = "REPLAY_ENABLED"
	envReplayScenario = "REPLAY_SCENARIO"
	envReplayInterval = "REPLAY_INTERVAL"

	defaultMetricsPort    = "9090"
	defaultServiceName    = "scoreboard-service"
	defaultReplayEnabled  = true
	defaultReplayScenario = "world-cup"
	defaultReplayInterval = Duration(time.Second)
)
