package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldOperation  = "operation"
	FieldMatchID    = "match_id"
	FieldHomeTeam   = "home_team"
	FieldAwayTeam   = "away_team"
	FieldHomeScore  = "home_score"
	FieldAwayScore  = "away_score"
	FieldRank       = "rank"
	FieldErrorKind  = "error_kind"
	FieldScenario   = "scenario"
	FieldStep       = "step"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
