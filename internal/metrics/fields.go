package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrOperation = "operation"
	AttrErrorKind = "error_kind"
	AttrAction    = "action"
)
