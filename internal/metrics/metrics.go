package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls        int
	errors       int
	errorsByKind map[string]int
	lastLatency  time.Duration
}

// Recorder captures lightweight, in-memory metrics about scoreboard operations
// and mirrors them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu            sync.Mutex
	stats         map[string]*operationStats
	activeMatches int
	replaySteps   int
	replayErrors  int
	otel          *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordOperation counts a registry operation. errKind is empty on success.
func (r *Recorder) RecordOperation(operation, errKind string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(operation)
	stats.calls++
	stats.lastLatency = duration
	if errKind != "" {
		stats.errors++
		stats.errorsByKind[errKind]++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordOperation(operation, errKind, duration)
	}
}

// SetActiveMatches stores the current number of active matches.
func (r *Recorder) SetActiveMatches(n int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	delta := n - r.activeMatches
	r.activeMatches = n
	r.mu.Unlock()

	if r.otel != nil && delta != 0 {
		r.otel.recordActiveDelta(int64(delta))
	}
}

// RecordReplayStep counts a scripted step applied by the replayer.
func (r *Recorder) RecordReplayStep(action string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.replaySteps++
	if err != nil {
		r.replayErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReplayStep(action, err)
	}
}

// Snapshot returns a copy of the current stats for an operation.
type Snapshot struct {
	Calls        int
	Errors       int
	ErrorsByKind map[string]int
	LastLatency  time.Duration
}

func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok {
		return Snapshot{}
	}
	byKind := make(map[string]int, len(stats.errorsByKind))
	for k, v := range stats.errorsByKind {
		byKind[k] = v
	}
	return Snapshot{
		Calls:        stats.calls,
		Errors:       stats.errors,
		ErrorsByKind: byKind,
		LastLatency:  stats.lastLatency,
	}
}

// ActiveMatches returns the last recorded active match count.
func (r *Recorder) ActiveMatches() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeMatches
}

// ReplaySteps returns the applied and failed replay step counts.
func (r *Recorder) ReplaySteps() (applied, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replaySteps, r.replayErrors
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(operation string) *operationStats {
	stats, ok := r.stats[operation]
	if !ok {
		stats = &operationStats{errorsByKind: make(map[string]int)}
		r.stats[operation] = stats
	}
	return stats
}
