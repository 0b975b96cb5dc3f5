package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksOperationsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordOperation("start_match", "", 10*time.Millisecond)
	rec.RecordOperation("start_match", "team_already_playing", 15*time.Millisecond)
	rec.RecordOperation("start_match", "invalid_teams", 5*time.Millisecond)

	snap := rec.Snapshot("start_match")
	if snap.Calls != 3 {
		t.Fatalf("expected 3 calls, got %d", snap.Calls)
	}
	if snap.Errors != 2 {
		t.Fatalf("expected 2 errors, got %d", snap.Errors)
	}
	if snap.ErrorsByKind["team_already_playing"] != 1 || snap.ErrorsByKind["invalid_teams"] != 1 {
		t.Fatalf("unexpected errors by kind %+v", snap.ErrorsByKind)
	}
	if snap.LastLatency != 5*time.Millisecond {
		t.Fatalf("expected last latency 5ms, got %s", snap.LastLatency)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	rec := NewRecorder()
	rec.RecordOperation("finish_match", "match_not_found", time.Millisecond)

	snap := rec.Snapshot("finish_match")
	snap.ErrorsByKind["match_not_found"] = 99

	if got := rec.Snapshot("finish_match").ErrorsByKind["match_not_found"]; got != 1 {
		t.Fatalf("expected recorder to remain unchanged, got %d", got)
	}
}

func TestRecorderUnknownOperation(t *testing.T) {
	rec := NewRecorder()
	if snap := rec.Snapshot("missing"); snap.Calls != 0 || snap.ErrorsByKind != nil {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestRecorderTracksActiveMatchesAndReplay(t *testing.T) {
	rec := NewRecorder()
	rec.SetActiveMatches(3)
	rec.SetActiveMatches(2)
	if got := rec.ActiveMatches(); got != 2 {
		t.Fatalf("expected 2 active matches, got %d", got)
	}

	rec.RecordReplayStep("start", nil)
	rec.RecordReplayStep("update", errors.New("boom"))
	applied, failed := rec.ReplaySteps()
	if applied != 2 || failed != 1 {
		t.Fatalf("expected 2 applied and 1 failed, got %d/%d", applied, failed)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordOperation("start_match", "", time.Millisecond)
	rec.SetActiveMatches(1)
	rec.RecordReplayStep("start", nil)
	if rec.ActiveMatches() != 0 {
		t.Fatalf("expected zero from nil recorder")
	}
	if snap := rec.Snapshot("start_match"); snap.Calls != 0 {
		t.Fatalf("expected empty snapshot from nil recorder")
	}
}
