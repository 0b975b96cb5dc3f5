package testutil

import (
	"testing"

	"github.com/preston-bernstein/scoreboard-service/internal/scoreboard"
)

// HomeTeams returns the home team names of a summary in order.
func HomeTeams(summary []scoreboard.Match) []string {
	out := make([]string, 0, len(summary))
	for _, m := range summary {
		out = append(out, m.HomeTeam())
	}
	return out
}

// AssertHomeOrder fails the test when the summary's home teams differ from want.
func AssertHomeOrder(t *testing.T, summary []scoreboard.Match, want ...string) {
	t.Helper()
	got := HomeTeams(summary)
	if len(got) != len(want) {
		t.Fatalf("expected %d matches %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s (full order %v)", i, want[i], got[i], got)
		}
	}
}
