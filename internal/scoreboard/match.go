package scoreboard

import "fmt"

// MatchID identifies an active match. IDs are never reused within a Board.
type MatchID uint64

// Match is one contest between two teams. Values handed out by Board are
// snapshots; scores only change through Board operations.
type Match struct {
	homeTeam  string
	awayTeam  string
	homeScore int
	awayScore int
	createdAt uint64
}

func newMatch(homeTeam, awayTeam string, createdAt uint64) *Match {
	return &Match{
		homeTeam:  homeTeam,
		awayTeam:  awayTeam,
		createdAt: createdAt,
	}
}

func (m Match) HomeTeam() string { return m.homeTeam }
func (m Match) AwayTeam() string { return m.awayTeam }
func (m Match) HomeScore() int   { return m.homeScore }
func (m Match) AwayScore() int   { return m.awayScore }

// TotalScore returns the aggregate score of both teams.
func (m Match) TotalScore() int {
	return m.homeScore + m.awayScore
}

func (m Match) String() string {
	return fmt.Sprintf("%s %d - %s %d", m.homeTeam, m.homeScore, m.awayTeam, m.awayScore)
}

func (m *Match) setHomeScore(n int) error {
	if err := checkNonNegative(n); err != nil {
		return err
	}
	m.homeScore = n
	return nil
}

func (m *Match) setAwayScore(n int) error {
	if err := checkNonNegative(n); err != nil {
		return err
	}
	m.awayScore = n
	return nil
}

func (m *Match) updateHomeScore(n int) error {
	if err := checkNotLower(m.homeScore, n); err != nil {
		return err
	}
	m.homeScore = n
	return nil
}

func (m *Match) updateAwayScore(n int) error {
	if err := checkNotLower(m.awayScore, n); err != nil {
		return err
	}
	m.awayScore = n
	return nil
}

func checkNonNegative(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}
	return nil
}

func checkNotLower(current, next int) error {
	if err := checkNonNegative(next); err != nil {
		return err
	}
	if next < current {
		return fmt.Errorf("%w: %d < %d", ErrScoreRegressed, next, current)
	}
	return nil
}
