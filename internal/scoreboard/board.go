package scoreboard

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Board is the registry of active matches. It is safe for concurrent use;
// every operation runs in a single critical section.
type Board struct {
	mu      sync.RWMutex
	matches *orderedMatches
	teams   map[string]MatchID
	lastID  MatchID
	clock   uint64
}

// NewBoard constructs an empty Board with its own id counter.
func NewBoard() *Board {
	return &Board{
		matches: newOrderedMatches(),
		teams:   make(map[string]MatchID),
	}
}

// StartMatch registers a new 0-0 match and returns its identifier.
func (b *Board) StartMatch(homeTeam, awayTeam string) (MatchID, error) {
	homeTeam = strings.TrimSpace(homeTeam)
	awayTeam = strings.TrimSpace(awayTeam)
	if homeTeam == "" || awayTeam == "" {
		return 0, ErrInvalidTeams
	}
	homeKey, awayKey := teamKey(homeTeam), teamKey(awayTeam)
	if homeKey == awayKey {
		return 0, fmt.Errorf("%w: %q and %q", errSimilarTeams, homeTeam, awayTeam)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if id, playing := b.teams[homeKey]; playing {
		return 0, fmt.Errorf("%w: %q in match %d", ErrTeamAlreadyPlaying, homeTeam, id)
	}
	if id, playing := b.teams[awayKey]; playing {
		return 0, fmt.Errorf("%w: %q in match %d", ErrTeamAlreadyPlaying, awayTeam, id)
	}

	b.lastID++
	b.clock++
	id := b.lastID
	b.matches.put(id, newMatch(homeTeam, awayTeam, b.clock))
	b.teams[homeKey] = id
	b.teams[awayKey] = id
	return id, nil
}

// ForceUpdateMatchScore replaces both scores; lower values are allowed.
// Home is set before away; if away is negative, the home change stays
// committed.
func (b *Board) ForceUpdateMatchScore(id MatchID, homeScore, awayScore int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, err := b.lookup(id)
	if err != nil {
		return err
	}
	if err := m.setHomeScore(homeScore); err != nil {
		return err
	}
	return m.setAwayScore(awayScore)
}

// UpdateMatchScore replaces both scores, rejecting any value below the
// current one. A negative value for either side commits nothing. Otherwise
// home is applied before away; if away regresses, the home change stays
// committed.
func (b *Board) UpdateMatchScore(id MatchID, homeScore, awayScore int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, err := b.lookup(id)
	if err != nil {
		return err
	}
	if err := checkScores(homeScore, awayScore); err != nil {
		return err
	}
	if err := m.updateHomeScore(homeScore); err != nil {
		return err
	}
	return m.updateAwayScore(awayScore)
}

// FinishMatch removes the match and frees both teams for new matches.
func (b *Board) FinishMatch(id MatchID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, ok := b.matches.remove(id)
	if !ok {
		return notFound(id)
	}
	delete(b.teams, teamKey(m.homeTeam))
	delete(b.teams, teamKey(m.awayTeam))
	return nil
}

// Match returns a snapshot of the match with the given id.
func (b *Board) Match(id MatchID) (Match, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	m, err := b.lookup(id)
	if err != nil {
		return Match{}, err
	}
	return *m, nil
}

// Summary returns the active matches ordered by total score, most recently
// started first among equal totals.
func (b *Board) Summary() []Match {
	b.mu.RLock()
	summary := b.matches.values()
	b.mu.RUnlock()

	slices.SortStableFunc(summary, func(x, y Match) int {
		if c := cmp.Compare(y.TotalScore(), x.TotalScore()); c != 0 {
			return c
		}
		return cmp.Compare(y.createdAt, x.createdAt)
	})
	return summary
}

// Len reports the number of active matches.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.matches.len()
}

func (b *Board) lookup(id MatchID) (*Match, error) {
	m, ok := b.matches.get(id)
	if !ok {
		return nil, notFound(id)
	}
	return m, nil
}

func notFound(id MatchID) error {
	return fmt.Errorf("%w: id %d", ErrMatchNotFound, id)
}

// checkScores rejects negative input for either side before any field changes.
func checkScores(homeScore, awayScore int) error {
	if err := checkNonNegative(homeScore); err != nil {
		return err
	}
	return checkNonNegative(awayScore)
}

// teamKey folds an already trimmed team name for case-insensitive comparison.
func teamKey(name string) string {
	return cases.Fold().String(name)
}
