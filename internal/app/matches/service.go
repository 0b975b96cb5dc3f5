package matches

import (
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/scoreboard-service/internal/logging"
	"github.com/preston-bernstein/scoreboard-service/internal/metrics"
	"github.com/preston-bernstein/scoreboard-service/internal/scoreboard"
)

// Operation names used for metrics and log lines.
const (
	OpStartMatch  = "start_match"
	OpUpdateScore = "update_score"
	OpForceScore  = "force_score"
	OpFinishMatch = "finish_match"
	OpGetMatch    = "get_match"
	OpSummary     = "summary"
)

// Board defines the registry operations the service depends on.
type Board interface {
	StartMatch(homeTeam, awayTeam string) (scoreboard.MatchID, error)
	UpdateMatchScore(id scoreboard.MatchID, homeScore, awayScore int) error
	ForceUpdateMatchScore(id scoreboard.MatchID, homeScore, awayScore int) error
	FinishMatch(id scoreboard.MatchID) error
	Match(id scoreboard.MatchID) (scoreboard.Match, error)
	Summary() []scoreboard.Match
	Len() int
}

// Service fronts a Board with structured logging and metrics.
// Errors from the board are returned unchanged.
type Service struct {
	board   Board
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	// gaugeMu orders Len reads with gauge writes so the last write wins
	// with the latest count.
	gaugeMu sync.Mutex
}

// NewService constructs a Service. logger and recorder may be nil.
func NewService(board Board, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		board:   board,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// StartMatch starts a new match between the two teams.
func (s *Service) StartMatch(homeTeam, awayTeam string) (scoreboard.MatchID, error) {
	start := s.now()
	id, err := s.board.StartMatch(homeTeam, awayTeam)
	s.observe(OpStartMatch, start, err,
		slog.String(logging.FieldHomeTeam, homeTeam),
		slog.String(logging.FieldAwayTeam, awayTeam),
		slog.Uint64(logging.FieldMatchID, uint64(id)),
	)
	if err == nil {
		s.syncActiveMatches()
	}
	return id, err
}

// UpdateScore applies a monotonic score update.
func (s *Service) UpdateScore(id scoreboard.MatchID, homeScore, awayScore int) error {
	start := s.now()
	err := s.board.UpdateMatchScore(id, homeScore, awayScore)
	s.observe(OpUpdateScore, start, err, scoreAttrs(id, homeScore, awayScore)...)
	return err
}

// ForceScore overwrites both scores, allowing corrections downwards.
func (s *Service) ForceScore(id scoreboard.MatchID, homeScore, awayScore int) error {
	start := s.now()
	err := s.board.ForceUpdateMatchScore(id, homeScore, awayScore)
	s.observe(OpForceScore, start, err, scoreAttrs(id, homeScore, awayScore)...)
	return err
}

// FinishMatch removes the match from the board.
func (s *Service) FinishMatch(id scoreboard.MatchID) error {
	start := s.now()
	err := s.board.FinishMatch(id)
	s.observe(OpFinishMatch, start, err, slog.Uint64(logging.FieldMatchID, uint64(id)))
	if err == nil {
		s.syncActiveMatches()
	}
	return err
}

// Match returns a snapshot of a single match.
func (s *Service) Match(id scoreboard.MatchID) (scoreboard.Match, error) {
	start := s.now()
	m, err := s.board.Match(id)
	s.record(OpGetMatch, start, err)
	return m, err
}

// Summary returns the ranked active matches.
func (s *Service) Summary() []scoreboard.Match {
	start := s.now()
	summary := s.board.Summary()
	s.record(OpSummary, start, nil)
	logging.Debug(s.logger, "scoreboard summary built", logging.FieldCount, len(summary))
	return summary
}

// ActiveMatches reports how many matches are in progress.
func (s *Service) ActiveMatches() int {
	return s.board.Len()
}

func (s *Service) syncActiveMatches() {
	s.gaugeMu.Lock()
	defer s.gaugeMu.Unlock()
	s.metrics.SetActiveMatches(s.board.Len())
}

func (s *Service) observe(op string, start time.Time, err error, attrs ...slog.Attr) {
	duration := s.record(op, start, err)
	if s.logger == nil {
		return
	}

	args := make([]any, 0, len(attrs)+3)
	args = append(args, slog.String(logging.FieldOperation, op))
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.Int64(logging.FieldDurationMS, duration.Milliseconds()))

	if err != nil {
		args = append(args, slog.String(logging.FieldErrorKind, scoreboard.KindOf(err).String()))
		logging.Warn(s.logger, "scoreboard operation rejected", append(args, "error", err)...)
		return
	}
	logging.Info(s.logger, "scoreboard operation applied", args...)
}

func (s *Service) record(op string, start time.Time, err error) time.Duration {
	duration := s.now().Sub(start)
	var kind string
	if err != nil {
		kind = scoreboard.KindOf(err).String()
	}
	s.metrics.RecordOperation(op, kind, duration)
	return duration
}

func scoreAttrs(id scoreboard.MatchID, homeScore, awayScore int) []slog.Attr {
	return []slog.Attr{
		slog.Uint64(logging.FieldMatchID, uint64(id)),
		slog.Int(logging.FieldHomeScore, homeScore),
		slog.Int(logging.FieldAwayScore, awayScore),
	}
}
