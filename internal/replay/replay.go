package replay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/scoreboard-service/internal/fixture"
	"github.com/preston-bernstein/scoreboard-service/internal/logging"
	"github.com/preston-bernstein/scoreboard-service/internal/metrics"
	"github.com/preston-bernstein/scoreboard-service/internal/scoreboard"
)

const defaultInterval = time.Second

var errUnknownLabel = errors.New("step references a match that was never started")

// Source supplies scripted steps by scenario name.
type Source interface {
	FetchSteps(ctx context.Context, name string) ([]fixture.Step, error)
}

// Scoreboard is the subset of the match service the replayer drives.
type Scoreboard interface {
	StartMatch(homeTeam, awayTeam string) (scoreboard.MatchID, error)
	UpdateScore(id scoreboard.MatchID, homeScore, awayScore int) error
	ForceScore(id scoreboard.MatchID, homeScore, awayScore int) error
	FinishMatch(id scoreboard.MatchID) error
	Summary() []scoreboard.Match
}

// Status describes replay progress.
type Status struct {
	Applied   int
	Failed    int
	LastError string
	LastStep  time.Time
	Finished  bool
}

// Replayer applies one scripted step per tick until the scenario is exhausted.
type Replayer struct {
	source   Source
	board    Scoreboard
	logger   *slog.Logger
	metrics  *metrics.Recorder
	scenario string
	interval time.Duration
	now      func() time.Time

	ids map[string]scoreboard.MatchID

	ticker   *time.Ticker
	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// New constructs a Replayer with sane defaults.
func New(source Source, board Scoreboard, logger *slog.Logger, recorder *metrics.Recorder, scenario string, interval time.Duration) *Replayer {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Replayer{
		source:   source,
		board:    board,
		logger:   logger,
		metrics:  recorder,
		scenario: scenario,
		interval: interval,
		now:      time.Now,
		ids:      make(map[string]scoreboard.MatchID),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start fetches the scenario and replays it in the background until it is
// exhausted, the context is cancelled, or Stop is called.
func (r *Replayer) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)
	logger := logging.FromContext(ctx, r.logger)

	go func() {
		defer r.finish()
		defer r.ticker.Stop()

		steps, err := r.source.FetchSteps(ctx, r.scenario)
		if err != nil {
			logging.Error(logger, "replay scenario unavailable", err, logging.FieldScenario, r.scenario)
			r.recordFailure(err)
			return
		}
		logging.Info(logger, "replay started",
			logging.FieldScenario, r.scenario,
			logging.FieldCount, len(steps),
			logging.FieldDurationMS, r.interval.Milliseconds(),
		)

		for i, step := range steps {
			if i > 0 {
				select {
				case <-ctx.Done():
					logging.Info(logger, "replay stopped", logging.FieldStep, i)
					return
				case <-r.done:
					logging.Info(logger, "replay stopped", logging.FieldStep, i)
					return
				case <-r.ticker.C:
				}
			}
			r.applyStep(logger, i, step)
		}

		logging.Info(logger, "replay complete", logging.FieldScenario, r.scenario)
		LogSummary(logger, r.board.Summary())
	}()
}

// Stop halts the replay loop. It is safe to call more than once.
func (r *Replayer) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
	})
	return nil
}

// Done is closed once the replay loop has exited.
func (r *Replayer) Done() <-chan struct{} {
	return r.finished
}

// Status returns a snapshot of replay progress.
func (r *Replayer) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

func (r *Replayer) applyStep(logger *slog.Logger, index int, step fixture.Step) {
	err := r.apply(step)
	r.metrics.RecordReplayStep(string(step.Action), err)
	if err != nil {
		logging.Warn(logger, "replay step failed",
			logging.FieldStep, index,
			"action", string(step.Action),
			"label", step.Label,
			"error", err,
		)
		r.recordFailure(err)
		return
	}
	r.recordSuccess()
}

func (r *Replayer) apply(step fixture.Step) error {
	if step.Action == fixture.ActionStart {
		id, err := r.board.StartMatch(step.Home, step.Away)
		if err != nil {
			return err
		}
		r.ids[step.Label] = id
		return nil
	}

	id, ok := r.ids[step.Label]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLabel, step.Label)
	}
	switch step.Action {
	case fixture.ActionUpdate:
		return r.board.UpdateScore(id, step.HomeScore, step.AwayScore)
	case fixture.ActionForce:
		return r.board.ForceScore(id, step.HomeScore, step.AwayScore)
	case fixture.ActionFinish:
		if err := r.board.FinishMatch(id); err != nil {
			return err
		}
		delete(r.ids, step.Label)
		return nil
	default:
		return fmt.Errorf("unsupported action %q", step.Action)
	}
}

func (r *Replayer) recordSuccess() {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.Applied++
	r.status.LastStep = r.now()
}

func (r *Replayer) recordFailure(err error) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.Failed++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastStep = r.now()
}

func (r *Replayer) finish() {
	r.statusMu.Lock()
	r.status.Finished = true
	r.statusMu.Unlock()
	close(r.finished)
}

// LogSummary writes one line per match in rank order.
func LogSummary(logger *slog.Logger, summary []scoreboard.Match) {
	if logger == nil {
		return
	}
	if len(summary) == 0 {
		logger.Info("scoreboard summary empty")
		return
	}
	for i, m := range summary {
		logger.Info("scoreboard summary",
			slog.Int(logging.FieldRank, i+1),
			slog.String(logging.FieldHomeTeam, m.HomeTeam()),
			slog.Int(logging.FieldHomeScore, m.HomeScore()),
			slog.String(logging.FieldAwayTeam, m.AwayTeam()),
			slog.Int(logging.FieldAwayScore, m.AwayScore()),
		)
	}
}
