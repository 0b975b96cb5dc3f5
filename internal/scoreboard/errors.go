package scoreboard

import "errors"

// Kind classifies scoreboard failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidTeams
	KindTeamAlreadyPlaying
	KindMatchNotFound
	KindInvalidScore
	KindScoreRegressed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidTeams:
		return "invalid_teams"
	case KindTeamAlreadyPlaying:
		return "team_already_playing"
	case KindMatchNotFound:
		return "match_not_found"
	case KindInvalidScore:
		return "invalid_score"
	case KindScoreRegressed:
		return "score_regressed"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by scoreboard operations.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so blank and duplicate team
// errors both satisfy errors.Is(err, ErrInvalidTeams).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidTeams       = &Error{Kind: KindInvalidTeams, Message: MsgTeamNamesBlank}
	ErrTeamAlreadyPlaying = &Error{Kind: KindTeamAlreadyPlaying, Message: MsgTeamAlreadyPlaying}
	ErrMatchNotFound      = &Error{Kind: KindMatchNotFound, Message: MsgMatchNotFound}
	ErrInvalidScore       = &Error{Kind: KindInvalidScore, Message: MsgScoreNegative}
	ErrScoreRegressed     = &Error{Kind: KindScoreRegressed, Message: MsgScoreDecreased}

	errSimilarTeams = &Error{Kind: KindInvalidTeams, Message: MsgSimilarTeamNames}
)

// KindOf extracts the Kind from err, or KindUnknown when err is not a scoreboard error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
