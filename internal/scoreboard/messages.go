package scoreboard

// Error messages surfaced by the scoreboard. Callers should branch on Kind, not text.
const (
	MsgMatchNotFound      = "match not found"
	MsgScoreNegative      = "score cannot be negative"
	MsgScoreDecreased     = "score cannot be lower than current score"
	MsgTeamNamesBlank     = "team names must not be blank"
	MsgSimilarTeamNames   = "home and away teams must differ"
	MsgTeamAlreadyPlaying = "one of the teams is already playing"
)
