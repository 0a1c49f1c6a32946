package seedratings

import "errors"

// Error constants.
var (
	ErrNoPlayers      = errors.New("service has no players to rate")
	ErrUnexpectedCode = errors.New("unexpected status code")
	ErrMismatch       = errors.New("leaderboard does not match stored ratings")
	ErrNothingToSave  = errors.New("no ratings to save")
)
