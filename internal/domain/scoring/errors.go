package scoring

import "errors"

// Validation failure reasons, wrapped under model.ErrValidation.
var (
	ErrMissingScout    = errors.New("scout name is required")
	ErrMissingPlayer   = errors.New("player is required")
	ErrMissingComment  = errors.New("comment is required")
	ErrCommentTooLong  = errors.New("comment too long")
	ErrScoreOutOfScale = errors.New("score not on the rating scale")
)
