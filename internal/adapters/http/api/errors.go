package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrMissingParam  = errors.New("missing query parameter")
	ErrInvalidNumber = errors.New("invalid number")
)
