package repository

import "errors"

// Sentinel kinds for ratings store errors.
var (
	ErrEmptyPath = errors.New("ratings database path is empty")
)
