package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoStore      = errors.New("ratings store not configured")
	ErrNotStarted   = errors.New("service not started")
	ErrReportFailed = errors.New("report export failed")
)
