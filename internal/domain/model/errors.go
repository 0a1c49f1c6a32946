package model

import (
	"errors"
	"strings"
)

// Error kinds shared by every layer. Callers match them with errors.Is.
var (
	ErrDataSource     = errors.New("data source unavailable")
	ErrValidation     = errors.New("invalid rating")
	ErrStorage        = errors.New("ratings storage failed")
	ErrMissingColumn  = errors.New("column not available")
	ErrPlayerNotFound = errors.New("player not found")
	ErrUnknownDataset = errors.New("unknown dataset")
	ErrInvalidLimit   = errors.New("invalid leaderboard limit")
)

// KindError tags a cause with an operation and an error kind.
type KindError struct {
	Op   string
	Kind error
	Err  error
}

func (e *KindError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is/As.
func (e *KindError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewKind returns an error of the given kind without a cause.
func NewKind(op string, kind error) error {
	return &KindError{Op: op, Kind: kind}
}

// WrapKind tags err with op and kind. A nil err yields nil.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return nil
	}
	return &KindError{Op: op, Kind: kind, Err: err}
}
