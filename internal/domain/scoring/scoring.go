// Package scoring defines the rating scale and validates rating submissions
// before they reach the ratings store.
package scoring

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/okian/scout/internal/domain/model"
)

// Default validation constants.
const (
	defaultMaxCommentLength = 2000
)

// DefaultScale is the discrete rating scale offered on the rating form.
var DefaultScale = []int{3, 5, 7, 9}

// Option applies a configuration option to the Validator.
type Option func(*Validator)

// WithScale replaces the accepted scores. Empty scales are ignored.
func WithScale(scale ...int) Option {
	return func(v *Validator) {
		if len(scale) > 0 {
			v.scale = append([]int(nil), scale...)
		}
	}
}

// WithMaxCommentLength caps the comment length in runes.
func WithMaxCommentLength(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.maxComment = n
		}
	}
}

// Form is a rating submission as entered by a scout.
type Form struct {
	ScoutName  string `json:"scout_name"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
	Comment    string `json:"comment"`
}

// Validator checks rating forms against the scale and required fields.
type Validator struct {
	scale      []int
	maxComment int
}

// NewValidator creates a validator with the default scale.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		scale:      DefaultScale,
		maxComment: defaultMaxCommentLength,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Scale returns a copy of the accepted scores in ascending form order.
func (v *Validator) Scale() []int {
	return append([]int(nil), v.scale...)
}

// InScale reports whether score is one of the accepted scores.
func (v *Validator) InScale(score int) bool {
	for _, s := range v.scale {
		if s == score {
			return true
		}
	}
	return false
}

// Validate returns an error of kind model.ErrValidation describing every
// problem found, or nil. Blank means empty after trimming whitespace.
func (v *Validator) Validate(f Form) error {
	const op = "scoring.validate"
	var problems []error
	if strings.TrimSpace(f.ScoutName) == "" {
		problems = append(problems, ErrMissingScout)
	}
	if strings.TrimSpace(f.PlayerName) == "" {
		problems = append(problems, ErrMissingPlayer)
	}
	if strings.TrimSpace(f.Comment) == "" {
		problems = append(problems, ErrMissingComment)
	} else if utf8.RuneCountInString(f.Comment) > v.maxComment {
		problems = append(problems, fmt.Errorf("%w: limit is %d characters", ErrCommentTooLong, v.maxComment))
	}
	if !v.InScale(f.Score) {
		problems = append(problems, fmt.Errorf("%w: %d not in %v", ErrScoreOutOfScale, f.Score, v.scale))
	}
	if len(problems) == 0 {
		return nil
	}
	return model.WrapKind(op, model.ErrValidation, errors.Join(problems...))
}
