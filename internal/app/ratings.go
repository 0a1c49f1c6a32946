package service

import (
	"context"
	"errors"
	"strings"

	"github.com/okian/scout/internal/adapters/report"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/ranking"
	"github.com/okian/scout/internal/domain/scoring"
	"github.com/okian/scout/internal/domain/search"
	"github.com/okian/scout/internal/domain/types"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Rejection reasons recorded on the rejected ratings counter.
const (
	rejectValidation = "validation"
	rejectNotFound   = "player_not_found"
	rejectColumn     = "missing_column"
	rejectStorage    = "storage"
)

// SubmitRating validates a rating form and appends it to the store. The
// player's position and club are copied from the first dataset row for that
// player. Nothing is written when validation or the player lookup fails.
func (s *Service) SubmitRating(ctx context.Context, form scoring.Form) (model.Rating, error) {
	const op = "service.submit_rating"

	sess, err := s.ready()
	if err != nil {
		return model.Rating{}, err
	}

	form.ScoutName = strings.TrimSpace(form.ScoutName)
	form.PlayerName = strings.TrimSpace(form.PlayerName)
	if err := s.validator.Validate(form); err != nil {
		metrics.RecordRatingRejected(rejectValidation)
		s.logger.Debug(ctx, "rating rejected", logger.Error(err))
		return model.Rating{}, err
	}

	if !sess.Dataset.Has(model.ColumnName) {
		metrics.RecordRatingRejected(rejectColumn)
		return model.Rating{}, model.WrapKind(op, model.ErrMissingColumn, errors.New(model.ColumnName))
	}
	rows := search.Lookup(sess.Dataset, form.PlayerName)
	if len(rows) == 0 {
		metrics.RecordRatingRejected(rejectNotFound)
		return model.Rating{}, model.WrapKind(op, model.ErrPlayerNotFound, errors.New(form.PlayerName))
	}

	r := model.Rating{
		ScoutName:  form.ScoutName,
		PlayerName: form.PlayerName,
		Position:   rows[0].Position,
		Club:       rows[0].Club,
		Score:      form.Score,
		Comment:    form.Comment,
	}
	if r.Position == "" {
		r.Position = report.NoPosition
	}
	if r.Club == "" {
		r.Club = report.NoClub
	}

	stored, err := s.store.AddRating(ctx, r)
	if err != nil {
		metrics.RecordRatingRejected(rejectStorage)
		metrics.RecordErrorByComponent("store", "storage")
		s.logger.Error(ctx, "failed to store rating",
			logger.String("player", r.PlayerName),
			logger.Error(err),
		)
		return model.Rating{}, err
	}

	metrics.RecordRatingSubmitted()
	s.refreshRatingsGauge(ctx)
	s.logger.Info(ctx, "rating stored",
		logger.Int64("id", stored.ID),
		logger.String("player", stored.PlayerName),
		logger.String("scout", stored.ScoutName),
		logger.Int("score", stored.Score),
	)
	return stored, nil
}

// Leaderboard returns the top rated players. A limit of zero means the
// configured leaderboard size.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]types.Entry, error) {
	sess, err := s.ready()
	if err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = s.leaderboardSize
	}
	if limit < 0 || limit > s.maxLeaderboardLimit {
		return nil, model.NewKind("service.leaderboard", model.ErrInvalidLimit)
	}

	ratings, err := s.store.ListRatings(ctx)
	if err != nil {
		metrics.RecordErrorByComponent("store", "storage")
		return nil, err
	}

	metrics.RecordLeaderboardBuild()
	return ranking.TopRated(ratings, sess.Dataset.Photos(), limit), nil
}

// Ratings returns every stored rating, or only those of player when it is
// not empty.
func (s *Service) Ratings(ctx context.Context, player string) ([]model.Rating, error) {
	if _, err := s.ready(); err != nil {
		return nil, err
	}
	if player == "" {
		return s.store.ListRatings(ctx)
	}
	return s.store.ListRatingsByPlayer(ctx, player)
}

// RatingScale returns the accepted rating values.
func (s *Service) RatingScale() []int {
	return s.validator.Scale()
}

// ready returns the current session once the service has started.
func (s *Service) ready() (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.session, nil
}
