package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rotisserie/eris"

	"github.com/okian/scout/internal/adapters/chart"
	"github.com/okian/scout/internal/adapters/report"
	"github.com/okian/scout/internal/domain/compare"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/search"
	"github.com/okian/scout/internal/domain/types"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Players returns the distinct player names of the session dataset.
func (s *Service) Players(_ context.Context) ([]string, error) {
	const op = "service.players"
	sess := s.current()
	if !sess.Dataset.Has(model.ColumnName) {
		return []string{}, model.WrapKind(op, model.ErrMissingColumn, errors.New(model.ColumnName))
	}
	return search.Names(sess.Dataset), nil
}

// Player returns every dataset row for name.
func (s *Service) Player(_ context.Context, name string) ([]model.PlayerRecord, error) {
	const op = "service.player"
	sess := s.current()
	if !sess.Dataset.Has(model.ColumnName) {
		return nil, model.WrapKind(op, model.ErrMissingColumn, errors.New(model.ColumnName))
	}
	rows := search.Lookup(sess.Dataset, name)
	if len(rows) == 0 {
		return nil, model.WrapKind(op, model.ErrPlayerNotFound, errors.New(name))
	}
	return rows, nil
}

// Search returns the names containing query, ignoring case and accents.
func (s *Service) Search(_ context.Context, query string) ([]string, error) {
	const op = "service.search"
	sess := s.current()
	if !sess.Dataset.Has(model.ColumnName) {
		return []string{}, model.WrapKind(op, model.ErrMissingColumn, errors.New(model.ColumnName))
	}
	return search.Search(sess.Dataset, query), nil
}

// FilterOptions returns the choices and slider bounds of the filter view.
func (s *Service) FilterOptions(_ context.Context) types.FilterOptions {
	return filter.Options(s.current().Dataset)
}

// Filter applies c to the session dataset.
func (s *Service) Filter(_ context.Context, c filter.Criteria) []model.PlayerRecord {
	start := time.Now()
	rows := filter.Apply(s.current().Dataset, c)
	metrics.RecordFilterLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	return rows
}

// ExportReport writes the rows matching c to the report file.
func (s *Service) ExportReport(ctx context.Context, c filter.Criteria) (types.ReportResult, error) {
	const op = "service.export_report"
	if _, err := s.ready(); err != nil {
		return types.ReportResult{}, err
	}

	rows := s.Filter(ctx, c)
	if err := report.ExportPDF(rows, s.reportPath); err != nil {
		metrics.RecordReportExport(metrics.ResultFailure)
		metrics.RecordErrorByComponent("report", "export")
		s.logger.Error(ctx, "failed to export report", logger.String("path", s.reportPath), logger.Error(err))
		return types.ReportResult{}, model.WrapKind(op, ErrReportFailed, err)
	}

	metrics.RecordReportExport(metrics.ResultSuccess)
	s.logger.Info(ctx, "report exported", logger.String("path", s.reportPath), logger.Int("rows", len(rows)))
	return types.ReportResult{Path: s.reportPath, Rows: len(rows)}, nil
}

// Compare returns the side-by-side view of players a and b.
func (s *Service) Compare(ctx context.Context, a, b string) (compare.Comparison, error) {
	const op = "service.compare"
	sess, err := s.ready()
	if err != nil {
		return compare.Comparison{}, err
	}
	if !sess.Dataset.Has(model.ColumnName) {
		return compare.Comparison{}, model.WrapKind(op, model.ErrMissingColumn, errors.New(model.ColumnName))
	}

	ratings, err := s.store.ListRatings(ctx)
	if err != nil {
		return compare.Comparison{}, err
	}
	return compare.Compare(sess.Dataset, ratings, a, b), nil
}

// RadarPNG renders the metric totals of players a and b as a radar chart.
func (s *Service) RadarPNG(ctx context.Context, w io.Writer, a, b string) error {
	const op = "service.radar"
	cmp, err := s.Compare(ctx, a, b)
	if err != nil {
		return err
	}
	if !cmp.RadarAvailable {
		return model.WrapKind(op, model.ErrMissingColumn, chart.ErrNotEnoughAxes)
	}

	var series []chart.Series
	for _, side := range []compare.Side{cmp.A, cmp.B} {
		if !side.Found {
			return model.WrapKind(op, model.ErrPlayerNotFound, errors.New(side.Name))
		}
		series = append(series, chart.Series{Name: side.Name, Values: side.Values(cmp.Metrics)})
	}

	return eris.Wrap(chart.RenderRadar(w, cmp.Metrics, series), "service: render radar")
}
