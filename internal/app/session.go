package service

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/types"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
)

// Session is the state of one dashboard session: the selected dataset and
// any message produced while loading it. A Session is never mutated; a new
// one replaces it when another dataset is selected.
type Session struct {
	Name     string
	Path     string
	Dataset  *model.Dataset
	Message  string
	LoadedAt time.Time
}

// Session returns the current session.
func (s *Service) Session() Session {
	return *s.current()
}

// Info summarises the current session for display.
func (s *Service) Info() types.SessionInfo {
	return s.current().Info()
}

// Info summarises the session for display.
func (sess Session) Info() types.SessionInfo {
	return types.SessionInfo{
		Dataset:  sess.Name,
		Path:     sess.Path,
		Players:  sess.Dataset.Len(),
		Columns:  append([]string{}, sess.Dataset.Columns...),
		Message:  sess.Message,
		LoadedAt: sess.LoadedAt,
	}
}

// Datasets lists the selectable datasets and the selected one.
func (s *Service) Datasets() types.Datasets {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := types.Datasets{Available: append([]string{}, s.datasets...)}
	if s.session != nil {
		out.Selected = s.session.Name
	}
	return out
}

// SelectDataset loads the named dataset into a new session. The file is
// always read again. Unreadable files yield an empty dataset plus a message,
// as at start.
func (s *Service) SelectDataset(ctx context.Context, name string) (types.SessionInfo, error) {
	const op = "service.select_dataset"

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return types.SessionInfo{}, ErrNotStarted
	}
	if !slices.Contains(s.datasets, name) {
		return types.SessionInfo{}, model.WrapKind(op, model.ErrUnknownDataset, errors.New(name))
	}

	if inv, ok := s.loader.(interface{ Invalidate(context.Context, string) }); ok {
		inv.Invalidate(ctx, s.datasetPath(name))
	}
	s.session = s.loadSession(ctx, name)
	s.logger.Info(ctx, "dataset selected",
		logger.String("dataset", name),
		logger.Int("players", s.session.Dataset.Len()),
	)
	return s.session.Info(), nil
}

// current returns the live session, or an empty one before Start.
func (s *Service) current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return &Session{Dataset: model.EmptyDataset("")}
	}
	return s.session
}

// loadSession reads name through the loader. Must be called with s.mu held.
func (s *Service) loadSession(ctx context.Context, name string) *Session {
	path := s.datasetPath(name)
	sess := &Session{Name: name, Path: path, LoadedAt: time.Now()}

	if name == "" {
		sess.Dataset = model.EmptyDataset("")
		sess.Message = "No hay ningún archivo de datos configurado."
		s.logger.Warn(ctx, "no dataset configured")
		metrics.UpdatePlayersLoaded(0)
		return sess
	}

	ds, err := s.loader.Load(ctx, path)
	if err != nil {
		metrics.RecordDatasetLoad(metrics.ResultFailure)
		metrics.RecordErrorByComponent("loader", "data_source")
		s.logger.Error(ctx, "failed to load dataset", logger.String("path", path), logger.Error(err))
		sess.Dataset = model.EmptyDataset(path)
		sess.Message = loadFailureMessage(path, err)
		metrics.UpdatePlayersLoaded(0)
		return sess
	}

	metrics.RecordDatasetLoad(metrics.ResultSuccess)
	metrics.UpdatePlayersLoaded(ds.Len())
	sess.Dataset = ds
	if !ds.Has(model.ColumnName) {
		sess.Message = "El archivo no tiene la columna '" + model.ColumnName + "'."
	}
	return sess
}

func (s *Service) datasetPath(name string) string {
	if name == "" || filepath.IsAbs(name) || s.dataDir == "" {
		return name
	}
	return filepath.Join(s.dataDir, name)
}

func loadFailureMessage(path string, err error) string {
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) || errors.Is(err, fs.ErrNotExist) {
		return "No se encontró el archivo en la ruta especificada: " + path
	}
	return "Error al cargar el archivo Excel: " + err.Error()
}
