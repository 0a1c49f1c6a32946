package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/metrics"
)

// The layout matches databases written by earlier versions of the
// dashboard and is never migrated.
const createTable = `
CREATE TABLE IF NOT EXISTS valoraciones (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre     TEXT,
	posicion   TEXT,
	club       TEXT,
	valoracion INTEGER,
	comentario TEXT,
	captador   TEXT
)`

const selectRatings = `SELECT id, nombre, posicion, club, valoracion, comentario, captador FROM valoraciones`

// SQLiteStore implements Store on a SQLite file. Every operation opens the
// file, runs, and closes it again so nothing is held between calls.
type SQLiteStore struct {
	path        string
	busyTimeout time.Duration
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore returns a store backed by the database file at path.
func NewSQLiteStore(path string, opts ...Option) (*SQLiteStore, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	s := &SQLiteStore{path: path, busyTimeout: defaultBusyTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string { return s.path }

// Initialize creates the parent directory and the ratings table if needed.
func (s *SQLiteStore) Initialize(ctx context.Context) error {
	const op = "ratings.initialize"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return model.WrapKind(op, model.ErrStorage, eris.Wrapf(err, "sqlite: create dir %s", dir))
		}
	}
	return s.withDB(ctx, op, "initialize", func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, createTable)
		return eris.Wrap(err, "sqlite: create table")
	})
}

// AddRating inserts r and returns it with the id SQLite assigned.
func (s *SQLiteStore) AddRating(ctx context.Context, r model.Rating) (model.Rating, error) {
	err := s.withDB(ctx, "ratings.add", "add", func(db *sql.DB) error {
		res, err := db.ExecContext(ctx,
			`INSERT INTO valoraciones (nombre, posicion, club, valoracion, comentario, captador) VALUES (?, ?, ?, ?, ?, ?)`,
			r.PlayerName, r.Position, r.Club, r.Score, r.Comment, r.ScoutName,
		)
		if err != nil {
			return eris.Wrap(err, "sqlite: insert rating")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return eris.Wrap(err, "sqlite: last insert id")
		}
		r.ID = id
		return nil
	})
	if err != nil {
		return model.Rating{}, err
	}
	return r, nil
}

// ListRatings returns all ratings in insertion order.
func (s *SQLiteStore) ListRatings(ctx context.Context) ([]model.Rating, error) {
	var out []model.Rating
	err := s.withDB(ctx, "ratings.list", "list", func(db *sql.DB) error {
		var err error
		out, err = queryRatings(ctx, db, selectRatings+` ORDER BY id ASC`)
		return err
	})
	return out, err
}

// ListRatingsByPlayer returns the ratings whose player name equals name.
func (s *SQLiteStore) ListRatingsByPlayer(ctx context.Context, name string) ([]model.Rating, error) {
	var out []model.Rating
	err := s.withDB(ctx, "ratings.list_by_player", "list_by_player", func(db *sql.DB) error {
		var err error
		out, err = queryRatings(ctx, db, selectRatings+` WHERE nombre = ? ORDER BY id ASC`, name)
		return err
	})
	return out, err
}

// Count returns the number of rows in the ratings table.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.withDB(ctx, "ratings.count", "count", func(db *sql.DB) error {
		return eris.Wrap(db.QueryRowContext(ctx, `SELECT COUNT(*) FROM valoraciones`).Scan(&n), "sqlite: count")
	})
	return n, err
}

// withDB opens the database, runs fn and closes the handle. Any failure is
// reported as model.ErrStorage.
func (s *SQLiteStore) withDB(ctx context.Context, op, metric string, fn func(*sql.DB) error) (err error) {
	start := time.Now()
	defer func() {
		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultFailure
		}
		metrics.RecordStorageLatency(metric, result, float64(time.Since(start).Nanoseconds())/1e6)
	}()

	db, err := s.open(ctx)
	if err != nil {
		return model.WrapKind(op, model.ErrStorage, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = model.WrapKind(op, model.ErrStorage, eris.Wrap(cerr, "sqlite: close"))
		}
	}()

	return model.WrapKind(op, model.ErrStorage, fn(db))
}

func (s *SQLiteStore) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	// One connection so the pragma applies to every statement.
	db.SetMaxOpenConns(1)
	pragma := fmt.Sprintf("PRAGMA busy_timeout=%d", s.busyTimeout.Milliseconds())
	if _, err := db.ExecContext(ctx, pragma); err != nil {
		_ = db.Close()
		return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
	}
	return db, nil
}

func queryRatings(ctx context.Context, db *sql.DB, query string, args ...any) ([]model.Rating, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query ratings")
	}
	defer rows.Close()

	out := []model.Rating{}
	for rows.Next() {
		r, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate ratings")
}

// Older files may hold NULLs in any column.
func scanRating(rows *sql.Rows) (model.Rating, error) {
	var (
		r                                    model.Rating
		name, position, club, comment, scout sql.NullString
		score                                sql.NullInt64
	)
	if err := rows.Scan(&r.ID, &name, &position, &club, &score, &comment, &scout); err != nil {
		return model.Rating{}, eris.Wrap(err, "sqlite: scan rating")
	}
	r.PlayerName = name.String
	r.Position = position.String
	r.Club = club.String
	r.Score = int(score.Int64)
	r.Comment = comment.String
	r.ScoutName = scout.String
	return r, nil
}
