package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/garnizeh/portfolio/internal/db"
	"github.com/garnizeh/portfolio/pkg/repository"
)

// SQLiteRepo implements repository interfaces on top of a single unit of
// work. Instances are created by Store.Tx and must not outlive it.
type SQLiteRepo struct {
	q   db.Querier
	now func() time.Time
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ProfileRepo = (*SQLiteRepo)(nil)
var _ repository.ProjectRepo = (*SQLiteRepo)(nil)
var _ repository.SkillRepo = (*SQLiteRepo)(nil)
var _ repository.ExperienceRepo = (*SQLiteRepo)(nil)
var _ repository.BudgetRepo = (*SQLiteRepo)(nil)

// Store hands out transaction-bound repositories.
type Store struct {
	conn   *db.DB
	logger *slog.Logger
	now    func() time.Time
}

var _ repository.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to stamp budget requests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(conn *db.DB, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	s := &Store{conn: conn, logger: logger, now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tx runs fn with repositories bound to one transaction.
func (s *Store) Tx(ctx context.Context, fn func(r repository.Repos) error) error {
	err := s.conn.WithTx(ctx, func(q db.Querier) error {
		repo := &SQLiteRepo{q: q, now: s.now}
		return fn(repo.Repos())
	})
	if err != nil {
		s.logger.Debug("unit of work rolled back", slog.Any("err", err))
	}
	return err
}

// Repos exposes r through every repository interface.
func (r *SQLiteRepo) Repos() repository.Repos {
	return repository.Repos{
		Profiles:    r,
		Projects:    r,
		Skills:      r,
		Experiences: r,
		Budgets:     r,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteRepo) exec(ctx context.Context, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return r.q.ExecContext(ctx, query, args...)
}

func (r *SQLiteRepo) queryRow(ctx context.Context, b sq.Sqlizer) (*sql.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return r.q.QueryRowContext(ctx, query, args...), nil
}

func (r *SQLiteRepo) query(ctx context.Context, b sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return r.q.QueryContext(ctx, query, args...)
}

func (r *SQLiteRepo) insert(ctx context.Context, b sq.InsertBuilder) (int64, error) {
	res, err := r.exec(ctx, b)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// deleteByID removes the row and reports NotFound when nothing matched.
func (r *SQLiteRepo) deleteByID(ctx context.Context, table, entity string, id int64) error {
	res, err := r.exec(ctx, sq.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", entity, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", entity, id, err)
	}
	if n == 0 {
		return &repository.NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

// scanList collects rows with scan; an empty result is a non-nil slice so
// it encodes as [] rather than null.
func scanList[T any](rows *sql.Rows, scan func(scanner) (*T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
