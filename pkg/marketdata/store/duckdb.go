package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"

	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// BarStore persists daily bars in a DuckDB database. Pass ":memory:" as the
// path for an ephemeral store.
type BarStore struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

// NewBarStore opens the database at path and creates the bars table if needed.
func NewBarStore(path string) (*BarStore, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to open DuckDB connection", err)
	}

	s := &BarStore{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}

	if err := s.initialize(); err != nil {
		db.Close()

		return nil, err
	}

	return s, nil
}

func (s *BarStore) initialize() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS bars (
			id TEXT,
			symbol TEXT,
			time TIMESTAMP,
			open DOUBLE,
			high DOUBLE,
			low DOUBLE,
			close DOUBLE,
			volume DOUBLE
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, "failed to create bars table", err)
	}

	return nil
}

// WriteBars inserts the bars for the symbol inside a single transaction.
func (s *BarStore) WriteBars(symbol string, bars []types.Bar) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, "failed to begin transaction", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO bars (id, symbol, time, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, "failed to prepare insert statement", err)
	}
	defer stmt.Close()

	for _, b := range bars {
		_, err = stmt.Exec(
			uuid.New().String(),
			symbol,
			b.Time,
			b.Open,
			b.High,
			b.Low,
			b.Close,
			b.Volume,
		)
		if err != nil {
			return errors.Wrap(errors.ErrCodeStoreFailed, "failed to insert bar", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailed, "failed to commit transaction", err)
	}

	return nil
}

// ReadBars returns the stored bars for the symbol between start and end,
// inclusive, in ascending time order.
func (s *BarStore) ReadBars(symbol string, start time.Time, end time.Time) ([]types.Bar, error) {
	query, args, err := s.sq.
		Select("time", "open", "high", "low", "close", "volume").
		From("bars").
		Where(sq.Eq{"symbol": symbol}).
		Where(sq.GtOrEq{"time": start}).
		Where(sq.LtOrEq{"time": end}).
		OrderBy("time ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to build select query", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to query bars", err)
	}
	defer rows.Close()

	var bars []types.Bar

	for rows.Next() {
		var b types.Bar
		if err := rows.Scan(&b.Time, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to scan bar", err)
		}

		bars = append(bars, b)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailed, "failed to iterate bars", err)
	}

	return bars, nil
}

// Count returns the number of stored bars for the symbol.
func (s *BarStore) Count(symbol string) (int, error) {
	query, args, err := s.sq.
		Select("COUNT(*)").
		From("bars").
		Where(sq.Eq{"symbol": symbol}).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeStoreFailed, "failed to build count query", err)
	}

	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, errors.Wrap(errors.ErrCodeStoreFailed, "failed to count bars", err)
	}

	return n, nil
}

// Close closes the underlying database connection.
func (s *BarStore) Close() error {
	return s.db.Close()
}
