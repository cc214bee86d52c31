package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/fahim1105/seu-matrimony/internal/logger"
)

type sqliteMedium struct {
	db  *DB
	now func() time.Time
}

// NewSQLiteMedium opens (creating if needed) the sqlite database at dsn,
// applies migrations and returns it as a [Medium].
func NewSQLiteMedium(ctx context.Context, dsn string, log *logger.Logger) (Medium, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newSQLiteMedium(db), nil
}

func newSQLiteMedium(db *DB) *sqliteMedium {
	return &sqliteMedium{db: db, now: time.Now}
}

func (s *sqliteMedium) Get(key string) (string, bool, error) {
	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRow(query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqliteMedium.Get").Str("key", key).Msg("error reading value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqliteMedium) Set(key, value string) error {
	query, args, err := buildUpsertValueQuery(key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		s.db.logger.Err(err).Str("func", "sqliteMedium.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteMedium) Delete(key string) error {
	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SetMany upserts all values in one transaction, in key order.
func (s *sqliteMedium) SetMany(values map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	at := s.now().UTC()
	for _, key := range slices.Sorted(maps.Keys(values)) {
		query, args, err := buildUpsertValueQuery(key, values[key], at)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.Exec(query, args...); err != nil {
			s.db.logger.Err(err).Str("func", "sqliteMedium.SetMany").Str("key", key).Msg("error writing value in transaction")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqliteMedium) Close() error {
	return s.db.Close()
}
