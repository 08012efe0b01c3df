package postgres

import (
	"context"
	"fmt"

	"oafund/pkg/logger"
	"oafund/pkg/numerator"
)

const sequenceTable = "oafund_sequences"

// SequenceSchema creates the document counter table.
const SequenceSchema = `
CREATE TABLE IF NOT EXISTS oafund_sequences (
    key         TEXT   PRIMARY KEY,
    current_val BIGINT NOT NULL
)`

// SequenceStore keeps numerator counters. Every reservation is a single
// upsert so concurrent processes never hand out the same number.
type SequenceStore struct {
	db  DBTX
	log *logger.Logger
}

var _ numerator.Sequence = (*SequenceStore)(nil)

// NewSequenceStore creates a store on db.
func NewSequenceStore(db DBTX, log *logger.Logger) *SequenceStore {
	if log == nil {
		log = logger.Default()
	}
	return &SequenceStore{db: db, log: log.WithComponent("sequence-store")}
}

// Migrate creates the counter table if needed.
func (s *SequenceStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, SequenceSchema); err != nil {
		return fmt.Errorf("create %s: %w", sequenceTable, err)
	}
	return nil
}

func (s *SequenceStore) reserveQuery(key string, n int64) (string, []any, error) {
	return builder().
		Insert(sequenceTable).
		Columns("key", "current_val").
		Values(key, n).
		Suffix("ON CONFLICT (key) DO UPDATE SET current_val = " + sequenceTable + ".current_val + EXCLUDED.current_val RETURNING current_val").
		ToSql()
}

// Reserve implements numerator.Sequence.
func (s *SequenceStore) Reserve(ctx context.Context, key string, n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("reserve %d numbers: count must be positive", n)
	}
	sql, args, err := s.reserveQuery(key, n)
	if err != nil {
		return 0, fmt.Errorf("build upsert: %w", err)
	}

	var last int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&last); err != nil {
		return 0, fmt.Errorf("reserve %s: %w", key, err)
	}

	s.log.WithContext(ctx).Debugw("numbers reserved", "key", key, "count", n, "last", last)
	return last, nil
}
