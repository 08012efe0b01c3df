package postgres

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"oafund/internal/domain/currency"
	"oafund/internal/domain/exchange"
	"oafund/pkg/logger"
)

const snapshotTable = "fx_rate_snapshots"

// Schema creates the snapshot table. One row per (base, target) pair; all
// rows of a base share the fetch timestamp.
const Schema = `
CREATE TABLE IF NOT EXISTS fx_rate_snapshots (
    base_currency   CHAR(3)     NOT NULL,
    target_currency CHAR(3)     NOT NULL,
    rate            NUMERIC     NOT NULL,
    fetched_at      TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (base_currency, target_currency)
)`

// DBTX is satisfied by *pgxpool.Pool and by pgxmock pools.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// RateStore persists exchange rate snapshots so that several processes
// share one freshness window.
type RateStore struct {
	db  DBTX
	log *logger.Logger
}

// NewRateStore creates a store on db.
func NewRateStore(db DBTX, log *logger.Logger) *RateStore {
	if log == nil {
		log = logger.Default()
	}
	return &RateStore{db: db, log: log.WithComponent("fx-store-postgres")}
}

var _ exchange.Store = (*RateStore)(nil)

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (s *RateStore) Builder() squirrel.StatementBuilderType {
	return builder()
}

// Migrate creates the snapshot table if needed.
func (s *RateStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create %s: %w", snapshotTable, err)
	}
	return nil
}

type rateRow struct {
	Target    string    `db:"target_currency"`
	Rate      string    `db:"rate"`
	FetchedAt time.Time `db:"fetched_at"`
}

func (s *RateStore) selectQuery(base currency.Currency) (string, []any, error) {
	return s.Builder().
		Select("target_currency", "rate::text AS rate", "fetched_at").
		From(snapshotTable).
		Where(squirrel.Eq{"base_currency": base.Code()}).
		OrderBy("target_currency").
		ToSql()
}

// Get loads the snapshot of base. Targets no longer in the catalog are skipped.
func (s *RateStore) Get(ctx context.Context, base currency.Currency) (exchange.Snapshot, bool, error) {
	sql, args, err := s.selectQuery(base)
	if err != nil {
		return exchange.Snapshot{}, false, fmt.Errorf("build query: %w", err)
	}

	var rows []rateRow
	if err := pgxscan.Select(ctx, s.db, &rows, sql, args...); err != nil {
		return exchange.Snapshot{}, false, fmt.Errorf("load snapshot %s: %w", base.Code(), err)
	}
	if len(rows) == 0 {
		return exchange.Snapshot{}, false, nil
	}

	snap := exchange.Snapshot{FetchedAt: rows[0].FetchedAt, Rates: make(exchange.Rates, len(rows))}
	for _, r := range rows {
		target, err := currency.Lookup(r.Target)
		if err != nil {
			s.log.WithContext(ctx).Warnw("skipping rate for unknown currency",
				"base", base.Code(), "target", r.Target)
			continue
		}
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return exchange.Snapshot{}, false, fmt.Errorf("parse rate %s/%s: %w", base.Code(), r.Target, err)
		}
		snap.Rates[target] = rate
	}
	return snap, true, nil
}

func (s *RateStore) deleteQuery(base currency.Currency) (string, []any, error) {
	return s.Builder().
		Delete(snapshotTable).
		Where(squirrel.Eq{"base_currency": base.Code()}).
		ToSql()
}

func (s *RateStore) insertQuery(base currency.Currency, snap exchange.Snapshot) (string, []any, error) {
	targets := make([]currency.Currency, 0, len(snap.Rates))
	for c := range snap.Rates {
		targets = append(targets, c)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].Code() < targets[j].Code() })

	q := s.Builder().
		Insert(snapshotTable).
		Columns("base_currency", "target_currency", "rate", "fetched_at")
	for _, t := range targets {
		q = q.Values(base.Code(), t.Code(), snap.Rates[t], snap.FetchedAt)
	}
	return q.ToSql()
}

// Put replaces every row of base in one transaction. A snapshot without
// rates only clears the base.
func (s *RateStore) Put(ctx context.Context, base currency.Currency, snap exchange.Snapshot) error {
	delSQL, delArgs, err := s.deleteQuery(base)
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, delSQL, delArgs...); err != nil {
		return fmt.Errorf("clear snapshot %s: %w", base.Code(), err)
	}

	if len(snap.Rates) > 0 {
		insSQL, insArgs, err := s.insertQuery(base, snap)
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := tx.Exec(ctx, insSQL, insArgs...); err != nil {
			return fmt.Errorf("store snapshot %s: %w", base.Code(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot %s: %w", base.Code(), err)
	}

	s.log.WithContext(ctx).Debugw("snapshot stored", "base", base.Code(), "rates", len(snap.Rates))
	return nil
}
