package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oafund/internal/domain/currency"
	"oafund/internal/domain/exchange"
	"oafund/pkg/logger"
)

var (
	eur = currency.MustLookup("EUR")
	usd = currency.MustLookup("USD")
	gbp = currency.MustLookup("GBP")
)

func TestQueries(t *testing.T) {
	s := NewRateStore(nil, logger.Nop())

	sql, args, err := s.selectQuery(eur)
	require.NoError(t, err)
	assert.Equal(t, "SELECT target_currency, rate::text AS rate, fetched_at FROM fx_rate_snapshots WHERE base_currency = $1 ORDER BY target_currency", sql)
	assert.Equal(t, []any{"EUR"}, args)

	sql, args, err = s.deleteQuery(eur)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM fx_rate_snapshots WHERE base_currency = $1", sql)
	assert.Equal(t, []any{"EUR"}, args)

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	usdRate, gbpRate := decimal.RequireFromString("1.085"), decimal.RequireFromString("0.856")
	sql, args, err = s.insertQuery(eur, exchange.Snapshot{FetchedAt: at, Rates: exchange.Rates{usd: usdRate, gbp: gbpRate}})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO fx_rate_snapshots (base_currency,target_currency,rate,fetched_at) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)", sql)
	assert.Equal(t, []any{"EUR", "GBP", gbpRate, at, "EUR", "USD", usdRate, at}, args)
}

func TestRateStore_Get(t *testing.T) {
	t.Run("returns snapshot", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT .* FROM fx_rate_snapshots WHERE base_currency = \$1`).
			WithArgs("EUR").
			WillReturnRows(pgxmock.NewRows([]string{"target_currency", "rate", "fetched_at"}).
				AddRow("GBP", "0.8560", at).
				AddRow("USD", "1.0850", at).
				AddRow("ZZZ", "1", at))

		snap, ok, err := NewRateStore(mock, logger.Nop()).Get(context.Background(), eur)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, at, snap.FetchedAt)
		assert.Len(t, snap.Rates, 2)
		assert.True(t, snap.Rates[usd].Equal(decimal.RequireFromString("1.085")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent base", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT .* FROM fx_rate_snapshots`).
			WithArgs("EUR").
			WillReturnRows(pgxmock.NewRows([]string{"target_currency", "rate", "fetched_at"}))

		_, ok, err := NewRateStore(mock, logger.Nop()).Get(context.Background(), eur)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		boom := errors.New("connection reset")
		mock.ExpectQuery(`SELECT .* FROM fx_rate_snapshots`).
			WithArgs("EUR").
			WillReturnError(boom)

		_, _, err = NewRateStore(mock, logger.Nop()).Get(context.Background(), eur)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRateStore_Put(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rate := decimal.RequireFromString("1.085")

	t.Run("replaces rows in a transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM fx_rate_snapshots WHERE base_currency = $1")).
			WithArgs("EUR").
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		mock.ExpectExec(`INSERT INTO fx_rate_snapshots`).
			WithArgs("EUR", "USD", rate, at).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err = NewRateStore(mock, logger.Nop()).Put(context.Background(), eur,
			exchange.Snapshot{FetchedAt: at, Rates: exchange.Rates{usd: rate}})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty snapshot only clears", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM fx_rate_snapshots`).
			WithArgs("EUR").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectCommit()

		err = NewRateStore(mock, logger.Nop()).Put(context.Background(), eur, exchange.Snapshot{FetchedAt: at})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		boom := errors.New("numeric field overflow")
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM fx_rate_snapshots`).
			WithArgs("EUR").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec(`INSERT INTO fx_rate_snapshots`).
			WithArgs("EUR", "USD", rate, at).
			WillReturnError(boom)
		mock.ExpectRollback()

		err = NewRateStore(mock, logger.Nop()).Put(context.Background(), eur,
			exchange.Snapshot{FetchedAt: at, Rates: exchange.Rates{usd: rate}})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRateStore_BacksCache(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT .* FROM fx_rate_snapshots`).
		WithArgs("EUR").
		WillReturnRows(pgxmock.NewRows([]string{"target_currency", "rate", "fetched_at"}).
			AddRow("USD", "2", time.Now().UTC()))

	provider := exchange.ProviderFunc(func(context.Context, currency.Currency) (exchange.Rates, error) {
		t.Fatal("fresh persisted snapshot must not hit the provider")
		return nil, nil
	})
	cache := exchange.NewCache(provider, exchange.Config{Store: NewRateStore(mock, logger.Nop()), Logger: logger.Nop()})

	rate, err := cache.Rate(context.Background(), eur, usd)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(2)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
