package exchange

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oafund/internal/core/apperror"
	"oafund/internal/domain/currency"
	"oafund/internal/domain/money"
	"oafund/pkg/logger"
)

var (
	eur = currency.MustLookup("EUR")
	usd = currency.MustLookup("USD")
	gbp = currency.MustLookup("GBP")
	chf = currency.MustLookup("CHF")
)

// countingProvider returns the configured rates and records every call.
type countingProvider struct {
	mu    sync.Mutex
	calls []currency.Currency
	rates Rates
	err   error
}

func (p *countingProvider) Fetch(_ context.Context, base currency.Currency) (Rates, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, base)
	if p.err != nil {
		return nil, p.err
	}
	out := make(Rates, len(p.rates))
	for k, v := range p.rates {
		out[k] = v
	}
	return out, nil
}

func (p *countingProvider) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(p Provider, clk *clock, reg prometheus.Registerer) *Cache {
	return NewCache(p, Config{
		Now:     clk.now,
		Logger:  logger.Nop(),
		Metrics: NewMetrics(reg),
	})
}

func TestRate_MissThenHit(t *testing.T) {
	p := &countingProvider{rates: Rates{usd: decimal.RequireFromString("1.0850"), gbp: decimal.RequireFromString("0.8560")}}
	clk := &clock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	reg := prometheus.NewRegistry()
	c := newTestCache(p, clk, reg)
	ctx := context.Background()

	rate, err := c.Rate(ctx, eur, usd)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.085")))
	assert.Equal(t, 1, p.count())

	clk.advance(time.Hour)
	rate, err = c.Rate(ctx, eur, gbp)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.856")))
	assert.Equal(t, 1, p.count(), "fresh snapshot must not call the provider")

	m := c.metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMisses.WithLabelValues(MissAbsent)))
}

func TestRate_ExpiredSnapshotIsRefreshedOnce(t *testing.T) {
	p := &countingProvider{rates: Rates{usd: decimal.NewFromInt(1)}}
	clk := &clock{t: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	c := newTestCache(p, clk, prometheus.NewRegistry())
	ctx := context.Background()

	_, err := c.Rate(ctx, eur, usd)
	require.NoError(t, err)

	clk.advance(DefaultMaxAge)
	p.rates = Rates{usd: decimal.RequireFromString("1.2")}

	rate, err := c.Rate(ctx, eur, usd)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.2")))
	assert.Equal(t, 2, p.count())

	_, err = c.Rate(ctx, eur, usd)
	require.NoError(t, err)
	assert.Equal(t, 2, p.count())

	snap, ok, err := c.store.Get(ctx, eur)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, clk.t, snap.FetchedAt)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.CacheMisses.WithLabelValues(MissExpired)))
}

func TestRate_CustomMaxAge(t *testing.T) {
	p := &countingProvider{rates: Rates{usd: decimal.NewFromInt(1)}}
	clk := &clock{t: time.Now()}
	c := NewCache(p, Config{MaxAge: time.Minute, Now: clk.now, Logger: logger.Nop()})
	ctx := context.Background()

	_, err := c.Rate(ctx, eur, usd)
	require.NoError(t, err)
	clk.advance(59 * time.Second)
	_, err = c.Rate(ctx, eur, usd)
	require.NoError(t, err)
	assert.Equal(t, 1, p.count())

	clk.advance(time.Second)
	_, err = c.Rate(ctx, eur, usd)
	require.NoError(t, err)
	assert.Equal(t, 2, p.count())
}

func TestRate_SameCurrency(t *testing.T) {
	p := &countingProvider{}
	c := newTestCache(p, &clock{t: time.Now()}, nil)

	rate, err := c.Rate(context.Background(), eur, eur)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
	assert.Zero(t, p.count())
}

func TestRate_FreshSnapshotMissingTargetRefreshes(t *testing.T) {
	p := &countingProvider{rates: Rates{usd: decimal.NewFromInt(1)}}
	clk := &clock{t: time.Now()}
	c := newTestCache(p, clk, prometheus.NewRegistry())
	ctx := context.Background()

	_, err := c.Rate(ctx, eur, usd)
	require.NoError(t, err)

	p.rates[chf] = decimal.RequireFromString("0.97")
	rate, err := c.Rate(ctx, eur, chf)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.97")))
	assert.Equal(t, 2, p.count())
}

func TestRate_TargetUnknownToProvider(t *testing.T) {
	p := &countingProvider{rates: Rates{usd: decimal.NewFromInt(1)}}
	c := newTestCache(p, &clock{t: time.Now()}, nil)

	_, err := c.Rate(context.Background(), eur, chf)
	require.Error(t, err)
	assert.True(t, apperror.IsMissingRate(err))
	assert.Equal(t, 1, p.count())
}

func TestRate_ProviderErrorPropagates(t *testing.T) {
	boom := errors.New("dial tcp: connection refused")
	p := &countingProvider{err: boom}
	reg := prometheus.NewRegistry()
	c := newTestCache(p, &clock{t: time.Now()}, reg)
	ctx := context.Background()

	_, err := c.Rate(ctx, eur, usd)
	require.Error(t, err)
	assert.True(t, apperror.IsProvider(err))
	assert.ErrorIs(t, err, boom)

	_, err = c.Rate(ctx, eur, usd)
	require.Error(t, err)
	assert.Equal(t, 2, p.count(), "no retry inside a call, no caching of failures")
	assert.Equal(t, 2.0, testutil.ToFloat64(c.metrics.RefreshFailures))
}

func TestRate_NoStaleFallback(t *testing.T) {
	p := &countingProvider{rates: Rates{usd: decimal.NewFromInt(1)}}
	clk := &clock{t: time.Now()}
	c := newTestCache(p, clk, nil)
	ctx := context.Background()

	_, err := c.Rate(ctx, eur, usd)
	require.NoError(t, err)

	clk.advance(2 * DefaultMaxAge)
	p.err = errors.New("503")
	_, err = c.Rate(ctx, eur, usd)
	assert.True(t, apperror.IsProvider(err))
}

func TestRate_SeparateCachesAreIsolated(t *testing.T) {
	p := &countingProvider{rates: Rates{usd: decimal.NewFromInt(1)}}
	clk := &clock{t: time.Now()}
	ctx := context.Background()

	_, err := newTestCache(p, clk, nil).Rate(ctx, eur, usd)
	require.NoError(t, err)
	_, err = newTestCache(p, clk, nil).Rate(ctx, eur, usd)
	require.NoError(t, err)

	assert.Equal(t, 2, p.count())
}

func TestExchangeFunc_ConvertsMoney(t *testing.T) {
	p := ProviderFunc(func(_ context.Context, base currency.Currency) (Rates, error) {
		require.Equal(t, eur, base)
		return Rates{usd: decimal.NewFromInt(2)}, nil
	})
	c := newTestCache(p, &clock{t: time.Now()}, nil)

	got, err := money.NewFromInt(100, eur).ConvertTo(usd, c.ExchangeFunc(context.Background()))
	require.NoError(t, err)

	eq, err := got.Equal(money.NewFromInt(200, usd))
	require.NoError(t, err)
	assert.True(t, eq)
}

// blockingProvider holds every Fetch until release is closed.
type blockingProvider struct {
	countingProvider
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingProvider(rates Rates) *blockingProvider {
	return &blockingProvider{
		countingProvider: countingProvider{rates: rates},
		started:          make(chan struct{}),
		release:          make(chan struct{}),
	}
}

func (p *blockingProvider) Fetch(ctx context.Context, base currency.Currency) (Rates, error) {
	p.once.Do(func() { close(p.started) })
	<-p.release
	return p.countingProvider.Fetch(ctx, base)
}

// gatedStore counts lookups so tests know when callers are past the store.
type gatedStore struct {
	*MemoryStore
	gets atomic.Int32
}

func (s *gatedStore) Get(ctx context.Context, base currency.Currency) (Snapshot, bool, error) {
	defer s.gets.Add(1)
	return s.MemoryStore.Get(ctx, base)
}

func TestRate_ConcurrentCallersShareOneRefresh(t *testing.T) {
	const callers = 20
	p := newBlockingProvider(Rates{usd: decimal.RequireFromString("1.1")})
	store := &gatedStore{MemoryStore: NewMemoryStore()}
	c := NewCache(p, Config{Store: store, Logger: logger.Nop()})
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rate, err := c.Rate(ctx, eur, usd)
			if err == nil && !rate.Equal(decimal.RequireFromString("1.1")) {
				err = errors.New("unexpected rate " + rate.String())
			}
			errs <- err
		}()
	}

	<-p.started
	require.Eventually(t, func() bool { return store.gets.Load() == callers },
		time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	close(p.release)

	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, p.count())
}

func TestRate_UnsuppliedTargetIsNotRefetchedWithinWindow(t *testing.T) {
	p := &countingProvider{rates: Rates{usd: decimal.NewFromInt(1)}}
	clk := &clock{t: time.Now()}
	c := newTestCache(p, clk, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := c.Rate(ctx, eur, chf)
		assert.True(t, apperror.IsMissingRate(err))
	}
	assert.Equal(t, 1, p.count())

	_, err := c.Rate(ctx, eur, usd)
	require.NoError(t, err)
	assert.Equal(t, 1, p.count())

	clk.advance(DefaultMaxAge)
	p.rates[chf] = decimal.RequireFromString("0.97")
	rate, err := c.Rate(ctx, eur, chf)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.97")))
	assert.Equal(t, 2, p.count())
}

func TestRate_StoredSnapshotMissingTargetRefreshesOnce(t *testing.T) {
	clk := &clock{t: time.Now()}
	store := NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), eur,
		Snapshot{FetchedAt: clk.now(), Rates: Rates{usd: decimal.NewFromInt(1)}}))

	p := &countingProvider{rates: Rates{usd: decimal.NewFromInt(1)}}
	c := NewCache(p, Config{Store: store, Now: clk.now, Logger: logger.Nop()})

	for i := 0; i < 3; i++ {
		_, err := c.Rate(context.Background(), eur, gbp)
		assert.True(t, apperror.IsMissingRate(err))
	}
	assert.Equal(t, 1, p.count())
}

func TestRate_CancelledCallerDoesNotFailOthers(t *testing.T) {
	p := newBlockingProvider(Rates{usd: decimal.RequireFromString("1.1")})
	store := &gatedStore{MemoryStore: NewMemoryStore()}
	c := NewCache(p, Config{Store: store, Logger: logger.Nop()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	first := make(chan error, 1)
	go func() {
		_, err := c.Rate(ctx, eur, usd)
		first <- err
	}()
	<-p.started

	second := make(chan error, 1)
	go func() {
		_, err := c.Rate(context.Background(), eur, usd)
		second <- err
	}()
	require.Eventually(t, func() bool { return store.gets.Load() == 2 },
		time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(p.release)
	assert.NoError(t, <-second)
	assert.Equal(t, 1, p.count())

	rate, err := c.Rate(context.Background(), eur, usd)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.1")))
}
