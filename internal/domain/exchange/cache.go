package exchange

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"oafund/internal/core/apperror"
	"oafund/internal/domain/currency"
	"oafund/internal/domain/money"
	"oafund/pkg/logger"
)

var tracer = otel.Tracer("oafund/exchange")

// DefaultMaxAge is the default freshness window of a snapshot.
const DefaultMaxAge = 24 * time.Hour

// Config configures a Cache. Zero fields fall back to defaults.
type Config struct {
	// MaxAge is the freshness window; snapshots this old or older are refetched.
	MaxAge time.Duration

	// Store holds snapshots (default: a fresh MemoryStore owned by the cache).
	Store Store

	// Now returns the current time (default: time.Now).
	Now func() time.Time

	// Logger receives refresh diagnostics (default: logger.Default()).
	Logger *logger.Logger

	// Metrics is optional.
	Metrics *Metrics
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{MaxAge: DefaultMaxAge}
}

// Cache serves exchange rates from per-base-currency snapshots and refreshes
// a snapshot from the provider when it is absent, expired, or lacks the
// requested target.
//
// Concurrent Rate calls that miss on the same base share one provider call.
// A target the provider did not supply is not asked for again until a newer
// snapshot of its base exists.
type Cache struct {
	group    singleflight.Group
	mu       sync.Mutex
	missing  map[pair]time.Time
	provider Provider
	store    Store
	maxAge   time.Duration
	now      func() time.Time
	log      *logger.Logger
	metrics  *Metrics
}

// NewCache creates a cache in front of provider.
func NewCache(provider Provider, cfg Config) *Cache {
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultMaxAge
	}
	if cfg.Store == nil {
		cfg.Store = NewMemoryStore()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	return &Cache{
		provider: provider,
		store:    cfg.Store,
		maxAge:   cfg.MaxAge,
		now:      cfg.Now,
		log:      cfg.Logger.WithComponent("exchange_cache"),
		metrics:  cfg.Metrics,
		missing:  make(map[pair]time.Time),
	}
}

type pair struct{ base, target currency.Currency }

// Rate returns the rate converting one unit of from into to.
func (c *Cache) Rate(ctx context.Context, from, to currency.Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	snap, ok, err := c.store.Get(ctx, from)
	if err != nil {
		return decimal.Zero, apperror.NewInternal(err).WithDetail("base", from.Code())
	}

	var reason string
	switch {
	case !ok:
		reason = MissAbsent
	case snap.Age(c.now()) >= c.maxAge:
		reason = MissExpired
	default:
		if rate, found := snap.Rates[to]; found {
			c.metrics.hit()
			return rate, nil
		}
		if c.knownMissing(from, to, snap.FetchedAt) {
			return decimal.Zero, apperror.NewMissingRate(from.Code(), to.Code())
		}
		reason = MissMissingTarget
	}
	c.metrics.miss(reason)

	// The shared refresh outlives any single caller; each caller still
	// stops waiting when its own ctx is done.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(from.Code(), func() (any, error) {
		return c.refresh(shared, from, to, reason)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return decimal.Zero, ctx.Err()
	}
	if res.Err != nil {
		return decimal.Zero, res.Err
	}
	snap = res.Val.(Snapshot)

	rate, found := snap.Rates[to]
	if !found {
		c.markMissing(from, to, snap.FetchedAt)
		return decimal.Zero, apperror.NewMissingRate(from.Code(), to.Code())
	}
	return rate, nil
}

// knownMissing reports whether a snapshot at least as new as fetchedAt was
// already refreshed for target and lacked it.
func (c *Cache) knownMissing(base, target currency.Currency, fetchedAt time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	at, ok := c.missing[pair{base, target}]
	return ok && !fetchedAt.After(at)
}

func (c *Cache) markMissing(base, target currency.Currency, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.missing[pair{base, target}] = fetchedAt
}

// refresh calls the provider once and replaces the stored snapshot of base.
func (c *Cache) refresh(ctx context.Context, base, target currency.Currency, reason string) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "exchange.refresh",
		trace.WithAttributes(
			attribute.String("fx.base", base.Code()),
			attribute.String("fx.target", target.Code()),
			attribute.String("fx.reason", reason),
		))
	defer span.End()

	log := c.log.WithContext(ctx)
	started := time.Now()

	rates, err := c.provider.Fetch(ctx, base)
	c.metrics.refreshed(time.Since(started).Seconds(), err != nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider fetch failed")
		log.Warnw("exchange rate refresh failed", "base", base.Code(), "error", err)
		if apperror.IsAppError(err) {
			return Snapshot{}, err
		}
		return Snapshot{}, apperror.NewProvider("rate provider", err).WithDetail("base", base.Code())
	}

	snap := Snapshot{FetchedAt: c.now(), Rates: rates}
	if err := c.store.Put(ctx, base, snap); err != nil {
		return Snapshot{}, apperror.NewInternal(fmt.Errorf("store %s snapshot: %w", base.Code(), err))
	}

	log.Debugw("exchange rates refreshed", "base", base.Code(), "reason", reason, "rates", len(rates))
	return snap, nil
}

// ExchangeFunc adapts the cache to money.ExchangeFunc for use with
// Money.ConvertTo; ctx bounds any provider call it triggers.
func (c *Cache) ExchangeFunc(ctx context.Context) money.ExchangeFunc {
	return func(from, to currency.Currency) (decimal.Decimal, error) {
		return c.Rate(ctx, from, to)
	}
}
