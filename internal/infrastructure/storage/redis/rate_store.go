// Package redis provides a Redis-backed exchange rate snapshot store.
// Snapshots are JSON documents compressed with zstd.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"oafund/internal/domain/currency"
	"oafund/internal/domain/exchange"
	"oafund/pkg/logger"
)

const keyPrefix = "oafund:fx:"

// DefaultTTL keeps snapshots a little longer than the default freshness
// window so that an expired snapshot is still visible for diagnostics.
const DefaultTTL = 48 * time.Hour

// Client is the subset of redis.Cmdable used by the store.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// NewClient parses a redis:// URL and verifies the connection.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// RateStore keeps one key per base currency.
type RateStore struct {
	client  Client
	ttl     time.Duration
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	log     *logger.Logger
}

var _ exchange.Store = (*RateStore)(nil)

// NewRateStore creates a store. A non-positive ttl selects DefaultTTL.
func NewRateStore(client Client, ttl time.Duration, log *logger.Logger) (*RateStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Default()
	}
	return &RateStore{
		client:  client,
		ttl:     ttl,
		encoder: encoder,
		decoder: decoder,
		log:     log.WithComponent("fx-store-redis"),
	}, nil
}

type snapshotDoc struct {
	FetchedAt time.Time                  `json:"fetched_at"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

func key(base currency.Currency) string {
	return keyPrefix + base.Code()
}

// Get loads the snapshot of base.
func (s *RateStore) Get(ctx context.Context, base currency.Currency) (exchange.Snapshot, bool, error) {
	raw, err := s.client.Get(ctx, key(base)).Bytes()
	if errors.Is(err, redis.Nil) {
		return exchange.Snapshot{}, false, nil
	}
	if err != nil {
		return exchange.Snapshot{}, false, fmt.Errorf("get snapshot %s: %w", base.Code(), err)
	}

	plain, err := s.decoder.DecodeAll(raw, nil)
	if err != nil {
		return exchange.Snapshot{}, false, fmt.Errorf("decompress snapshot %s: %w", base.Code(), err)
	}

	var doc snapshotDoc
	if err := json.Unmarshal(plain, &doc); err != nil {
		return exchange.Snapshot{}, false, fmt.Errorf("decode snapshot %s: %w", base.Code(), err)
	}

	snap := exchange.Snapshot{FetchedAt: doc.FetchedAt, Rates: make(exchange.Rates, len(doc.Rates))}
	for code, rate := range doc.Rates {
		target, err := currency.Lookup(code)
		if err != nil {
			s.log.WithContext(ctx).Warnw("skipping rate for unknown currency",
				"base", base.Code(), "target", code)
			continue
		}
		snap.Rates[target] = rate
	}
	return snap, true, nil
}

// Put overwrites the snapshot of base and resets its TTL.
func (s *RateStore) Put(ctx context.Context, base currency.Currency, snap exchange.Snapshot) error {
	doc := snapshotDoc{FetchedAt: snap.FetchedAt.UTC(), Rates: make(map[string]decimal.Decimal, len(snap.Rates))}
	for c, rate := range snap.Rates {
		doc.Rates[c.Code()] = rate
	}

	plain, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", base.Code(), err)
	}
	payload := s.encoder.EncodeAll(plain, nil)

	if err := s.client.Set(ctx, key(base), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("set snapshot %s: %w", base.Code(), err)
	}

	s.log.WithContext(ctx).Debugw("snapshot stored",
		"base", base.Code(), "rates", len(snap.Rates), "bytes", len(payload))
	return nil
}
