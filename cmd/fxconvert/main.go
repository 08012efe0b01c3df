// Package main converts an amount between currencies using the cached
// exchange rate service.
//
// Usage:
//
//	fxconvert -amount 100 -from EUR -to USD,GBP
//
// Settings come from config.yaml and OAFUND_* variables (see internal/config).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"oafund/internal/config"
	"oafund/internal/domain/currency"
	"oafund/internal/domain/exchange"
	"oafund/internal/domain/money"
	"oafund/internal/infrastructure/exchangerate"
	"oafund/internal/infrastructure/storage/postgres"
	"oafund/internal/infrastructure/storage/redis"
	"oafund/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	amount := flag.String("amount", "", "Amount to convert, e.g. 100.50")
	from := flag.String("from", "", "Source currency code")
	to := flag.String("to", "", "Comma-separated target currency codes")
	migrate := flag.Bool("migrate", false, "Create the postgres tables before converting")
	flag.Parse()

	if *amount == "" || *from == "" || *to == "" {
		flag.Usage()
		return fmt.Errorf("-amount, -from and -to are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.Logging.Level, Development: cfg.Logging.Development})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := logger.WithLogger(context.Background(), log)

	source, err := currency.Lookup(*from)
	if err != nil {
		return err
	}
	value, err := money.NewFromString(*amount, source)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, cfg, log, *migrate)
	if err != nil {
		return err
	}
	defer closeStore()

	provider := exchangerate.NewClient(exchangerate.Config{
		BaseURL: cfg.Exchange.ProviderURL,
		Timeout: cfg.Exchange.Timeout,
	}, log)

	cache := exchange.NewCache(provider, exchange.Config{
		MaxAge:  cfg.Exchange.MaxAge,
		Store:   store,
		Logger:  log,
		Metrics: exchange.NewMetrics(prometheus.DefaultRegisterer),
	})

	for _, code := range strings.Split(*to, ",") {
		target, err := currency.Lookup(code)
		if err != nil {
			return err
		}
		converted, err := value.ConvertTo(target, cache.ExchangeFunc(ctx))
		if err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", value, converted)
	}
	return nil
}

// openStore builds the configured snapshot store and returns its closer.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger, migrate bool) (exchange.Store, func(), error) {
	switch cfg.Exchange.Store {
	case config.StorePostgres:
		poolCfg := postgres.DefaultPoolConfig(cfg.Postgres.DSN)
		poolCfg.MaxConns = cfg.Postgres.MaxConns
		pool, err := postgres.NewPool(ctx, poolCfg)
		if err != nil {
			return nil, nil, err
		}
		store := postgres.NewRateStore(pool, log)
		if migrate {
			if err := store.Migrate(ctx); err != nil {
				pool.Close()
				return nil, nil, err
			}
			if err := postgres.NewSequenceStore(pool, log).Migrate(ctx); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		logger.Info(ctx, "using postgres snapshot store")
		return store, pool.Close, nil

	case config.StoreRedis:
		client, err := redis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, err
		}
		store, err := redis.NewRateStore(client, cfg.Redis.TTL, log)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		logger.Info(ctx, "using redis snapshot store")
		return store, func() { _ = client.Close() }, nil

	default:
		return exchange.NewMemoryStore(), func() {}, nil
	}
}
