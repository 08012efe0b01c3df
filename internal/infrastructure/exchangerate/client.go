// Package exchangerate fetches exchange rates from exchangerate-api.com
// style endpoints returning {"rates": {"CODE": number}}.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"oafund/internal/domain/currency"
	"oafund/internal/domain/exchange"
	"oafund/pkg/logger"
)

// DefaultBaseURL is the public latest-rates endpoint.
const DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest"

// Config configures the client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{BaseURL: DefaultBaseURL, Timeout: 10 * time.Second}
}

// Client implements exchange.Provider over HTTP. It performs no caching
// and no retries.
type Client struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

var _ exchange.Provider = (*Client)(nil)

// NewClient creates a client. Zero config fields fall back to DefaultConfig.
func NewClient(cfg Config, log *logger.Logger) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if log == nil {
		log = logger.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log.WithComponent("exchangerate-api"),
	}
}

type latestResponse struct {
	Rates map[string]json.Number `json:"rates"`
}

// Fetch returns the rates for base, restricted to catalog currencies.
func (c *Client) Fetch(ctx context.Context, base currency.Currency) (exchange.Rates, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, base.Code())
	log := c.log.WithContext(ctx)
	log.Debugw("fetching rates", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d for %s", resp.StatusCode, base.Code())
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var result latestResponse
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	rates := make(exchange.Rates, len(result.Rates))
	skipped := 0
	for code, raw := range result.Rates {
		target, err := currency.Lookup(code)
		if err != nil {
			skipped++
			continue
		}
		rate, err := decimal.NewFromString(raw.String())
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		rates[target] = rate
	}

	log.Infow("fetched rates", "base", base.Code(), "rates", len(rates), "skipped", skipped)
	return rates, nil
}
