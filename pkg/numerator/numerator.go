// Package numerator hands out sequential document numbers such as
// INV-2024-00001.
package numerator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Reset selects when a counter starts again at 1.
type Reset string

const (
	ResetYearly  Reset = "year"
	ResetMonthly Reset = "month"
	ResetNever   Reset = "never"
)

// Sequence is a durable counter store.
type Sequence interface {
	// Reserve advances the counter of key by n and returns its new value.
	// A missing counter starts at zero.
	Reserve(ctx context.Context, key string, n int64) (int64, error)
}

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "INV")
	Prefix string

	// IncludeYear adds the year of the period to the number
	IncludeYear bool

	// PadWidth is the minimum width of the counter (default 5)
	PadWidth int

	Reset Reset

	// RangeSize > 1 reserves numbers in blocks and hands them out from
	// memory. Faster, but a restart leaves gaps.
	RangeSize int64
}

// DefaultConfig returns gap-free yearly numbering with prefix.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
		Reset:       ResetYearly,
		RangeSize:   1,
	}
}

type reserved struct {
	current int64
	max     int64
}

// Numerator formats numbers drawn from a Sequence.
type Numerator struct {
	seq Sequence
	cfg Config

	mu     sync.Mutex
	ranges map[string]*reserved
}

// New creates a numerator.
func New(seq Sequence, cfg Config) (*Numerator, error) {
	if seq == nil {
		return nil, errors.New("numerator: sequence is required")
	}
	if strings.TrimSpace(cfg.Prefix) == "" || strings.Contains(cfg.Prefix, "-") {
		return nil, fmt.Errorf("numerator: invalid prefix %q", cfg.Prefix)
	}
	switch cfg.Reset {
	case "":
		cfg.Reset = ResetYearly
	case ResetYearly, ResetMonthly, ResetNever:
	default:
		return nil, fmt.Errorf("numerator: unknown reset period %q", cfg.Reset)
	}
	if cfg.PadWidth <= 0 {
		cfg.PadWidth = 5
	}
	if cfg.RangeSize <= 0 {
		cfg.RangeSize = 1
	}
	return &Numerator{seq: seq, cfg: cfg, ranges: make(map[string]*reserved)}, nil
}

// Next returns the next number for a document dated period.
func (n *Numerator) Next(ctx context.Context, period time.Time) (string, error) {
	key := n.key(period)

	var (
		num int64
		err error
	)
	if n.cfg.RangeSize == 1 {
		num, err = n.seq.Reserve(ctx, key, 1)
	} else {
		num, err = n.nextCached(ctx, key)
	}
	if err != nil {
		return "", fmt.Errorf("next %s number: %w", n.cfg.Prefix, err)
	}
	return n.format(period, num), nil
}

func (n *Numerator) nextCached(ctx context.Context, key string) (int64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	rng, ok := n.ranges[key]
	if !ok {
		rng = &reserved{}
		n.ranges[key] = rng
	}

	if rng.current >= rng.max {
		last, err := n.seq.Reserve(ctx, key, n.cfg.RangeSize)
		if err != nil {
			return 0, err
		}
		// block is (last-size, last]
		rng.current = last - n.cfg.RangeSize
		rng.max = last
	}

	rng.current++
	return rng.current, nil
}

func (n *Numerator) key(period time.Time) string {
	switch n.cfg.Reset {
	case ResetMonthly:
		return n.cfg.Prefix + "_" + period.Format("2006_01")
	case ResetNever:
		return n.cfg.Prefix
	default:
		return n.cfg.Prefix + "_" + period.Format("2006")
	}
}

func (n *Numerator) format(period time.Time, num int64) string {
	if n.cfg.IncludeYear {
		return fmt.Sprintf("%s-%s-%0*d", n.cfg.Prefix, period.Format("2006"), n.cfg.PadWidth, num)
	}
	return fmt.Sprintf("%s-%0*d", n.cfg.Prefix, n.cfg.PadWidth, num)
}

// Parse extracts the counter from a formatted number.
func Parse(formatted string) (int64, bool) {
	i := strings.LastIndexByte(formatted, '-')
	if i < 0 {
		return 0, false
	}
	num, err := strconv.ParseInt(formatted[i+1:], 10, 64)
	if err != nil || num <= 0 {
		return 0, false
	}
	return num, true
}

// MemorySequence keeps counters in process memory.
type MemorySequence struct {
	mu   sync.Mutex
	vals map[string]int64
}

// NewMemorySequence returns an empty sequence.
func NewMemorySequence() *MemorySequence {
	return &MemorySequence{vals: make(map[string]int64)}
}

// Reserve implements Sequence.
func (m *MemorySequence) Reserve(_ context.Context, key string, n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("reserve %d numbers: count must be positive", n)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] += n
	return m.vals[key], nil
}
