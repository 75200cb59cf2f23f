// Package idgen hands out record ids for the entity stores.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	StrategyUUID      = "uuid"
	StrategyCounter   = "counter"
	StrategyTimestamp = "timestamp"
)

type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

// UUID returns random v4 UUID strings.
func UUID() Generator { return uuidGenerator{} }

func (uuidGenerator) NewID() string { return uuid.NewString() }

type counter struct {
	prefix string
	next   atomic.Int64
}

// Counter returns prefix followed by a monotonically increasing number,
// starting after start. Safe for concurrent use.
func Counter(prefix string, start int64) Generator {
	c := &counter{prefix: prefix}
	c.next.Store(start)
	return c
}

func (c *counter) NewID() string {
	return c.prefix + strconv.FormatInt(c.next.Add(1), 10)
}

type timestamp struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// Timestamp returns the current Unix time in milliseconds as a decimal
// string. Calls landing in the same millisecond are bumped forward so two ids
// from one generator never collide.
func Timestamp(now func() time.Time) Generator {
	if now == nil {
		now = time.Now
	}
	return &timestamp{now: now}
}

func (t *timestamp) NewID() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	ms := t.now().UnixMilli()
	if ms <= t.last {
		ms = t.last + 1
	}
	t.last = ms
	return strconv.FormatInt(ms, 10)
}

// FromStrategy builds the generator named by strategy; prefix only applies
// to the counter strategy.
func FromStrategy(strategy, prefix string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyUUID:
		return UUID(), nil
	case StrategyCounter:
		return Counter(prefix, 0), nil
	case StrategyTimestamp:
		return Timestamp(time.Now), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
