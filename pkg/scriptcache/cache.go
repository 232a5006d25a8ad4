// Package scriptcache serves the current call configuration from a short-lived in-memory copy.
// A read hits the store at most once per staleness window, store failures fall back to the last
// good value and then to a built-in default, so callers on the call-initiation path never get an error.
package scriptcache

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/callscope/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// StalenessWindow is how long a cached configuration is served without re-checking the store
const StalenessWindow = 5 * time.Minute

// Store is the persistent source of the current call configuration.
// GetConfig returns nil, nil when nothing has been saved yet.
type Store interface {
	GetConfig(ctx context.Context) (*domain.CallConfig, error)
}

// Outcome tells how a Result was produced
type Outcome int

const (
	OutcomeFresh    Outcome = iota // read from the store or served within the staleness window
	OutcomeDegraded                // store failed, previously cached value served
	OutcomeDefault                 // built-in default served
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeFresh:
		return "fresh"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeDefault:
		return "default"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is a configuration together with the way it was obtained.
// FetchedAt is zero for the default configuration.
type Result struct {
	Config    domain.CallConfig `json:"config"`
	Outcome   Outcome           `json:"outcome"`
	FetchedAt time.Time         `json:"fetchedAt,omitzero"`
}

// Cache wraps a Store with a time-bounded copy of its configuration
type Cache struct {
	store Store
	now   func() time.Time

	mu        sync.Mutex
	cached    *domain.CallConfig
	fetchedAt time.Time
}

// Option configures Cache
type Option func(c *Cache)

// WithClock sets the time source, used by tests to move through the staleness window
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New makes a cache on top of the store
func New(store Store, opts ...Option) *Cache {
	res := &Cache{store: store, now: time.Now}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Get returns the current configuration. It never fails: a cached value younger than
// StalenessWindow is returned as is, otherwise the store is read. On store error the last cached
// value (even if stale) is returned, and without one the default configuration.
// An empty store yields the default without caching it, so the next call asks the store again.
func (c *Cache) Get(ctx context.Context) Result {
	now := c.now()

	c.mu.Lock()
	if c.cached != nil && now.Sub(c.fetchedAt) < StalenessWindow {
		res := Result{Config: *c.cached.Clone(), Outcome: OutcomeFresh, FetchedAt: c.fetchedAt}
		c.mu.Unlock()
		return res
	}
	c.mu.Unlock()

	// store i/o is done without the lock, concurrent refreshes may both hit the store, last write wins
	cfg, err := c.store.GetConfig(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't read call config from store: %v", err)
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.cached != nil {
			return Result{Config: *c.cached.Clone(), Outcome: OutcomeDegraded, FetchedAt: c.fetchedAt}
		}
		return Result{Config: Default(), Outcome: OutcomeDefault}
	}

	if cfg == nil {
		lgr.Printf("[DEBUG] no call config in store, using default")
		return Result{Config: Default(), Outcome: OutcomeDefault}
	}

	c.mu.Lock()
	c.cached = cfg.Clone()
	c.fetchedAt = now
	c.mu.Unlock()
	return Result{Config: *cfg.Clone(), Outcome: OutcomeFresh, FetchedAt: now}
}

// Refresh drops the cached value and reads the store again, used right after a save
func (c *Cache) Refresh(ctx context.Context) Result {
	c.mu.Lock()
	c.cached = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
	return c.Get(ctx)
}

// Default returns the built-in configuration, see Default
func (c *Cache) Default() domain.CallConfig {
	return Default()
}

// Config returns just the configuration part of Get
func (c *Cache) Config(ctx context.Context) domain.CallConfig {
	return c.Get(ctx).Config
}

// Script returns the current interview script
func (c *Cache) Script(ctx context.Context) string {
	return c.Get(ctx).Config.Script
}

// VoiceSettings returns the current voice settings
func (c *Cache) VoiceSettings(ctx context.Context) domain.VoiceSettings {
	return c.Get(ctx).Config.Voice
}

// CallSettings returns the current call settings
func (c *Cache) CallSettings(ctx context.Context) domain.CallSettings {
	return c.Get(ctx).Config.Call
}

// Method returns the current call method
func (c *Cache) Method(ctx context.Context) domain.CallMethod {
	return c.Get(ctx).Config.Method
}
