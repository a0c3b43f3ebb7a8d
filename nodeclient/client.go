package nodeclient

import (
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"github.com/rahilmansuri1/iris-wallet-desktop-sub004/pkg/log"
)

func newRequestValidator() *validator.Validate {
	return validator.New()
}

// Client is the typed client over the RGB Lightning Node HTTP API. It
// owns the transport, the response cache, the per-operation gates and
// the unlocked-wallet flag.
type Client struct {
	cfg       Config
	transport Transport
	faucet    Transport
	cache     CacheHandle
	metrics   *Metrics
	logger    log.Logger
	validate  *validator.Validate
	colorable ColorablePolicy

	// unlocked mirrors the daemon state; written by the control
	// operations, read by the unlock gate.
	unlocked atomic.Bool
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithTransport replaces the node transport (tests use this).
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithFaucetTransport replaces the faucet transport.
func WithFaucetTransport(t Transport) Option {
	return func(c *Client) { c.faucet = t }
}

// WithCache replaces the response cache handle.
func WithCache(cache CacheHandle) Option {
	return func(c *Client) { c.cache = cache }
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger replaces the default logger.
func WithLogger(lg log.Logger) Option {
	return func(c *Client) { c.logger = lg }
}

// WithColorablePolicy replaces the colorable-available policy.
func WithColorablePolicy(p ColorablePolicy) Option {
	return func(c *Client) { c.colorable = p }
}

// New builds a Client from the configuration. Caching follows
// cfg.CacheEnabled unless a cache handle is supplied explicitly.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	c := &Client{
		cfg:      cfg,
		logger:   log.NewLogger("nodeclient"),
		validate: newRequestValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = NewHTTPTransport(cfg.NodeURL, cfg.AuthToken, cfg.RequestTimeout, c.logger)
	}
	if c.faucet == nil && cfg.FaucetURL != "" {
		c.faucet = NewFaucetTransport(cfg.FaucetURL, cfg.FaucetKey, cfg.RequestTimeout, c.logger)
	}
	if c.cache == nil {
		if cfg.CacheEnabled {
			cache, err := NewResponseCache(cfg.CachePath, cfg.CacheTTL, c.logger)
			if err != nil {
				return nil, err
			}
			if c.metrics != nil {
				cache.WithMetrics(c.metrics)
			}
			c.cache = cache
		} else {
			c.cache = NullCache{}
		}
	}
	if c.colorable == nil {
		c.colorable = utxoColorablePolicy{c: c}
	}
	return c, nil
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// Unlocked reports the tracked daemon unlock state.
func (c *Client) Unlocked() bool {
	return c.unlocked.Load()
}

// SetUnlocked overrides the tracked unlock state. Normally the control
// operations maintain it; tests and session restore use this directly.
func (c *Client) SetUnlocked(v bool) {
	c.unlocked.Store(v)
}
