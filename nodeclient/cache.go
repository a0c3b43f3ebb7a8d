package nodeclient

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rahilmansuri1/iris-wallet-desktop-sub004/pkg/log"
)

// defaultCacheTTL matches the node client's 10 minute response lifetime.
const defaultCacheTTL = 600 * time.Second

// CacheHandle is the response cache consumed by the request pipeline.
// GetOrFetch serves a stored copy for the key or runs fetch exactly once
// per key across concurrent callers. InvalidateAll drops every entry and
// is idempotent.
type CacheHandle interface {
	GetOrFetch(key string, fetch func() ([]byte, error)) ([]byte, error)
	InvalidateAll() error
}

// NullCache disables caching: every read goes to the node.
type NullCache struct{}

func (NullCache) GetOrFetch(_ string, fetch func() ([]byte, error)) ([]byte, error) {
	return fetch()
}

func (NullCache) InvalidateAll() error { return nil }

// cacheEntry is the persisted row for one cached response.
type cacheEntry struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	Timestamp int64
}

func (cacheEntry) TableName() string { return "response_cache" }

// ResponseCache memoizes responses for the cacheable endpoint set in a
// SQLite table. Entries expire after the configured TTL; concurrent
// fetches for the same key are collapsed into a single upstream call.
type ResponseCache struct {
	db      *gorm.DB
	ttl     time.Duration
	mu      sync.Mutex
	flights singleflight.Group
	logger  log.Logger
	metrics *Metrics
}

// NewResponseCache opens (or creates) the cache database at path. An
// empty path selects an in-memory database, which is the default for a
// fresh wallet session.
func NewResponseCache(path string, ttl time.Duration, logger log.Logger) (*ResponseCache, error) {
	if path == "" {
		path = "file::memory:?cache=shared"
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&cacheEntry{}); err != nil {
		return nil, err
	}

	return &ResponseCache{
		db:     db,
		ttl:    ttl,
		logger: logger.NewSystem("response-cache"),
	}, nil
}

// WithMetrics attaches hit/miss counters to the cache.
func (c *ResponseCache) WithMetrics(m *Metrics) *ResponseCache {
	c.metrics = m
	return c
}

// GetOrFetch returns a copy of the stored response for key, or performs
// fetch, stores the result and returns it. Only the first of several
// concurrent callers fetches; the rest share its outcome. A failed fetch
// stores nothing and every waiter receives the same error.
func (c *ResponseCache) GetOrFetch(key string, fetch func() ([]byte, error)) ([]byte, error) {
	if data, ok := c.lookup(key); ok {
		if c.metrics != nil {
			c.metrics.CacheHits.Inc()
		}
		return data, nil
	}

	result, err, _ := c.flights.Do(key, func() (any, error) {
		// A winner may have populated the entry while we queued.
		if data, ok := c.lookup(key); ok {
			return data, nil
		}
		if c.metrics != nil {
			c.metrics.CacheMisses.Inc()
		}
		data, err := fetch()
		if err != nil {
			return nil, err
		}
		c.store(key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return copyBytes(result.([]byte)), nil
}

// InvalidateAll removes every cached entry. Invoking it on an already
// empty cache is a no-op.
func (c *ResponseCache) InvalidateAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.db.Where("1 = 1").Delete(&cacheEntry{}).Error; err != nil {
		c.logger.Error("failed to invalidate cache", "error", err)
		return err
	}
	c.logger.Debug("cache invalidated")
	return nil
}

func (c *ResponseCache) lookup(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var entry cacheEntry
	err := c.db.First(&entry, "key = ?", key).Error
	if err != nil {
		return nil, false
	}
	if time.Since(time.Unix(entry.Timestamp, 0)) > c.ttl {
		c.db.Delete(&cacheEntry{}, "key = ?", key)
		return nil, false
	}
	return copyBytes(entry.Data), true
}

func (c *ResponseCache) store(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cacheEntry{Key: key, Data: copyBytes(data), Timestamp: time.Now().Unix()}
	if err := c.db.Save(&entry).Error; err != nil {
		c.logger.Error("failed to store cache entry", "key", key, "error", err)
	}
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
