package query

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Cache keeps recently parsed queries
//
// All the queries in the cache are parsed with the same options.
type Cache struct {
	queries *lru.Cache[string, *Query]
	opts    []Option

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates cache holding up to size queries
func NewCache(size int, opts ...Option) (*Cache, error) {
	queries, err := lru.NewWithEvict(size, func(key string, _ *Query) {
		log.Trace().Str("query", key).Msg("evicted query from cache")
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to create query cache of size %d", size)
	}

	return &Cache{queries: queries, opts: opts}, nil
}

// Get returns parsed query, parsing it if it is not in the cache
func (c *Cache) Get(s string) *Query {
	if q, ok := c.queries.Get(s); ok {
		c.hits.Add(1)
		return q
	}

	c.misses.Add(1)
	q := New(s, c.opts...)
	c.queries.Add(s, q)
	return q
}

// Len returns number of cached queries
func (c *Cache) Len() int {
	return c.queries.Len()
}

// Purge drops all the cached queries
func (c *Cache) Purge() {
	c.queries.Purge()
}

// Stats returns number of cache hits and misses
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
