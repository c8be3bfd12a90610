// Package cache provides the in-memory lookup cache for catalog data
// (series and subseries) that changes rarely and is read on every form.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "archivo_cache_hits_total",
		Help: "Total lookup cache hits.",
	}, []string{"cache"})
	cacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "archivo_cache_misses_total",
		Help: "Total lookup cache misses.",
	}, []string{"cache"})
)

// Lookup is a size-bounded LRU whose entries expire ttl after being added.
// It is safe for concurrent use.
type Lookup[K comparable, V any] struct {
	name  string
	cache *expirable.LRU[K, V]
}

// NewLookup creates a cache; name labels its hit/miss metrics.
func NewLookup[K comparable, V any](name string, maxSize int, ttl time.Duration) *Lookup[K, V] {
	return &Lookup[K, V]{
		name:  name,
		cache: expirable.NewLRU[K, V](maxSize, nil, ttl),
	}
}

// Get returns the cached value for key.
func (l *Lookup[K, V]) Get(key K) (V, bool) {
	v, ok := l.cache.Get(key)
	if ok {
		cacheHitsTotal.WithLabelValues(l.name).Inc()
		return v, true
	}
	cacheMissesTotal.WithLabelValues(l.name).Inc()
	return v, false
}

// Set adds or replaces key.
func (l *Lookup[K, V]) Set(key K, v V) {
	l.cache.Add(key, v)
}

// GetOrLoad returns the cached value or calls load and caches its result.
// Errors are not cached.
func (l *Lookup[K, V]) GetOrLoad(ctx context.Context, key K, load func(context.Context) (V, error)) (V, error) {
	if v, ok := l.Get(key); ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	l.Set(key, v)
	return v, nil
}

// Purge drops every entry.
func (l *Lookup[K, V]) Purge() {
	l.cache.Purge()
}
