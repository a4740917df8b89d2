// Package observability provides prometheus metrics shared across layers.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PageCacheHits counts full-page cache hits by key prefix.
	PageCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_page_cache_hits_total",
		Help: "Total number of full-page cache hits by key prefix",
	}, []string{"prefix"})

	// PageCacheMisses counts full-page cache misses by key prefix.
	PageCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_page_cache_misses_total",
		Help: "Total number of full-page cache misses by key prefix",
	}, []string{"prefix"})
)
