package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskinventory_cache_hits_total",
		Help: "The total number of view responses served from redis",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskinventory_cache_misses_total",
		Help: "The total number of view responses rendered on a cache miss",
	})
	badRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slaskinventory_bad_requests_total",
		Help: "The total number of rejected requests",
	}, []string{"handler"})
)
