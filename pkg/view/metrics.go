package view

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	viewsRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskinventory_views_total",
		Help: "The total number of rendered views",
	})
	emptyResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskinventory_empty_views_total",
		Help: "The total number of views without matching records",
	})
	navigations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slaskinventory_navigations_total",
		Help: "The total number of view navigations",
	}, []string{"action", "mode"})
)
