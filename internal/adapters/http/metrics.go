package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "descant",
		Name:      "generate_total",
		Help:      "Generation requests by outcome.",
	}, []string{"outcome"})

	searchSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "descant",
		Name:      "search_steps",
		Help:      "Search steps spent per successful generation.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
	})
)
