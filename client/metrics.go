package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopwire_client",
			Name:      "requests_total",
			Help:      "API requests that produced an HTTP response.",
		},
		[]string{"method", "status"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopwire_client",
			Name:      "request_failures_total",
			Help:      "Requests that ended in a typed error, by error kind.",
		},
		[]string{"kind"},
	)
)
