// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

// Listing query metrics.
var (
	// QueriesTotal counts listing queries by kind and sort key.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_queries_total",
			Help: "Total number of listing queries served",
		},
		[]string{"kind", "sort"},
	)

	// QueryDuration measures filter, sort and pagination time per query.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listing_query_duration_seconds",
			Help:    "Time spent computing a listing view",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"kind"},
	)

	// ResultCounts records how many items matched each query.
	ResultCounts = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listing_results",
			Help:    "Number of items matching a listing query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"kind"},
	)
)

// Catalog metrics.
var (
	// CatalogItems is the number of items loaded per kind.
	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of listing items currently loaded",
		},
		[]string{"kind"},
	)

	// CatalogReloads counts reload attempts by outcome.
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reload_total",
			Help: "Total number of catalog reloads",
		},
		[]string{"status"},
	)
)

// RecordQuery records one served listing query.
func RecordQuery(kind types.Kind, sort string, matched int, d time.Duration) {
	QueriesTotal.WithLabelValues(string(kind), sort).Inc()
	QueryDuration.WithLabelValues(string(kind)).Observe(d.Seconds())
	ResultCounts.WithLabelValues(string(kind)).Observe(float64(matched))
}

// RecordReload records a catalog reload. Status is "success" or "failure".
func RecordReload(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	CatalogReloads.WithLabelValues(status).Inc()
}
