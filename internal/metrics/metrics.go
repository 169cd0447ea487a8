// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis Metrics
var (
	// AnalysesTotal tracks movie analyses by outcome (success/no_reviews/not_found/error)
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyses_total",
			Help: "Total movie analyses by outcome",
		},
		[]string{"outcome"},
	)

	// AnalysisDuration tracks end-to-end analysis latency in seconds
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "End-to-end movie analysis duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// AnalysisCacheOps tracks analysis cache lookups and writes by result
	AnalysisCacheOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_cache_operations_total",
			Help: "Analysis cache operations by operation and result",
		},
		[]string{"operation", "result"},
	)
)

// Classifier Metrics
var (
	// ClassifierRequestsTotal tracks classifier calls by status
	ClassifierRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classifier_requests_total",
			Help: "Total classifier requests by status",
		},
		[]string{"status"},
	)

	// ClassifierRequestDuration tracks classifier call latency in seconds
	ClassifierRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "classifier_request_duration_seconds",
			Help:    "Classifier request duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		},
	)
)

// Catalog Metrics
var (
	// CatalogRequestsTotal tracks TMDB requests by endpoint and status
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total movie catalog requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// CatalogRequestDuration tracks TMDB request latency in seconds
	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Movie catalog request duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"endpoint"},
	)
)

// History Metrics
var (
	// HistoryWriteErrors tracks failed analysis history writes
	HistoryWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "history_write_errors_total",
			Help: "Total failed analysis history writes",
		},
	)
)
