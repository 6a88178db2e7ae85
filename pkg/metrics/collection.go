// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	calculateRatingsElapsedTime    prometheus.Histogram
	generateSuggestionsElapsedTime prometheus.Histogram
	rejectedPools                  prometheus.CounterVec
	suggestionsGenerated           prometheus.Counter
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	//nolint:promlinter
	calculateRatingsElapsedTime := factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "oaf_balancer_calculate_ratings_elapsed_time_ms",
			Help:    "A histogram of rating calculation elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		})
	//nolint:promlinter
	generateSuggestionsElapsedTime := factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "oaf_balancer_generate_suggestions_elapsed_time_ms",
			Help:    "A histogram of suggestion generation elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		})
	rejectedPools := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oaf_balancer_rejected_pools",
			Help: "A counter of suggestion requests rejected before generation",
		}, []string{"reason"})
	suggestionsGenerated := factory.NewCounter(
		prometheus.CounterOpts{
			Name: "oaf_balancer_suggestions_generated",
			Help: "A counter of team suggestions returned to callers",
		})

	return prometheusMetrics{
		calculateRatingsElapsedTime:    calculateRatingsElapsedTime,
		generateSuggestionsElapsedTime: generateSuggestionsElapsedTime,
		rejectedPools:                  *rejectedPools,
		suggestionsGenerated:           suggestionsGenerated,
	}
}

func (metrics prometheusMetrics) AddCalculateRatingsElapsedTimeMs(elapsedTime time.Duration) {
	metrics.calculateRatingsElapsedTime.Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddGenerateSuggestionsElapsedTimeMs(elapsedTime time.Duration) {
	metrics.generateSuggestionsElapsedTime.Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddRejectedPool(reason string) {
	metrics.rejectedPools.With(prometheus.Labels{"reason": reason}).Add(float64(1))
}

func (metrics prometheusMetrics) AddSuggestionsGenerated(count int) {
	metrics.suggestionsGenerated.Add(float64(count))
}
