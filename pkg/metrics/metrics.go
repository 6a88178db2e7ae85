// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type BalancingMetrics interface {
	AddCalculateRatingsElapsedTimeMs(elapsedTime time.Duration)
	AddGenerateSuggestionsElapsedTimeMs(elapsedTime time.Duration)
	AddRejectedPool(reason string)
	AddSuggestionsGenerated(count int)
}

func NewMetrics(registry *prometheus.Registry) BalancingMetrics {
	return setupPrometheusMetrics(registry)
}
