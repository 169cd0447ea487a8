package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistration(t *testing.T) {
	// Verify all metrics are registered without conflicts
	// This test ensures no duplicate metric names

	metrics := []prometheus.Collector{
		AnalysesTotal,
		AnalysisDuration,
		AnalysisCacheOps,

		ClassifierRequestsTotal,
		ClassifierRequestDuration,

		CatalogRequestsTotal,
		CatalogRequestDuration,

		HistoryWriteErrors,
	}

	for _, metric := range metrics {
		desc := make(chan *prometheus.Desc, 1)
		metric.Describe(desc)
		close(desc)

		require.NotNil(t, <-desc, "metric should have a valid descriptor")
	}
}

func TestCounterIncrements(t *testing.T) {
	before := testutil.ToFloat64(AnalysesTotal.WithLabelValues("success"))
	AnalysesTotal.WithLabelValues("success").Inc()
	after := testutil.ToFloat64(AnalysesTotal.WithLabelValues("success"))

	assert.Equal(t, before+1, after)
}

func TestCacheOpsLabels(t *testing.T) {
	AnalysisCacheOps.WithLabelValues("get", "hit").Inc()
	AnalysisCacheOps.WithLabelValues("get", "miss").Inc()
	AnalysisCacheOps.WithLabelValues("set", "ok").Inc()

	assert.GreaterOrEqual(t, testutil.ToFloat64(AnalysisCacheOps.WithLabelValues("get", "hit")), 1.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(AnalysisCacheOps.WithLabelValues("get", "miss")), 1.0)
}
