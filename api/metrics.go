package api

import (
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/qlquery/qlquery/qlquery"
	"github.com/rs/zerolog/log"
)

var (
	apiRequestsInFlightGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "qlquery_api_http_requests_in_flight",
			Help: "Number of concurrent HTTP api requests currently handled.",
		},
		[]string{"method", "path"},
	)
	apiRequestsTotalCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qlquery_api_http_requests_total",
			Help: "Total number of api requests.",
		},
		[]string{"code", "method", "path"},
	)
	apiRequestSizeSummary = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "qlquery_api_http_request_size_bytes",
			Help: "Api HTTP request size in bytes.",
		},
		[]string{"code", "method", "path"},
	)
	apiResponseSizeSummary = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "qlquery_api_http_response_size_bytes",
			Help: "Api HTTP response size in bytes.",
		},
		[]string{"code", "method", "path"},
	)
	apiRequestsDurationSummary = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "qlquery_api_http_request_duration_seconds",
			Help: "Duration of api requests in seconds.",
		},
		[]string{"code", "method", "path"},
	)
	apiVersionGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "qlquery_build_info",
			Help: "Metric with a constant '1' value labeled by version and goversion from which qlquery was built.",
		},
		[]string{"version", "goversion"},
	)
	queriesByTypeCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qlquery_queries_total",
			Help: "Number of queries handled by api, by query type (VALID, TEXT, INVALID).",
		},
		[]string{"type"},
	)
	recordsMatchedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qlquery_records_matched_total",
			Help: "Number of records which matched filter queries.",
		},
	)
)

func queryCacheStats(hits bool) func() float64 {
	return func() float64 {
		if context == nil {
			return 0
		}
		cache, err := context.QueryCache()
		if err != nil {
			return 0
		}
		h, m := cache.Stats()
		if hits {
			return float64(h)
		}
		return float64(m)
	}
}

type metricsCollectorRegistrar struct {
	hasRegistered bool
}

func (r *metricsCollectorRegistrar) Register(router *gin.Engine) {
	if !r.hasRegistered {
		apiVersionGauge.WithLabelValues(qlquery.Version, runtime.Version()).Set(1)
		router.Use(instrumentHandlerInFlight(apiRequestsInFlightGauge, getBasePath))
		router.Use(instrumentHandlerCounter(apiRequestsTotalCounter, getBasePath))
		router.Use(instrumentHandlerRequestSize(apiRequestSizeSummary, getBasePath))
		router.Use(instrumentHandlerResponseSize(apiResponseSizeSummary, getBasePath))
		router.Use(instrumentHandlerDuration(apiRequestsDurationSummary, getBasePath))

		for _, collector := range []prometheus.Collector{
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Name: "qlquery_query_cache_hits_total",
				Help: "Number of parsed queries found in the cache.",
			}, queryCacheStats(true)),
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Name: "qlquery_query_cache_misses_total",
				Help: "Number of queries which had to be parsed.",
			}, queryCacheStats(false)),
		} {
			if err := prometheus.Register(collector); err != nil {
				log.Warn().Err(err).Msg("unable to register query cache metrics")
			}
		}

		r.hasRegistered = true
	}
}

var MetricsCollectorRegistrar = metricsCollectorRegistrar{hasRegistered: false}
