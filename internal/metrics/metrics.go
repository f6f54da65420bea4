package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the Prometheus series for trip metrics, loads and ingest
type Collector struct {
	reg *prometheus.Registry

	MetricsComputed   *prometheus.CounterVec // result label: ok|insufficient_data|malformed|not_found
	TripsLoaded       prometheus.Counter
	TripLoadFailures  prometheus.Counter
	TripLoadsRejected prometheus.Counter // second load while one is in flight
	TripsIngested     prometheus.Counter
	ErrorsReported    prometheus.Counter

	ComputeDuration prometheus.Histogram
	LoadDuration    prometheus.Histogram
}

// NewCollector registers every series on a private registry
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		MetricsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripmetrics_computations_total",
			Help: "Trip metric computations by result.",
		}, []string{"result"}),
		TripsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripmetrics_trips_loaded_total",
			Help: "Trips loaded into a detail view.",
		}),
		TripLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripmetrics_trip_load_failures_total",
			Help: "Trip loads that failed in the store.",
		}),
		TripLoadsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripmetrics_trip_loads_rejected_total",
			Help: "Trip loads ignored because another load was in flight.",
		}),
		TripsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripmetrics_trips_ingested_total",
			Help: "Trips stored through the API.",
		}),
		ErrorsReported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripmetrics_errors_reported_total",
			Help: "Errors passed to the error reporter.",
		}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripmetrics_compute_duration_seconds",
			Help:    "Duration of a single metrics computation.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 15),
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripmetrics_trip_load_duration_seconds",
			Help:    "Duration of trip loads from the store.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
	}

	reg.MustRegister(
		c.MetricsComputed, c.TripsLoaded, c.TripLoadFailures, c.TripLoadsRejected,
		c.TripsIngested, c.ErrorsReported, c.ComputeDuration, c.LoadDuration,
	)

	return c
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Registry exposes the underlying registry for tests and extra collectors
func (c *Collector) Registry() *prometheus.Registry { return c.reg }
