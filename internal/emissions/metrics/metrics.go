package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for ingestion and aggregation queries.
// All methods are safe on a nil receiver.
type Metrics struct {
	RowsIngested  prometheus.Counter
	RowsRejected  prometheus.Counter
	Countries     prometheus.Gauge
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// New registers the emissions metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RowsIngested: factory.NewCounter(prometheus.CounterOpts{
			Name: "emissions_rows_ingested_total",
			Help: "Total number of input rows applied to the registry",
		}),
		RowsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "emissions_rows_rejected_total",
			Help: "Total number of input rows skipped as invalid",
		}),
		Countries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "emissions_countries",
			Help: "Number of countries held by the registry",
		}),
		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "emissions_query_duration_seconds",
			Help:    "Duration of aggregation queries by operation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"operation"}),
		QueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "emissions_query_errors_total",
			Help: "Total failed aggregation queries by operation and error code",
		}, []string{"operation", "code"}),
	}
}

// ObserveIngest records the outcome of a load.
func (m *Metrics) ObserveIngest(accepted, rejected, countries int) {
	if m == nil {
		return
	}
	m.RowsIngested.Add(float64(accepted))
	m.RowsRejected.Add(float64(rejected))
	m.Countries.Set(float64(countries))
}

// ObserveQuery records the duration of a query.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveQuery(operation string, start time.Time) {
	if m != nil {
		m.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// IncrementQueryError records a failed query.
func (m *Metrics) IncrementQueryError(operation, code string) {
	if m != nil {
		m.QueryErrors.WithLabelValues(operation, code).Inc()
	}
}
