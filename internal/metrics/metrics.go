package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks directory mutations and HTTP latency.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	CountriesCreated  prometheus.Counter
	CountriesImported prometheus.Counter
	PersonsCreated    prometheus.Counter
	PersonsUpdated    prometheus.Counter
	PersonsDeleted    prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New registers all metrics with reg. Pass prometheus.DefaultRegisterer in main
// and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CountriesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "directory_countries_created_total",
			Help: "Total number of countries added",
		}),
		CountriesImported: factory.NewCounter(prometheus.CounterOpts{
			Name: "directory_countries_imported_total",
			Help: "Total number of countries inserted from spreadsheet uploads",
		}),
		PersonsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "directory_persons_created_total",
			Help: "Total number of persons added",
		}),
		PersonsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "directory_persons_updated_total",
			Help: "Total number of person updates",
		}),
		PersonsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "directory_persons_deleted_total",
			Help: "Total number of persons deleted",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "directory_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncrementCountriesCreated() {
	if m == nil {
		return
	}
	m.CountriesCreated.Inc()
}

func (m *Metrics) AddCountriesImported(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.CountriesImported.Add(float64(n))
}

func (m *Metrics) IncrementPersonsCreated() {
	if m == nil {
		return
	}
	m.PersonsCreated.Inc()
}

func (m *Metrics) IncrementPersonsUpdated() {
	if m == nil {
		return
	}
	m.PersonsUpdated.Inc()
}

func (m *Metrics) IncrementPersonsDeleted() {
	if m == nil {
		return
	}
	m.PersonsDeleted.Inc()
}

// ObserveRequest records the duration of a request.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

// Middleware observes every request under its route template, not the raw path.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), start)
	}
}
