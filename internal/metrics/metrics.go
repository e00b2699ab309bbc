package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route query outcomes, used as the "outcome" label.
const (
	OutcomeDirect         = "direct"
	OutcomeTransfer       = "transfer"
	OutcomeSameStation    = "same_station"
	OutcomeNoPath         = "no_path"
	OutcomeUnknownStation = "unknown_station"
	OutcomeError          = "error"
)

type Collector struct {
	reg *prometheus.Registry

	RouteQueries  *prometheus.CounterVec // outcome label
	PlanDuration  prometheus.Histogram
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	SVGRenders    *prometheus.CounterVec // kind label: route|network
	HTTPDurations *prometheus.SummaryVec // endpoint label

	Stations prometheus.Gauge
	Lines    prometheus.Gauge
	Edges    prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		RouteQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metro_route_queries_total",
			Help: "Route queries by outcome.",
		}, []string{"outcome"}),
		PlanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "metro_route_plan_duration_seconds",
			Help:    "Time spent planning a route, excluding cache hits.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 15),
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metro_route_cache_hits_total",
			Help: "Route lookups served from the cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metro_route_cache_misses_total",
			Help: "Route lookups that had to be planned.",
		}),
		SVGRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metro_svg_renders_total",
			Help: "SVG maps rendered by kind.",
		}, []string{"kind"}),
		HTTPDurations: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "metro_http_request_duration_seconds",
			Help:       "Duration of served HTTP requests.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, []string{"endpoint"}),
		Stations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "metro_network_stations",
			Help: "Number of stations in the loaded network.",
		}),
		Lines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "metro_network_lines",
			Help: "Number of lines in the loaded network.",
		}),
		Edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "metro_network_edges",
			Help: "Number of track segments between adjacent stations.",
		}),
	}

	reg.MustRegister(
		c.RouteQueries, c.PlanDuration,
		c.CacheHits, c.CacheMisses,
		c.SVGRenders, c.HTTPDurations,
		c.Stations, c.Lines, c.Edges,
	)

	return c
}

// SetNetworkSize records the shape of the loaded network.
func (c *Collector) SetNetworkSize(stations, lines, edges int) {
	if c == nil {
		return
	}
	c.Stations.Set(float64(stations))
	c.Lines.Set(float64(lines))
	c.Edges.Set(float64(edges))
}

// ObserveRoute counts a route query. A zero duration skips the histogram,
// which is how cached answers are recorded.
func (c *Collector) ObserveRoute(outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.RouteQueries.WithLabelValues(outcome).Inc()
	if d > 0 {
		c.PlanDuration.Observe(d.Seconds())
	}
}

func (c *Collector) ObserveCache(hit bool) {
	if c == nil {
		return
	}
	if hit {
		c.CacheHits.Inc()
	} else {
		c.CacheMisses.Inc()
	}
}

func (c *Collector) ObserveRender(kind string) {
	if c == nil {
		return
	}
	c.SVGRenders.WithLabelValues(kind).Inc()
}

// Instrument wraps next so its latency is recorded under endpoint.
func (c *Collector) Instrument(endpoint string, next http.Handler) http.Handler {
	if c == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() { c.HTTPDurations.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()
		next.ServeHTTP(w, r)
	})
}

func (c *Collector) Registry() *prometheus.Registry { return c.reg }

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }
