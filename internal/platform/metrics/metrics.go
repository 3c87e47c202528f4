package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "petcare"

// Metrics agrupa los collectors del motor de cuidado y del agregador de detección.
// Un nil *Metrics es válido: todos los métodos son no-op.
type Metrics struct {
	registry *prometheus.Registry

	providerRequests *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	detections       *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	analysisScore    prometheus.Histogram
}

// New registra todos los collectors en un registry propio (no el global),
// así los tests pueden crear varias instancias sin colisiones.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		providerRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Llamadas a proveedores de detección por resultado.",
		}, []string{"provider", "outcome"}),
		providerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_duration_seconds",
			Help:      "Latencia de cada proveedor de detección.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detections_total",
			Help:      "Detecciones resueltas por fuente ganadora.",
		}, []string{"source", "fallback"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detection_cache_total",
			Help:      "Lookups del cache de detecciones (hit/miss/error).",
		}, []string{"result"}),
		analysisScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_score",
			Help:      "Distribución del aiScore calculado.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
	}

	reg.MustRegister(m.providerRequests, m.providerDuration, m.detections, m.cacheLookups, m.analysisScore)
	return m
}

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry se usa en tests para inspeccionar valores.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveProvider(provider, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.providerRequests.WithLabelValues(provider, outcome).Inc()
	m.providerDuration.WithLabelValues(provider).Observe(d.Seconds())
}

func (m *Metrics) ObserveDetection(source string, fallback bool) {
	if m == nil {
		return
	}
	m.detections.WithLabelValues(source, strconv.FormatBool(fallback)).Inc()
}

func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveAnalysisScore(score int) {
	if m == nil {
		return
	}
	m.analysisScore.Observe(float64(score))
}
