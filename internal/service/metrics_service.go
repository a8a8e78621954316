package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and the
// scheduling pipeline.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	entriesGenerated      prometheus.Counter
	subjectsUnderplaced   prometheus.Counter
	entriesRelocated      prometheus.Counter
	entriesCancelled      prometheus.Counter
	generationDuration    prometheus.Histogram
	rescheduleDuration    prometheus.Histogram
}

// NewMetricsService registers the Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	entriesGenerated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_entries_generated_total",
		Help: "Total timetable entries produced by full generation runs",
	})

	subjectsUnderplaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_subjects_underscheduled_total",
		Help: "Total subjects skipped or left partially scheduled",
	})

	entriesRelocated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_entries_relocated_total",
		Help: "Total entries relocated by emergency rescheduling",
	})

	entriesCancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_entries_cancelled_total",
		Help: "Total entries cancelled by emergency rescheduling",
	})

	generationDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_generation_duration_seconds",
		Help:    "Wall time of full generation runs",
		Buckets: prometheus.DefBuckets,
	})

	rescheduleDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_reschedule_duration_seconds",
		Help:    "Wall time of emergency reschedule runs",
		Buckets: prometheus.DefBuckets,
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(
		requestDuration, requestTotal,
		entriesGenerated, subjectsUnderplaced, entriesRelocated, entriesCancelled,
		generationDuration, rescheduleDuration, goroutines,
	)

	return &MetricsService{
		registry:            registry,
		handler:             promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:     requestDuration,
		requestTotal:        requestTotal,
		entriesGenerated:    entriesGenerated,
		subjectsUnderplaced: subjectsUnderplaced,
		entriesRelocated:    entriesRelocated,
		entriesCancelled:    entriesCancelled,
		generationDuration:  generationDuration,
		rescheduleDuration:  rescheduleDuration,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := []string{method, path, strconv.Itoa(status)}
	m.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(labels...).Inc()
}

// RecordGeneration captures the outcome of a full generation run.
func (m *MetricsService) RecordGeneration(entries, warnings int, duration time.Duration) {
	if m == nil {
		return
	}
	m.entriesGenerated.Add(float64(entries))
	m.subjectsUnderplaced.Add(float64(warnings))
	m.generationDuration.Observe(duration.Seconds())
}

// RecordReschedule captures the outcome of an emergency reschedule run.
func (m *MetricsService) RecordReschedule(relocated, cancelled int, duration time.Duration) {
	if m == nil {
		return
	}
	m.entriesRelocated.Add(float64(relocated))
	m.entriesCancelled.Add(float64(cancelled))
	m.rescheduleDuration.Observe(duration.Seconds())
}
