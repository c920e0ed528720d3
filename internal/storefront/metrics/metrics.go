// Package metrics содержит метрики Prometheus витрины.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Collector собирает метрики обращений к бэкенду, обновлений токена и шлюза.
type Collector struct {
	registry *prometheus.Registry

	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	refreshAttempts *prometheus.CounterVec
	refreshWaiters  prometheus.Counter
	gatewayRequests *prometheus.CounterVec
	gatewayDuration *prometheus.HistogramVec
}

// NewCollector создает набор метрик с собственным реестром.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		backendRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "backend",
				Name:      "requests_total",
				Help:      "Total number of requests sent to the store backend.",
			},
			[]string{"method", "status"},
		),
		backendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "backend",
				Name:      "request_duration_seconds",
				Help:      "Duration of requests sent to the store backend.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"method"},
		),
		refreshAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "token_refresh_total",
				Help:      "Access token refresh outcomes.",
			},
			[]string{"result"},
		),
		refreshWaiters: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "refresh_waiters_total",
				Help:      "Requests queued behind an in-flight token refresh.",
			},
		),
		gatewayRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "requests_total",
				Help:      "Total number of gateway requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		gatewayDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "gateway",
				Name:      "request_duration_seconds",
				Help:      "Duration of gateway requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"method", "route"},
		),
	}

	c.registry.MustRegister(
		c.backendRequests,
		c.backendDuration,
		c.refreshAttempts,
		c.refreshWaiters,
		c.gatewayRequests,
		c.gatewayDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return c
}

// Registry возвращает реестр метрик.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler отдает метрики в формате Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveRequest учитывает запрос к бэкенду; status 0 - сетевой сбой.
func (c *Collector) ObserveRequest(method string, status int, duration time.Duration) {
	label := strconv.Itoa(status)
	if status == 0 {
		label = "transport_error"
	}
	c.backendRequests.WithLabelValues(method, label).Inc()
	c.backendDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// ObserveRefresh учитывает исход обновления токена.
func (c *Collector) ObserveRefresh(result string) {
	c.refreshAttempts.WithLabelValues(result).Inc()
}

// ObserveWaiter учитывает запрос, поставленный в очередь за обновлением.
func (c *Collector) ObserveWaiter() {
	c.refreshWaiters.Inc()
}

// ObserveGateway учитывает обработанный запрос шлюза.
func (c *Collector) ObserveGateway(method, route string, status int, duration time.Duration) {
	c.gatewayRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.gatewayDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
