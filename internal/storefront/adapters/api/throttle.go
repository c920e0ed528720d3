package api

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// ThrottleTransport ограничивает частоту запросов к бэкенду.
type ThrottleTransport struct {
	limiter *rate.Limiter
	next    http.RoundTripper
}

// NewThrottleTransport создает ограничитель на perSecond запросов в секунду.
// Неположительное значение отключает ограничение.
func NewThrottleTransport(perSecond float64, burst int, next http.RoundTripper) *ThrottleTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &ThrottleTransport{
		limiter: rate.NewLimiter(limit, burst),
		next:    next,
	}
}

// RoundTrip реализует http.RoundTripper.
func (t *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return t.next.RoundTrip(req) //nolint:wrapcheck
}
