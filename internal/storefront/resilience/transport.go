package resilience

import (
	"fmt"
	"io"
	"net/http"
)

// Transport повторяет идемпотентные запросы при сетевых сбоях и ответах
// 502/503/504 и размыкает предохранитель, пока бэкенд недоступен.
type Transport struct {
	breaker  *CircuitBreaker
	retry    *Retry
	attempts int
	next     http.RoundTripper
}

// NewTransport создает отказоустойчивый транспорт поверх next.
func NewTransport(name string, retryCfg RetryConfig, breakerCfg CircuitBreakerConfig, next http.RoundTripper) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	retry := NewRetry(name, retryCfg)
	return &Transport{
		breaker:  NewCircuitBreaker(name, breakerCfg),
		retry:    retry,
		attempts: retry.config.MaxAttempts,
		next:     next,
	}
}

// Breaker возвращает предохранитель транспорта.
func (t *Transport) Breaker() *CircuitBreaker {
	return t.breaker
}

// RoundTrip реализует http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if !t.breaker.Allow(ctx) {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrCircuitOpen)
	}

	replayable := isIdempotent(req.Method) && (req.Body == nil || req.Body == http.NoBody || req.GetBody != nil)

	var resp *http.Response
	err := t.retry.Execute(ctx, func(attempt int) (bool, error) {
		out := req
		if attempt > 1 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return false, fmt.Errorf("rewind request body: %w", err)
			}
			out = req.Clone(ctx)
			out.Body = body
		}

		r, err := t.next.RoundTrip(out)
		if err != nil {
			t.breaker.Record(ctx, true)
			return replayable && ctx.Err() == nil, err //nolint:wrapcheck
		}

		t.breaker.Record(ctx, r.StatusCode >= http.StatusInternalServerError)

		if replayable && isRetryableStatus(r.StatusCode) && attempt < t.attempts {
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
			return true, fmt.Errorf("backend responded %d", r.StatusCode)
		}

		resp = r
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
