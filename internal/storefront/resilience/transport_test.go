package resilience_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/resilience"
)

type scriptedBackend struct {
	statuses []int
	calls    atomic.Int32
	bodies   chan string
}

func (b *scriptedBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n := int(b.calls.Add(1)) - 1
	if b.bodies != nil {
		data, _ := io.ReadAll(r.Body)
		b.bodies <- string(data)
	}
	status := b.statuses[len(b.statuses)-1]
	if n < len(b.statuses) {
		status = b.statuses[n]
	}
	w.WriteHeader(status)
}

func newResilientClient(t *testing.T, b *scriptedBackend, breaker resilience.CircuitBreakerConfig) (*http.Client, *resilience.Transport, string) {
	t.Helper()
	server := httptest.NewServer(b)
	t.Cleanup(server.Close)

	transport := resilience.NewTransport("store-api", fastRetryConfig(3), breaker, server.Client().Transport)
	return &http.Client{Transport: transport}, transport, server.URL
}

func send(t *testing.T, client *http.Client, method, url string, body io.Reader) (*http.Response, error) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, url, body)
	require.NoError(t, err)
	resp, err := client.Do(req)
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func TestTransport_Retries(t *testing.T) {
	t.Run("idempotent request is retried on 503", func(t *testing.T) {
		b := &scriptedBackend{statuses: []int{http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusOK}}
		client, _, url := newResilientClient(t, b, resilience.DefaultCircuitBreakerConfig())

		resp, err := send(t, client, http.MethodGet, url+"/accounts/", nil)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), b.calls.Load())
	})

	t.Run("last retryable response is returned as is", func(t *testing.T) {
		b := &scriptedBackend{statuses: []int{http.StatusServiceUnavailable}}
		client, _, url := newResilientClient(t, b, resilience.DefaultCircuitBreakerConfig())

		resp, err := send(t, client, http.MethodGet, url+"/accounts/", nil)

		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, int32(3), b.calls.Load())
	})

	t.Run("post is never retried", func(t *testing.T) {
		b := &scriptedBackend{statuses: []int{http.StatusServiceUnavailable, http.StatusCreated}}
		client, _, url := newResilientClient(t, b, resilience.DefaultCircuitBreakerConfig())

		resp, err := send(t, client, http.MethodPost, url+"/pembelian/create-akun/", strings.NewReader(`{}`))

		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, int32(1), b.calls.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		b := &scriptedBackend{statuses: []int{http.StatusUnauthorized, http.StatusOK}}
		client, _, url := newResilientClient(t, b, resilience.DefaultCircuitBreakerConfig())

		resp, err := send(t, client, http.MethodGet, url+"/cart/", nil)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, int32(1), b.calls.Load())
	})

	t.Run("retried put resends the body", func(t *testing.T) {
		b := &scriptedBackend{
			statuses: []int{http.StatusBadGateway, http.StatusOK},
			bodies:   make(chan string, 2),
		}
		client, _, url := newResilientClient(t, b, resilience.DefaultCircuitBreakerConfig())

		resp, err := send(t, client, http.MethodPut, url+"/locale/", strings.NewReader(`{"language":"id"}`))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, `{"language":"id"}`, <-b.bodies)
		assert.Equal(t, `{"language":"id"}`, <-b.bodies)
	})
}

func TestTransport_CircuitBreaker(t *testing.T) {
	b := &scriptedBackend{statuses: []int{http.StatusInternalServerError}}
	client, transport, url := newResilientClient(t, b, resilience.CircuitBreakerConfig{
		ErrorThreshold:   2,
		Timeout:          time.Hour,
		SuccessThreshold: 1,
	})

	for range 2 {
		resp, err := send(t, client, http.MethodPost, url+"/cart/add/", strings.NewReader(`{}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	}
	assert.Equal(t, resilience.StateOpen, transport.Breaker().State())

	_, err := send(t, client, http.MethodGet, url+"/accounts/", nil)

	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, int32(2), b.calls.Load(), "open breaker does not reach the backend")
}
