package services_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/adapters/cache"
	"gamestore/internal/storefront/app/validation"
	"gamestore/internal/storefront/domain/entities"
	ports "gamestore/internal/storefront/ports/services"
)

var (
	customer = &entities.Identity{UserID: "42", Username: "budi"}
	staff    = &entities.Identity{UserID: "1", Username: "admin", IsStaff: true}
)

// backend отвечает на запросы по точному ключу "METHOD /path" без префикса /api.
type backend struct {
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  map[string]int
	bodies map[string]string
}

func newBackend() *backend {
	return &backend{
		routes: make(map[string]http.HandlerFunc),
		calls:  make(map[string]int),
		bodies: make(map[string]string),
	}
}

func (b *backend) handle(key string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = h
}

func (b *backend) reply(key string, status int, body string) {
	b.handle(key, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func (b *backend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[key]
}

func (b *backend) body(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.calls[key]++
	b.bodies[key] = string(body)
	h, ok := b.routes[key]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail":"Not found."}`)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	h(w, r)
}

type identities struct {
	identity *entities.Identity
}

func (i identities) RequireIdentity() (*entities.Identity, error) {
	if i.identity == nil {
		return nil, ports.ErrNotAuthenticated
	}
	return i.identity, nil
}

func (i identities) RequireStaff() (*entities.Identity, error) {
	identity, err := i.RequireIdentity()
	if err != nil {
		return nil, err
	}
	if !identity.IsStaff {
		return nil, ports.ErrForbidden
	}
	return identity, nil
}

type fixture struct {
	backend   *backend
	client    *api.Client
	validator *validation.Validator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	b := newBackend()
	server := httptest.NewServer(b)
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL+"/api/", "storefront-test", server.Client(), nil)
	require.NoError(t, err)

	return &fixture{
		backend:   b,
		client:    client,
		validator: validation.New(),
	}
}

func mockRedisCache(t *testing.T) (*miniredis.Miniredis, *cache.RedisCache) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		s.Close()
	})

	return s, cache.NewRedisCache(client, time.Minute)
}
