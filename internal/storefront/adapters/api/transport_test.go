package api_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/adapters/storage"
	"gamestore/internal/storefront/app/credentials"
	"gamestore/internal/storefront/domain/entities"
)

func TestAuthTransport_RetriesOnce(t *testing.T) {
	h := newHarness(t, &backend{validToken: "never-valid"})
	h.login(t, "T1")

	var out map[string]string
	err := h.client.Get(context.Background(), "/orders/", nil, &out)

	require.Error(t, err)
	apiErr, ok := api.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	assert.Equal(t, []string{"Bearer T1", "Bearer T2"}, h.backend.authorizations("/orders/"),
		"the retried request is not retried again")
	assert.Equal(t, int32(1), h.backend.refreshCalls.Load())
}

func TestAuthTransport_ReplaysBody(t *testing.T) {
	h := newHarness(t, &backend{})
	h.login(t, "T1")

	in := map[string]int{"quantity": 2}
	var out map[string]string
	require.NoError(t, h.client.Post(context.Background(), "/cart/add/", in, &out))

	assert.Equal(t, []string{`{"quantity":2}`, `{"quantity":2}`}, h.backend.payloads("/cart/add/"))
	assert.Equal(t, []string{"Bearer T1", "Bearer T2"}, h.backend.authorizations("/cart/add/"))
}

func TestAuthTransport_NonRewindableBody(t *testing.T) {
	h := newHarness(t, &backend{})
	h.login(t, "T1")

	transport := api.NewAuthTransport(h.store, h.refresher, h.server.Client().Transport)
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		h.server.URL+"/cart/add/", io.NopCloser(strings.NewReader(`{"quantity":1}`)))
	require.NoError(t, err)

	resp, err := (&http.Client{Transport: transport}).Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, h.backend.refreshCalls.Load())
}

func TestAuthTransport_PassesThroughOtherStatuses(t *testing.T) {
	h := newHarness(t, &backend{validToken: "T1"})
	h.login(t, "T1")

	var out map[string]string
	require.NoError(t, h.client.Get(context.Background(), "/accounts/", nil, &out))

	assert.Equal(t, "/accounts/", out["path"])
	assert.Equal(t, []string{"Bearer T1"}, h.backend.authorizations("/accounts/"))
	assert.Zero(t, h.backend.refreshCalls.Load())
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches stored access token", func(t *testing.T) {
		store := credentials.NewStore(storage.NewMemory())
		require.NoError(t, store.Save(ctx, &entities.TokenPair{Access: "T1", Refresh: "R1"}))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://store.test/cart/", nil)
		require.NoError(t, err)

		assert.Equal(t, "T1", api.Authorize(req, store))
		assert.Equal(t, "Bearer T1", req.Header.Get("Authorization"))
	})

	t.Run("malformed stored value sends no header", func(t *testing.T) {
		kv := storage.NewMemory()
		require.NoError(t, kv.Set(ctx, "authTokens", "not-json"))
		store := credentials.NewStore(kv)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://store.test/cart/", nil)
		require.NoError(t, err)

		assert.Empty(t, api.Authorize(req, store))
		assert.Empty(t, req.Header.Get("Authorization"))
	})
}
