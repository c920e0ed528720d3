package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"gamestore/internal/storefront/ports/services"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogUnauthorized      = "backend rejected access token"
	LogRetryRejected     = "backend rejected refreshed access token"
	LogBodyNotRewindable = "request body cannot be replayed after refresh"
)

type retriedKey struct{}

// markRetried помечает запрос как уже повторенный после обновления токена.
func markRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, retriedKey{}, true)
}

func retried(ctx context.Context) bool {
	v, _ := ctx.Value(retriedKey{}).(bool)
	return v
}

// Authorize выставляет Bearer-токен из хранилища, если он есть, и возвращает его.
// Ошибки хранилища не мешают запросу: он уходит без авторизации.
func Authorize(req *http.Request, store services.CredentialStore) string {
	pair, ok := store.Load(req.Context())
	if !ok || pair.Access == "" {
		return ""
	}
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	return pair.Access
}

// AuthTransport добавляет токен к каждому запросу и при 401 повторяет запрос
// один раз после единого обновления токена.
type AuthTransport struct {
	store     services.CredentialStore
	refresher *Refresher
	next      http.RoundTripper
}

// NewAuthTransport создает транспорт авторизации поверх next.
func NewAuthTransport(store services.CredentialStore, refresher *Refresher, next http.RoundTripper) *AuthTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &AuthTransport{
		store:     store,
		refresher: refresher,
		next:      next,
	}
}

// RoundTrip реализует http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.roundTrip(req, "")
}

func (t *AuthTransport) roundTrip(req *http.Request, access string) (*http.Response, error) {
	ctx := req.Context()
	log := logger.Log(ctx).With(zap.String("method", req.Method), zap.String("path", req.URL.Path))

	out := req.Clone(ctx)
	if access == "" {
		access = Authorize(out, t.store)
	} else {
		out.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := t.next.RoundTrip(out)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err //nolint:wrapcheck
	}

	if retried(ctx) {
		log.Warn(ctx, LogRetryRejected)
		return resp, nil
	}

	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		log.Warn(ctx, LogBodyNotRewindable)
		return resp, nil
	}

	log.Debug(ctx, LogUnauthorized)

	fresh, err := t.refresher.Renew(ctx, access)
	if err != nil {
		if errors.Is(err, services.ErrNoCredentials) {
			return resp, nil
		}
		drain(resp)
		return nil, err
	}
	drain(resp)

	replay := req.Clone(markRetried(ctx))
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind request body: %w", err)
		}
		replay.Body = body
	}

	return t.roundTrip(replay, fresh)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
