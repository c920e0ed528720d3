package api

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogRefreshStarted    = "access token refresh started"
	LogRefreshSucceeded  = "access token refreshed"
	LogRefreshFailed     = "access token refresh failed"
	LogRefreshQueued     = "request queued until token refresh settles"
	LogRefreshReplay     = "token was refreshed after request was sent, replaying"
	LogSessionTeardown   = "session torn down"
	ErrorFailedSavePair  = "failed to persist refreshed token pair"
	ErrorFailedClearPair = "failed to clear token pair"
)

// DefaultRefreshTimeout ограничивает вызов обновления токена, если таймаут не задан.
const DefaultRefreshTimeout = 10 * time.Second

type refreshOutcome struct {
	access string
	err    error
}

// Refresher выполняет единственное обновление токена для всех запросов,
// получивших 401 одновременно. Флаг обновления и очередь ожидающих
// защищены одним мьютексом.
type Refresher struct {
	store    services.CredentialStore
	issuer   services.TokenIssuer
	timeout  time.Duration
	observer Observer

	mu         sync.Mutex
	refreshing bool
	pending    []chan refreshOutcome

	listenersMu sync.RWMutex
	listeners   []services.SessionListener
}

// NewRefresher создает координатор обновления токена.
func NewRefresher(
	store services.CredentialStore,
	issuer services.TokenIssuer,
	timeout time.Duration,
	observer Observer,
) *Refresher {
	if timeout <= 0 {
		timeout = DefaultRefreshTimeout
	}
	return &Refresher{
		store:    store,
		issuer:   issuer,
		timeout:  timeout,
		observer: observerOrNop(observer),
	}
}

// Subscribe добавляет получателя событий обновления и завершения сессии.
func (r *Refresher) Subscribe(listener services.SessionListener) {
	r.listenersMu.Lock()
	defer r.listenersMu.Unlock()
	r.listeners = append(r.listeners, listener)
}

// Refresh обновляет токен по инициативе таймера сессии. Если обновление уже
// идет, вызов дожидается его результата.
func (r *Refresher) Refresh(ctx context.Context) (string, error) {
	return r.renew(ctx, "")
}

// Renew вызывается для запроса, получившего 401 с токеном staleAccess.
// Возвращает access-токен для повторной отправки.
func (r *Refresher) Renew(ctx context.Context, staleAccess string) (string, error) {
	return r.renew(ctx, staleAccess)
}

// Refreshing сообщает, идет ли сейчас обновление.
func (r *Refresher) Refreshing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshing
}

func (r *Refresher) renew(ctx context.Context, staleAccess string) (string, error) {
	log := logger.Log(ctx)

	r.mu.Lock()
	if r.refreshing {
		wait := make(chan refreshOutcome, 1)
		r.pending = append(r.pending, wait)
		r.mu.Unlock()

		r.observer.ObserveWaiter()
		log.Debug(ctx, LogRefreshQueued)

		outcome := <-wait
		return outcome.access, outcome.err
	}

	pair, ok := r.store.Load(ctx)
	if ok && staleAccess != "" && pair.Access != "" && pair.Access != staleAccess {
		r.mu.Unlock()
		r.observer.ObserveRefresh(RefreshReplayed)
		log.Debug(ctx, LogRefreshReplay)
		return pair.Access, nil
	}
	r.refreshing = true
	r.mu.Unlock()

	if !ok {
		r.observer.ObserveRefresh(RefreshNoCredentials)
		r.teardown(ctx)
		r.settle(refreshOutcome{err: services.ErrNoCredentials})
		return "", services.ErrNoCredentials
	}

	log.Info(ctx, LogRefreshStarted, zap.Int("waiting", r.waiting()))

	fresh, err := r.call(ctx, pair)
	if err != nil {
		log.Warn(ctx, LogRefreshFailed, zap.Error(err))
		r.observer.ObserveRefresh(RefreshFailure)
		err = fmt.Errorf("%w: %w", services.ErrSessionExpired, err)
		r.teardown(ctx)
		r.settle(refreshOutcome{err: err})
		return "", err
	}

	if saveErr := r.store.Save(ctx, fresh); saveErr != nil {
		log.Error(ctx, ErrorFailedSavePair, zap.Error(saveErr))
	}
	r.observer.ObserveRefresh(RefreshSuccess)
	log.Info(ctx, LogRefreshSucceeded)

	r.settle(refreshOutcome{access: fresh.Access})
	r.notifyRefreshed(ctx, fresh)
	return fresh.Access, nil
}

// call обращается к бэкенду независимо от отмены запроса, вызвавшего обновление:
// его результат нужен всем ожидающим.
func (r *Refresher) call(ctx context.Context, pair *entities.TokenPair) (*entities.TokenPair, error) {
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	fresh, err := r.issuer.Refresh(callCtx, pair.Refresh)
	if err != nil {
		return nil, err
	}
	if fresh == nil || fresh.Access == "" {
		return nil, errors.New("refresh response carries no access token")
	}
	if fresh.Refresh == "" {
		fresh.Refresh = pair.Refresh
	}
	return fresh, nil
}

// settle разрешает ожидающих в порядке постановки в очередь и возвращает состояние IDLE.
func (r *Refresher) settle(outcome refreshOutcome) {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.refreshing = false
	r.mu.Unlock()

	for _, wait := range pending {
		wait <- outcome
	}
}

func (r *Refresher) waiting() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

func (r *Refresher) teardown(ctx context.Context) {
	if err := r.store.Clear(ctx); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedClearPair, zap.Error(err))
	}
	logger.Log(ctx).Info(ctx, LogSessionTeardown)

	for _, listener := range r.snapshot() {
		listener.SessionTerminated(ctx)
	}
}

func (r *Refresher) notifyRefreshed(ctx context.Context, pair *entities.TokenPair) {
	for _, listener := range r.snapshot() {
		listener.SessionRefreshed(ctx, pair)
	}
}

func (r *Refresher) snapshot() []services.SessionListener {
	r.listenersMu.RLock()
	defer r.listenersMu.RUnlock()
	out := make([]services.SessionListener, len(r.listeners))
	copy(out, r.listeners)
	return out
}
