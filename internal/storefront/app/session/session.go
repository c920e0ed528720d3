// Package session содержит контейнер сессии пользователя витрины.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"gamestore/internal/storefront/config"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/navigation"
	"gamestore/internal/storefront/ports/services"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogSessionRestored   = "session restored"
	LogSessionDiscarded  = "stored session discarded"
	LogLoggedIn          = "user logged in"
	LogRegistered        = "user registered"
	LogLoggedOut         = "user logged out"
	LogProactiveRefresh  = "access token close to expiry, refreshing"
	LogProactiveFailed   = "proactive token refresh failed"
	ErrorFailedLogin     = "login failed"
	ErrorFailedRegister  = "registration failed"
	ErrorFailedSave      = "failed to save token pair"
	ErrorFailedClear     = "failed to clear token pair"
	ErrorUndecodablePair = "issued access token cannot be decoded"
)

// Refresher - единый механизм обновления токена.
type Refresher interface {
	Refresh(ctx context.Context) (string, error)

	Subscribe(listener services.SessionListener)
}

// Session хранит личность, производную от сохраненного access-токена.
type Session struct {
	store     services.CredentialStore
	issuer    services.TokenIssuer
	refresher Refresher
	navigator navigation.Navigator
	threshold time.Duration
	signIn    string
	now       func() time.Time

	mu       sync.RWMutex
	identity *entities.Identity

	subsMu      sync.RWMutex
	subscribers []func(ctx context.Context, identity *entities.Identity)
}

var _ services.SessionService = (*Session)(nil)

// Option настраивает Session.
type Option func(*Session)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New создает контейнер сессии и восстанавливает сохраненную пару.
// Истекший или нечитаемый access-токен удаляется.
func New(
	ctx context.Context,
	cfg *config.SessionConfig,
	store services.CredentialStore,
	issuer services.TokenIssuer,
	refresher Refresher,
	navigator navigation.Navigator,
	opts ...Option,
) *Session {
	s := &Session{
		store:     store,
		issuer:    issuer,
		refresher: refresher,
		navigator: navigator,
		threshold: cfg.RefreshThreshold,
		signIn:    cfg.SignInPath,
		now:       time.Now,
	}
	if s.signIn == "" {
		s.signIn = navigation.PathSignIn
	}
	for _, opt := range opts {
		opt(s)
	}

	s.restore(ctx)
	refresher.Subscribe(s)
	return s
}

func (s *Session) restore(ctx context.Context) {
	log := logger.Log(ctx)

	pair, ok := s.store.Load(ctx)
	if !ok {
		return
	}

	identity, err := Decode(pair.Access)
	if err == nil && !identity.Expired(s.now()) {
		s.setIdentity(identity)
		log.Info(ctx, LogSessionRestored, zap.String("username", identity.Username))
		return
	}

	log.Info(ctx, LogSessionDiscarded, zap.Error(err))
	if clearErr := s.store.Clear(ctx); clearErr != nil {
		log.Error(ctx, ErrorFailedClear, zap.Error(clearErr))
	}
}

// Identity возвращает копию текущей личности или nil.
func (s *Session) Identity() *entities.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// RequireIdentity возвращает личность или ErrNotAuthenticated.
func (s *Session) RequireIdentity() (*entities.Identity, error) {
	identity := s.Identity()
	if identity == nil {
		return nil, services.ErrNotAuthenticated
	}
	return identity, nil
}

// RequireStaff возвращает личность сотрудника магазина.
func (s *Session) RequireStaff() (*entities.Identity, error) {
	identity, err := s.RequireIdentity()
	if err != nil {
		return nil, err
	}
	if !identity.IsStaff {
		return nil, services.ErrForbidden
	}
	return identity, nil
}

// OnChange подписывает fn на смену личности; nil означает выход.
func (s *Session) OnChange(fn func(ctx context.Context, identity *entities.Identity)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Login выполняет вход и переходит на главную.
func (s *Session) Login(ctx context.Context, req *entities.LoginRequest) (*entities.Identity, error) {
	pair, err := s.issuer.Obtain(ctx, req)
	if err != nil {
		logger.Log(ctx).Warn(ctx, ErrorFailedLogin, zap.String("username", req.Username), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedLogin, err)
	}

	identity, err := Decode(pair.Access)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorUndecodablePair, err)
	}
	if err := s.store.Save(ctx, pair); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedSave, err)
	}

	s.setIdentity(identity)
	s.notify(ctx, identity)
	logger.Log(ctx).Info(ctx, LogLoggedIn, zap.String("username", identity.Username))

	s.navigator.Navigate(ctx, navigation.PathHome)
	return s.Identity(), nil
}

// Register создает учетную запись и сразу выполняет вход.
func (s *Session) Register(ctx context.Context, req *entities.RegisterRequest) (*entities.Identity, error) {
	if err := s.issuer.Register(ctx, req); err != nil {
		logger.Log(ctx).Warn(ctx, ErrorFailedRegister, zap.String("username", req.Username), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedRegister, err)
	}
	logger.Log(ctx).Info(ctx, LogRegistered, zap.String("username", req.Username))

	return s.Login(ctx, &entities.LoginRequest{Username: req.Username, Password: req.Password})
}

// Logout удаляет пару, сбрасывает личность и переходит на страницу входа.
func (s *Session) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedClear, zap.Error(err))
	}
	s.drop(ctx)
	logger.Log(ctx).Info(ctx, LogLoggedOut)
}

// Check обновляет токен заранее, если до истечения осталось не больше порога.
func (s *Session) Check(ctx context.Context) {
	identity := s.Identity()
	if identity == nil || identity.ExpiresAt.IsZero() {
		return
	}
	if identity.ExpiresAt.Sub(s.now()) > s.threshold {
		return
	}

	logger.Log(ctx).Info(ctx, LogProactiveRefresh, zap.Time("expires_at", identity.ExpiresAt))
	if _, err := s.refresher.Refresh(ctx); err != nil {
		logger.Log(ctx).Warn(ctx, LogProactiveFailed, zap.Error(err))
	}
}

// SessionRefreshed обновляет личность после успешного обновления токена.
func (s *Session) SessionRefreshed(ctx context.Context, pair *entities.TokenPair) {
	identity, err := Decode(pair.Access)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrorUndecodablePair, zap.Error(err))
		return
	}
	s.setIdentity(identity)
	s.notify(ctx, identity)
}

// SessionTerminated сбрасывает личность после принудительного завершения сессии.
func (s *Session) SessionTerminated(ctx context.Context) {
	s.drop(ctx)
}

func (s *Session) drop(ctx context.Context) {
	s.setIdentity(nil)
	s.notify(ctx, nil)
	s.navigator.Navigate(ctx, s.signIn)
}

func (s *Session) setIdentity(identity *entities.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
}

func (s *Session) notify(ctx context.Context, identity *entities.Identity) {
	s.subsMu.RLock()
	subscribers := make([]func(context.Context, *entities.Identity), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.subsMu.RUnlock()

	for _, fn := range subscribers {
		var snapshot *entities.Identity
		if identity != nil {
			copied := *identity
			snapshot = &copied
		}
		fn(ctx, snapshot)
	}
}
