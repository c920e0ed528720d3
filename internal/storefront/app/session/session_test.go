package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/adapters/navigation"
	"gamestore/internal/storefront/adapters/storage"
	"gamestore/internal/storefront/app/credentials"
	"gamestore/internal/storefront/app/session"
	"gamestore/internal/storefront/config"
	"gamestore/internal/storefront/domain/entities"
	ports "gamestore/internal/storefront/ports/navigation"
	"gamestore/internal/storefront/ports/services"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func accessToken(t *testing.T, username string, staff bool, expiresAt time.Time) string {
	t.Helper()
	return signToken(t, jwt.MapClaims{
		"user_id":  42,
		"username": username,
		"email":    username + "@mail.test",
		"is_staff": staff,
		"exp":      expiresAt.Unix(),
	})
}

type fakeIssuer struct {
	pair      *entities.TokenPair
	err       error
	registers []string
}

func (f *fakeIssuer) Obtain(context.Context, *entities.LoginRequest) (*entities.TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pair, nil
}

func (f *fakeIssuer) Refresh(context.Context, string) (*entities.TokenPair, error) {
	return nil, errors.New("not used")
}

func (f *fakeIssuer) Register(_ context.Context, req *entities.RegisterRequest) error {
	if f.err != nil {
		return f.err
	}
	f.registers = append(f.registers, req.Username)
	return nil
}

type fakeRefresher struct {
	mu        sync.Mutex
	calls     int
	err       error
	listeners []services.SessionListener
	called    chan struct{}
}

func (f *fakeRefresher) Refresh(context.Context) (string, error) {
	f.mu.Lock()
	f.calls++
	called := f.called
	f.mu.Unlock()
	if called != nil {
		select {
		case called <- struct{}{}:
		default:
		}
	}
	return "", f.err
}

func (f *fakeRefresher) Subscribe(listener services.SessionListener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, listener)
}

func (f *fakeRefresher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fixture struct {
	store     *credentials.Store
	issuer    *fakeIssuer
	refresher *fakeRefresher
	navigator *navigation.Recorder
}

func newFixture() *fixture {
	return &fixture{
		store:     credentials.NewStore(storage.NewMemory()),
		issuer:    &fakeIssuer{},
		refresher: &fakeRefresher{},
		navigator: navigation.NewRecorder(),
	}
}

func (f *fixture) session(t *testing.T) *session.Session {
	t.Helper()
	cfg := &config.SessionConfig{RefreshThreshold: 2 * time.Minute, SignInPath: ports.PathSignIn}
	return session.New(context.Background(), cfg, f.store, f.issuer, f.refresher, f.navigator,
		session.WithClock(func() time.Time { return now }))
}

func TestNew_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("valid stored token restores identity", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.store.Save(ctx, &entities.TokenPair{
			Access:  accessToken(t, "budi", false, now.Add(time.Hour)),
			Refresh: "R1",
		}))

		s := f.session(t)

		identity := s.Identity()
		require.NotNil(t, identity)
		assert.Equal(t, "budi", identity.Username)
		assert.Equal(t, "42", identity.UserID)
		assert.Len(t, f.refresher.listeners, 1, "session listens to refresh events")
	})

	t.Run("expired stored token is discarded", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.store.Save(ctx, &entities.TokenPair{
			Access:  accessToken(t, "budi", false, now.Add(-time.Second)),
			Refresh: "R1",
		}))

		s := f.session(t)

		assert.Nil(t, s.Identity())
		_, ok := f.store.Load(ctx)
		assert.False(t, ok)
	})

	t.Run("undecodable stored token is discarded", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.store.Save(ctx, &entities.TokenPair{Access: "opaque", Refresh: "R1"}))

		s := f.session(t)

		assert.Nil(t, s.Identity())
		_, ok := f.store.Load(ctx)
		assert.False(t, ok)
	})

	t.Run("no stored pair", func(t *testing.T) {
		f := newFixture()
		s := f.session(t)
		assert.Nil(t, s.Identity())
		assert.Empty(t, f.navigator.History())
	})
}

func TestSession_Require(t *testing.T) {
	ctx := context.Background()

	t.Run("guest", func(t *testing.T) {
		s := newFixture().session(t)

		_, err := s.RequireIdentity()
		assert.ErrorIs(t, err, services.ErrNotAuthenticated)
		_, err = s.RequireStaff()
		assert.ErrorIs(t, err, services.ErrNotAuthenticated)
	})

	t.Run("customer is not staff", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.store.Save(ctx, &entities.TokenPair{Access: accessToken(t, "budi", false, now.Add(time.Hour))}))
		s := f.session(t)

		_, err := s.RequireIdentity()
		require.NoError(t, err)
		_, err = s.RequireStaff()
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("staff", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.store.Save(ctx, &entities.TokenPair{Access: accessToken(t, "admin", true, now.Add(time.Hour))}))
		s := f.session(t)

		identity, err := s.RequireStaff()
		require.NoError(t, err)
		assert.True(t, identity.IsStaff)
	})

	t.Run("identity is a copy", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.store.Save(ctx, &entities.TokenPair{Access: accessToken(t, "budi", false, now.Add(time.Hour))}))
		s := f.session(t)

		s.Identity().Username = "mallory"
		assert.Equal(t, "budi", s.Identity().Username)
	})
}

func TestSession_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("stores pair, sets identity and navigates home", func(t *testing.T) {
		f := newFixture()
		access := accessToken(t, "budi", false, now.Add(time.Hour))
		f.issuer.pair = &entities.TokenPair{Access: access, Refresh: "R1"}
		s := f.session(t)

		var changes []*entities.Identity
		s.OnChange(func(_ context.Context, identity *entities.Identity) {
			changes = append(changes, identity)
		})

		identity, err := s.Login(ctx, &entities.LoginRequest{Username: "budi", Password: "Rahasia123"})

		require.NoError(t, err)
		assert.Equal(t, "budi", identity.Username)
		pair, ok := f.store.Load(ctx)
		require.True(t, ok)
		assert.Equal(t, access, pair.Access)
		assert.Equal(t, []string{ports.PathHome}, f.navigator.History())
		require.Len(t, changes, 1)
		assert.Equal(t, "budi", changes[0].Username)
	})

	t.Run("rejected credentials leave session untouched", func(t *testing.T) {
		f := newFixture()
		f.issuer.err = errors.New("backend responded 401")
		s := f.session(t)

		_, err := s.Login(ctx, &entities.LoginRequest{Username: "budi", Password: "wrong"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), session.ErrorFailedLogin)
		assert.Nil(t, s.Identity())
		assert.Empty(t, f.navigator.History())
	})

	t.Run("undecodable issued token is not stored", func(t *testing.T) {
		f := newFixture()
		f.issuer.pair = &entities.TokenPair{Access: "opaque", Refresh: "R1"}
		s := f.session(t)

		_, err := s.Login(ctx, &entities.LoginRequest{Username: "budi", Password: "Rahasia123"})

		assert.ErrorIs(t, err, session.ErrMalformedToken)
		_, ok := f.store.Load(ctx)
		assert.False(t, ok)
	})

	t.Run("register logs in with the same credentials", func(t *testing.T) {
		f := newFixture()
		f.issuer.pair = &entities.TokenPair{Access: accessToken(t, "sari", false, now.Add(time.Hour)), Refresh: "R1"}
		s := f.session(t)

		identity, err := s.Register(ctx, &entities.RegisterRequest{
			Username: "sari", Email: "sari@mail.test", Password: "Rahasia123", Password2: "Rahasia123",
		})

		require.NoError(t, err)
		assert.Equal(t, "sari", identity.Username)
		assert.Equal(t, []string{"sari"}, f.issuer.registers)
	})
}

func TestSession_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.store.Save(ctx, &entities.TokenPair{Access: accessToken(t, "budi", false, now.Add(time.Hour))}))
	s := f.session(t)

	var changes []*entities.Identity
	s.OnChange(func(_ context.Context, identity *entities.Identity) {
		changes = append(changes, identity)
	})

	s.Logout(ctx)

	assert.Nil(t, s.Identity())
	_, ok := f.store.Load(ctx)
	assert.False(t, ok)
	assert.Equal(t, []string{ports.PathSignIn}, f.navigator.History())
	assert.Equal(t, []*entities.Identity{nil}, changes)
}

func TestSession_Check(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		expiresIn time.Duration
		loggedIn  bool
		wantCalls int
	}{
		{name: "far from expiry", expiresIn: time.Hour, loggedIn: true, wantCalls: 0},
		{name: "within threshold", expiresIn: time.Minute, loggedIn: true, wantCalls: 1},
		{name: "exactly at threshold", expiresIn: 2 * time.Minute, loggedIn: true, wantCalls: 1},
		{name: "guest", loggedIn: false, wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.loggedIn {
				require.NoError(t, f.store.Save(ctx, &entities.TokenPair{
					Access: accessToken(t, "budi", false, now.Add(tt.expiresIn)),
				}))
			}
			s := f.session(t)

			s.Check(ctx)

			assert.Equal(t, tt.wantCalls, f.refresher.count())
		})
	}

	t.Run("failed proactive refresh is only logged", func(t *testing.T) {
		f := newFixture()
		f.refresher.err = services.ErrSessionExpired
		require.NoError(t, f.store.Save(ctx, &entities.TokenPair{Access: accessToken(t, "budi", false, now.Add(time.Minute))}))
		s := f.session(t)

		assert.NotPanics(t, func() { s.Check(ctx) })
		assert.Equal(t, 1, f.refresher.count())
	})
}

func TestSession_RefreshEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("refreshed pair updates identity", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.store.Save(ctx, &entities.TokenPair{Access: accessToken(t, "budi", false, now.Add(time.Minute))}))
		s := f.session(t)

		fresh := now.Add(time.Hour)
		s.SessionRefreshed(ctx, &entities.TokenPair{Access: accessToken(t, "budi", false, fresh)})

		assert.Equal(t, fresh.Unix(), s.Identity().ExpiresAt.Unix())
	})

	t.Run("termination drops identity and navigates to sign in", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.store.Save(ctx, &entities.TokenPair{Access: accessToken(t, "budi", false, now.Add(time.Hour))}))
		s := f.session(t)

		s.SessionTerminated(ctx)

		assert.Nil(t, s.Identity())
		assert.Equal(t, []string{ports.PathSignIn}, f.navigator.History())
	})
}
