package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/app/session"
	"gamestore/internal/storefront/domain/entities"
)

func TestMonitor(t *testing.T) {
	ctx := context.Background()

	f := newFixture()
	f.refresher.called = make(chan struct{}, 1)
	require.NoError(t, f.store.Save(ctx, &entities.TokenPair{Access: accessToken(t, "budi", false, now.Add(time.Minute))}))
	s := f.session(t)

	monitor := session.NewMonitor(s, time.Second)
	monitor.Start(ctx)

	select {
	case <-f.refresher.called:
	case <-time.After(3 * time.Second):
		t.Fatal("monitor did not check the session")
	}

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, monitor.Stop(stopCtx))

	calls := f.refresher.count()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, calls, f.refresher.count(), "no checks after stop")
}
