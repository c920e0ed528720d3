package payment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/adapters/payment"
	"gamestore/internal/storefront/config"
	ports "gamestore/internal/storefront/ports/payment"
)

type outcomes struct {
	events   []string
	payloads []map[string]any
}

func (o *outcomes) callbacks() ports.Callbacks {
	record := func(name string) func(context.Context, map[string]any) {
		return func(_ context.Context, payload map[string]any) {
			o.events = append(o.events, name)
			o.payloads = append(o.payloads, payload)
		}
	}
	return ports.Callbacks{
		OnSuccess: record(ports.ResultSuccess),
		OnPending: record(ports.ResultPending),
		OnError:   record(ports.ResultError),
		OnClose: func(context.Context) {
			o.events = append(o.events, ports.ResultClose)
		},
	}
}

func newSnap() *payment.Snap {
	return payment.NewSnap(&config.PaymentConfig{
		SnapURL:   "https://app.sandbox.midtrans.com/snap/snap.js",
		ClientKey: "SB-Mid-client-test",
	})
}

func TestSnap_Script(t *testing.T) {
	assert.Equal(t, ports.Script{
		URL:       "https://app.sandbox.midtrans.com/snap/snap.js",
		ClientKey: "SB-Mid-client-test",
	}, newSnap().Script())
}

func TestSnap_Resolve(t *testing.T) {
	ctx := context.Background()

	for _, result := range []string{ports.ResultSuccess, ports.ResultPending, ports.ResultError, ports.ResultClose} {
		t.Run(result, func(t *testing.T) {
			snap := newSnap()
			var got outcomes
			require.NoError(t, snap.Pay(ctx, "tok-1", got.callbacks()))
			assert.True(t, snap.Awaiting("tok-1"))

			require.NoError(t, snap.Resolve(ctx, "tok-1", result, map[string]any{"order_id": "TRX-1"}))

			assert.Equal(t, []string{result}, got.events)
			assert.False(t, snap.Awaiting("tok-1"))
		})
	}

	t.Run("outcome is delivered once", func(t *testing.T) {
		snap := newSnap()
		var got outcomes
		require.NoError(t, snap.Pay(ctx, "tok-1", got.callbacks()))

		require.NoError(t, snap.Resolve(ctx, "tok-1", ports.ResultSuccess, nil))
		err := snap.Resolve(ctx, "tok-1", ports.ResultSuccess, nil)

		assert.ErrorIs(t, err, ports.ErrUnknownToken)
		assert.Len(t, got.events, 1)
	})

	t.Run("unknown result keeps the payment open", func(t *testing.T) {
		snap := newSnap()
		require.NoError(t, snap.Pay(ctx, "tok-1", ports.Callbacks{}))

		err := snap.Resolve(ctx, "tok-1", "settled", nil)

		assert.ErrorIs(t, err, ports.ErrUnknownResult)
		assert.True(t, snap.Awaiting("tok-1"))
	})

	t.Run("nil callbacks are skipped", func(t *testing.T) {
		snap := newSnap()
		require.NoError(t, snap.Pay(ctx, "tok-1", ports.Callbacks{}))
		assert.NoError(t, snap.Resolve(ctx, "tok-1", ports.ResultClose, nil))
	})

	t.Run("paying again replaces callbacks", func(t *testing.T) {
		snap := newSnap()
		var first, second outcomes
		require.NoError(t, snap.Pay(ctx, "tok-1", first.callbacks()))
		require.NoError(t, snap.Pay(ctx, "tok-1", second.callbacks()))

		require.NoError(t, snap.Resolve(ctx, "tok-1", ports.ResultPending, map[string]any{"va": "123"}))

		assert.Empty(t, first.events)
		assert.Equal(t, []string{ports.ResultPending}, second.events)
		assert.Equal(t, "123", second.payloads[0]["va"])
	})
}

func TestSnap_PayEmptyToken(t *testing.T) {
	assert.ErrorIs(t, newSnap().Pay(context.Background(), "", ports.Callbacks{}), ports.ErrEmptyToken)
}
