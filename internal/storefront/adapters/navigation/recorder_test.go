package navigation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gamestore/internal/storefront/adapters/navigation"
	ports "gamestore/internal/storefront/ports/navigation"
)

func TestRecorder(t *testing.T) {
	t.Run("navigation inside a request goes to its sink", func(t *testing.T) {
		r := navigation.NewRecorder()
		ctx, sink := navigation.WithSink(context.Background())

		r.Navigate(ctx, ports.PathSignIn)

		assert.Equal(t, ports.PathSignIn, sink.Target())
		assert.Empty(t, r.TakePending())
	})

	t.Run("last navigation wins", func(t *testing.T) {
		r := navigation.NewRecorder()
		ctx, sink := navigation.WithSink(context.Background())

		r.Navigate(ctx, ports.PathProfile)
		r.Navigate(ctx, ports.PathHome)

		assert.Equal(t, ports.PathHome, sink.Target())
	})

	t.Run("navigation outside a request is pending until taken", func(t *testing.T) {
		r := navigation.NewRecorder()

		r.Navigate(context.Background(), ports.PathSignIn)

		assert.Equal(t, ports.PathSignIn, r.TakePending())
		assert.Empty(t, r.TakePending())
	})

	t.Run("history keeps every navigation", func(t *testing.T) {
		r := navigation.NewRecorder()
		ctx, _ := navigation.WithSink(context.Background())

		r.Navigate(ctx, ports.PathHome)
		r.Navigate(context.Background(), ports.PathSignIn)

		history := r.History()
		assert.Equal(t, []string{ports.PathHome, ports.PathSignIn}, history)

		history[0] = "/tampered"
		assert.Equal(t, ports.PathHome, r.History()[0])
	})
}
