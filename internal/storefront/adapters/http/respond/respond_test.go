package respond_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"gamestore/internal/storefront/adapters/http/respond"
	"gamestore/internal/storefront/app/locale"
	appservices "gamestore/internal/storefront/app/services"
	"gamestore/internal/storefront/ports/payment"
	"gamestore/internal/storefront/ports/services"
	"gamestore/internal/storefront/resilience"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: services.ErrNotAuthenticated, want: http.StatusUnauthorized},
		{err: fmt.Errorf("%w: %w", services.ErrSessionExpired, errors.New("refresh rejected")), want: http.StatusUnauthorized},
		{err: services.ErrNoCredentials, want: http.StatusUnauthorized},
		{err: services.ErrForbidden, want: http.StatusForbidden},
		{err: fmt.Errorf("failed to get account: %w", services.ErrNotFound), want: http.StatusNotFound},
		{err: payment.ErrUnknownToken, want: http.StatusNotFound},
		{err: services.ErrInvalidInput, want: http.StatusBadRequest},
		{err: locale.ErrUnsupportedLanguage, want: http.StatusBadRequest},
		{err: payment.ErrUnknownResult, want: http.StatusBadRequest},
		{err: payment.ErrEmptyToken, want: http.StatusBadRequest},
		{err: appservices.ErrAlreadyReviewed, want: http.StatusConflict},
		{err: resilience.ErrCircuitOpen, want: http.StatusServiceUnavailable},
		{err: services.ErrTransport, want: http.StatusBadGateway},
		{err: appservices.ErrNoPaymentToken, want: http.StatusBadGateway},
		{err: errors.New("something else"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, respond.Status(tt.err))
		})
	}
}
