// Package payment связывает размещенный платежный виджет с витриной.
package payment

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gamestore/internal/storefront/config"
	"gamestore/internal/storefront/ports/payment"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogPaymentOpened   = "payment widget opened"
	LogPaymentResolved = "payment widget reported result"
)

// Snap хранит обработчики открытых оплат до тех пор, пока интерфейс
// не сообщит исход виджета. Каждый исход доставляется один раз.
type Snap struct {
	script payment.Script

	mu     sync.Mutex
	parked map[string]payment.Callbacks
}

var _ payment.Widget = (*Snap)(nil)

// NewSnap создает адаптер виджета.
func NewSnap(cfg *config.PaymentConfig) *Snap {
	return &Snap{
		script: payment.Script{URL: cfg.SnapURL, ClientKey: cfg.ClientKey},
		parked: make(map[string]payment.Callbacks),
	}
}

// Script возвращает параметры скрипта виджета.
func (s *Snap) Script() payment.Script {
	return s.script
}

// Pay открывает оплату по токену транзакции. Повторный вызов с тем же токеном
// заменяет обработчики.
func (s *Snap) Pay(ctx context.Context, token string, callbacks payment.Callbacks) error {
	if token == "" {
		return payment.ErrEmptyToken
	}

	s.mu.Lock()
	s.parked[token] = callbacks
	s.mu.Unlock()

	logger.Log(ctx).Info(ctx, LogPaymentOpened, zap.String("token", token))
	return nil
}

// Awaiting сообщает, ждет ли оплата исхода.
func (s *Snap) Awaiting(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.parked[token]
	return ok
}

// Resolve доставляет исход оплаты, сообщенный интерфейсом.
func (s *Snap) Resolve(ctx context.Context, token, result string, payload map[string]any) error {
	switch result {
	case payment.ResultSuccess, payment.ResultPending, payment.ResultError, payment.ResultClose:
	default:
		return fmt.Errorf("%w: %q", payment.ErrUnknownResult, result)
	}

	s.mu.Lock()
	callbacks, ok := s.parked[token]
	delete(s.parked, token)
	s.mu.Unlock()

	if !ok {
		return payment.ErrUnknownToken
	}

	logger.Log(ctx).Info(ctx, LogPaymentResolved, zap.String("token", token), zap.String("result", result))

	switch result {
	case payment.ResultSuccess:
		if callbacks.OnSuccess != nil {
			callbacks.OnSuccess(ctx, payload)
		}
	case payment.ResultPending:
		if callbacks.OnPending != nil {
			callbacks.OnPending(ctx, payload)
		}
	case payment.ResultError:
		if callbacks.OnError != nil {
			callbacks.OnError(ctx, payload)
		}
	case payment.ResultClose:
		if callbacks.OnClose != nil {
			callbacks.OnClose(ctx)
		}
	}
	return nil
}
