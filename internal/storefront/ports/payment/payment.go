// Package payment определяет платежный виджет.
package payment

import (
	"context"
	"errors"
)

// Исходы оплаты, о которых сообщает виджет.
const (
	ResultSuccess = "success"
	ResultPending = "pending"
	ResultError   = "error"
	ResultClose   = "close"
)

// Ошибки виджета.
var (
	ErrUnknownToken  = errors.New("payment token is not awaiting a result")
	ErrUnknownResult = errors.New("unknown payment result")
	ErrEmptyToken    = errors.New("payment token is empty")
)

// Callbacks - обработчики исходов оплаты. Любой из них может быть nil.
type Callbacks struct {
	OnSuccess func(ctx context.Context, payload map[string]any)
	OnPending func(ctx context.Context, payload map[string]any)
	OnError   func(ctx context.Context, payload map[string]any)
	OnClose   func(ctx context.Context)
}

// Script - параметры загрузки скрипта виджета в интерфейсе.
type Script struct {
	URL       string `json:"url"`
	ClientKey string `json:"client_key"`
}

// Widget - размещенный платежный виджет.
type Widget interface {
	Pay(ctx context.Context, token string, callbacks Callbacks) error
}
