// Package storage определяет хранилище ключ-значение витрины.
package storage

import (
	"context"
	"errors"
)

// Ключи хранилища.
const (
	KeyAuthTokens = "authTokens"
	KeyLanguage   = "language"
)

// ErrNotFound возвращается, когда ключ отсутствует.
var ErrNotFound = errors.New("storage key not found")

// KV - долговременное строковое хранилище, общее для процесса витрины.
type KV interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key string, value string) error

	Delete(ctx context.Context, key string) error
}
