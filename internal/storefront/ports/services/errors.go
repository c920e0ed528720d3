// Package services определяет интерфейсы и ошибки сервисов витрины.
package services

import "errors"

// Ошибки сервисов витрины.
var (
	ErrTransport        = errors.New("backend is unreachable")
	ErrSessionExpired   = errors.New("session expired")
	ErrNoCredentials    = errors.New("no stored credentials")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("staff access required")
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
)
