package api

import (
	"context"
	"fmt"

	"gamestore/internal/storefront/domain/entities"
)

// Пути выдачи токенов.
const (
	PathToken        = "/token/"
	PathTokenRefresh = "/token/refresh/"
	PathRegister     = "/register/"
)

// TokenClient обращается к эндпоинтам выдачи токенов. Он должен быть построен
// на http.Client без AuthTransport: 401 при входе означает неверный пароль,
// а не истекший токен.
type TokenClient struct {
	client *Client
}

// NewTokenClient создает клиент выдачи токенов.
func NewTokenClient(client *Client) *TokenClient {
	return &TokenClient{client: client}
}

// Obtain выполняет вход по имени и паролю.
func (t *TokenClient) Obtain(ctx context.Context, req *entities.LoginRequest) (*entities.TokenPair, error) {
	var pair entities.TokenPair
	if err := t.client.Post(ctx, PathToken, req, &pair); err != nil {
		return nil, fmt.Errorf("obtain token: %w", err)
	}
	return &pair, nil
}

// Refresh обменивает refresh-токен на новый access-токен. Refresh-токен в ответе
// может отсутствовать.
func (t *TokenClient) Refresh(ctx context.Context, refreshToken string) (*entities.TokenPair, error) {
	var pair entities.TokenPair
	body := map[string]string{"refresh": refreshToken}
	if err := t.client.Post(ctx, PathTokenRefresh, body, &pair); err != nil {
		return nil, fmt.Errorf("refresh token: %w", err)
	}
	return &pair, nil
}

// Register создает учетную запись. Токены при этом не выдаются.
func (t *TokenClient) Register(ctx context.Context, req *entities.RegisterRequest) error {
	if err := t.client.Post(ctx, PathRegister, req, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}
