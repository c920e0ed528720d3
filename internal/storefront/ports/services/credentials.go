package services

import (
	"context"

	"gamestore/internal/storefront/domain/entities"
)

// CredentialStore хранит пару токенов. Load никогда не возвращает ошибку:
// отсутствующее или поврежденное значение означает "нет пары".
type CredentialStore interface {
	Save(ctx context.Context, pair *entities.TokenPair) error

	Load(ctx context.Context) (*entities.TokenPair, bool)

	Clear(ctx context.Context) error
}

// TokenIssuer выдает и обновляет токены, не проходя через перехватчик авторизации.
type TokenIssuer interface {
	Obtain(ctx context.Context, req *entities.LoginRequest) (*entities.TokenPair, error)

	Refresh(ctx context.Context, refreshToken string) (*entities.TokenPair, error)

	Register(ctx context.Context, req *entities.RegisterRequest) error
}

// SessionListener получает события единого обновления токена.
type SessionListener interface {
	SessionRefreshed(ctx context.Context, pair *entities.TokenPair)

	SessionTerminated(ctx context.Context)
}
