package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"gamestore/internal/storefront/domain/entities"
)

// ErrMalformedToken возвращается, если access-токен не разбирается как JWT.
var ErrMalformedToken = errors.New("malformed access token")

type accessClaims struct {
	UserID   entities.FlexibleID `json:"user_id"`
	Username string              `json:"username"`
	Email    string              `json:"email"`
	IsStaff  bool                `json:"is_staff"`
	jwt.RegisteredClaims
}

// Decode извлекает личность из claims access-токена без проверки подписи:
// подпись проверяет бэкенд. Функция не имеет побочных эффектов.
func Decode(access string) (*entities.Identity, error) {
	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(access, &claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	identity := &entities.Identity{
		UserID:   claims.UserID.String(),
		Username: claims.Username,
		Email:    claims.Email,
		IsStaff:  claims.IsStaff,
	}
	if identity.UserID == "" {
		identity.UserID = claims.Subject
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
