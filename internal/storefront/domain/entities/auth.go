// Package entities содержит доменные модели витрины.
package entities

import "time"

// TokenPair - пара токенов, выданная бэкендом при входе и при обновлении.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Identity - производная от claims access-токена, нигде не сохраняется.
type Identity struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	IsStaff   bool      `json:"is_staff"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired сообщает, истек ли токен к моменту now.
func (i *Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// LoginRequest - форма входа.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest - форма регистрации.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,strongpassword"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
}

// ChangePasswordRequest - смена пароля в профиле.
type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password,omitempty" validate:"required,eqfield=NewPassword"`
}

// PasswordResetConfirm - подтверждение сброса пароля по ссылке из письма.
type PasswordResetConfirm struct {
	UID         string `json:"uidb64" validate:"required"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// PasswordResetRequest - запрос письма для сброса пароля.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}
