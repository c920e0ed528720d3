package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogPasswordChanged        = "password changed"
	LogPasswordResetRequested = "password reset requested"

	ErrorFailedChangePassword = "failed to change password"
	ErrorFailedRequestReset   = "failed to request password reset"
	ErrorFailedConfirmReset   = "failed to confirm password reset"
)

// ResetRequestedMessage - ответ на запрос сброса пароля.
const ResetRequestedMessage = "Jika email terdaftar, link reset telah dikirim."

type changePasswordBody struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Accounts - операции с учетной записью пользователя.
type Accounts struct {
	client     *api.Client
	identities Identities
	validator  Validator
}

// NewAccounts создает сервис учетной записи.
func NewAccounts(client *api.Client, identities Identities, validator Validator) *Accounts {
	return &Accounts{
		client:     client,
		identities: identities,
		validator:  validator,
	}
}

// ChangePassword меняет пароль. Подтверждение сверяется локально и на
// бэкенд не отправляется.
func (a *Accounts) ChangePassword(ctx context.Context, req *entities.ChangePasswordRequest) (*entities.MessageResponse, error) {
	identity, err := a.identities.RequireIdentity()
	if err != nil {
		return nil, err
	}
	if err := a.validator.Validate(req); err != nil {
		return nil, err
	}

	body := changePasswordBody{OldPassword: req.OldPassword, NewPassword: req.NewPassword}

	var result entities.MessageResponse
	if err := a.client.Patch(ctx, "/change-password/", &body, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedChangePassword, err)
	}

	logger.Log(ctx).Info(ctx, LogPasswordChanged, zap.String("username", identity.Username))
	return &result, nil
}

// RequestPasswordReset просит бэкенд отправить письмо для сброса пароля.
// Ошибки бэкенда не раскрываются: ответ всегда общий.
func (a *Accounts) RequestPasswordReset(ctx context.Context, req *entities.PasswordResetRequest) (*entities.MessageResponse, error) {
	if err := a.validator.Validate(req); err != nil {
		return nil, err
	}

	var result entities.MessageResponse
	if err := a.client.Post(ctx, "/password-reset/", req, &result); err != nil {
		logger.Log(ctx).Warn(ctx, ErrorFailedRequestReset, zap.Error(err))
		return &entities.MessageResponse{Success: ResetRequestedMessage}, nil
	}

	logger.Log(ctx).Info(ctx, LogPasswordResetRequested)
	if result.Text() == "" {
		result.Success = ResetRequestedMessage
	}
	return &result, nil
}

// ConfirmPasswordReset устанавливает новый пароль по ссылке из письма.
func (a *Accounts) ConfirmPasswordReset(ctx context.Context, req *entities.PasswordResetConfirm) (*entities.MessageResponse, error) {
	if err := a.validator.Validate(req); err != nil {
		return nil, err
	}

	var result entities.MessageResponse
	if err := a.client.Post(ctx, "/password-reset/confirm/", req, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedConfirmReset, err)
	}
	return &result, nil
}
