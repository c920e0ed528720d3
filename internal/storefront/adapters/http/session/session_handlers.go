// Package session содержит HTTP обработчики входа, регистрации и выхода.
package session

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"gamestore/internal/storefront/adapters/http/respond"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCurrent  = "session handler: current"
	LogHandlerLogin    = "session handler: login"
	LogHandlerRegister = "session handler: register"
	LogHandlerLogout   = "session handler: logout"
)

// Validator проверяет формы.
type Validator interface {
	Validate(i any) error
}

// Handler содержит HTTP обработчики сессии.
type Handler struct {
	session   services.SessionService
	validator Validator
}

// NewHandler создает обработчик сессии.
func NewHandler(session services.SessionService, validator Validator) *Handler {
	return &Handler{
		session:   session,
		validator: validator,
	}
}

type sessionResponse struct {
	Authenticated bool               `json:"authenticated"`
	Identity      *entities.Identity `json:"identity"`
}

func newSessionResponse(identity *entities.Identity) sessionResponse {
	return sessionResponse{Authenticated: identity != nil, Identity: identity}
}

// Current возвращает текущую личность или гостя.
func (h *Handler) Current(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerCurrent)

	return respond.JSON(ctx, http.StatusOK, newSessionResponse(h.session.Identity()))
}

// Login выполняет вход.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerLogin)

	var req entities.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}
	if err := h.validator.Validate(&req); err != nil {
		return respond.Error(ctx, err)
	}

	identity, err := h.session.Login(requestCtx, &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, newSessionResponse(identity))
}

// Register создает учетную запись и выполняет вход.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerRegister)

	var req entities.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}
	if err := h.validator.Validate(&req); err != nil {
		return respond.Error(ctx, err)
	}

	identity, err := h.session.Register(requestCtx, &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, newSessionResponse(identity))
}

// Logout завершает сессию.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerLogout)

	h.session.Logout(requestCtx)
	return respond.JSON(ctx, http.StatusOK, newSessionResponse(nil))
}
