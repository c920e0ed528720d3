// Package admin содержит HTTP обработчики панели администратора.
package admin

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gamestore/internal/storefront/adapters/http/respond"
	appservices "gamestore/internal/storefront/app/services"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerExport     = "admin handler: export analytics"
	ErrorFailedOpenFile  = "failed to open uploaded file"
	ErrorFailedCloseFile = "failed to close uploaded file"
)

// Поля multipart-форм товаров.
const (
	fieldCover        = "gambar"
	fieldGallery      = "images[]"
	fieldDeleteImages = "delete_images[]"
)

// Handler содержит HTTP обработчики админки.
type Handler struct {
	admin services.AdminService
	now   func() time.Time
}

// NewHandler создает обработчик админки.
func NewHandler(admin services.AdminService) *Handler {
	return &Handler{
		admin: admin,
		now:   time.Now,
	}
}

type savedResponse struct {
	Success bool `json:"success"`
}

// DashboardStats возвращает сводку.
func (h *Handler) DashboardStats(ctx fiber.Ctx) error {
	stats, err := h.admin.DashboardStats(ctx.Context())
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, stats)
}

// Analytics отдает исходный ответ аналитики.
func (h *Handler) Analytics(ctx fiber.Ctx) error {
	analytics, err := h.admin.Analytics(ctx.Context())
	if err != nil {
		return respond.Error(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Status(http.StatusOK).Send(analytics.Raw) //nolint:wrapcheck
}

// ExportAnalytics отдает аналитику файлом CSV.
func (h *Handler) ExportAnalytics(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerExport)

	var buf bytes.Buffer
	if err := h.admin.ExportAnalytics(requestCtx, &buf); err != nil {
		return respond.Error(ctx, err)
	}

	ctx.Attachment(appservices.ExportFilename(h.now()))
	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return ctx.Status(http.StatusOK).Send(buf.Bytes()) //nolint:wrapcheck
}

// Products возвращает товары по параметрам tipe и game.
func (h *Handler) Products(ctx fiber.Ctx) error {
	products, err := h.admin.Products(ctx.Context(), entities.ProductFilter{
		Tipe: ctx.Query("tipe"),
		Game: ctx.Query("game"),
	})
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, products)
}

// DeleteProduct удаляет товар.
func (h *Handler) DeleteProduct(ctx fiber.Ctx) error {
	var req entities.DeleteProductRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	if err := h.admin.DeleteProduct(ctx.Context(), &req); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, savedResponse{Success: true})
}

// AccountProduct возвращает аккаунт для редактирования.
func (h *Handler) AccountProduct(ctx fiber.Ctx) error {
	account, err := h.admin.AccountProduct(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, account)
}

// CreateAccountProduct создает аккаунт из multipart-формы.
func (h *Handler) CreateAccountProduct(ctx fiber.Ctx) error {
	return h.saveAccountProduct(ctx, "")
}

// UpdateAccountProduct изменяет аккаунт из multipart-формы.
func (h *Handler) UpdateAccountProduct(ctx fiber.Ctx) error {
	return h.saveAccountProduct(ctx, ctx.Params("id"))
}

func (h *Handler) saveAccountProduct(ctx fiber.Ctx, id string) error {
	requestCtx := ctx.Context()

	form, err := ctx.MultipartForm()
	if err != nil {
		return respond.BadRequest(ctx, err)
	}

	in := entities.AccountProductInput{
		NamaAkun:     value(form, "nama_akun"),
		Game:         value(form, "game"),
		Level:        value(form, "level"),
		Harga:        value(form, "harga"),
		Deskripsi:    value(form, "deskripsi"),
		AkunEmail:    value(form, "akun_email"),
		AkunPassword: value(form, "akun_password"),
		DeleteImages: form.Value[fieldDeleteImages],
	}

	files, closeFiles, err := openFiles(form, fieldCover, fieldGallery)
	if err != nil {
		return respond.BadRequest(ctx, err)
	}
	defer closeFiles(ctx)

	var cover *entities.FormFile
	var gallery []entities.FormFile
	for i := range files {
		if files[i].Field == fieldCover && cover == nil {
			cover = &files[i]
			continue
		}
		if files[i].Field == fieldGallery {
			gallery = append(gallery, files[i])
		}
	}

	if id == "" {
		err = h.admin.CreateAccountProduct(requestCtx, &in, cover, gallery)
	} else {
		err = h.admin.UpdateAccountProduct(requestCtx, id, &in, cover, gallery)
	}
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, savedStatus(id), savedResponse{Success: true})
}

// TopUpProduct возвращает пакет пополнения для редактирования.
func (h *Handler) TopUpProduct(ctx fiber.Ctx) error {
	product, err := h.admin.TopUpProduct(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, product)
}

// CreateTopUpProduct создает пакет пополнения из multipart-формы.
func (h *Handler) CreateTopUpProduct(ctx fiber.Ctx) error {
	return h.saveTopUpProduct(ctx, "")
}

// UpdateTopUpProduct изменяет пакет пополнения из multipart-формы.
func (h *Handler) UpdateTopUpProduct(ctx fiber.Ctx) error {
	return h.saveTopUpProduct(ctx, ctx.Params("id"))
}

func (h *Handler) saveTopUpProduct(ctx fiber.Ctx, id string) error {
	requestCtx := ctx.Context()

	form, err := ctx.MultipartForm()
	if err != nil {
		return respond.BadRequest(ctx, err)
	}

	in := entities.TopUpProductInput{
		Game:      value(form, "game"),
		NamaPaket: value(form, "nama_paket"),
		Harga:     value(form, "harga"),
	}

	files, closeFiles, err := openFiles(form, fieldCover)
	if err != nil {
		return respond.BadRequest(ctx, err)
	}
	defer closeFiles(ctx)

	var image *entities.FormFile
	if len(files) > 0 {
		image = &files[0]
	}

	if id == "" {
		err = h.admin.CreateTopUpProduct(requestCtx, &in, image)
	} else {
		err = h.admin.UpdateTopUpProduct(requestCtx, id, &in, image)
	}
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, savedStatus(id), savedResponse{Success: true})
}

// Coupons возвращает купоны.
func (h *Handler) Coupons(ctx fiber.Ctx) error {
	coupons, err := h.admin.Coupons(ctx.Context())
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, coupons)
}

// CreateCoupon создает купон.
func (h *Handler) CreateCoupon(ctx fiber.Ctx) error {
	var req entities.CouponCreateRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	if err := h.admin.CreateCoupon(ctx.Context(), &req); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, savedResponse{Success: true})
}

// ToggleCoupon включает или выключает купон.
func (h *Handler) ToggleCoupon(ctx fiber.Ctx) error {
	if err := h.admin.ToggleCoupon(ctx.Context(), ctx.Params("id")); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, savedResponse{Success: true})
}

// Orders возвращает заказы магазина.
func (h *Handler) Orders(ctx fiber.Ctx) error {
	orders, err := h.admin.Orders(ctx.Context())
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, orders)
}

func savedStatus(id string) int {
	if id == "" {
		return http.StatusCreated
	}
	return http.StatusOK
}

func value(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// openFiles открывает загруженные файлы полей fields. Возвращаемая функция
// закрывает все открытые файлы.
func openFiles(form *multipart.Form, fields ...string) ([]entities.FormFile, func(fiber.Ctx), error) {
	var opened []multipart.File
	closeAll := func(ctx fiber.Ctx) {
		for _, file := range opened {
			if err := file.Close(); err != nil {
				requestCtx := ctx.Context()
				logger.Log(requestCtx).Warn(requestCtx, ErrorFailedCloseFile, zap.Error(err))
			}
		}
	}

	var files []entities.FormFile
	for _, field := range fields {
		for _, header := range form.File[field] {
			file, err := header.Open()
			if err != nil {
				for _, f := range opened {
					_ = f.Close()
				}
				return nil, nil, fmt.Errorf("%s %q: %w", ErrorFailedOpenFile, header.Filename, err)
			}
			opened = append(opened, file)
			files = append(files, entities.FormFile{Field: field, Filename: header.Filename, Content: file})
		}
	}
	return files, closeAll, nil
}
