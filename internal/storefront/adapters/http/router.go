// Package http содержит HTTP шлюз витрины для интерфейса.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"gamestore/internal/storefront/adapters/http/admin"
	"gamestore/internal/storefront/adapters/http/cart"
	"gamestore/internal/storefront/adapters/http/catalog"
	"gamestore/internal/storefront/adapters/http/checkout"
	"gamestore/internal/storefront/adapters/http/locale"
	"gamestore/internal/storefront/adapters/http/middleware"
	"gamestore/internal/storefront/adapters/http/orders"
	"gamestore/internal/storefront/adapters/http/profile"
	"gamestore/internal/storefront/adapters/http/session"
	"gamestore/internal/storefront/metrics"
	"gamestore/internal/storefront/ports/navigation"
	"gamestore/internal/storefront/ports/services"
)

// Navigator переводит интерфейс и отдает отложенные переходы.
type Navigator interface {
	navigation.Navigator
	middleware.PendingNavigations
}

// Dependencies - сервисы, которые обслуживает шлюз.
type Dependencies struct {
	Session   services.SessionService
	Locale    services.LocaleService
	Catalog   services.CatalogService
	Favorites services.FavoritesService
	Carts     services.CartService
	Checkout  services.CheckoutService
	Payments  services.PaymentService
	Orders    services.OrdersService
	Accounts  services.AccountService
	Admin     services.AdminService
	Validator session.Validator
	Navigator Navigator
	Metrics   *metrics.Collector
	SignIn    string
}

// SetupRouter настраивает маршрутизацию для HTTP шлюза.
func SetupRouter(app *fiber.App, deps *Dependencies) {
	signIn := deps.SignIn
	if signIn == "" {
		signIn = navigation.PathSignIn
	}

	sessionHandler := session.NewHandler(deps.Session, deps.Validator)
	localeHandler := locale.NewHandler(deps.Locale)
	catalogHandler := catalog.NewHandler(deps.Catalog, deps.Favorites)
	cartHandler := cart.NewHandler(deps.Carts, deps.Checkout)
	checkoutHandler := checkout.NewHandler(deps.Checkout, deps.Payments)
	ordersHandler := orders.NewHandler(deps.Orders)
	profileHandler := profile.NewHandler(deps.Accounts)
	adminHandler := admin.NewHandler(deps.Admin)

	// Метрики вне цепочки сессии.
	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewMetricsMiddleware(deps.Metrics))
	app.Use(middleware.NewNavigationMiddleware(deps.Navigator))

	requireIdentity := middleware.NewAuthMiddleware(deps.Session, deps.Navigator, signIn)
	requireStaff := middleware.NewStaffMiddleware(deps.Session, deps.Navigator, signIn)

	apiRoutes := app.Group("/api")

	// Сессия и язык (публичные).
	apiRoutes.Get("/session", sessionHandler.Current)
	apiRoutes.Post("/session/login", sessionHandler.Login)
	apiRoutes.Post("/session/register", sessionHandler.Register)
	apiRoutes.Post("/session/logout", sessionHandler.Logout)
	apiRoutes.Get("/locale", localeHandler.Get)
	apiRoutes.Put("/locale", localeHandler.Change)

	// Каталог (публичный).
	apiRoutes.Get("/accounts", catalogHandler.ListAccounts)
	apiRoutes.Get("/accounts/:id", catalogHandler.GetAccount)
	apiRoutes.Get("/topups", catalogHandler.ListTopUps)
	apiRoutes.Get("/topups/:id", catalogHandler.GetTopUp)
	apiRoutes.Get("/reviews/:game", catalogHandler.ListReviews)
	apiRoutes.Get("/search", catalogHandler.Search)
	apiRoutes.Post("/game-id/check", catalogHandler.CheckGameID)

	// Сброс пароля (публичный).
	apiRoutes.Post("/password-reset", profileHandler.RequestReset)
	apiRoutes.Post("/password-reset/confirm", profileHandler.ConfirmReset)

	// Параметры платежного виджета (публичные).
	apiRoutes.Get("/payments/script", checkoutHandler.Script)

	// Маршруты, требующие входа.
	favoritesRoutes := apiRoutes.Group("/favorites", requireIdentity)
	favoritesRoutes.Get("/", catalogHandler.ListFavorites)
	favoritesRoutes.Post("/:id", catalogHandler.ToggleFavorite)

	cartRoutes := apiRoutes.Group("/cart", requireIdentity)
	cartRoutes.Get("/", cartHandler.Get)
	cartRoutes.Get("/count", cartHandler.Count)
	cartRoutes.Post("/items", cartHandler.Add)
	cartRoutes.Patch("/items/:id", cartHandler.UpdateItem)
	cartRoutes.Delete("/items/:id", cartHandler.RemoveItem)
	cartRoutes.Delete("/", cartHandler.Clear)
	cartRoutes.Post("/checkout", cartHandler.Checkout)

	couponRoutes := apiRoutes.Group("/coupons", requireIdentity)
	couponRoutes.Post("/account", checkoutHandler.ValidateAccountCoupon)
	couponRoutes.Post("/topup", checkoutHandler.ValidateTopUpCoupon)

	purchaseRoutes := apiRoutes.Group("/purchases", requireIdentity)
	purchaseRoutes.Post("/account", checkoutHandler.BuyAccount)
	purchaseRoutes.Post("/topup", checkoutHandler.BuyTopUp)
	purchaseRoutes.Post("/crypto/verify", checkoutHandler.VerifyCrypto)
	purchaseRoutes.Post("/:id/review", ordersHandler.ReviewPurchase)

	paymentRoutes := apiRoutes.Group("/payments", requireIdentity)
	paymentRoutes.Post("/:token", checkoutHandler.Resume)
	paymentRoutes.Post("/:token/result", checkoutHandler.Resolve)

	orderRoutes := apiRoutes.Group("/orders", requireIdentity)
	orderRoutes.Get("/", ordersHandler.History)
	orderRoutes.Get("/:code", ordersHandler.Detail)
	orderRoutes.Post("/:code/review", ordersHandler.ReviewOrder)

	apiRoutes.Patch("/profile/password", requireIdentity, profileHandler.ChangePassword)

	// Панель администратора.
	adminRoutes := apiRoutes.Group("/admin", requireStaff)
	adminRoutes.Get("/dashboard", adminHandler.DashboardStats)
	adminRoutes.Get("/analytics", adminHandler.Analytics)
	adminRoutes.Get("/analytics/export", adminHandler.ExportAnalytics)
	adminRoutes.Get("/products", adminHandler.Products)
	adminRoutes.Post("/products/delete", adminHandler.DeleteProduct)
	adminRoutes.Post("/accounts", adminHandler.CreateAccountProduct)
	adminRoutes.Get("/accounts/:id", adminHandler.AccountProduct)
	adminRoutes.Post("/accounts/:id", adminHandler.UpdateAccountProduct)
	adminRoutes.Post("/topups", adminHandler.CreateTopUpProduct)
	adminRoutes.Get("/topups/:id", adminHandler.TopUpProduct)
	adminRoutes.Post("/topups/:id", adminHandler.UpdateTopUpProduct)
	adminRoutes.Get("/coupons", adminHandler.Coupons)
	adminRoutes.Post("/coupons", adminHandler.CreateCoupon)
	adminRoutes.Post("/coupons/:id/toggle", adminHandler.ToggleCoupon)
	adminRoutes.Get("/orders", adminHandler.Orders)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
