package services

import (
	"context"
	"io"

	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/payment"
)

// SessionService определяет операции сессии пользователя.
type SessionService interface {
	Identity() *entities.Identity

	RequireIdentity() (*entities.Identity, error)

	RequireStaff() (*entities.Identity, error)

	Login(ctx context.Context, req *entities.LoginRequest) (*entities.Identity, error)

	Register(ctx context.Context, req *entities.RegisterRequest) (*entities.Identity, error)

	Logout(ctx context.Context)
}

// LocaleService определяет выбор языка интерфейса.
type LocaleService interface {
	Language() string

	Change(ctx context.Context, lang string) error

	Dictionary() map[string]string
}

// CatalogService определяет публичный каталог.
type CatalogService interface {
	Accounts(ctx context.Context, filter entities.AccountFilter) ([]entities.GameAccount, error)

	AccountPage(ctx context.Context, id string) (*entities.AccountPage, error)

	TopUps(ctx context.Context, game string) ([]entities.TopUpProduct, error)

	TopUp(ctx context.Context, id string) (*entities.TopUpProduct, error)

	Reviews(ctx context.Context, game string) ([]entities.Review, error)

	Search(ctx context.Context, query string) (*entities.SearchResult, error)

	CheckGameID(ctx context.Context, req *entities.GameIDCheck) (*entities.GameIDCheckResult, error)
}

// FavoritesService определяет избранные аккаунты.
type FavoritesService interface {
	List(ctx context.Context) ([]entities.GameAccount, error)

	Toggle(ctx context.Context, accountID string) (*entities.FavoriteToggle, error)
}

// CartService определяет корзину.
type CartService interface {
	Get(ctx context.Context) (*entities.Cart, error)

	Count(ctx context.Context) (int, error)

	Add(ctx context.Context, req *entities.AddToCartRequest) (*entities.Cart, error)

	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*entities.Cart, error)

	Remove(ctx context.Context, itemID string) (*entities.Cart, error)

	Clear(ctx context.Context) (*entities.Cart, error)
}

// CheckoutService определяет оформление покупок и оплату.
type CheckoutService interface {
	ValidateAccountCoupon(ctx context.Context, code, accountID string) (*entities.CouponValidation, error)

	ValidateTopUpCoupon(ctx context.Context, code, productID string) (*entities.CouponValidation, error)

	BuyAccount(ctx context.Context, req *entities.AccountPurchaseRequest) (*entities.CheckoutResult, error)

	BuyTopUp(ctx context.Context, req *entities.TopUpPurchaseRequest) (*entities.CheckoutResult, error)

	CheckoutCart(ctx context.Context, req *entities.CartCheckoutRequest) (*entities.CheckoutResult, error)

	VerifyCrypto(ctx context.Context, req *entities.CryptoVerifyRequest) (*entities.MessageResponse, error)

	Pay(ctx context.Context, token string) error
}

// PaymentService определяет доставку исхода оплаты от интерфейса.
type PaymentService interface {
	Script() payment.Script

	Resolve(ctx context.Context, token, result string, payload map[string]any) error
}

// OrdersService определяет историю покупок и отзывы.
type OrdersService interface {
	History(ctx context.Context) ([]entities.PurchaseHistoryItem, error)

	Detail(ctx context.Context, code string) (*entities.PurchaseDetail, error)

	ReviewOrder(ctx context.Context, code string, req *entities.ReviewRequest) (*entities.Review, error)

	ReviewPurchase(ctx context.Context, purchaseID string, req *entities.ReviewRequest) (*entities.Review, error)
}

// AccountService определяет операции с паролем.
type AccountService interface {
	ChangePassword(ctx context.Context, req *entities.ChangePasswordRequest) (*entities.MessageResponse, error)

	RequestPasswordReset(ctx context.Context, req *entities.PasswordResetRequest) (*entities.MessageResponse, error)

	ConfirmPasswordReset(ctx context.Context, req *entities.PasswordResetConfirm) (*entities.MessageResponse, error)
}

// AdminService определяет панель администратора.
type AdminService interface {
	DashboardStats(ctx context.Context) (*entities.DashboardStats, error)

	Analytics(ctx context.Context) (*entities.Analytics, error)

	ExportAnalytics(ctx context.Context, w io.Writer) error

	Products(ctx context.Context, filter entities.ProductFilter) ([]entities.AdminProduct, error)

	DeleteProduct(ctx context.Context, req *entities.DeleteProductRequest) error

	AccountProduct(ctx context.Context, id string) (*entities.GameAccount, error)

	CreateAccountProduct(ctx context.Context, in *entities.AccountProductInput, cover *entities.FormFile, gallery []entities.FormFile) error

	UpdateAccountProduct(
		ctx context.Context,
		id string,
		in *entities.AccountProductInput,
		cover *entities.FormFile,
		gallery []entities.FormFile,
	) error

	TopUpProduct(ctx context.Context, id string) (*entities.TopUpProduct, error)

	CreateTopUpProduct(ctx context.Context, in *entities.TopUpProductInput, image *entities.FormFile) error

	UpdateTopUpProduct(ctx context.Context, id string, in *entities.TopUpProductInput, image *entities.FormFile) error

	Coupons(ctx context.Context) ([]entities.Coupon, error)

	CreateCoupon(ctx context.Context, req *entities.CouponCreateRequest) error

	ToggleCoupon(ctx context.Context, id string) error

	Orders(ctx context.Context) ([]entities.AdminOrder, error)
}
