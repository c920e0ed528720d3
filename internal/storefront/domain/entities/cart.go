package entities

// Типы позиций корзины.
const (
	ItemTypeAccount = "AKUN"
	ItemTypeTopUp   = "TOPUP"
)

// Способы оплаты.
const (
	PaymentMidtrans = "MIDTRANS"
	PaymentCrypto   = "CRYPTO"
)

// CartItem - позиция корзины.
type CartItem struct {
	ID                   FlexibleID    `json:"id"`
	ItemType             string        `json:"item_type,omitempty"`
	Quantity             int           `json:"quantity"`
	HargaSaatDitambahkan Amount        `json:"harga_saat_ditambahkan"`
	TotalPrice           Amount        `json:"total_price"`
	AkunDetail           *GameAccount  `json:"akun_detail,omitempty"`
	ProdukDetail         *TopUpProduct `json:"produk_detail,omitempty"`
	GameUserID           string        `json:"game_user_id,omitempty"`
	GameZoneID           string        `json:"game_zone_id,omitempty"`
}

// Cart - корзина текущего пользователя.
type Cart struct {
	ID         FlexibleID `json:"id,omitempty"`
	Items      []CartItem `json:"items"`
	ItemCount  int        `json:"item_count"`
	TotalPrice Amount     `json:"total_price"`
}

// Empty сообщает, пуста ли корзина.
func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

// CartCount - ответ легковесного счетчика корзины.
type CartCount struct {
	Count int `json:"count"`
}

// AddToCartRequest - добавление товара в корзину.
type AddToCartRequest struct {
	ItemType   string `json:"item_type" validate:"required,oneof=AKUN TOPUP"`
	AkunID     string `json:"akun_id,omitempty" validate:"required_if=ItemType AKUN"`
	ProdukID   string `json:"produk_id,omitempty" validate:"required_if=ItemType TOPUP"`
	Quantity   int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
	GameUserID string `json:"game_user_id,omitempty"`
	GameZoneID string `json:"game_zone_id,omitempty"`
}

// CartCheckoutRequest - оформление заказа из корзины.
type CartCheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	KodeKupon     string `json:"kode_kupon,omitempty"`
}

// CheckoutResult - результат оформления: токен виджета или реквизиты крипто-перевода.
type CheckoutResult struct {
	KodeTransaksi  string `json:"kode_transaksi,omitempty"`
	MidtransToken  string `json:"midtrans_token,omitempty"`
	CryptoAddress  string `json:"crypto_address,omitempty"`
	CryptoAmount   Amount `json:"crypto_amount,omitempty"`
	CryptoCurrency string `json:"crypto_currency,omitempty"`
	TotalPrice     Amount `json:"total_price,omitempty"`
	Message        string `json:"message,omitempty"`
}

// NeedsWidget сообщает, что оплату нужно провести через виджет.
func (r *CheckoutResult) NeedsWidget() bool {
	return r.MidtransToken != ""
}

// NeedsCryptoTransfer сообщает, что пользователь должен перевести криптовалюту вручную.
func (r *CheckoutResult) NeedsCryptoTransfer() bool {
	return r.CryptoAddress != ""
}
