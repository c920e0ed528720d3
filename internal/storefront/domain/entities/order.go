package entities

// Статусы заказа.
const (
	OrderPending   = "PENDING"
	OrderCompleted = "COMPLETED"
	OrderCanceled  = "CANCELED"
)

// AccountPurchaseRequest - покупка игрового аккаунта.
type AccountPurchaseRequest struct {
	AkunID    string `json:"akun_id" validate:"required"`
	KodeKupon string `json:"kode_kupon,omitempty"`
}

// TopUpPurchaseRequest - покупка пакета пополнения.
type TopUpPurchaseRequest struct {
	ProdukID   string  `json:"produk_id" validate:"required"`
	GameUserID string  `json:"game_user_id" validate:"required"`
	GameZoneID *string `json:"game_zone_id"`
	KodeKupon  *string `json:"kode_kupon"`
}

// CryptoVerifyRequest - хеш транзакции ручного крипто-перевода.
type CryptoVerifyRequest struct {
	KodeTransaksi string `json:"kode_transaksi" validate:"required"`
	TxHash        string `json:"tx_hash" validate:"required"`
}

// MessageResponse - типовой ответ бэкенда с сообщением.
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Success string `json:"success,omitempty"`
}

// Text возвращает текст сообщения, какое бы поле ни заполнил бэкенд.
func (m *MessageResponse) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Success
}

// PurchaseHistoryItem - строка истории покупок в профиле.
type PurchaseHistoryItem struct {
	KodeTransaksi string `json:"kode_transaksi"`
	NamaItem      string `json:"nama_item"`
	Tipe          string `json:"tipe"`
	Tanggal       string `json:"tanggal"`
	Total         Amount `json:"total"`
	Status        string `json:"status"`
	MidtransToken string `json:"midtrans_token,omitempty"`
}

// CanResumePayment сообщает, можно ли продолжить оплату заказа.
func (p *PurchaseHistoryItem) CanResumePayment() bool {
	return p.Status == OrderPending && p.MidtransToken != ""
}

// PurchaseDetail - подробности заказа.
type PurchaseDetail struct {
	ID            FlexibleID `json:"id"`
	KodeTransaksi string     `json:"kode_transaksi"`
	Tipe          string     `json:"tipe"`
	Status        string     `json:"status"`
	Total         Amount     `json:"total,omitempty"`
	Rating        *int       `json:"rating"`
	Ulasan        *string    `json:"ulasan"`
	GameUserID    string     `json:"game_user_id,omitempty"`
	GameZoneID    string     `json:"game_zone_id,omitempty"`
	AkunEmail     string     `json:"akun_email,omitempty"`
	AkunPassword  string     `json:"akun_password,omitempty"`
}

// Reviewed сообщает, оставлен ли уже отзыв.
func (p *PurchaseDetail) Reviewed() bool {
	return p.Rating != nil
}

// CouponValidationRequest - проверка купона для аккаунта или пакета.
type CouponValidationRequest struct {
	KodeKupon string `json:"kode_kupon" validate:"required"`
	AccountID string `json:"account_id,omitempty"`
	ProductID string `json:"product_id,omitempty"`
}

// CouponValidation - ответ проверки купона.
type CouponValidation struct {
	Valid        bool   `json:"valid"`
	KodeKupon    string `json:"kode_kupon,omitempty"`
	HargaAsli    Amount `json:"harga_asli,omitempty"`
	DiskonAmount Amount `json:"diskon_amount,omitempty"`
	HargaFinal   Amount `json:"harga_final,omitempty"`
	Error        string `json:"error,omitempty"`
}
