package entities

import (
	"encoding/json"
	"io"
	"net/url"
)

// Типы товаров в админке.
const (
	ProductTypeAccount = "akun"
	ProductTypeTopUp   = "topup"
)

// DashboardStats - сводка на главной странице админки.
type DashboardStats struct {
	TotalRevenue  Amount `json:"total_revenue"`
	AkunTersedia  int    `json:"akun_tersedia"`
	AkunTerjual   int    `json:"akun_terjual"`
	TopupBerhasil int    `json:"topup_berhasil"`
}

// RevenuePoint - выручка за период.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// GameSales - продажи по игре.
type GameSales struct {
	Game    string  `json:"game"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// AnalyticsSummary - общие показатели.
type AnalyticsSummary struct {
	TotalUsers     int     `json:"total_users"`
	TotalProducts  int     `json:"total_products"`
	TotalOrders    int     `json:"total_orders"`
	ConversionRate float64 `json:"conversion_rate"`
	AvgOrderValue  float64 `json:"avg_order_value"`
}

// AnalyticsRevenue - выручка в разрезах.
type AnalyticsRevenue struct {
	Today      float64        `json:"today"`
	Yesterday  float64        `json:"yesterday"`
	Last7Days  float64        `json:"last_7_days"`
	Last30Days float64        `json:"last_30_days"`
	LastMonth  float64        `json:"last_month"`
	Daily      []RevenuePoint `json:"daily"`
	Weekly     []RevenuePoint `json:"weekly"`
	Monthly    []RevenuePoint `json:"monthly"`
}

// Analytics - данные страницы аналитики. Raw хранит исходный ответ целиком,
// потому что графики используют больше полей, чем нужно экспорту.
type Analytics struct {
	Summary     AnalyticsSummary `json:"summary"`
	Revenue     AnalyticsRevenue `json:"revenue"`
	SalesByGame []GameSales      `json:"sales_by_game"`
	Raw         json.RawMessage  `json:"-"`
}

// RevenueChange возвращает изменение выручки сегодня к вчера в процентах.
func (a *Analytics) RevenueChange() float64 {
	base := a.Revenue.Yesterday
	if base == 0 {
		base = 1
	}
	return (a.Revenue.Today - a.Revenue.Yesterday) / base * 100
}

// AdminProduct - строка списка товаров в админке.
type AdminProduct struct {
	ID         FlexibleID `json:"id"`
	Tipe       string     `json:"tipe"`
	Nama       string     `json:"nama"`
	Game       string     `json:"game"`
	Harga      Amount     `json:"harga"`
	StatusJual string     `json:"status_jual,omitempty"`
	SalesCount int        `json:"sales_count,omitempty"`
}

// DeleteProductRequest - удаление товара.
type DeleteProductRequest struct {
	Tipe string `json:"tipe" validate:"required,oneof=akun topup"`
	ID   string `json:"id" validate:"required"`
}

// Coupon - купон скидки.
type Coupon struct {
	ID           FlexibleID `json:"id"`
	Kode         string     `json:"kode"`
	DiskonPersen Amount     `json:"diskon_persen"`
	Aktif        bool       `json:"aktif"`
}

// CouponCreateRequest - создание купона.
type CouponCreateRequest struct {
	Kode         string `json:"kode" validate:"required,max=50"`
	DiskonPersen int    `json:"diskon_persen" validate:"required,min=1,max=100"`
	Aktif        bool   `json:"aktif"`
}

// AdminOrder - заказ в списке админки.
type AdminOrder struct {
	ID            FlexibleID `json:"id"`
	KodeTransaksi string     `json:"kode_transaksi"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Username      string     `json:"username,omitempty"`
	Total         Amount     `json:"total,omitempty"`
	Tanggal       string     `json:"tanggal,omitempty"`
	TxHash        string     `json:"tx_hash,omitempty"`
}

// FormFile - файл для multipart-формы.
type FormFile struct {
	Field    string
	Filename string
	Content  io.Reader
}

// ProductForm - multipart-форма создания или изменения товара.
type ProductForm struct {
	Fields url.Values
	Files  []FormFile
}

// AccountProductInput - поля формы игрового аккаунта в админке.
type AccountProductInput struct {
	NamaAkun     string   `json:"nama_akun" form:"nama_akun" validate:"required,max=255"`
	Game         string   `json:"game" form:"game" validate:"required"`
	Level        string   `json:"level" form:"level" validate:"omitempty,numeric"`
	Harga        string   `json:"harga" form:"harga" validate:"required,price"`
	Deskripsi    string   `json:"deskripsi" form:"deskripsi"`
	AkunEmail    string   `json:"akun_email" form:"akun_email" validate:"omitempty,email"`
	AkunPassword string   `json:"akun_password" form:"akun_password"`
	DeleteImages []string `json:"delete_images" form:"delete_images"`
}

// Form собирает multipart-форму: обложка в поле gambar, галерея в images[],
// удаляемые изображения в delete_images[].
func (in *AccountProductInput) Form(cover *FormFile, gallery []FormFile) *ProductForm {
	fields := url.Values{}
	fields.Set("nama_akun", in.NamaAkun)
	fields.Set("game", in.Game)
	fields.Set("level", in.Level)
	fields.Set("harga", in.Harga)
	fields.Set("deskripsi", in.Deskripsi)
	if in.AkunEmail != "" {
		fields.Set("akun_email", in.AkunEmail)
	}
	if in.AkunPassword != "" {
		fields.Set("akun_password", in.AkunPassword)
	}
	for _, id := range in.DeleteImages {
		fields.Add("delete_images[]", id)
	}

	form := &ProductForm{Fields: fields}
	if cover != nil {
		file := *cover
		file.Field = "gambar"
		form.Files = append(form.Files, file)
	}
	for _, image := range gallery {
		image.Field = "images[]"
		form.Files = append(form.Files, image)
	}
	return form
}

// TopUpProductInput - поля формы пакета пополнения в админке.
type TopUpProductInput struct {
	Game      string `json:"game" form:"game" validate:"required"`
	NamaPaket string `json:"nama_paket" form:"nama_paket" validate:"required,max=255"`
	Harga     string `json:"harga" form:"harga" validate:"required,price"`
}

// Form собирает multipart-форму пакета с изображением в поле gambar.
func (in *TopUpProductInput) Form(image *FormFile) *ProductForm {
	fields := url.Values{}
	fields.Set("game", in.Game)
	fields.Set("nama_paket", in.NamaPaket)
	fields.Set("harga", in.Harga)

	form := &ProductForm{Fields: fields}
	if image != nil {
		file := *image
		file.Field = "gambar"
		form.Files = append(form.Files, file)
	}
	return form
}
