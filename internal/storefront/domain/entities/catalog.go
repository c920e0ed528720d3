package entities

import "strings"

// Статус продажи товара.
const (
	StatusAvailable = "TERSEDIA"
	StatusSold      = "TERJUAL"
)

// AccountImage - изображение галереи игрового аккаунта.
type AccountImage struct {
	ID     FlexibleID `json:"id"`
	Gambar string     `json:"gambar"`
}

// GameAccount - игровой аккаунт на продажу.
type GameAccount struct {
	ID          FlexibleID     `json:"id"`
	NamaAkun    string         `json:"nama_akun"`
	Game        string         `json:"game"`
	Level       int            `json:"level"`
	Harga       Amount         `json:"harga"`
	Deskripsi   string         `json:"deskripsi,omitempty"`
	Gambar      string         `json:"gambar,omitempty"`
	Images      []AccountImage `json:"images,omitempty"`
	Stock       *int           `json:"stock,omitempty"`
	IsSold      bool           `json:"is_sold"`
	IsAvailable *bool          `json:"is_available,omitempty"`
	IsFavorited bool           `json:"is_favorited"`
	StatusJual  string         `json:"status_jual,omitempty"`
}

// Purchasable сообщает, можно ли купить аккаунт прямо сейчас.
func (a *GameAccount) Purchasable() bool {
	if a.IsSold {
		return false
	}
	if a.IsAvailable != nil && !*a.IsAvailable {
		return false
	}
	return a.Stock == nil || *a.Stock > 0
}

// CoverImage возвращает обложку или первое изображение галереи.
func (a *GameAccount) CoverImage() string {
	if a.Gambar != "" {
		return a.Gambar
	}
	if len(a.Images) > 0 {
		return a.Images[0].Gambar
	}
	return ""
}

// Matches выполняет поиск по названию или игре без учета регистра.
func (a *GameAccount) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(a.NamaAkun), q) ||
		strings.Contains(strings.ToLower(a.Game), q)
}

// TopUpProduct - пакет пополнения игровой валюты.
type TopUpProduct struct {
	ID         FlexibleID `json:"id"`
	NamaPaket  string     `json:"nama_paket"`
	Game       string     `json:"game"`
	Harga      Amount     `json:"harga"`
	Gambar     string     `json:"gambar,omitempty"`
	Deskripsi  string     `json:"deskripsi,omitempty"`
	StatusJual string     `json:"status_jual,omitempty"`
}

// Matches выполняет поиск по названию пакета или игре без учета регистра.
func (p *TopUpProduct) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(p.NamaPaket), q) ||
		strings.Contains(strings.ToLower(p.Game), q)
}

// SearchResult объединяет найденные аккаунты и пакеты пополнения.
type SearchResult struct {
	Query    string         `json:"query"`
	Accounts []GameAccount  `json:"accounts"`
	TopUps   []TopUpProduct `json:"topups"`
}

// Review - отзыв покупателя по игре.
type Review struct {
	ID              FlexibleID `json:"id,omitempty"`
	Rating          int        `json:"rating"`
	Ulasan          string     `json:"ulasan"`
	PembeliUsername string     `json:"pembeli_username,omitempty"`
	Tanggal         string     `json:"tanggal,omitempty"`
}

// ReviewRequest - новый отзыв на покупку.
type ReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Ulasan string `json:"ulasan" validate:"max=1000"`
}

// FavoriteToggle - результат переключения избранного.
type FavoriteToggle struct {
	Favorited bool `json:"favorited"`
}

// GameIDCheck - проверка игрового ID перед пополнением.
type GameIDCheck struct {
	Game   string `json:"game" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
	ZoneID string `json:"zone_id,omitempty"`
}

// GameIDCheckResult - ник игрока, найденный по ID.
type GameIDCheckResult struct {
	Nickname string `json:"nickname"`
}
