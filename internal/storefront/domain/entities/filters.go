package entities

import "net/url"

// AccountFilter - параметры списка аккаунтов.
type AccountFilter struct {
	Search string
	Game   string
	Sort   string
}

// Query возвращает параметры запроса без пустых значений.
func (f AccountFilter) Query() url.Values {
	query := url.Values{}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if f.Game != "" {
		query.Set("game", f.Game)
	}
	if f.Sort != "" {
		query.Set("sort", f.Sort)
	}
	return query
}

// AccountPage - аккаунт с отзывами по его игре и похожими аккаунтами.
type AccountPage struct {
	Account *GameAccount  `json:"account"`
	Reviews []Review      `json:"reviews"`
	Similar []GameAccount `json:"similar"`
}

// ProductFilter - фильтр списка товаров в админке.
type ProductFilter struct {
	Tipe string
	Game string
}

// Query возвращает параметры запроса без пустых значений.
func (f ProductFilter) Query() url.Values {
	query := url.Values{}
	if f.Tipe != "" {
		query.Set("tipe", f.Tipe)
	}
	if f.Game != "" {
		query.Set("game", f.Game)
	}
	return query
}
