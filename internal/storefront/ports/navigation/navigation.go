// Package navigation определяет переходы между страницами интерфейса.
package navigation

import "context"

// Пути интерфейса, на которые переходит витрина.
const (
	PathHome    = "/"
	PathSignIn  = "/login"
	PathProfile = "/profil"
)

// Navigator переводит интерфейс на указанный путь.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}
