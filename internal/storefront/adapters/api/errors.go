package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"gamestore/internal/storefront/ports/services"
)

// Поля тела ответа, в которых бэкенд передает общее сообщение об ошибке.
var messageFields = []string{"error", "detail", "message"}

// APIError - ответ бэкенда со статусом вне 2xx. Тело передается вызывающему без изменений.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("backend responded %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("backend responded %d", e.StatusCode)
}

// Is сопоставляет статус ответа с ошибками сервисов.
func (e *APIError) Is(target error) bool {
	switch target {
	case services.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case services.ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case services.ErrNotAuthenticated:
		return e.StatusCode == http.StatusUnauthorized
	default:
		return false
	}
}

// Message извлекает сообщение для пользователя: error, detail, message
// или первую ошибку первого поля формы.
func (e *APIError) Message() string {
	if !gjson.ValidBytes(e.Body) {
		return ""
	}
	root := gjson.ParseBytes(e.Body)

	for _, field := range messageFields {
		if msg := firstString(root.Get(field)); msg != "" {
			return msg
		}
	}

	if root.IsArray() {
		return firstString(root)
	}

	var msg string
	root.ForEach(func(_, value gjson.Result) bool {
		msg = firstString(value)
		return msg == ""
	})
	return msg
}

// FieldErrors возвращает ошибки валидации по полям формы.
func (e *APIError) FieldErrors() map[string][]string {
	if !gjson.ValidBytes(e.Body) {
		return nil
	}
	root := gjson.ParseBytes(e.Body)
	if !root.IsObject() {
		return nil
	}

	fields := make(map[string][]string)
	root.ForEach(func(key, value gjson.Result) bool {
		switch {
		case value.IsArray():
			for _, item := range value.Array() {
				if item.Type == gjson.String {
					fields[key.String()] = append(fields[key.String()], item.String())
				}
			}
		case value.Type == gjson.String:
			fields[key.String()] = []string{value.String()}
		}
		return true
	})
	return fields
}

func firstString(value gjson.Result) string {
	switch {
	case value.Type == gjson.String:
		return value.String()
	case value.IsArray():
		for _, item := range value.Array() {
			if item.Type == gjson.String {
				return item.String()
			}
		}
	}
	return ""
}

// AsAPIError извлекает APIError из цепочки ошибок.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
