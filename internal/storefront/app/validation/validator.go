// Package validation проверяет формы витрины до отправки на бэкенд.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"gamestore/internal/storefront/ports/services"
)

// Пользовательские теги валидации.
const (
	TagStrongPassword = "strongpassword"
	TagPhone          = "idphone"
	TagPrice          = "price"
)

// MinPrice - минимальная цена товара в рупиях.
const MinPrice = 1000

var (
	passwordPattern = regexp.MustCompile(`^[a-zA-Z\d@$!%*?&]{8,}$`)
	phonePattern    = regexp.MustCompile(`^(\+62|62|0)[0-9]{9,12}$`)
)

// Errors - ошибки формы по полям.
type Errors struct {
	Fields map[string]string
}

func (e *Errors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, field := range keys {
		messages = append(messages, e.Fields[field])
	}
	return strings.Join(messages, "; ")
}

// Is позволяет сравнивать ошибки формы с ErrInvalidInput.
func (e *Errors) Is(target error) bool {
	return target == services.ErrInvalidInput
}

// Validator проверяет структуры по тегам validate.
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор с тегами витрины.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	_ = v.RegisterValidation(TagStrongPassword, func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation(TagPhone, func(fl validator.FieldLevel) bool {
		return Phone(fl.Field().String())
	})
	_ = v.RegisterValidation(TagPrice, func(fl validator.FieldLevel) bool {
		return priceField(fl.Field())
	})

	return &Validator{validate: v}
}

// Validate проверяет структуру и возвращает *Errors с сообщениями на индонезийском.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", services.ErrInvalidInput, err)
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if _, seen := fields[fieldErr.Field()]; seen {
			continue
		}
		fields[fieldErr.Field()] = message(fieldErr)
	}
	return &Errors{Fields: fields}
}

func message(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s wajib diisi", field)
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s minimal %s karakter", field, err.Param())
		}
		return fmt.Sprintf("%s minimal %s", field, err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s maksimal %s karakter", field, err.Param())
		}
		return fmt.Sprintf("%s maksimal %s", field, err.Param())
	case "email":
		return "Format email tidak valid"
	case TagStrongPassword:
		return "Password minimal 8 karakter, mengandung huruf besar, huruf kecil, dan angka"
	case TagPhone:
		return "Format nomor telepon tidak valid"
	case TagPrice:
		return "Harga minimal Rp 1.000"
	case "numeric", "number":
		return fmt.Sprintf("%s harus berupa angka", field)
	case "gt":
		return fmt.Sprintf("%s harus berupa angka positif", field)
	case "eqfield":
		return fmt.Sprintf("%s tidak cocok", field)
	case "oneof":
		return fmt.Sprintf("%s tidak valid", field)
	default:
		return fmt.Sprintf("%s tidak valid", field)
	}
}

// StrongPassword проверяет пароль: не меньше 8 символов, заглавная и строчная
// буквы и цифра.
func StrongPassword(password string) bool {
	if !passwordPattern.MatchString(password) {
		return false
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// Phone проверяет индонезийский номер телефона; пробелы игнорируются.
func Phone(phone string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// Price проверяет, что цена - число не меньше MinPrice.
func Price(value string) bool {
	price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil && price >= MinPrice
}

func priceField(field reflect.Value) bool {
	switch field.Kind() {
	case reflect.String:
		return Price(field.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() >= MinPrice
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return field.Uint() >= MinPrice
	case reflect.Float32, reflect.Float64:
		return field.Float() >= MinPrice
	default:
		return false
	}
}
