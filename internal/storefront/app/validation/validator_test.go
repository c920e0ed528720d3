package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/app/validation"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
)

func TestValidator_Validate(t *testing.T) {
	v := validation.New()

	t.Run("valid registration", func(t *testing.T) {
		err := v.Validate(&entities.RegisterRequest{
			Username:  "budi",
			Email:     "budi@mail.test",
			Password:  "Rahasia123",
			Password2: "Rahasia123",
		})
		assert.NoError(t, err)
	})

	t.Run("field messages use json names", func(t *testing.T) {
		err := v.Validate(&entities.RegisterRequest{
			Username:  "bu",
			Email:     "not-an-email",
			Password:  "lemah",
			Password2: "lain",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidInput)

		var formErr *validation.Errors
		require.ErrorAs(t, err, &formErr)
		assert.Equal(t, map[string]string{
			"username":  "username minimal 3 karakter",
			"email":     "Format email tidak valid",
			"password":  "Password minimal 8 karakter, mengandung huruf besar, huruf kecil, dan angka",
			"password2": "password2 tidak cocok",
		}, formErr.Fields)
	})

	t.Run("required fields", func(t *testing.T) {
		err := v.Validate(&entities.LoginRequest{})

		var formErr *validation.Errors
		require.ErrorAs(t, err, &formErr)
		assert.Equal(t, "username wajib diisi", formErr.Fields["username"])
		assert.Equal(t, "password wajib diisi", formErr.Fields["password"])
		assert.Equal(t, "password wajib diisi; username wajib diisi", formErr.Error())
	})

	t.Run("change password confirmation", func(t *testing.T) {
		err := v.Validate(&entities.ChangePasswordRequest{
			OldPassword:     "Lama1234",
			NewPassword:     "BaruSekali1",
			ConfirmPassword: "BaruSekali2",
		})

		var formErr *validation.Errors
		require.ErrorAs(t, err, &formErr)
		assert.Equal(t, "confirm_password tidak cocok", formErr.Fields["confirm_password"])
	})

	t.Run("non struct input", func(t *testing.T) {
		err := v.Validate("just a string")
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})
}

func TestStrongPassword(t *testing.T) {
	tests := map[string]bool{
		"Rahasia123":  true,
		"Abcdefg1":    true,
		"Ab1@$!%*?&":  true,
		"rahasia123":  false,
		"RAHASIA123":  false,
		"Rahasiaaa":   false,
		"Rh1":         false,
		"Rahasia 123": false,
		"Rahasia123#": false,
		"":            false,
	}
	for password, want := range tests {
		assert.Equal(t, want, validation.StrongPassword(password), password)
	}
}

func TestPhone(t *testing.T) {
	tests := map[string]bool{
		"081234567890":      true,
		"+6281234567890":    true,
		"6281234567890":     true,
		"0812 3456 7890":    true,
		"12345":             false,
		"+1 202 555 0100":   false,
		"08123456789012345": false,
	}
	for phone, want := range tests {
		assert.Equal(t, want, validation.Phone(phone), phone)
	}
}

func TestPrice(t *testing.T) {
	assert.True(t, validation.Price("1000"))
	assert.True(t, validation.Price(" 25000.50 "))
	assert.False(t, validation.Price("999"))
	assert.False(t, validation.Price("gratis"))

	v := validation.New()
	err := v.Validate(&entities.AccountProductInput{NamaAkun: "Akun Sultan", Game: "Free Fire", Harga: "500"})

	var formErr *validation.Errors
	require.ErrorAs(t, err, &formErr)
	assert.Equal(t, "Harga minimal Rp 1.000", formErr.Fields["harga"])
}
