package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Amount - денежная сумма. Бэкенд отдает decimal как строку ("150000.00"),
// а иногда как число; оба варианта принимаются.
type Amount string

// UnmarshalJSON принимает строку, число или null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// Float64 возвращает сумму числом; некорректное значение дает 0.
func (a Amount) Float64() float64 {
	f, err := strconv.ParseFloat(string(a), 64)
	if err != nil {
		return 0
	}
	return f
}

// FlexibleID - идентификатор, который приходит то числом, то строкой.
type FlexibleID string

// UnmarshalJSON принимает строку или число.
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	var a Amount
	if err := a.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = FlexibleID(a)
	return nil
}

// String возвращает идентификатор строкой.
func (id FlexibleID) String() string {
	return string(id)
}
