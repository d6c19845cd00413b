package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrDisplayPriceInvalid reports a bundle price string with no digits.
var ErrDisplayPriceInvalid = errors.New("display price contains no digits")

// Money is the uniform amount type (2 decimal places).
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a Money from a decimal.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// NewMoneyFromInt creates a Money from an integer amount of major units.
func NewMoneyFromInt(amount int64) Money {
	return Money{Decimal: decimal.NewFromInt(amount)}
}

// MarshalJSON renders the amount as a 2-dp string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON accepts either a string or a number.
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Decimal = d.Round(2)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	m.Decimal = decimal.NewFromFloat(f).Round(2)
	return nil
}

// Value implements database writing.
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).Value()
}

// Scan implements database reading.
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

// String returns the 2-dp representation.
func (m Money) String() string {
	return m.Decimal.Round(2).StringFixed(2)
}

// ParseDisplayPrice converts a bundle display price such as "32,900 DZD"
// into a Money. The rule matches the persisted data format: every byte
// that is not an ASCII digit is stripped and the remainder is parsed as a
// base-10 integer, so decimals in the source string are lost.
func ParseDisplayPrice(s string) (Money, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	digits := b.String()
	if digits == "" {
		return Money{}, ErrDisplayPriceInvalid
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return Money{}, ErrDisplayPriceInvalid
	}
	return NewMoneyFromDecimal(d), nil
}
