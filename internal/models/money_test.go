package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDisplayPrice(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"32,900 DZD", 32900},
		{"15000", 15000},
		{" 1 200 DA ", 1200},
		{"DZD 7,500.00", 750000}, // decimals are lossy by design
	}
	for _, tc := range cases {
		got, err := ParseDisplayPrice(tc.input)
		if err != nil {
			t.Fatalf("ParseDisplayPrice(%q) error: %v", tc.input, err)
		}
		if !got.Decimal.Equal(decimal.NewFromInt(tc.want)) {
			t.Fatalf("ParseDisplayPrice(%q) want %d got %s", tc.input, tc.want, got.String())
		}
	}
}

func TestParseDisplayPriceNoDigits(t *testing.T) {
	for _, input := range []string{"", "free", "DZD", " , . "} {
		if _, err := ParseDisplayPrice(input); !errors.Is(err, ErrDisplayPriceInvalid) {
			t.Fatalf("ParseDisplayPrice(%q) expected ErrDisplayPriceInvalid, got %v", input, err)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.NewFromFloat(1234.5))
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"1234.50"` {
		t.Fatalf("unexpected marshal output: %s", b)
	}

	var fromString Money
	if err := json.Unmarshal([]byte(`"99.90"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString.String() != "99.90" {
		t.Fatalf("unexpected value from string: %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`42`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber.String() != "42.00" {
		t.Fatalf("unexpected value from number: %s", fromNumber.String())
	}
}

func TestOrderRemainingBalanceDerived(t *testing.T) {
	order := Order{
		TotalAmount: NewMoneyFromInt(10000),
		AmountPaid:  NewMoneyFromInt(3000),
	}
	order.ComputeRemainingBalance()
	if order.RemainingBalance.String() != "7000.00" {
		t.Fatalf("remaining balance want 7000.00 got %s", order.RemainingBalance.String())
	}

	order.AmountPaid = NewMoneyFromInt(10000)
	order.ComputeRemainingBalance()
	if !order.RemainingBalance.Decimal.IsZero() {
		t.Fatalf("remaining balance want 0 got %s", order.RemainingBalance.String())
	}
}
