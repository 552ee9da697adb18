package tabiplan

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		money    Money
		expected string
	}{
		{M(2000, "JPY"), "¥2,000"},
		{M(0, "JPY"), "¥0"},
		{M(28000, "JPY"), "¥28,000"},
		{M(decimal.RequireFromString("12.5"), "EUR"), "€12.50"},
	}
	for _, tt := range tests {
		if got := tt.money.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestMoneyAdd(t *testing.T) {
	got := M(500, "JPY").Add(M(1250, "JPY"))
	if !got.Equal(M(1750, "JPY")) {
		t.Errorf("Add() = %s, want ¥1,750", got)
	}

	// The empty currency is weak: it takes the other operand's currency.
	got = Money{}.Add(M(100, "JPY"))
	if got.Currency() != "JPY" || !got.Equal(M(100, "JPY")) {
		t.Errorf("zero value Add() = %s %s, want ¥100", got.Amount(), got.Currency())
	}
}

func TestMoneyAddCurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add() across currencies did not panic")
		}
	}()
	M(1, "JPY").Add(M(1, "EUR"))
}
