package traderbook

import (
	"errors"
	"math"
	"testing"
)

func TestPercentageOf(t *testing.T) {
	if got := PercentageOf(20, 150); got != 30 {
		t.Errorf("PercentageOf(20, 150) = %v, want 30", got)
	}
}

func TestPercentageRatio(t *testing.T) {
	got, err := PercentageRatio(30, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Errorf("PercentageRatio(30, 150) = %v, want 20%%", got)
	}
	if got.String() != "20.00%" {
		t.Errorf("String() = %q, want %q", got.String(), "20.00%")
	}

	if _, err := PercentageRatio(30, 0); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("zero whole: err = %v, want ErrZeroDenominator", err)
	}
}

func TestPercentageChange(t *testing.T) {
	got, err := PercentageChange(100, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -20 {
		t.Errorf("PercentageChange(100, 80) = %v, want -20%%", got)
	}
	if got.Direction() != "decrease" {
		t.Errorf("Direction() = %q, want %q", got.Direction(), "decrease")
	}

	got, _ = PercentageChange(80, 100)
	if got != 25 || got.Direction() != "increase" {
		t.Errorf("PercentageChange(80, 100) = %v (%s), want 25%% increase", got, got.Direction())
	}

	if _, err := PercentageChange(0, 50); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("zero old: err = %v, want ErrZeroDenominator", err)
	}
}

func TestCurrencyConversion(t *testing.T) {
	account := Account{Name: "test", CurrencyLabel: "SAR", ExchangeRate: 3.7487}

	sec := USDToSecondary(M(100, USD), account)
	if sec.Currency() != "SAR" {
		t.Errorf("currency = %q, want SAR", sec.Currency())
	}
	if math.Abs(sec.AsFloat()-374.87) > 0.001 {
		t.Errorf("converted = %v, want 374.87", sec.AsFloat())
	}

	back, err := SecondaryToUSD(sec, account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(back.AsFloat()-100) > 0.001 {
		t.Errorf("round trip = %v, want 100", back.AsFloat())
	}

	account.ExchangeRate = 0
	if _, err := SecondaryToUSD(sec, account); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("zero rate: err = %v, want ErrZeroDenominator", err)
	}
}
