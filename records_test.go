package traderbook

import (
	"math"
	"testing"
	"time"
)

var testDay = NewDate(2025, time.June, 2)

func TestNewBuyCostValue(t *testing.T) {
	buy, err := NewBuy(testDay, "XYZ", 10, M(50, USD), M(1.8, USD), M(0.27, USD))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !buy.CostValue.Equal(M(502.07, USD)) {
		t.Errorf("cost value = %s, want $502.07", buy.CostValue)
	}
	if !buy.PositionOpen {
		t.Error("a new buy lot must start open")
	}
	if !buy.ProfitLoss.IsZero() {
		t.Errorf("a new buy lot must start with zero profit, got %s", buy.ProfitLoss)
	}
}

func TestNewSellNetProceeds(t *testing.T) {
	sell, err := NewSell(testDay, "XYZ", 10, M(60, USD), M(1.8, USD), M(0.27, USD), M(0, USD))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sell.CostValue.Equal(M(597.93, USD)) {
		t.Errorf("net proceeds = %s, want $597.93", sell.CostValue)
	}
	if sell.PositionOpen {
		t.Error("a sell is never an open position")
	}
}

func TestTradeValidation(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		qty    int64
		price  float64
		fees   float64
		vat    float64
	}{
		{"zero quantity", "XYZ", 0, 50, 0, 0},
		{"negative quantity", "XYZ", -3, 50, 0, 0},
		{"zero price", "XYZ", 10, 0, 0, 0},
		{"negative price", "XYZ", 10, -50, 0, 0},
		{"negative fees", "XYZ", 10, 50, -1, 0},
		{"negative vat", "XYZ", 10, 50, 0, -1},
		{"missing symbol", "", 10, 50, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuy(testDay, tt.symbol, tt.qty, M(tt.price, USD), M(tt.fees, USD), M(tt.vat, USD))
			if err == nil {
				t.Error("expected a validation error for a buy")
			}
			_, err = NewSell(testDay, tt.symbol, tt.qty, M(tt.price, USD), M(tt.fees, USD), M(tt.vat, USD), M(0, USD))
			if err == nil {
				t.Error("expected a validation error for a sell")
			}
		})
	}
}

func TestNewDepositFreezesRate(t *testing.T) {
	fund, err := NewDeposit(testDay, "bank wire", M(374.87, "SAR"), M(100, USD))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(fund.Rate-3.7487) > 0.0001 {
		t.Errorf("rate = %v, want ~3.7487", fund.Rate)
	}
}

func TestNewFundValidation(t *testing.T) {
	if _, err := NewDeposit(testDay, "x", M(100, "SAR"), M(0, USD)); err == nil {
		t.Error("expected an error for a zero usd amount")
	}
	if _, err := NewWithdraw(testDay, "x", M(-1, "SAR"), M(10, USD)); err == nil {
		t.Error("expected an error for a negative secondary amount")
	}
}

func TestParseOperations(t *testing.T) {
	if op, err := ParseTradeOperation("buy"); err != nil || op != Buy {
		t.Errorf("ParseTradeOperation(buy) = %v, %v", op, err)
	}
	if _, err := ParseTradeOperation("deposit"); err == nil {
		t.Error("deposit is not a trade operation")
	}
	if op, err := ParseFundOperation("withdraw"); err != nil || op != Withdraw {
		t.Errorf("ParseFundOperation(withdraw) = %v, %v", op, err)
	}
	if _, err := ParseFundOperation("sell"); err == nil {
		t.Error("sell is not a fund operation")
	}
}
