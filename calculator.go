package traderbook

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrZeroDenominator is returned by the percentage calculators when the
// denominator of a ratio is zero.
var ErrZeroDenominator = errors.New("denominator is zero")

// PercentageOf returns p percent of amount, e.g. PercentageOf(20, 150) = 30.
func PercentageOf(p float64, amount float64) float64 {
	return amount * p / 100
}

// PercentageRatio returns part as a percentage of whole,
// e.g. PercentageRatio(30, 150) = 20%.
func PercentageRatio(part, whole float64) (Percent, error) {
	if whole == 0 {
		return 0, ErrZeroDenominator
	}
	return Percent(part / whole * 100), nil
}

// PercentageChange returns the signed percent change from old to new,
// e.g. PercentageChange(100, 80) = -20%. Direction reads off the sign.
func PercentageChange(old, new float64) (Percent, error) {
	if old == 0 {
		return 0, ErrZeroDenominator
	}
	return Percent((new - old) / old * 100), nil
}

// Direction names the sign of a percent change.
func (p Percent) Direction() string {
	switch {
	case p > 0:
		return "increase"
	case p < 0:
		return "decrease"
	}
	return "no change"
}

// USDToSecondary converts a USD amount to the account's reporting currency
// at its current rate.
func USDToSecondary(usd Money, account Account) Money {
	return usd.MulRate(decimal.NewFromFloat(account.ExchangeRate), account.CurrencyLabel)
}

// SecondaryToUSD converts a reporting-currency amount back to USD at the
// account's current rate.
func SecondaryToUSD(amount Money, account Account) (Money, error) {
	if account.ExchangeRate == 0 {
		return Money{}, ErrZeroDenominator
	}
	return amount.DivRate(decimal.NewFromFloat(account.ExchangeRate), USD), nil
}
