package traderbook

import "fmt"

// TradeOperation is the side of a trade row: buy or sell.
type TradeOperation string

const (
	Buy  TradeOperation = "buy"
	Sell TradeOperation = "sell"
)

// ParseTradeOperation parses a trade operation from user input.
func ParseTradeOperation(s string) (TradeOperation, error) {
	switch TradeOperation(s) {
	case Buy, Sell:
		return TradeOperation(s), nil
	}
	return "", fmt.Errorf("invalid trade operation %q, want %q or %q", s, Buy, Sell)
}

// FundOperation is the direction of a fund movement: deposit or withdraw.
type FundOperation string

const (
	Deposit  FundOperation = "deposit"
	Withdraw FundOperation = "withdraw"
)

// ParseFundOperation parses a fund operation from user input.
func ParseFundOperation(s string) (FundOperation, error) {
	switch FundOperation(s) {
	case Deposit, Withdraw:
		return FundOperation(s), nil
	}
	return "", fmt.Errorf("invalid fund operation %q, want %q or %q", s, Deposit, Withdraw)
}

// TradeRecord is one row of the trades ledger. A buy row is a lot that stays
// open until it is sold back or flagged closed; a sell row is always closed.
type TradeRecord struct {
	ID        int64
	Date      Date
	Symbol    string
	Operation TradeOperation
	Quantity  int64 // filled quantity, whole shares
	Price     Money
	Fees      Money
	VAT       Money

	// CostValue is qty*price+fees+vat for a buy, and net proceeds
	// qty*price-fees-vat for a sell.
	CostValue Money

	// ProfitLoss is the realized gain of a sell. Zero on buys until the lot
	// is closed.
	ProfitLoss Money

	// PositionOpen is true for a buy lot that has not been closed yet.
	PositionOpen bool

	// ClosedPrice and ClosedAmount record, on a closing sell, the entry price
	// and cost value of the buy lot it closed. Zero otherwise.
	ClosedPrice  Money
	ClosedAmount Money
}

// FundRecord is one row of the funds ledger.
type FundRecord struct {
	ID        int64
	Operation FundOperation
	Date      Date
	Source    string

	// AmountSecondary and AmountUSD are the same movement expressed in the
	// account's reporting currency and in USD.
	AmountSecondary Money
	AmountUSD       Money

	// Rate is amount_secondary/amount_usd frozen at entry time. Changing the
	// account's current rate later never rewrites history.
	Rate float64
}

// validateTrade checks the field invariants shared by buys and sells.
func validateTrade(symbol string, qty int64, price, fees, vat Money) error {
	if symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", qty)
	}
	if !price.IsPositive() {
		return fmt.Errorf("price must be positive, got %s", price)
	}
	if fees.IsNegative() {
		return fmt.Errorf("fees cannot be negative, got %s", fees)
	}
	if vat.IsNegative() {
		return fmt.Errorf("vat cannot be negative, got %s", vat)
	}
	return nil
}

// NewBuy creates an open buy lot. cost_value = qty*price + fees + vat.
func NewBuy(date Date, symbol string, qty int64, price, fees, vat Money) (TradeRecord, error) {
	if err := validateTrade(symbol, qty, price, fees, vat); err != nil {
		return TradeRecord{}, err
	}
	return TradeRecord{
		Date:         date,
		Symbol:       symbol,
		Operation:    Buy,
		Quantity:     qty,
		Price:        price,
		Fees:         fees,
		VAT:          vat,
		CostValue:    price.MulInt(qty).Add(fees).Add(vat),
		PositionOpen: true,
	}, nil
}

// NewSell creates a sell row. cost_value = qty*price - fees - vat (net
// proceeds). profitLoss is the realized gain for this sell, supplied directly
// or computed by the position closure.
func NewSell(date Date, symbol string, qty int64, price, fees, vat, profitLoss Money) (TradeRecord, error) {
	if err := validateTrade(symbol, qty, price, fees, vat); err != nil {
		return TradeRecord{}, err
	}
	return TradeRecord{
		Date:       date,
		Symbol:     symbol,
		Operation:  Sell,
		Quantity:   qty,
		Price:      price,
		Fees:       fees,
		VAT:        vat,
		CostValue:  price.MulInt(qty).Sub(fees).Sub(vat),
		ProfitLoss: profitLoss,
	}, nil
}

// newFund creates a fund record with the exchange rate frozen at entry.
func newFund(op FundOperation, date Date, source string, amountSecondary, amountUSD Money) (FundRecord, error) {
	if !amountUSD.IsPositive() {
		return FundRecord{}, fmt.Errorf("usd amount must be positive, got %s", amountUSD)
	}
	if amountSecondary.IsNegative() {
		return FundRecord{}, fmt.Errorf("secondary amount cannot be negative, got %s", amountSecondary)
	}
	return FundRecord{
		Operation:       op,
		Date:            date,
		Source:          source,
		AmountSecondary: amountSecondary,
		AmountUSD:       amountUSD,
		Rate:            amountSecondary.AsFloat() / amountUSD.AsFloat(),
	}, nil
}

// NewDeposit creates a deposit fund record.
func NewDeposit(date Date, source string, amountSecondary, amountUSD Money) (FundRecord, error) {
	return newFund(Deposit, date, source, amountSecondary, amountUSD)
}

// NewWithdraw creates a withdrawal fund record.
func NewWithdraw(date Date, source string, amountSecondary, amountUSD Money) (FundRecord, error) {
	return newFund(Withdraw, date, source, amountSecondary, amountUSD)
}
