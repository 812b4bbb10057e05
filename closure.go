package traderbook

import "fmt"

// Closing a position is a sell that references the buy lot it terminates.
// The link is validated against the store before anything is written, the
// realized profit always uses the buy lot's own quantity (closing is
// all-or-nothing per lot), and the write is a two-step sequence: insert the
// sell, then flip the buy's open flag. The second step can fail after the
// first committed; ReconcileClosures detects the resulting orphan sells.

// ClosureProfit computes the realized gain of closing a buy lot at the given
// sell price: (sell_price × buy_qty − (fees+vat)) − buy_cost_value.
func ClosureProfit(buy TradeRecord, sellPrice, fees, vat Money) Money {
	return sellPrice.MulInt(buy.Quantity).Sub(fees.Add(vat)).Sub(buy.CostValue)
}

// CloseBuy records a sell that closes the buy lot with the given id.
// It validates the link first (the id must exist and be a buy), computes the
// realized profit from the buy lot's quantity, inserts the sell, then flips
// the buy's open flag. On a link validation failure nothing is written.
func (s *Store) CloseBuy(buyID int64, date Date, sellPrice, fees, vat Money) (TradeRecord, error) {
	buy, ok, err := s.GetTrade(buyID)
	if err != nil {
		return TradeRecord{}, err
	}
	if !ok {
		return TradeRecord{}, fmt.Errorf("no trade with id %d to close", buyID)
	}
	if buy.Operation != Buy {
		return TradeRecord{}, fmt.Errorf("trade %d is a %s, only a buy can be closed", buyID, buy.Operation)
	}

	profit := ClosureProfit(buy, sellPrice, fees, vat)
	sell, err := NewSell(date, buy.Symbol, buy.Quantity, sellPrice, fees, vat, profit)
	if err != nil {
		return TradeRecord{}, err
	}
	// the sell keeps a trace of the lot it closed
	sell.ClosedPrice = buy.Price
	sell.ClosedAmount = buy.CostValue

	id, err := s.InsertTrade(sell)
	if err != nil {
		return TradeRecord{}, err
	}
	sell.ID = id

	if _, err := s.SetPositionOpen(buyID, false); err != nil {
		// the sell is committed but the buy is still flagged open;
		// ReconcileClosures will report it.
		return sell, fmt.Errorf("sell %d recorded but buy %d is still open: %w", id, buyID, err)
	}
	s.log.Info().Int64("sell", id).Int64("buy", buyID).Str("symbol", buy.Symbol).Msg("position closed")
	return sell, nil
}

// ClosureIssue reports a closing sell whose buy lot is still flagged open.
type ClosureIssue struct {
	Sell TradeRecord
	Buy  TradeRecord
}

func (c ClosureIssue) String() string {
	return fmt.Sprintf("sell %d closed buy %d (%s) but the buy is still flagged open",
		c.Sell.ID, c.Buy.ID, c.Buy.Symbol)
}

// ReconcileClosures scans a full trade snapshot for closing sells whose buy
// lot was left open, the partial-failure mode of CloseBuy. A closing sell is
// recognized by its nonzero closed-position trace and matched to open buys of
// the same symbol by entry price and cost value.
func ReconcileClosures(trades []TradeRecord) []ClosureIssue {
	var issues []ClosureIssue
	for _, sell := range trades {
		if sell.Operation != Sell || sell.ClosedAmount.IsZero() {
			continue
		}
		for _, buy := range trades {
			if buy.Operation != Buy || !buy.PositionOpen || buy.Symbol != sell.Symbol {
				continue
			}
			if buy.Price.Equal(sell.ClosedPrice) && buy.CostValue.Equal(sell.ClosedAmount) {
				issues = append(issues, ClosureIssue{Sell: sell, Buy: buy})
			}
		}
	}
	return issues
}
