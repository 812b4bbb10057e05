package traderbook

import "sort"

// PriceMap maps a symbol to its current price.
type PriceMap map[string]Money

// Price returns the current price for a symbol and whether one is known.
func (p PriceMap) Price(symbol string) (Money, bool) {
	m, ok := p[symbol]
	return m, ok
}

// FallbackPrices builds a price map from the ledger itself: each symbol
// defaults to its highest buy price. This mirrors the historical fallback
// (ordering buys by price, not by date); kept as is.
func FallbackPrices(trades []TradeRecord) PriceMap {
	prices := make(PriceMap)
	for _, t := range trades {
		if t.Operation != Buy {
			continue
		}
		if best, ok := prices[t.Symbol]; !ok || t.Price.GreaterThan(best) {
			prices[t.Symbol] = t.Price
		}
	}
	return prices
}

// SymbolSummary is the live holdings view of one symbol.
type SymbolSummary struct {
	Symbol         string
	NetShares      int64 // Σ buy qty − Σ sell qty
	NetCostBasis   Money // Σ buy cost_value − Σ sell cost_value
	RealizedProfit Money // Σ profit_loss over all trades of the symbol
	LastPrice      Money // current price, or the fallback
}

// AvgCost is the average cost per share. Zero shares yield zero.
func (s SymbolSummary) AvgCost() Money { return s.NetCostBasis.DivInt(s.NetShares) }

// MarketValue is net_shares at the current price.
func (s SymbolSummary) MarketValue() Money { return s.LastPrice.MulInt(s.NetShares) }

// UnrealizedProfit is market value minus net cost basis.
func (s SymbolSummary) UnrealizedProfit() Money { return s.MarketValue().Sub(s.NetCostBasis) }

// UnrealizedPercent is the unrealized profit relative to the cost basis.
// A zero cost basis yields zero.
func (s SymbolSummary) UnrealizedPercent() Percent {
	basis := s.NetCostBasis.AsFloat()
	if basis == 0 {
		return 0
	}
	return Percent(s.UnrealizedProfit().AsFloat() / basis * 100)
}

// SummarizeBySymbol folds a full trade snapshot into per-symbol summaries,
// ordered by symbol. Symbols whose net shares reached zero drop out: fully
// closed positions contribute to realized totals but not to holdings views.
func SummarizeBySymbol(trades []TradeRecord, prices PriceMap) []SymbolSummary {
	bySymbol := make(map[string]*SymbolSummary)
	for _, t := range trades {
		s, ok := bySymbol[t.Symbol]
		if !ok {
			s = &SymbolSummary{Symbol: t.Symbol}
			bySymbol[t.Symbol] = s
		}
		switch t.Operation {
		case Buy:
			s.NetShares += t.Quantity
			s.NetCostBasis = s.NetCostBasis.Add(t.CostValue)
		case Sell:
			s.NetShares -= t.Quantity
			s.NetCostBasis = s.NetCostBasis.Sub(t.CostValue)
		}
		s.RealizedProfit = s.RealizedProfit.Add(t.ProfitLoss)
	}

	var summaries []SymbolSummary
	for _, s := range bySymbol {
		if s.NetShares == 0 {
			continue
		}
		if price, ok := prices.Price(s.Symbol); ok {
			s.LastPrice = price
		}
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Symbol < summaries[j].Symbol })
	return summaries
}

// OpenPositions returns the open buy lots of the given symbols, ordered by
// price ascending. Symbols not in the set (fully closed holdings) are
// skipped.
func OpenPositions(trades []TradeRecord, symbols []string) []TradeRecord {
	live := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		live[s] = true
	}
	var lots []TradeRecord
	for _, t := range trades {
		if t.Operation == Buy && t.PositionOpen && live[t.Symbol] {
			lots = append(lots, t)
		}
	}
	sort.SliceStable(lots, func(i, j int) bool { return lots[i].Price.LessThan(lots[j].Price) })
	return lots
}

// AccountTotals is the account-level fold of funds and trades.
type AccountTotals struct {
	TotalFunds Money // Σ deposits − Σ withdrawals, in USD
	TotalCash  Money // funds − Σ buy cost + Σ sell proceeds
	TotalFees  Money
	TotalVAT   Money
	BuyCount   int
	SellCount  int
}

// ComputeAccountTotals folds the full fund and trade snapshots into account
// totals.
func ComputeAccountTotals(funds []FundRecord, trades []TradeRecord) AccountTotals {
	t := AccountTotals{
		TotalFunds: M(0, USD),
		TotalFees:  M(0, USD),
		TotalVAT:   M(0, USD),
	}
	for _, f := range funds {
		switch f.Operation {
		case Deposit:
			t.TotalFunds = t.TotalFunds.Add(f.AmountUSD)
		case Withdraw:
			t.TotalFunds = t.TotalFunds.Sub(f.AmountUSD)
		}
	}
	t.TotalCash = t.TotalFunds
	for _, tr := range trades {
		t.TotalFees = t.TotalFees.Add(tr.Fees)
		t.TotalVAT = t.TotalVAT.Add(tr.VAT)
		switch tr.Operation {
		case Buy:
			t.BuyCount++
			t.TotalCash = t.TotalCash.Sub(tr.CostValue)
		case Sell:
			t.SellCount++
			t.TotalCash = t.TotalCash.Add(tr.CostValue)
		}
	}
	return t
}

// NetWorth is total cash plus the market value of all open holdings.
func NetWorth(totals AccountTotals, summaries []SymbolSummary) Money {
	worth := totals.TotalCash
	for _, s := range summaries {
		worth = worth.Add(s.MarketValue())
	}
	return worth
}

// OpenLotProfit marks an open buy lot to market: (price − entry) × qty minus
// a round-trip of the per-trade fee. A lot already carrying realized profit
// keeps its stored value unchanged.
func OpenLotProfit(lot TradeRecord, currentPrice, perTradeFee Money) Money {
	if !lot.ProfitLoss.IsZero() {
		return lot.ProfitLoss
	}
	return currentPrice.Sub(lot.Price).MulInt(lot.Quantity).Sub(perTradeFee.MulInt(2))
}

// MaxAffordableQty is the buy suggestion: how many shares the current cash
// buys at the given price, by integer truncation. Fees are deliberately left
// out of the suggestion and only validated at confirm time.
func MaxAffordableQty(totalCash, price Money) int64 {
	p := price.AsFloat()
	if p <= 0 {
		return 0
	}
	return int64(totalCash.AsFloat() / p)
}
