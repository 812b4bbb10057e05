package traderbook

import "fmt"

// The planner is a stateless, single-shot computation over one symbol's open
// buy lots: position summary, per-level drawdown and potential loss against
// user-supplied technical price levels, and fixed stop-loss heuristics.

// PositionSummary reduces open lots to total shares and average cost.
// No lots yield zero shares and zero cost.
func PositionSummary(lots []TradeRecord) (shares int64, avgCost Money) {
	totalCost := M(0, USD)
	for _, lot := range lots {
		shares += lot.Quantity
		totalCost = totalCost.Add(lot.Price.MulInt(lot.Quantity))
	}
	return shares, totalCost.DivInt(shares)
}

// PriceLevel is one named technical level in a risk plan.
type PriceLevel struct {
	Name  string
	Price Money
}

// RiskLevel is the risk computed for one technical level.
type RiskLevel struct {
	Name          string
	Price         Money
	Drawdown      Percent // distance below the current price
	PotentialLoss Money   // current value minus value at the level
}

// ComputeRiskLevels computes per-level drawdown percent and potential loss
// for a position of the given size. A zero current price yields zero
// drawdowns rather than a fault.
func ComputeRiskLevels(shares int64, currentPrice Money, levels []PriceLevel) []RiskLevel {
	currentValue := currentPrice.MulInt(shares)
	current := currentPrice.AsFloat()
	risks := make([]RiskLevel, 0, len(levels))
	for _, level := range levels {
		var drawdown Percent
		if current != 0 {
			drawdown = Percent((current - level.Price.AsFloat()) / current * 100)
		}
		risks = append(risks, RiskLevel{
			Name:          level.Name,
			Price:         level.Price,
			Drawdown:      drawdown,
			PotentialLoss: currentValue.Sub(level.Price.MulInt(shares)),
		})
	}
	return risks
}

// SuggestLevels proposes default technical levels from the open lots
// themselves: the highest entry as all-time-high zone, the highest entry
// below the current price as resistance, 90% and 80% of the high as key
// supports, and the average cost as deeper support.
func SuggestLevels(lots []TradeRecord, currentPrice Money) []PriceLevel {
	high := M(0, USD)
	resistance := M(0, USD)
	for _, lot := range lots {
		if lot.Price.GreaterThan(high) {
			high = lot.Price
		}
		if lot.Price.LessThan(currentPrice) && lot.Price.GreaterThan(resistance) {
			resistance = lot.Price
		}
	}
	_, avgCost := PositionSummary(lots)
	pct := func(m Money, p int64) Money { return m.MulInt(p).DivInt(100) }
	return []PriceLevel{
		{Name: "All Time High", Price: high},
		{Name: "Current Resistance", Price: resistance},
		{Name: "Key Support 1", Price: pct(high, 90)},
		{Name: "Key Support 2", Price: pct(high, 80)},
		{Name: "Deeper Support", Price: avgCost},
	}
}

// RiskHints are the fixed textual heuristics attached to a risk plan.
// keySupport1/2 are the levels named "Key Support 1" and "Key Support 2"
// when present.
func RiskHints(avgCost Money, levels []PriceLevel) []string {
	stop := avgCost.MulInt(80).DivInt(100)
	hints := []string{
		fmt.Sprintf("Normal hold: never risk more than 15-20%% drawdown. Stop at ~%s/share", stop),
	}
	for _, level := range levels {
		switch level.Name {
		case "Key Support 1":
			hints = append(hints, fmt.Sprintf("Swing add: risk 8-12%% to support. Stop below %s", level.Price))
		case "Key Support 2":
			hints = append(hints, fmt.Sprintf("Bear protection: cut 50%% on weekly close below %s", level.Price))
		}
	}
	return hints
}

// ExitPlan is the exit-price calculation over a selection of open lots.
type ExitPlan struct {
	Quantity  int64 // total shares of the selected lots
	CostValue Money // total cost value of the selected lots
}

// NewExitPlan sums the selected lots.
func NewExitPlan(lots []TradeRecord) ExitPlan {
	p := ExitPlan{CostValue: M(0, USD)}
	for _, lot := range lots {
		p.Quantity += lot.Quantity
		p.CostValue = p.CostValue.Add(lot.CostValue)
	}
	return p
}

// ProfitAt returns the profit achieved by exiting the whole selection at the
// target price.
func (p ExitPlan) ProfitAt(target Money) Money {
	return target.MulInt(p.Quantity).Sub(p.CostValue)
}

// ExitPriceFor returns the exit price required to achieve the desired
// profit. A selection with no shares yields zero.
func (p ExitPlan) ExitPriceFor(desiredProfit Money) Money {
	return p.CostValue.Add(desiredProfit).DivInt(p.Quantity)
}
