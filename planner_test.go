package traderbook

import "testing"

func TestPositionSummary(t *testing.T) {
	lots := []TradeRecord{
		mustBuy(t, "AAA", 10, 50),
		mustBuy(t, "AAA", 5, 60),
	}
	shares, avgCost := PositionSummary(lots)
	if shares != 15 {
		t.Errorf("shares = %d, want 15", shares)
	}
	// (10*50 + 5*60) / 15
	want := M(800, USD).DivInt(15)
	if !avgCost.Equal(want) {
		t.Errorf("avg cost = %s, want %s", avgCost, want)
	}
}

func TestPositionSummaryEmpty(t *testing.T) {
	shares, avgCost := PositionSummary(nil)
	if shares != 0 || !avgCost.IsZero() {
		t.Errorf("empty position = %d shares, %s avg cost, want zeros", shares, avgCost)
	}
}

func TestComputeRiskLevels(t *testing.T) {
	levels := []PriceLevel{
		{Name: "Key Support 1", Price: M(90, USD)},
		{Name: "Key Support 2", Price: M(80, USD)},
	}
	risks := ComputeRiskLevels(10, M(100, USD), levels)
	if len(risks) != 2 {
		t.Fatalf("want 2 risk levels, got %d", len(risks))
	}
	if risks[0].Drawdown != 10 {
		t.Errorf("drawdown to 90 = %v, want 10%%", risks[0].Drawdown)
	}
	if !risks[0].PotentialLoss.Equal(M(100, USD)) {
		t.Errorf("loss to 90 = %s, want $100.00", risks[0].PotentialLoss)
	}
	if risks[1].Drawdown != 20 {
		t.Errorf("drawdown to 80 = %v, want 20%%", risks[1].Drawdown)
	}
}

func TestComputeRiskLevelsGuardsZeroPrice(t *testing.T) {
	risks := ComputeRiskLevels(10, M(0, USD), []PriceLevel{{Name: "x", Price: M(5, USD)}})
	if risks[0].Drawdown != 0 {
		t.Errorf("drawdown with zero current price = %v, want 0", risks[0].Drawdown)
	}
}

func TestSuggestLevels(t *testing.T) {
	lots := []TradeRecord{
		mustBuy(t, "AAA", 10, 100),
		mustBuy(t, "AAA", 10, 80),
	}
	levels := SuggestLevels(lots, M(90, USD))
	byName := map[string]Money{}
	for _, level := range levels {
		byName[level.Name] = level.Price
	}
	if !byName["All Time High"].Equal(M(100, USD)) {
		t.Errorf("ATH = %s, want $100.00", byName["All Time High"])
	}
	// the highest entry below the current price
	if !byName["Current Resistance"].Equal(M(80, USD)) {
		t.Errorf("resistance = %s, want $80.00", byName["Current Resistance"])
	}
	if !byName["Key Support 1"].Equal(M(90, USD)) {
		t.Errorf("support 1 = %s, want 90%% of ATH", byName["Key Support 1"])
	}
	if !byName["Key Support 2"].Equal(M(80, USD)) {
		t.Errorf("support 2 = %s, want 80%% of ATH", byName["Key Support 2"])
	}
	if !byName["Deeper Support"].Equal(M(90, USD)) {
		t.Errorf("deeper support = %s, want the $90.00 avg cost", byName["Deeper Support"])
	}
}

func TestExitPlan(t *testing.T) {
	lots := []TradeRecord{
		mustBuy(t, "AAA", 10, 50), // cost 500
		mustBuy(t, "AAA", 5, 40),  // cost 200
	}
	plan := NewExitPlan(lots)
	if plan.Quantity != 15 {
		t.Errorf("quantity = %d, want 15", plan.Quantity)
	}
	if !plan.CostValue.Equal(M(700, USD)) {
		t.Errorf("cost value = %s, want $700.00", plan.CostValue)
	}
	// exit at 60: 15*60 - 700 = 200
	if got := plan.ProfitAt(M(60, USD)); !got.Equal(M(200, USD)) {
		t.Errorf("profit at 60 = %s, want $200.00", got)
	}
	// desired 200: (700+200)/15 = 60
	if got := plan.ExitPriceFor(M(200, USD)); !got.Equal(M(60, USD)) {
		t.Errorf("exit price for 200 = %s, want $60.00", got)
	}
}

func TestExitPlanGuardsEmptySelection(t *testing.T) {
	plan := NewExitPlan(nil)
	if got := plan.ExitPriceFor(M(100, USD)); !got.IsZero() {
		t.Errorf("exit price over no shares = %s, want zero", got)
	}
}
