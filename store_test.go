package traderbook

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(t.TempDir(), "test", "SAR", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTradeRoundTrip(t *testing.T) {
	s := newTestStore(t)

	buy, err := NewBuy(NewDate(2025, time.June, 2), "XYZ", 10, M(50, USD), M(1.8, USD), M(0.27, USD))
	require.NoError(t, err)

	id, err := s.InsertTrade(buy)
	require.NoError(t, err)
	require.NotZero(t, id)

	got, ok, err := s.GetTrade(id)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, buy.Date, got.Date)
	assert.Equal(t, buy.Symbol, got.Symbol)
	assert.Equal(t, buy.Operation, got.Operation)
	assert.Equal(t, buy.Quantity, got.Quantity)
	assert.True(t, got.Price.Equal(buy.Price), "price %s != %s", got.Price, buy.Price)
	assert.True(t, got.Fees.Equal(buy.Fees))
	assert.True(t, got.VAT.Equal(buy.VAT))
	assert.True(t, got.CostValue.Equal(buy.CostValue), "cost %s != %s", got.CostValue, buy.CostValue)
	assert.True(t, got.ProfitLoss.IsZero())
	assert.True(t, got.PositionOpen)
	assert.True(t, got.ClosedPrice.IsZero())
	assert.True(t, got.ClosedAmount.IsZero())
}

func TestGetTradeNotFound(t *testing.T) {
	s := newTestStore(t)
	_, ok, err := s.GetTrade(42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateTradeUnknownIDAffectsNothing(t *testing.T) {
	s := newTestStore(t)
	qty := int64(5)
	n, err := s.UpdateTrade(42, TradeUpdate{Quantity: &qty})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdateTradePartialFields(t *testing.T) {
	s := newTestStore(t)
	buy, _ := NewBuy(NewDate(2025, time.June, 2), "XYZ", 10, M(50, USD), M(1.8, USD), M(0.27, USD))
	id, err := s.InsertTrade(buy)
	require.NoError(t, err)

	price := M(55, USD)
	n, err := s.UpdateTrade(id, TradeUpdate{Price: &price})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, ok, err := s.GetTrade(id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Price.Equal(price))
	// untouched fields stay
	assert.Equal(t, buy.Quantity, got.Quantity)
	assert.True(t, got.CostValue.Equal(buy.CostValue))
}

func TestDeleteTrade(t *testing.T) {
	s := newTestStore(t)
	buy, _ := NewBuy(NewDate(2025, time.June, 2), "XYZ", 10, M(50, USD), M(0, USD), M(0, USD))
	id, err := s.InsertTrade(buy)
	require.NoError(t, err)

	n, err := s.DeleteTrade(id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = s.DeleteTrade(id)
	require.NoError(t, err)
	assert.Zero(t, n, "deleting again affects nothing")
}

func TestListTradesPriceRange(t *testing.T) {
	s := newTestStore(t)
	for _, price := range []float64{250, 100, 99.99, 150, 200, 200.01} {
		buy, err := NewBuy(NewDate(2025, time.June, 2), "XYZ", 1, M(price, USD), M(0, USD), M(0, USD))
		require.NoError(t, err)
		_, err = s.InsertTrade(buy)
		require.NoError(t, err)
	}

	trades, err := s.ListTrades(TradeFilter{PriceLo: 100, PriceHi: 200, HasPriceRange: true})
	require.NoError(t, err)
	require.Len(t, trades, 3, "bounds are inclusive")
	// ordered by price ascending
	assert.True(t, trades[0].Price.Equal(M(100, USD)))
	assert.True(t, trades[1].Price.Equal(M(150, USD)))
	assert.True(t, trades[2].Price.Equal(M(200, USD)))
}

func TestListTradesByMonthAndYear(t *testing.T) {
	s := newTestStore(t)
	dates := []Date{
		NewDate(2025, time.June, 2),
		NewDate(2025, time.June, 20),
		NewDate(2025, time.July, 2),
		NewDate(2024, time.June, 2),
	}
	for _, d := range dates {
		buy, err := NewBuy(d, "XYZ", 1, M(10, USD), M(0, USD), M(0, USD))
		require.NoError(t, err)
		_, err = s.InsertTrade(buy)
		require.NoError(t, err)
	}

	june, err := s.ListTrades(TradeFilter{MonthYear: "06/2025"})
	require.NoError(t, err)
	assert.Len(t, june, 2)

	year, err := s.ListTrades(TradeFilter{Year: "2025"})
	require.NoError(t, err)
	assert.Len(t, year, 3)
}

func TestListTradesByOperationAndOpen(t *testing.T) {
	s := newTestStore(t)
	buy, _ := NewBuy(NewDate(2025, time.June, 2), "XYZ", 1, M(10, USD), M(0, USD), M(0, USD))
	sell, _ := NewSell(NewDate(2025, time.June, 3), "XYZ", 1, M(12, USD), M(0, USD), M(0, USD), M(2, USD))
	buyID, err := s.InsertTrade(buy)
	require.NoError(t, err)
	_, err = s.InsertTrade(sell)
	require.NoError(t, err)

	sells, err := s.ListTrades(TradeFilter{Operation: Sell})
	require.NoError(t, err)
	require.Len(t, sells, 1)
	assert.Equal(t, Sell, sells[0].Operation)

	open, err := s.ListTrades(TradeFilter{OpenOnly: true})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, buyID, open[0].ID)

	_, err = s.SetPositionOpen(buyID, false)
	require.NoError(t, err)
	open, err = s.ListTrades(TradeFilter{OpenOnly: true})
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestFundRoundTripAndFilters(t *testing.T) {
	s := newTestStore(t)
	deposit, err := NewDeposit(NewDate(2025, time.June, 2), "bank wire", M(374.87, "SAR"), M(100, USD))
	require.NoError(t, err)
	withdraw, err := NewWithdraw(NewDate(2025, time.July, 2), "broker payout", M(375, "SAR"), M(100, USD))
	require.NoError(t, err)

	_, err = s.InsertFund(deposit)
	require.NoError(t, err)
	_, err = s.InsertFund(withdraw)
	require.NoError(t, err)

	all, err := s.ListFunds(FundFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "SAR", all[0].AmountSecondary.Currency())
	assert.InDelta(t, 3.7487, all[0].Rate, 0.0001)

	deposits, err := s.ListFunds(FundFilter{Operation: Deposit})
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	assert.Equal(t, "bank wire", deposits[0].Source)

	bySource, err := s.ListFunds(FundFilter{Source: "wire"})
	require.NoError(t, err)
	assert.Len(t, bySource, 1)

	byMonth, err := s.ListFunds(FundFilter{MonthYear: "07/2025"})
	require.NoError(t, err)
	require.Len(t, byMonth, 1)
	assert.Equal(t, Withdraw, byMonth[0].Operation)
}

func TestCloseBuy(t *testing.T) {
	s := newTestStore(t)
	buy, _ := NewBuy(NewDate(2025, time.June, 2), "XYZ", 10, M(50, USD), M(1.8, USD), M(0.27, USD))
	buyID, err := s.InsertTrade(buy)
	require.NoError(t, err)

	sell, err := s.CloseBuy(buyID, NewDate(2025, time.June, 20), M(60, USD), M(1.8, USD), M(0.27, USD))
	require.NoError(t, err)
	assert.True(t, sell.ProfitLoss.Equal(M(95.86, USD)), "profit %s", sell.ProfitLoss)
	assert.Equal(t, buy.Quantity, sell.Quantity, "the lot's own quantity is sold")
	assert.True(t, sell.ClosedPrice.Equal(M(50, USD)))
	assert.True(t, sell.ClosedAmount.Equal(M(502.07, USD)))

	got, ok, err := s.GetTrade(buyID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got.PositionOpen, "the buy lot must be flagged closed")
}

func TestCloseBuyValidatesLink(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CloseBuy(42, Today(), M(60, USD), M(0, USD), M(0, USD))
	assert.Error(t, err, "unknown id must be rejected before any write")

	sell, _ := NewSell(NewDate(2025, time.June, 2), "XYZ", 1, M(12, USD), M(0, USD), M(0, USD), M(0, USD))
	sellID, err := s.InsertTrade(sell)
	require.NoError(t, err)
	_, err = s.CloseBuy(sellID, Today(), M(60, USD), M(0, USD), M(0, USD))
	assert.Error(t, err, "a sell cannot be closed")

	// nothing extra was written by the rejected closes
	trades, err := s.ListTrades(TradeFilter{})
	require.NoError(t, err)
	assert.Len(t, trades, 1)
}

func TestLastBuyPrice(t *testing.T) {
	s := newTestStore(t)
	for _, price := range []float64{40, 55, 45} {
		buy, _ := NewBuy(NewDate(2025, time.June, 2), "XYZ", 1, M(price, USD), M(0, USD), M(0, USD))
		_, err := s.InsertTrade(buy)
		require.NoError(t, err)
	}
	price, ok, err := s.LastBuyPrice("XYZ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, price.Equal(M(55, USD)), "fallback is the highest buy price")

	_, ok, err = s.LastBuyPrice("NOPE")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	buy, _ := NewBuy(NewDate(2025, time.June, 2), "XYZ", 1, M(10, USD), M(0, USD), M(0, USD))
	_, err := s.InsertTrade(buy)
	require.NoError(t, err)
	deposit, _ := NewDeposit(NewDate(2025, time.June, 2), "x", M(10, "SAR"), M(2.7, USD))
	_, err = s.InsertFund(deposit)
	require.NoError(t, err)

	require.NoError(t, s.Reset())

	trades, err := s.ListTrades(TradeFilter{})
	require.NoError(t, err)
	assert.Empty(t, trades)
	funds, err := s.ListFunds(FundFilter{})
	require.NoError(t, err)
	assert.Empty(t, funds)
}
