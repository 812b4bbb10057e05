package traderbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeTestWorkbook builds an xlsx with every marker section and one bad row.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	rows := [][]interface{}{
		{"#FDB"},
		{nil, nil, "02/06/2025", "bank wire", 1000, 266.85, 3.7487},
		{"#FDE"},
		{"#FWB"},
		{nil, nil, "02/07/2025", "payout", 375, 100, 3.75},
		{"#FWE"},
		{"#TBB"},
		{1, nil, "02/06/2025", "XYZ", 10, 50, 1.8, 0.27, nil, 502.07},
		{1, nil, "02/06/2025", "XYZ", "ten", 50, 1.8, 0.27, nil, 502.07}, // bad qty
		{"#TBE"},
		{"#TSB"},
		{0, nil, "20/06/2025", "XYZ", 10, 60, 1.8, 0.27, nil, 597.93, 95.86},
		{"#TSE"},
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, addr, &row))
	}

	path := filepath.Join(t.TempDir(), "transactions.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeTestWorkbook(t)

	rep, err := ReadWorkbook(path, "SAR")
	require.NoError(t, err)

	require.Len(t, rep.Funds, 2)
	deposit := rep.Funds[0]
	assert.Equal(t, Deposit, deposit.Operation)
	assert.Equal(t, NewDate(2025, time.June, 2), deposit.Date)
	assert.Equal(t, "bank wire", deposit.Source)
	assert.True(t, deposit.AmountUSD.Equal(M(266.85, USD)))
	assert.Equal(t, "SAR", deposit.AmountSecondary.Currency())
	assert.InDelta(t, 3.7487, deposit.Rate, 0.0001)
	assert.Equal(t, Withdraw, rep.Funds[1].Operation)

	require.Len(t, rep.Trades, 2)
	buy := rep.Trades[0]
	assert.Equal(t, Buy, buy.Operation)
	assert.Equal(t, "XYZ", buy.Symbol)
	assert.EqualValues(t, 10, buy.Quantity)
	assert.True(t, buy.Price.Equal(M(50, USD)))
	assert.True(t, buy.CostValue.Equal(M(502.07, USD)))
	assert.True(t, buy.PositionOpen)

	sell := rep.Trades[1]
	assert.Equal(t, Sell, sell.Operation)
	assert.False(t, sell.PositionOpen)
	assert.True(t, sell.ProfitLoss.Equal(M(95.86, USD)))

	// the bad row was skipped, not fatal
	require.Len(t, rep.Issues, 1)
	assert.Equal(t, 9, rep.Issues[0].Row)
}

func TestImportApply(t *testing.T) {
	path := writeTestWorkbook(t)
	rep, err := ReadWorkbook(path, "SAR")
	require.NoError(t, err)

	s, err := OpenStore(t.TempDir(), "import", "SAR", zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, rep.Apply(s))

	trades, err := s.ListTrades(TradeFilter{})
	require.NoError(t, err)
	assert.Len(t, trades, 2)
	funds, err := s.ListFunds(FundFilter{})
	require.NoError(t, err)
	assert.Len(t, funds, 2)
}

func TestReadWorkbookMissingFile(t *testing.T) {
	_, err := ReadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"), "SAR")
	assert.Error(t, err)
}
