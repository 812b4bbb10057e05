package renderer

import (
	"bytes"

	"github.com/amsaid/traderbook"
	md "github.com/nao1215/markdown"
)

// OpenPositionsMarkdown renders the open buy lots with their mark-to-market
// profit at the current prices, and a totals row.
func OpenPositionsMarkdown(lots []traderbook.TradeRecord, prices traderbook.PriceMap, account traderbook.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Open Positions")
	if len(lots) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	fee := traderbook.M(account.PerTradeFee, traderbook.USD)
	totalCost := traderbook.M(0, traderbook.USD)
	totalProfit := traderbook.M(0, traderbook.USD)
	var totalShares int64

	rows := make([][]string, 0, len(lots)+1)
	for _, lot := range lots {
		price, _ := prices.Price(lot.Symbol)
		profit := traderbook.OpenLotProfit(lot, price, fee)
		totalShares += lot.Quantity
		totalCost = totalCost.Add(lot.CostValue)
		totalProfit = totalProfit.Add(profit)
		rows = append(rows, []string{
			id(lot.ID),
			lot.Date.String(),
			lot.Symbol,
			qty(lot.Quantity),
			usd(lot.Price),
			usd(lot.CostValue),
			usd(price),
			profit.SignedString(),
		})
	}
	rows = append(rows, []string{
		"", "", "Total", qty(totalShares), "", usd(totalCost), "", totalProfit.SignedString(),
	})
	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Symbol", "Qty", "Entry", "Cost Value", "Current", "P/L"},
		Rows:   rows,
	})
	return doc.String()
}
