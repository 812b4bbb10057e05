package renderer

import (
	"bytes"
	"fmt"

	"github.com/amsaid/traderbook"
	md "github.com/nao1215/markdown"
)

// TradesMarkdown renders a (possibly filtered) trade listing.
func TradesMarkdown(trades []traderbook.TradeRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Trades")
	if len(trades) == 0 {
		doc.PlainText("No trades match.")
		return doc.String()
	}

	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{
			id(t.ID),
			t.Date.String(),
			t.Symbol,
			string(t.Operation),
			qty(t.Quantity),
			usd(t.Price),
			usd(t.Fees),
			usd(t.VAT),
			usd(t.CostValue),
			t.ProfitLoss.SignedString(),
			openFlag(t),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Symbol", "Opr", "Qty", "Price", "Fees", "VAT", "Cost Value", "P/L", "Position"},
		Rows:   rows,
	})
	return doc.String()
}

// TradeMarkdown renders one trade in full detail, including the closed-lot
// trace of a closing sell.
func TradeMarkdown(t traderbook.TradeRecord, account traderbook.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Trade %d — %s %s", t.ID, t.Operation, t.Symbol))
	rows := [][]string{
		{"Date", t.Date.String()},
		{"Quantity", qty(t.Quantity)},
		{"Price", usd(t.Price)},
		{"Fees", usd(t.Fees)},
		{"VAT", usd(t.VAT)},
		{"Cost Value", pair(t.CostValue, account)},
		{"Profit/Loss", t.ProfitLoss.SignedString()},
		{"Position", openFlag(t)},
	}
	if t.Operation == traderbook.Sell && !t.ClosedAmount.IsZero() {
		rows = append(rows,
			[]string{"Closed Lot Entry", usd(t.ClosedPrice)},
			[]string{"Closed Lot Cost", usd(t.ClosedAmount)},
		)
	}
	doc.Table(md.TableSet{Header: []string{"Field", "Value"}, Rows: rows})
	return doc.String()
}
