package renderer

import (
	"bytes"

	"github.com/amsaid/traderbook"
	md "github.com/nao1215/markdown"
)

// TotalsMarkdown renders the account-level panel: funds, cash, fees, trade
// counts and the resulting net worth.
func TotalsMarkdown(totals traderbook.AccountTotals, netWorth traderbook.Money, account traderbook.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Account Totals")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Funds", pair(totals.TotalFunds, account)},
			{"Total Cash", pair(totals.TotalCash, account)},
			{"Total Fees", usd(totals.TotalFees)},
			{"Total VAT", usd(totals.TotalVAT)},
			{"Buy Trades", qty(int64(totals.BuyCount))},
			{"Sell Trades", qty(int64(totals.SellCount))},
			{"Net Worth", pair(netWorth, account)},
		},
	})
	return doc.String()
}
