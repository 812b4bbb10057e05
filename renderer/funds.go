package renderer

import (
	"bytes"
	"fmt"

	"github.com/amsaid/traderbook"
	md "github.com/nao1215/markdown"
)

// FundsMarkdown renders the funds history with a net summary line.
func FundsMarkdown(funds []traderbook.FundRecord, account traderbook.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Funds — %s", account.Name))
	if len(funds) == 0 {
		doc.PlainText("No fund records.")
		return doc.String()
	}

	net := traderbook.M(0, traderbook.USD)
	rows := make([][]string, 0, len(funds))
	for _, f := range funds {
		switch f.Operation {
		case traderbook.Deposit:
			net = net.Add(f.AmountUSD)
		case traderbook.Withdraw:
			net = net.Sub(f.AmountUSD)
		}
		rows = append(rows, []string{
			id(f.ID),
			string(f.Operation),
			f.Date.String(),
			f.Source,
			f.AmountSecondary.String(),
			usd(f.AmountUSD),
			fmt.Sprintf("%.4f", f.Rate),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Operation", "Date", "Source", account.CurrencyLabel, "USD", "Rate"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Net funds: %s", pair(net, account)))
	return doc.String()
}
