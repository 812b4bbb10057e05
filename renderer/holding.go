package renderer

import (
	"bytes"
	"fmt"

	"github.com/amsaid/traderbook"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the per-symbol holdings summary: live positions
// only (fully closed symbols have dropped out of the fold already).
func HoldingsMarkdown(summaries []traderbook.SymbolSummary, account traderbook.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Holdings — %s", account.Name))
	if len(summaries) == 0 {
		doc.PlainText("No open holdings.")
		return doc.String()
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Symbol,
			qty(s.NetShares),
			usd(s.AvgCost()),
			usd(s.LastPrice),
			pair(s.MarketValue(), account),
			s.UnrealizedProfit().SignedString(),
			s.UnrealizedPercent().SignedString(),
			s.RealizedProfit.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Shares", "Avg Cost", "Last Price", "Market Value", "Unrealized", "Unrealized %", "Realized"},
		Rows:   rows,
	})
	return doc.String()
}
