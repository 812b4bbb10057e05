package renderer

import (
	"bytes"
	"fmt"

	"github.com/amsaid/traderbook"
	md "github.com/nao1215/markdown"
)

// PlanMarkdown renders the risk management plan for one symbol: position
// summary, technical levels with their drawdown risk, and the fixed hints.
func PlanMarkdown(symbol string, shares int64, avgCost, currentPrice traderbook.Money,
	levels []traderbook.PriceLevel, risks []traderbook.RiskLevel, account traderbook.Account) string {

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Risk Management Plan — %s", symbol))
	doc.PlainText(fmt.Sprintf("Open position: %d shares @ avg cost %s = %s",
		shares, avgCost, pair(avgCost.MulInt(shares), account)))
	doc.PlainText(fmt.Sprintf("Current value: %s", pair(currentPrice.MulInt(shares), account)))

	doc.H3("Technical Levels")
	levelRows := make([][]string, 0, len(levels))
	for _, level := range levels {
		levelRows = append(levelRows, []string{level.Name, usd(level.Price)})
	}
	doc.Table(md.TableSet{Header: []string{"Level", "Price"}, Rows: levelRows})

	doc.H3("Risk Scenarios")
	riskRows := make([][]string, 0, len(risks))
	for _, r := range risks {
		riskRows = append(riskRows, []string{
			r.Name,
			usd(r.Price),
			r.Drawdown.String(),
			pair(r.PotentialLoss, account),
		})
	}
	doc.Table(md.TableSet{Header: []string{"Scenario", "Price", "Drawdown", "Potential Loss"}, Rows: riskRows})

	doc.H3("Rules")
	for _, hint := range traderbook.RiskHints(avgCost, levels) {
		doc.BulletList(hint)
	}
	doc.BulletList(
		"Core position: long-term hold, trailing stop never >20-22% drawdown.",
		"Trading portion: active risk, stop below key support 1.",
		"Max portfolio risk: keep under 20-25% of total assets.",
	)
	return doc.String()
}

// CheckMarkdown renders the closure reconciliation report.
func CheckMarkdown(issues []traderbook.ClosureIssue) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Closure Check")
	if len(issues) == 0 {
		doc.PlainText("All closing sells are consistent: no buy lot left open.")
		return doc.String()
	}
	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, []string{
			id(issue.Sell.ID),
			id(issue.Buy.ID),
			issue.Buy.Symbol,
			usd(issue.Sell.ClosedPrice),
			usd(issue.Sell.ClosedAmount),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Sell ID", "Buy ID", "Symbol", "Lot Entry", "Lot Cost"},
		Rows:   rows,
	})
	doc.PlainText("These buys should be flagged closed; fix with the position command.")
	return doc.String()
}
