// Package renderer turns aggregation results into markdown.
//
// Everything here is presentation only: structs in, strings out. Secondary
// currency amounts are computed here by multiplying with the account's
// current rate; stored values are never mutated.
package renderer

import (
	"fmt"

	"github.com/amsaid/traderbook"
	"github.com/shopspring/decimal"
)

// usd formats a USD amount.
func usd(m traderbook.Money) string { return m.String() }

// pair formats a USD amount followed by its secondary-currency equivalent,
// e.g. "$502.07 / 1,882.11 SAR".
func pair(m traderbook.Money, account traderbook.Account) string {
	rate := decimal.NewFromFloat(account.ExchangeRate)
	converted := m.MulRate(rate, account.CurrencyLabel)
	return fmt.Sprintf("%s / %.2f %s", m, converted.AsFloat(), account.CurrencyLabel)
}

// qty formats a share count.
func qty(n int64) string { return fmt.Sprintf("%d", n) }

// id formats a record id.
func id(n int64) string { return fmt.Sprintf("%d", n) }

// openFlag formats the position-open flag of a trade row.
func openFlag(t traderbook.TradeRecord) string {
	if t.Operation == traderbook.Buy && t.PositionOpen {
		return "open"
	}
	return "closed"
}
