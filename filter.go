package traderbook

import (
	"fmt"
	"strings"
)

// TradeFilter narrows a ListTrades query. Zero values mean "no constraint".
type TradeFilter struct {
	Operation TradeOperation // buy or sell
	Symbol    string         // exact symbol match

	// PriceLo/PriceHi select trades with PriceLo <= price <= PriceHi.
	// Results are ordered by price ascending when the range is set.
	PriceLo, PriceHi float64
	HasPriceRange    bool

	// MonthYear matches the "MM/YYYY" fragment of the trade date;
	// Year matches the year only. MonthYear wins when both are set.
	MonthYear string
	Year      string

	OpenOnly bool // only open buy lots
}

// FundFilter narrows a ListFunds query. Zero values mean "no constraint".
type FundFilter struct {
	Operation FundOperation // deposit or withdraw
	MonthYear string
	Year      string
	Source    string // substring match on the source column
}

// Dates are stored as DD/MM/YYYY, so the month/year fragment starts at
// character 4 and the year at character 7 (SUBSTR is 1-based).
const (
	dateMonthYearExpr = "SUBSTR(%s, 4, 7)"
	dateYearExpr      = "SUBSTR(%s, 7, 4)"
)

// where builds the WHERE clause and args for a trade filter.
func (f TradeFilter) where() (string, []any) {
	var conds []string
	var args []any
	if f.Operation != "" {
		conds = append(conds, "opr = ?")
		args = append(args, string(f.Operation))
	}
	if f.Symbol != "" {
		conds = append(conds, "symbol = ?")
		args = append(args, f.Symbol)
	}
	if f.HasPriceRange {
		conds = append(conds, "price >= ? AND price <= ?")
		args = append(args, f.PriceLo, f.PriceHi)
	}
	if f.MonthYear != "" {
		conds = append(conds, fmt.Sprintf(dateMonthYearExpr, "trade_date")+" = ?")
		args = append(args, f.MonthYear)
	} else if f.Year != "" {
		conds = append(conds, fmt.Sprintf(dateYearExpr, "trade_date")+" = ?")
		args = append(args, f.Year)
	}
	if f.OpenOnly {
		conds = append(conds, "opr = 'buy' AND is_position_open = 1")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy returns the ORDER BY clause for a trade filter: by price ascending
// when a price range is requested, by id otherwise.
func (f TradeFilter) orderBy() string {
	if f.HasPriceRange {
		return " ORDER BY price ASC"
	}
	return " ORDER BY ID ASC"
}

// where builds the WHERE clause and args for a fund filter.
func (f FundFilter) where() (string, []any) {
	var conds []string
	var args []any
	if f.Operation != "" {
		conds = append(conds, "opr = ?")
		args = append(args, string(f.Operation))
	}
	if f.MonthYear != "" {
		conds = append(conds, fmt.Sprintf(dateMonthYearExpr, "fund_date")+" = ?")
		args = append(args, f.MonthYear)
	} else if f.Year != "" {
		conds = append(conds, fmt.Sprintf(dateYearExpr, "fund_date")+" = ?")
		args = append(args, f.Year)
	}
	if f.Source != "" {
		conds = append(conds, "source LIKE ?")
		args = append(args, "%"+f.Source+"%")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
