package traderbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Bulk import reads a workbook whose first sheet carries marker-delimited
// sections: #FDB/#FDE bracket fund deposits, #FWB/#FWE withdrawals,
// #TBB/#TBE buy trades and #TSB/#TSE sell trades. Rows map positionally to
// the record shapes; a malformed row is reported and skipped, it never
// aborts the import.

// section markers in column A
const (
	markDepositBegin  = "#FDB"
	markDepositEnd    = "#FDE"
	markWithdrawBegin = "#FWB"
	markWithdrawEnd   = "#FWE"
	markBuyBegin      = "#TBB"
	markBuyEnd        = "#TBE"
	markSellBegin     = "#TSB"
	markSellEnd       = "#TSE"
)

// RowIssue reports one workbook row that could not be mapped to a record.
type RowIssue struct {
	Row     int // 1-based row number in the sheet
	Section string
	Err     error
}

func (r RowIssue) String() string {
	return fmt.Sprintf("row %d (%s): %v", r.Row, r.Section, r.Err)
}

// ImportReport is the outcome of parsing a workbook: the records recovered
// and the rows that failed.
type ImportReport struct {
	Funds  []FundRecord
	Trades []TradeRecord
	Issues []RowIssue
}

// ReadWorkbook parses the first sheet of an xlsx workbook into fund and
// trade records. Only reading the file or finding no sheet is fatal; row
// level problems end up in the report's issues.
func ReadWorkbook(path, secondaryCurrency string) (*ImportReport, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %q: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %q has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheets[0], err)
	}

	rep := &ImportReport{}
	section := "" // empty outside any marker pair
	for i, row := range rows {
		marker := ""
		if len(row) > 0 {
			marker = strings.TrimSpace(row[0])
		}
		switch marker {
		case markDepositBegin:
			section = string(Deposit)
			continue
		case markWithdrawBegin:
			section = string(Withdraw)
			continue
		case markBuyBegin:
			section = string(Buy)
			continue
		case markSellBegin:
			section = string(Sell)
			continue
		case markDepositEnd, markWithdrawEnd, markBuyEnd, markSellEnd:
			section = ""
			continue
		}
		if section == "" {
			continue
		}
		if err := rep.addRow(section, i+1, row, secondaryCurrency); err != nil {
			rep.Issues = append(rep.Issues, RowIssue{Row: i + 1, Section: section, Err: err})
		}
	}
	return rep, nil
}

// addRow maps one in-section row to a record. Column positions follow the
// workbook layout: funds carry date, source, secondary amount, usd amount
// and rate in columns C..G; trades carry the open flag in column A and date,
// symbol, qty, price, fees, vat in columns C..H, with cost value in J and
// (for sells) profit in K.
func (rep *ImportReport) addRow(section string, rowNum int, row []string, secondaryCurrency string) error {
	switch section {
	case string(Deposit), string(Withdraw):
		date, err := ParseDate(cell(row, 2))
		if err != nil {
			return err
		}
		sec, err := cellFloat(row, 4, "secondary amount")
		if err != nil {
			return err
		}
		usd, err := cellFloat(row, 5, "usd amount")
		if err != nil {
			return err
		}
		rate, err := cellFloat(row, 6, "exchange rate")
		if err != nil {
			return err
		}
		rep.Funds = append(rep.Funds, FundRecord{
			Operation:       FundOperation(section),
			Date:            date,
			Source:          cell(row, 3),
			AmountSecondary: M(sec, secondaryCurrency),
			AmountUSD:       M(usd, USD),
			Rate:            rate,
		})
		return nil

	case string(Buy), string(Sell):
		date, err := ParseDate(cell(row, 2))
		if err != nil {
			return err
		}
		symbol := cell(row, 3)
		if symbol == "" {
			return fmt.Errorf("missing symbol")
		}
		qty, err := cellFloat(row, 4, "quantity")
		if err != nil {
			return err
		}
		price, err := cellFloat(row, 5, "price")
		if err != nil {
			return err
		}
		fees := cellFloatOr(row, 6, 0)
		vat := cellFloatOr(row, 7, 0)
		cost := cellFloatOr(row, 9, 0)

		t := TradeRecord{
			Date:      date,
			Symbol:    symbol,
			Operation: TradeOperation(section),
			Quantity:  int64(qty),
			Price:     M(price, USD),
			Fees:      M(fees, USD),
			VAT:       M(vat, USD),
			CostValue: M(cost, USD),
		}
		if section == string(Buy) {
			t.PositionOpen = cellFloatOr(row, 0, 0) != 0
			t.ProfitLoss = M(0, USD)
		} else {
			t.ProfitLoss = M(cellFloatOr(row, 10, 0), USD)
		}
		rep.Trades = append(rep.Trades, t)
		return nil
	}
	return fmt.Errorf("unknown section %q", section)
}

// Apply inserts every parsed record into the store, in sheet order.
func (rep *ImportReport) Apply(s *Store) error {
	for _, f := range rep.Funds {
		if _, err := s.InsertFund(f); err != nil {
			return err
		}
	}
	for _, t := range rep.Trades {
		if _, err := s.InsertTrade(t); err != nil {
			return err
		}
	}
	return nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellFloat(row []string, i int, what string) (float64, error) {
	s := cell(row, i)
	if s == "" {
		return 0, fmt.Errorf("missing %s in column %d", what, i+1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return v, nil
}

func cellFloatOr(row []string, i int, fallback float64) float64 {
	v, err := strconv.ParseFloat(cell(row, i), 64)
	if err != nil {
		return fallback
	}
	return v
}
