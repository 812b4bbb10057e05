package traderbook

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// Store is the per-account ledger database. Each account owns one SQLite
// file named after it; there are no cross-account queries. The store is
// opened around a logical operation and closed after it, so a crash can only
// affect the statement in progress.
type Store struct {
	db        *sql.DB
	path      string
	secondary string // the account's reporting currency code
	log       zerolog.Logger
}

// OpenStore opens (creating if needed) the ledger database for an account.
// The file lives at <dir>/<account>.db and the schema is ensured on open.
func OpenStore(dir, account, secondaryCurrency string, log zerolog.Logger) (*Store, error) {
	if account == "" {
		return nil, fmt.Errorf("account name is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create ledger directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, sanitizeAccountName(account)+".db")
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not reach ledger %q: %w", path, err)
	}
	s := &Store{
		db:        db,
		path:      path,
		secondary: secondaryCurrency,
		log:       log.With().Str("store", account).Logger(),
	}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// sanitizeAccountName maps an account name to a safe file stem.
func sanitizeAccountName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file backing this store.
func (s *Store) Path() string { return s.path }

func (s *Store) ensureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("could not ensure ledger schema: %w", err)
		}
	}
	return nil
}

// Reset drops and recreates both ledger tables, erasing every record.
func (s *Store) Reset() error {
	for _, stmt := range dropStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("could not drop ledger table: %w", err)
		}
	}
	s.log.Warn().Msg("ledger reset")
	return s.ensureSchema()
}

// InsertTrade stores a trade row and returns its new id.
// Field invariants are the constructors' job; the store fails only on I/O.
func (s *Store) InsertTrade(t TradeRecord) (int64, error) {
	open := 0
	if t.PositionOpen {
		open = 1
	}
	res, err := s.db.Exec(`INSERT INTO TRADES
		(trade_date, symbol, opr, filled_qty, price, fees, vat, cost_value, profit_loss, is_position_open, closed_position_price, closed_position_amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Date.String(), t.Symbol, string(t.Operation), t.Quantity,
		t.Price.AsFloat(), t.Fees.AsFloat(), t.VAT.AsFloat(),
		t.CostValue.AsFloat(), t.ProfitLoss.AsFloat(), open,
		t.ClosedPrice.AsFloat(), t.ClosedAmount.AsFloat())
	if err != nil {
		return 0, fmt.Errorf("could not insert trade: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not read trade id: %w", err)
	}
	s.log.Debug().Int64("id", id).Str("symbol", t.Symbol).Str("opr", string(t.Operation)).Msg("trade inserted")
	return id, nil
}

// InsertFund stores a fund row and returns its new id.
func (s *Store) InsertFund(f FundRecord) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO FUNDS
		(opr, fund_date, source, amount_secondary, amount_usd, rate_exchange)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(f.Operation), f.Date.String(), f.Source,
		f.AmountSecondary.AsFloat(), f.AmountUSD.AsFloat(), f.Rate)
	if err != nil {
		return 0, fmt.Errorf("could not insert fund: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not read fund id: %w", err)
	}
	s.log.Debug().Int64("id", id).Str("opr", string(f.Operation)).Msg("fund inserted")
	return id, nil
}

const tradeColumns = "ID, trade_date, symbol, opr, filled_qty, price, fees, vat, cost_value, profit_loss, is_position_open, closed_position_price, closed_position_amount"

// GetTrade fetches one trade by id. Returns a zero record and false when the
// id does not exist.
func (s *Store) GetTrade(id int64) (TradeRecord, bool, error) {
	row := s.db.QueryRow("SELECT "+tradeColumns+" FROM TRADES WHERE ID = ?", id)
	t, err := s.scanTrade(row)
	if err == sql.ErrNoRows {
		return TradeRecord{}, false, nil
	}
	if err != nil {
		return TradeRecord{}, false, fmt.Errorf("could not read trade %d: %w", id, err)
	}
	return t, true, nil
}

type rowScanner interface{ Scan(dest ...any) error }

func (s *Store) scanTrade(row rowScanner) (TradeRecord, error) {
	var t TradeRecord
	var date string
	var opr string
	var price, fees, vat, cost, pl, closedPrice, closedAmount float64
	var open int
	err := row.Scan(&t.ID, &date, &t.Symbol, &opr, &t.Quantity, &price, &fees, &vat, &cost, &pl, &open, &closedPrice, &closedAmount)
	if err != nil {
		return TradeRecord{}, err
	}
	t.Date, err = ParseDate(date)
	if err != nil {
		return TradeRecord{}, err
	}
	t.Operation = TradeOperation(opr)
	t.Price = M(price, USD)
	t.Fees = M(fees, USD)
	t.VAT = M(vat, USD)
	t.CostValue = M(cost, USD)
	t.ProfitLoss = M(pl, USD)
	t.PositionOpen = open != 0
	t.ClosedPrice = M(closedPrice, USD)
	t.ClosedAmount = M(closedAmount, USD)
	return t, nil
}

// ListTrades returns the trades matching the filter, ordered by id, or by
// price ascending for a price-range query.
func (s *Store) ListTrades(f TradeFilter) ([]TradeRecord, error) {
	where, args := f.where()
	rows, err := s.db.Query("SELECT "+tradeColumns+" FROM TRADES"+where+f.orderBy(), args...)
	if err != nil {
		return nil, fmt.Errorf("could not list trades: %w", err)
	}
	defer rows.Close()
	var trades []TradeRecord
	for rows.Next() {
		t, err := s.scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan trade: %w", err)
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// ListFunds returns the fund rows matching the filter, ordered by id.
func (s *Store) ListFunds(f FundFilter) ([]FundRecord, error) {
	where, args := f.where()
	rows, err := s.db.Query("SELECT ID, opr, fund_date, source, amount_secondary, amount_usd, rate_exchange FROM FUNDS"+where+" ORDER BY ID ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("could not list funds: %w", err)
	}
	defer rows.Close()
	var funds []FundRecord
	for rows.Next() {
		var fr FundRecord
		var opr, date string
		var sec, usd float64
		if err := rows.Scan(&fr.ID, &opr, &date, &fr.Source, &sec, &usd, &fr.Rate); err != nil {
			return nil, fmt.Errorf("could not scan fund: %w", err)
		}
		fr.Operation = FundOperation(opr)
		fr.Date, err = ParseDate(date)
		if err != nil {
			return nil, err
		}
		fr.AmountSecondary = M(sec, s.secondary)
		fr.AmountUSD = M(usd, USD)
		funds = append(funds, fr)
	}
	return funds, rows.Err()
}

// TradeUpdate is a partial update of a trade row; nil fields are left
// untouched.
type TradeUpdate struct {
	Date         *Date
	Symbol       *string
	Quantity     *int64
	Price        *Money
	Fees         *Money
	VAT          *Money
	CostValue    *Money
	ProfitLoss   *Money
	PositionOpen *bool
}

// UpdateTrade applies the set fields of the update to the trade with the
// given id. A nonexistent id is not an error: it returns zero affected rows
// so the caller can warn.
func (s *Store) UpdateTrade(id int64, u TradeUpdate) (int64, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if u.Date != nil {
		set("trade_date", u.Date.String())
	}
	if u.Symbol != nil {
		set("symbol", *u.Symbol)
	}
	if u.Quantity != nil {
		set("filled_qty", *u.Quantity)
	}
	if u.Price != nil {
		set("price", u.Price.AsFloat())
	}
	if u.Fees != nil {
		set("fees", u.Fees.AsFloat())
	}
	if u.VAT != nil {
		set("vat", u.VAT.AsFloat())
	}
	if u.CostValue != nil {
		set("cost_value", u.CostValue.AsFloat())
	}
	if u.ProfitLoss != nil {
		set("profit_loss", u.ProfitLoss.AsFloat())
	}
	if u.PositionOpen != nil {
		open := 0
		if *u.PositionOpen {
			open = 1
		}
		set("is_position_open", open)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, id)
	res, err := s.db.Exec("UPDATE TRADES SET "+strings.Join(sets, ", ")+" WHERE ID = ?", args...)
	if err != nil {
		return 0, fmt.Errorf("could not update trade %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count updated rows: %w", err)
	}
	if n == 0 {
		s.log.Warn().Int64("id", id).Msg("update matched no trade")
	}
	return n, nil
}

// DeleteTrade removes the trade with the given id, returning the affected
// count (0 or 1).
func (s *Store) DeleteTrade(id int64) (int64, error) {
	res, err := s.db.Exec("DELETE FROM TRADES WHERE ID = ?", id)
	if err != nil {
		return 0, fmt.Errorf("could not delete trade %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted rows: %w", err)
	}
	return n, nil
}

// SetPositionOpen flips the open flag of a buy lot.
func (s *Store) SetPositionOpen(id int64, open bool) (int64, error) {
	return s.UpdateTrade(id, TradeUpdate{PositionOpen: &open})
}

// LastBuyPrice returns a symbol's fallback price: its highest buy price.
// Note this orders by price, not by date, and so conflates "highest" with
// "latest".
func (s *Store) LastBuyPrice(symbol string) (Money, bool, error) {
	row := s.db.QueryRow("SELECT price FROM TRADES WHERE symbol = ? AND opr = 'buy' ORDER BY price DESC LIMIT 1", symbol)
	var price float64
	err := row.Scan(&price)
	if err == sql.ErrNoRows {
		return Money{}, false, nil
	}
	if err != nil {
		return Money{}, false, fmt.Errorf("could not read last buy price for %q: %w", symbol, err)
	}
	return M(price, USD), true, nil
}
