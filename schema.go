package traderbook

// The two-table schema of an account ledger. One database file per account;
// dates are stored as DD/MM/YYYY text so month/year filters are substring
// matches on fixed positions.

const createFundsTable = `
CREATE TABLE IF NOT EXISTS FUNDS (
	ID INTEGER PRIMARY KEY AUTOINCREMENT,
	opr TEXT NOT NULL,
	fund_date TEXT NOT NULL,
	source TEXT NOT NULL DEFAULT '',
	amount_secondary REAL NOT NULL DEFAULT 0,
	amount_usd REAL NOT NULL DEFAULT 0,
	rate_exchange REAL NOT NULL DEFAULT 0
)`

const createTradesTable = `
CREATE TABLE IF NOT EXISTS TRADES (
	ID INTEGER PRIMARY KEY AUTOINCREMENT,
	trade_date TEXT NOT NULL,
	symbol TEXT NOT NULL,
	opr TEXT NOT NULL,
	filled_qty INTEGER NOT NULL DEFAULT 0,
	price REAL NOT NULL DEFAULT 0,
	fees REAL NOT NULL DEFAULT 0,
	vat REAL NOT NULL DEFAULT 0,
	cost_value REAL NOT NULL DEFAULT 0,
	profit_loss REAL NOT NULL DEFAULT 0,
	is_position_open INTEGER NOT NULL DEFAULT 1,
	closed_position_price REAL NOT NULL DEFAULT 0,
	closed_position_amount REAL NOT NULL DEFAULT 0
)`

var schemaStatements = []string{createFundsTable, createTradesTable}

var dropStatements = []string{`DROP TABLE IF EXISTS FUNDS`, `DROP TABLE IF EXISTS TRADES`}
