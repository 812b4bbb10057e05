// Package traderbook implements a single-user trading ledger: buy/sell
// trades and fund deposits/withdrawals recorded per account in a local
// SQLite file, folded into portfolio summaries (net shares, cost basis,
// realized and unrealized profit, cash, net worth) by pure aggregation
// functions, with small planning and percentage calculators on the side.
//
// The package is split in three facets: the Store persists records, the
// aggregation functions fold full snapshots into plain structs, and the
// renderer package turns those structs into markdown tables. Computation
// never formats and formatting never computes.
package traderbook
