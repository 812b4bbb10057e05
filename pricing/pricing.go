// Package pricing fetches current prices for ticker symbols.
//
// The only contract the ledger needs is Source: symbol in, price out.
// Failures are per symbol; FetchAll isolates them so one bad symbol never
// aborts the batch.
package pricing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"
)

// Source maps a ticker symbol to its current price.
type Source interface {
	Quote(symbol string) (float64, error)
}

// quotePath extracts the last close from the chart JSON payload.
const quotePath = "$.chart.result[0].meta.regularMarketPrice"

// Client fetches quotes from an HTTP chart endpoint returning JSON.
type Client struct {
	http *http.Client
	base string // endpoint prefix, the symbol is appended
	log  zerolog.Logger
}

// DefaultBaseURL serves the public chart payload quotePath is written for.
const DefaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// NewClient builds a quote client for the given endpoint. An empty base
// selects DefaultBaseURL.
func NewClient(base string, log zerolog.Logger) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		http: new(http.Client),
		base: base,
		log:  log.With().Str("client", "pricing").Logger(),
	}
}

// Quote fetches the current price of one symbol. A leading "$" on the
// symbol is cosmetic and stripped before the call.
func (c *Client) Quote(symbol string) (float64, error) {
	ticker := strings.TrimPrefix(symbol, "$")
	if ticker == "" {
		return 0, fmt.Errorf("empty symbol")
	}
	var jobj any
	addr := c.base + url.PathEscape(ticker)
	if err := jwget(c.http, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}
	jval, err := jsonpath.Get(quotePath, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", symbol, quotePath, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: %q not a float: %v", symbol, quotePath, jval)
	}
	if val == 0 {
		return 0, fmt.Errorf("empty quote for %q", symbol)
	}
	c.log.Debug().Str("symbol", ticker).Float64("price", val).Msg("quote fetched")
	return val, nil
}

// FetchAll quotes every symbol through the source, isolating failures: one
// bad symbol never aborts the batch. It returns the prices that succeeded
// and, per failing symbol, the error.
func FetchAll(src Source, symbols []string) (map[string]float64, map[string]error) {
	prices := make(map[string]float64, len(symbols))
	errs := make(map[string]error)
	for _, symbol := range symbols {
		price, err := src.Quote(symbol)
		if err != nil {
			errs[symbol] = err
			continue
		}
		prices[symbol] = price
	}
	return prices, errs
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
