package traderbook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Account is one trading account: its own ledger file, reporting currency
// and trading costs.
type Account struct {
	Name          string  `json:"name"`
	CurrencyLabel string  `json:"exchange_rate_label"` // reporting currency code, e.g. "SAR"
	ExchangeRate  float64 `json:"exchange_rate"`       // current USD to reporting-currency rate
	TrackedSymbol string  `json:"selected_ticker"`     // default symbol of interest
	PerTradeFee   float64 `json:"fees_usd"`            // broker fee per trade, in USD
}

// DefaultAccount is the account created when no settings exist yet.
func DefaultAccount(name string) Account {
	return Account{
		Name:          name,
		CurrencyLabel: "SAR",
		ExchangeRate:  3.7487,
		TrackedSymbol: "$TSLA",
		PerTradeFee:   2.08,
	}
}

// Validate checks the account invariants.
func (a Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("account name is required")
	}
	if a.ExchangeRate < 0 {
		return fmt.Errorf("exchange rate cannot be negative, got %v", a.ExchangeRate)
	}
	if a.PerTradeFee < 0 {
		return fmt.Errorf("per-trade fee cannot be negative, got %v", a.PerTradeFee)
	}
	return nil
}

// Settings is the collection of accounts with one designated default.
type Settings struct {
	DefaultAccount string    `json:"default_account"`
	Accounts       []Account `json:"accounts"`
}

const defaultAccountName = "traders"

// NewSettings returns settings with a single default account.
func NewSettings() *Settings {
	return &Settings{
		DefaultAccount: defaultAccountName,
		Accounts:       []Account{DefaultAccount(defaultAccountName)},
	}
}

// Has reports whether an account with the given name exists.
func (s *Settings) Has(name string) bool {
	for _, a := range s.Accounts {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Account returns the default account.
func (s *Settings) Account() Account {
	for _, a := range s.Accounts {
		if a.Name == s.DefaultAccount {
			return a
		}
	}
	return DefaultAccount(s.DefaultAccount)
}

// Add appends a new account. The name must be unique within the collection.
func (s *Settings) Add(a Account) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if s.Has(a.Name) {
		return fmt.Errorf("account %q already exists", a.Name)
	}
	s.Accounts = append(s.Accounts, a)
	return nil
}

// repair restores the structural invariants of a loaded settings file: there
// is always at least one account and the default always exists.
func (s *Settings) repair() {
	if s.DefaultAccount == "" {
		s.DefaultAccount = defaultAccountName
	}
	if len(s.Accounts) == 0 {
		s.Accounts = []Account{DefaultAccount(defaultAccountName)}
	}
	if !s.Has(s.DefaultAccount) {
		s.Accounts = append(s.Accounts, DefaultAccount(s.DefaultAccount))
	}
}

// LoadSettings reads the settings file. A missing file yields fresh default
// settings; a corrupt file is an error so the caller can decide what to do
// with the broken file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read settings %q: %w", path, err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("settings file %q is corrupted: %w", path, err)
	}
	s.repair()
	return &s, nil
}

// Save writes the settings file, creating its directory if needed.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write settings %q: %w", path, err)
	}
	return nil
}
