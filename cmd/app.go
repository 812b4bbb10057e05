// Package cmd implements the CLI application to manage the trading ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amsaid/traderbook"
	"github.com/amsaid/traderbook/pkg/logger"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Commands is the list of subcommands a main package registers.
// Order is the order of the help listing.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&buyCmd{},
	&sellCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&fundsCmd{},
	&tradesCmd{},
	&tradeCmd{},
	&positionCmd{},
	&updateCmd{},
	&deleteCmd{},
	&planCmd{},
	&exitPriceCmd{},
	&calcCmd{},
	&convertCmd{},
	&pricesCmd{},
	&importCmd{},
	&accountsCmd{},
	&resetCmd{},
	&checkCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var accountFlag = flag.String("account", "", "Account to operate on. Defaults to the settings' default account.")

// getEnv reads an environment variable with a fallback.
func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// DataDir is the directory holding the settings file and the per-account
// ledger databases. Resolved from TRADERBOOK_DIR (a .env file is honored),
// defaulting to ~/.traderbook.
func DataDir() string {
	_ = godotenv.Load() // a missing .env is fine
	if dir := getEnv("TRADERBOOK_DIR", ""); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".traderbook"
	}
	return filepath.Join(home, ".traderbook")
}

// Logger builds the application logger, leveled by TRADERBOOK_LOG.
// The default level is warn so command output stays clean.
func Logger() zerolog.Logger {
	return logger.New(logger.Config{
		Level:  getEnv("TRADERBOOK_LOG", "warn"),
		Pretty: true,
	})
}

func settingsPath() string { return filepath.Join(DataDir(), "settings.json") }

// LoadSettings reads the settings file from the data directory, creating
// default settings on first run.
func LoadSettings() (*traderbook.Settings, error) {
	return traderbook.LoadSettings(settingsPath())
}

// SaveSettings writes the settings file back to the data directory.
func SaveSettings(s *traderbook.Settings) error {
	return s.Save(settingsPath())
}

// CurrentAccount resolves the account to operate on: the -account flag when
// given, the settings' default otherwise.
func CurrentAccount(s *traderbook.Settings) (traderbook.Account, error) {
	name := *accountFlag
	if name == "" {
		return s.Account(), nil
	}
	for _, a := range s.Accounts {
		if a.Name == name {
			return a, nil
		}
	}
	return traderbook.Account{}, fmt.Errorf("unknown account %q", name)
}

// OpenStore opens the ledger store of an account. Callers close it when the
// operation completes; the store is never held across operations.
func OpenStore(a traderbook.Account) (*traderbook.Store, error) {
	return traderbook.OpenStore(DataDir(), a.Name, a.CurrencyLabel, Logger())
}

// openCurrent is the common preamble: settings, account, store.
func openCurrent() (*traderbook.Settings, traderbook.Account, *traderbook.Store, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, traderbook.Account{}, nil, err
	}
	account, err := CurrentAccount(settings)
	if err != nil {
		return nil, traderbook.Account{}, nil, err
	}
	store, err := OpenStore(account)
	if err != nil {
		return nil, traderbook.Account{}, nil, err
	}
	return settings, account, store, nil
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usageError prints a usage problem and returns the usage exit status.
func usageError(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return subcommands.ExitUsageError
}
