package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/finledger/internal"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

type Params struct {
	File       string `descr:"Path to the ledger file (default: transactions.csv)" env:"FINLEDGER_FILE" optional:"true"`
	Config     string `descr:"Path to config file (default: ~/.finledger/config.yaml)" optional:"true"`
	Currency   string `descr:"Currency code for display (e.g. USD, SEK); detected from the system locale if omitted" env:"FINLEDGER_CURRENCY" optional:"true"`
	Report     string `descr:"Print a report and exit: all, deposits, payments, month-to-date, previous-month, year-to-date, previous-year" optional:"true"`
	Vendor     string `descr:"Print the records of one vendor and exit" optional:"true"`
	Output     string `descr:"Output format for reports" alts:"table,json" default:"table"`
	Import     string `descr:"Append records from a file and exit (format:path, formats: simple-json, ledger-xlsx, handelsbanken-xlsx)" optional:"true"`
	Export     string `descr:"Write the whole ledger to an Excel workbook and exit" optional:"true"`
	InitConfig bool   `descr:"Write the effective ledger file and currency to the config file and exit" optional:"true"`
	Debug      bool   `descr:"Enable debug logging" optional:"true"`
}

func main() {
	// .env only seeds variables that are not already set
	_ = godotenv.Load()

	boa.NewCmdT[Params]("finledger").
		WithShort("Personal finance ledger").
		WithLong("Records deposits and payments to a pipe-delimited ledger file and lists, filters and reports on them. " +
			"Without report, import or export flags an interactive menu is started.").
		WithRunFunc(func(params *Params) {
			if err := run(params, os.Stdin, os.Stdout, os.Stderr, time.Now); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params, stdin io.Reader, stdout, stderr io.Writer, now func() time.Time) error {
	log := internal.NewLogger(stderr, params.Debug)

	cfg, err := internal.LoadConfigOrDefault(params.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := params.File
	if path == "" {
		path = cfg.LedgerFile
	}
	if path == "" {
		path = internal.DefaultLedgerFile
	}

	currencyCode := params.Currency
	if currencyCode == "" {
		currencyCode = cfg.Currency
	}
	currency := internal.ResolveCurrency(currencyCode, cfg.Locale)
	log.Debug().Str("currency", currency.Code).Str("ledger", path).Msg("starting")

	if params.InitConfig {
		return writeConfig(params.Config, cfg, path, currency.Code, stdout)
	}

	store, err := internal.LoadStore(path, log)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	switch {
	case params.Import != "":
		n, err := internal.ImportFile(store, params.Import)
		if err != nil {
			return fmt.Errorf("importing %s (%d record(s) appended before the failure): %w", params.Import, n, err)
		}
		fmt.Fprintf(stdout, "Imported %d record(s) into %s\n", n, store.Path())
		return nil

	case params.Export != "":
		if err := internal.ExportXLSX(params.Export, store.Records()); err != nil {
			return fmt.Errorf("exporting ledger: %w", err)
		}
		fmt.Fprintf(stdout, "Exported %d record(s) to %s\n", store.Len(), params.Export)
		return nil

	case params.Report != "" || params.Vendor != "":
		return printReport(params, cfg, store.Records(), currency, stdout, now())

	default:
		shell := internal.NewShell(store, cfg, stdin, stdout, internal.ShellOptions{
			Currency: currency,
			Color:    isTerminal(stdout),
			Now:      now,
			Logger:   log,
		})
		return shell.Run()
	}
}

func printReport(params *Params, cfg *internal.Config, records []internal.Record, currency internal.Currency, w io.Writer, today time.Time) error {
	var selected []internal.Record
	var title string
	if params.Vendor != "" {
		selected = internal.ByVendor(records, params.Vendor)
		title = fmt.Sprintf("Vendor %q", strings.TrimSpace(params.Vendor))
	} else {
		var err error
		selected, title, err = internal.SelectReport(params.Report, records, today)
		if err != nil {
			return err
		}
	}

	opts := internal.OutputOptions{Title: title, Currency: currency}
	selected = cfg.Order(selected)
	if params.Output == "json" {
		return internal.PrintRecordsJSON(w, selected, opts)
	}
	internal.PrintRecordsTable(w, selected, opts)
	return nil
}

func writeConfig(configPath string, cfg *internal.Config, ledgerPath, currencyCode string, w io.Writer) error {
	if configPath == "" {
		configPath = internal.DefaultConfigPath()
	}
	if configPath == "" {
		return fmt.Errorf("no config path given and no home directory to default to")
	}
	cfg.LedgerFile = ledgerPath
	cfg.Currency = currencyCode
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote config to %s\n", configPath)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
