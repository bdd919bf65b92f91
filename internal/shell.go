package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ShellOptions configures an interactive shell
type ShellOptions struct {
	Currency Currency
	Color    bool
	Now      func() time.Time // defaults to time.Now
	Logger   zerolog.Logger
}

// Shell is the interactive menu front end over a Store
type Shell struct {
	store *Store
	cfg   *Config
	in    *bufio.Scanner
	out   io.Writer
	opts  ShellOptions
}

func NewShell(store *Store, cfg *Config, in io.Reader, out io.Writer, opts ShellOptions) *Shell {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Shell{
		store: store,
		cfg:   cfg,
		in:    bufio.NewScanner(in),
		out:   out,
		opts:  opts,
	}
}

// Run shows the home menu until the user exits or input ends
func (s *Shell) Run() error {
	err := s.homeMenu()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Shell) homeMenu() error {
	for {
		fmt.Fprint(s.out, "\nHome\n"+
			"  D) Add Deposit\n"+
			"  P) Make Payment (Debit)\n"+
			"  L) Ledger\n"+
			"  X) Exit\n")
		choice, err := s.prompt("> ")
		if err != nil {
			return err
		}
		switch strings.ToUpper(choice) {
		case "D":
			err = s.addRecord(false)
		case "P":
			err = s.addRecord(true)
		case "L":
			err = s.ledgerMenu()
		case "X":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) ledgerMenu() error {
	for {
		fmt.Fprint(s.out, "\nLedger\n"+
			"  A) All\n"+
			"  D) Deposits\n"+
			"  P) Payments\n"+
			"  R) Reports\n"+
			"  H) Home\n")
		choice, err := s.prompt("> ")
		if err != nil {
			return err
		}
		records := s.store.Records()
		switch strings.ToUpper(choice) {
		case "A":
			s.display("All transactions", records)
		case "D":
			s.display("Deposits", Deposits(records))
		case "P":
			s.display("Payments", Payments(records))
		case "R":
			if err := s.reportsMenu(); err != nil {
				return err
			}
		case "H":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option")
		}
	}
}

func (s *Shell) reportsMenu() error {
	periods := map[string]string{
		"1": ReportMonthToDate,
		"2": ReportPreviousMonth,
		"3": ReportYearToDate,
		"4": ReportPreviousYear,
	}
	for {
		fmt.Fprint(s.out, "\nReports\n"+
			"  1) Month To Date\n"+
			"  2) Previous Month\n"+
			"  3) Year To Date\n"+
			"  4) Previous Year\n"+
			"  5) Search by Vendor\n"+
			"  6) Custom Search\n"+
			"  0) Back\n")
		choice, err := s.prompt("> ")
		if err != nil {
			return err
		}
		records := s.store.Records()

		if name, ok := periods[choice]; ok {
			selected, title, err := SelectReport(name, records, s.opts.Now())
			if err != nil {
				return err
			}
			s.display(title, selected)
			continue
		}

		switch choice {
		case "5":
			vendor, err := s.prompt("Vendor: ")
			if err != nil {
				return err
			}
			s.display(fmt.Sprintf("Vendor %q", strings.TrimSpace(vendor)), ByVendor(records, vendor))
		case "6":
			if err := s.customSearch(records); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option")
		}
	}
}

// addRecord prompts for a deposit or payment. Invalid input aborts the entry
// without touching the store; only read errors are returned.
func (s *Shell) addRecord(payment bool) error {
	kind := "deposit"
	if payment {
		kind = "payment"
	}

	description, err := s.prompt("Enter description: ")
	if err != nil {
		return err
	}
	vendor, err := s.prompt("Enter vendor: ")
	if err != nil {
		return err
	}
	amountStr, err := s.prompt("Enter amount (positive number): ")
	if err != nil {
		return err
	}
	magnitude, err := ParseMagnitude(amountStr)
	if err != nil {
		fmt.Fprintf(s.out, "Amount must be a positive number: %v\n", err)
		return nil
	}
	whenStr, err := s.prompt("Enter date and time (" + DateTimeFormatHint + ", blank for now): ")
	if err != nil {
		return err
	}
	at := s.opts.Now()
	if whenStr != "" {
		at, err = time.Parse(DateTimeFormat, whenStr)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid date and time %q, expected %s\n", whenStr, DateTimeFormatHint)
			return nil
		}
	}

	r := NewRecord(at, description, vendor, Signed(magnitude, payment))
	if err := s.store.Append(r); err != nil {
		s.opts.Logger.Error().Err(err).Str("kind", kind).Msg("could not record entry")
		fmt.Fprintf(s.out, "Error saving %s: %v\n", kind, err)
		return nil
	}
	fmt.Fprintf(s.out, "Recorded %s of %s.\n", kind, s.opts.Currency.Format(r.Amount))
	return nil
}

// DateTimeFormatHint is the user facing spelling of DateTimeFormat
const DateTimeFormatHint = "yyyy-MM-dd HH:mm:ss"

func (s *Shell) customSearch(records []Record) error {
	var q Query
	var ok bool
	var err error

	if q.Start, ok, err = s.promptDate("Start date (yyyy-MM-dd, blank for none): "); err != nil || !ok {
		return err
	}
	if q.End, ok, err = s.promptDate("End date (yyyy-MM-dd, blank for none): "); err != nil || !ok {
		return err
	}
	if q.Description, err = s.prompt("Description contains (blank for any): "); err != nil {
		return err
	}
	if q.Vendor, err = s.prompt("Vendor contains (blank for any): "); err != nil {
		return err
	}
	amountStr, err := s.prompt("Exact amount, negative for payments (blank for any): ")
	if err != nil {
		return err
	}
	if amountStr != "" {
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid amount %q\n", amountStr)
			return nil
		}
		q.Amount = &amount
	}

	title := "Custom search"
	if q.IsEmpty() {
		title = "All transactions"
	}
	s.display(title, ByQuery(records, q))
	return nil
}

// promptDate reads an optional date. ok is false when the input was not a valid
// date, in which case the user has already been told.
func (s *Shell) promptDate(label string) (time.Time, bool, error) {
	str, err := s.prompt(label)
	if err != nil {
		return time.Time{}, false, err
	}
	if str == "" {
		return time.Time{}, true, nil
	}
	d, err := ParseDate(str)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid date %q, expected yyyy-MM-dd\n", str)
		return time.Time{}, false, nil
	}
	return d, true, nil
}

func (s *Shell) display(title string, records []Record) {
	PrintRecordsTable(s.out, s.cfg.Order(records), OutputOptions{
		Title:    title,
		Currency: s.opts.Currency,
		Color:    s.opts.Color,
	})
}

// prompt prints label and returns the trimmed next input line, or io.EOF
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}
