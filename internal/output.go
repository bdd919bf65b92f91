package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// OutputOptions controls how records are displayed
type OutputOptions struct {
	Title    string
	Currency Currency
	Color    bool
}

// JSONOutput is the root JSON output object
type JSONOutput struct {
	Title   string       `json:"title,omitempty"`
	Records []JSONRecord `json:"records"`
	Summary JSONSummary  `json:"summary"`
}

// JSONSummary contains aggregate statistics
type JSONSummary struct {
	Count    int     `json:"count"`
	Deposits float64 `json:"deposits"`
	Payments float64 `json:"payments"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// JSONRecord is the JSON output format for a record
type JSONRecord struct {
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Description string  `json:"description"`
	Vendor      string  `json:"vendor"`
	Amount      float64 `json:"amount"`
}

// PrintRecordsJSON outputs records and their totals in JSON format
func PrintRecordsJSON(w io.Writer, records []Record, opts OutputOptions) error {
	out := JSONOutput{
		Title:   opts.Title,
		Records: make([]JSONRecord, 0, len(records)),
	}
	for _, r := range records {
		out.Records = append(out.Records, JSONRecord{
			Date:        r.Date.Format(DateFormat),
			Time:        r.Time.Format(TimeFormat),
			Description: r.Description,
			Vendor:      r.Vendor,
			Amount:      r.Amount,
		})
	}

	sum := Summarize(records)
	out.Summary = JSONSummary{
		Count:    sum.Count,
		Deposits: sum.Deposits,
		Payments: sum.Payments,
		Balance:  sum.Balance,
		Currency: opts.Currency.Code,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// PrintRecordsTable outputs records as a formatted table with a totals footer
func PrintRecordsTable(w io.Writer, records []Record, opts OutputOptions) {
	if opts.Title != "" {
		fmt.Fprintf(w, "%s\n", opts.Title)
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "No transactions found.")
		return
	}

	colorize := func(c text.Colors, s string) string {
		if !opts.Color {
			return s
		}
		return c.Sprint(s)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Time", "Description", "Vendor", "Amount"})

	for _, r := range records {
		amount := opts.Currency.Format(r.Amount)
		switch {
		case r.IsDeposit():
			amount = colorize(text.Colors{text.FgGreen}, amount)
		case r.IsPayment():
			amount = colorize(text.Colors{text.FgRed}, amount)
		}
		t.AppendRow(table.Row{
			r.Date.Format(DateFormat),
			r.Time.Format(TimeFormat),
			r.Description,
			r.Vendor,
			amount,
		})
	}

	sum := Summarize(records)
	t.AppendSeparator()
	t.AppendFooter(table.Row{"", "", "", "Deposits", opts.Currency.Format(sum.Deposits)})
	t.AppendFooter(table.Row{"", "", "", "Payments", opts.Currency.Format(sum.Payments)})
	t.AppendFooter(table.Row{"", "", "", colorize(text.Colors{text.Bold}, "Balance"),
		colorize(text.Colors{text.Bold}, opts.Currency.Format(sum.Balance))})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	t.Render()
	fmt.Fprintf(w, "%d transaction(s)\n", sum.Count)
}
