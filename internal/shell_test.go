package internal

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var shellNow = time.Date(2024, time.January, 6, 10, 30, 0, 0, time.UTC)

// runShell drives a shell over a fresh ledger seeded with seed and returns its output
func runShell(t *testing.T, seed []Record, input string) (*Store, string) {
	t.Helper()

	store, err := LoadStore(filepath.Join(t.TempDir(), "transactions.csv"), zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	for _, r := range seed {
		if err := store.Append(r); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}

	var out bytes.Buffer
	shell := NewShell(store, NewDefaultConfig(), strings.NewReader(input), &out, ShellOptions{
		Currency: GetCurrency("USD"),
		Now:      func() time.Time { return shellNow },
		Logger:   zerolog.Nop(),
	})
	if err := shell.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return store, out.String()
}

func TestShell_AddDepositAndPayment(t *testing.T) {
	input := strings.Join([]string{
		"d", "Paycheck", "Employer", "500", "2024-01-05 09:00:00",
		"P", "Groceries", "Market", "75.50", "",
		"X",
	}, "\n") + "\n"

	store, out := runShell(t, nil, input)

	records := store.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d\n%s", len(records), out)
	}
	want := Record{Date: date("2024-01-05"), Time: clock("09:00:00"), Description: "Paycheck", Vendor: "Employer", Amount: 500}
	if records[0] != want {
		t.Errorf("deposit = %+v, want %+v", records[0], want)
	}
	if records[1].Amount != -75.5 {
		t.Errorf("payment amount = %v, want -75.5", records[1].Amount)
	}
	if records[1].Date != date("2024-01-06") || records[1].Time != clock("10:30:00") {
		t.Errorf("payment should be stamped with now, got %v %v", records[1].Date, records[1].Time)
	}
	if !strings.Contains(out, "Recorded deposit of $500.00") || !strings.Contains(out, "Recorded payment of -$75.50") {
		t.Errorf("missing confirmations in output:\n%s", out)
	}
}

func TestShell_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOut string
	}{
		{"non-positive amount", "D\nGift\nAunt\n-5\nX\n", "Amount must be a positive number"},
		{"zero amount", "P\nGift\nAunt\n0\nX\n", "Amount must be a positive number"},
		{"not a number", "D\nGift\nAunt\nlots\nX\n", "Amount must be a positive number"},
		{"rounds to zero", "D\nGift\nAunt\n0.001\nX\n", "Amount must be a positive number"},
		{"too large", "D\nGift\nAunt\n1e400\nX\n", "Amount must be a positive number"},
		{"bad date", "D\nGift\nAunt\n5\n2024-02-30 10:00:00\nX\n", "Invalid date and time"},
		{"separator in text", "D\nGift|card\nAunt\n5\n\nX\n", "Error saving deposit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, out := runShell(t, nil, tt.input)
			if store.Len() != 0 {
				t.Errorf("expected no records, got %d", store.Len())
			}
			if !strings.Contains(out, tt.wantOut) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.wantOut, out)
			}
		})
	}
}

func TestShell_LedgerViews(t *testing.T) {
	seed := []Record{
		rec("2024-01-05", "Paycheck", "Employer", 500),
		rec("2024-01-06", "Groceries", "Market", -75.5),
	}

	tests := []struct {
		name      string
		input     string
		wantIn    []string
		wantNotIn []string
	}{
		{"all", "L\nA\nH\nX\n", []string{"Paycheck", "Groceries"}, nil},
		{"deposits", "L\nd\nH\nX\n", []string{"Paycheck"}, []string{"Groceries"}},
		{"payments", "L\nP\nH\nX\n", []string{"Groceries"}, []string{"Paycheck"}},
		{"vendor report", "L\nR\n5\nmarket\n0\nH\nX\n", []string{"Groceries"}, []string{"Paycheck"}},
		{"month to date", "L\nR\n1\n0\nH\nX\n", []string{"Paycheck", "Groceries"}, nil},
		{"previous year", "L\nR\n4\n0\nH\nX\n", []string{"No transactions found."}, []string{"Paycheck"}},
		{"custom search", "L\nR\n6\n2024-01-01\n\n\nemp\n\n0\nH\nX\n", []string{"Paycheck"}, []string{"Groceries"}},
		{"custom search exact amount", "L\nR\n6\n\n\n\n\n-75.50\n0\nH\nX\n", []string{"Groceries"}, []string{"Paycheck"}},
		{"custom search without criteria", "L\nR\n6\n\n\n\n\n\n0\nH\nX\n", []string{"All transactions", "Paycheck", "Groceries"}, nil},
		{"custom search bad date", "L\nR\n6\nyesterday\n0\nH\nX\n", []string{"Invalid date"}, []string{"Paycheck"}},
		{"custom search bad amount", "L\nR\n6\n\n\n\n\nten\n0\nH\nX\n", []string{"Invalid amount"}, []string{"Paycheck"}},
		{"invalid option", "Q\nX\n", []string{"Invalid option"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out := runShell(t, seed, tt.input)
			for _, want := range tt.wantIn {
				if !strings.Contains(out, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.wantNotIn {
				if strings.Contains(out, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestShell_ListsNewestFirst(t *testing.T) {
	seed := []Record{
		rec("2024-01-05", "Older", "A", 1),
		rec("2024-01-06", "Newer", "B", 2),
	}
	_, out := runShell(t, seed, "L\nA\nH\nX\n")

	if strings.Index(out, "Newer") > strings.Index(out, "Older") {
		t.Errorf("expected newest record first:\n%s", out)
	}
}

func TestShell_EndOfInputExits(t *testing.T) {
	for _, input := range []string{"", "L\n", "L\nR\n", "D\nPaycheck\n"} {
		store, _ := runShell(t, nil, input)
		if store.Len() != 0 {
			t.Errorf("input %q: expected no records, got %d", input, store.Len())
		}
	}
}
