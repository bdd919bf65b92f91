package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrintRecordsTable(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{
		rec("2024-01-05", "Paycheck", "Employer", 500),
		rec("2024-01-06", "Groceries", "Market", -75.5),
	}

	PrintRecordsTable(&buf, records, OutputOptions{Title: "All transactions", Currency: GetCurrency("USD")})
	out := buf.String()

	for _, want := range []string{
		"All transactions", "Date", "Vendor",
		"2024-01-05", "Paycheck", "Employer", "$500.00",
		"Groceries", "-$75.50",
		"Balance", "$424.50",
		"2 transaction(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("expected no color codes when Color is false")
	}
}

func TestPrintRecordsTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintRecordsTable(&buf, nil, OutputOptions{Title: "Deposits", Currency: GetCurrency("USD")})

	if !strings.Contains(buf.String(), "No transactions found.") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestPrintRecordsJSON(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{
		rec("2024-01-05", "Paycheck", "Employer", 500),
		rec("2024-01-06", "Groceries", "Market", -75.5),
	}

	if err := PrintRecordsJSON(&buf, records, OutputOptions{Title: "Ledger", Currency: GetCurrency("USD")}); err != nil {
		t.Fatalf("PrintRecordsJSON: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Summary.Count != 2 || out.Summary.Deposits != 500 || out.Summary.Payments != -75.5 || out.Summary.Balance != 424.5 {
		t.Errorf("unexpected summary: %+v", out.Summary)
	}
	if out.Summary.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", out.Summary.Currency)
	}
	if out.Records[1].Date != "2024-01-06" || out.Records[1].Time != "12:00:00" || out.Records[1].Vendor != "Market" {
		t.Errorf("unexpected record: %+v", out.Records[1])
	}
}

func TestPrintRecordsJSON_EmptyHasRecordsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintRecordsJSON(&buf, nil, OutputOptions{Currency: GetCurrency("USD")}); err != nil {
		t.Fatalf("PrintRecordsJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"records": []`) {
		t.Errorf("expected empty records array, got %s", buf.String())
	}
}
