package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LedgerSheet is the sheet name written by ExportXLSX and read by ParseLedgerXLSX
const LedgerSheet = "Ledger"

var ledgerHeader = []string{"Date", "Time", "Description", "Vendor", "Amount"}

// ExportXLSX writes records to a new workbook with a single Ledger sheet
func ExportXLSX(path string, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), LedgerSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]interface{}, len(ledgerHeader))
	for i, h := range ledgerHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(LedgerSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.Date.Format(DateFormat),
			r.Time.Format(TimeFormat),
			r.Description,
			r.Vendor,
			r.Amount,
		}
		if err := f.SetSheetRow(LedgerSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return fmt.Errorf("creating amount style: %w", err)
	}
	if len(records) > 0 {
		last := fmt.Sprintf("E%d", len(records)+1)
		if err := f.SetCellStyle(LedgerSheet, "E2", last, amountStyle); err != nil {
			return fmt.Errorf("styling amounts: %w", err)
		}
	}
	if err := f.SetColWidth(LedgerSheet, "A", "B", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(LedgerSheet, "C", "D", 28); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// ParseLedgerXLSX reads a workbook in the layout ExportXLSX writes:
// a header row Date, Time, Description, Vendor, Amount on the first sheet.
func ParseLedgerXLSX(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := map[string]int{}
	for j, cell := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(cell))] = j
	}
	for _, h := range ledgerHeader {
		if _, ok := cols[strings.ToLower(h)]; !ok {
			return nil, fmt.Errorf("could not find required column %q", h)
		}
	}
	cell := func(row []string, name string) string {
		j := cols[name]
		if j >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[j])
	}

	var records []Record
	for i, row := range rows[1:] {
		dateStr := cell(row, "date")
		if dateStr == "" {
			continue
		}
		date, err := ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		tod := TimeOfDay(date)
		if s := cell(row, "time"); s != "" {
			if tod, err = ParseTime(s); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+2, err)
			}
		}
		amount, err := strconv.ParseFloat(cell(row, "amount"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount: %w", i+2, err)
		}
		records = append(records, Record{
			Date:        date,
			Time:        tod,
			Description: cell(row, "description"),
			Vendor:      cell(row, "vendor"),
			Amount:      amount,
		})
	}
	return records, nil
}

// ParseHandelsbankenXLSX reads transactions from a Handelsbanken Excel export.
// The header row holds Reskontradatum, Text and Belopp; the bank text is used
// both as vendor and description since the export has no separate payee column.
func ParseHandelsbankenXLSX(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	dateCol, textCol, amountCol := -1, -1, -1
	dataStartRow := -1
	for i, row := range rows {
		for j, cell := range row {
			switch strings.TrimSpace(cell) {
			case "Reskontradatum":
				dateCol = j
				dataStartRow = i + 1
			case "Text":
				textCol = j
			case "Belopp":
				amountCol = j
			}
		}
		if dateCol >= 0 && textCol >= 0 && amountCol >= 0 {
			break
		}
	}
	if dateCol < 0 || textCol < 0 || amountCol < 0 {
		return nil, fmt.Errorf("could not find required columns (Reskontradatum, Text, Belopp)")
	}

	var records []Record
	for i := dataStartRow; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= max(dateCol, textCol, amountCol) {
			continue
		}

		dateStr := strings.TrimSpace(row[dateCol])
		text := strings.TrimSpace(row[textCol])
		amountStr := strings.TrimSpace(row[amountCol])
		if dateStr == "" || text == "" || amountStr == "" {
			continue
		}

		date, err := ParseDate(dateStr)
		if err != nil {
			continue
		}
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			continue
		}

		// pending transactions carry a "Prel " prefix
		text = strings.TrimPrefix(text, "Prel ")
		text = strings.ReplaceAll(text, FieldSeparator, "/")

		records = append(records, Record{
			Date:        date,
			Time:        TimeOfDay(date),
			Description: text,
			Vendor:      text,
			Amount:      amount,
		})
	}
	return records, nil
}

func init() {
	RegisterParser("ledger-xlsx", ParserFunc(ParseLedgerXLSX))
	RegisterParser("handelsbanken-xlsx", ParserFunc(ParseHandelsbankenXLSX))
}
