package internal

import (
	"fmt"
	"time"
)

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.Start.Format(DateFormat), r.End.Format(DateFormat))
}

// Filter returns the records dated inside the range
func (r DateRange) Filter(records []Record) []Record {
	return ByDateRange(records, r.Start, r.End)
}

// MonthToDate spans from the first day of today's month to today
func MonthToDate(today time.Time) DateRange {
	today = DateOf(today)
	return DateRange{
		Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
		End:   today,
	}
}

// PreviousMonth spans the whole calendar month before today's month
func PreviousMonth(today time.Time) DateRange {
	today = DateOf(today)
	firstOfThisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{
		Start: firstOfThisMonth.AddDate(0, -1, 0),
		End:   firstOfThisMonth.AddDate(0, 0, -1),
	}
}

// YearToDate spans from January 1st of today's year to today
func YearToDate(today time.Time) DateRange {
	today = DateOf(today)
	return DateRange{
		Start: time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   today,
	}
}

// PreviousYear spans January 1st to December 31st of the year before today's
func PreviousYear(today time.Time) DateRange {
	year := today.Year() - 1
	return DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Period names accepted by the one-shot report flag
const (
	ReportAll           = "all"
	ReportDeposits      = "deposits"
	ReportPayments      = "payments"
	ReportMonthToDate   = "month-to-date"
	ReportPreviousMonth = "previous-month"
	ReportYearToDate    = "year-to-date"
	ReportPreviousYear  = "previous-year"
)

// ReportNames lists the accepted report names in menu order
var ReportNames = []string{
	ReportAll, ReportDeposits, ReportPayments,
	ReportMonthToDate, ReportPreviousMonth, ReportYearToDate, ReportPreviousYear,
}

// SelectReport applies the named report to records and returns the matching records
// in input order together with a title describing them.
func SelectReport(name string, records []Record, today time.Time) ([]Record, string, error) {
	var selected []Record
	var title string
	switch name {
	case ReportAll:
		selected, title = records, "Ledger"
	case ReportDeposits:
		selected, title = Deposits(records), "Deposits"
	case ReportPayments:
		selected, title = Payments(records), "Payments"
	case ReportMonthToDate:
		r := MonthToDate(today)
		selected, title = r.Filter(records), "Month to date ("+r.String()+")"
	case ReportPreviousMonth:
		r := PreviousMonth(today)
		selected, title = r.Filter(records), "Previous month ("+r.String()+")"
	case ReportYearToDate:
		r := YearToDate(today)
		selected, title = r.Filter(records), "Year to date ("+r.String()+")"
	case ReportPreviousYear:
		r := PreviousYear(today)
		selected, title = r.Filter(records), "Previous year ("+r.String()+")"
	default:
		return nil, "", fmt.Errorf("unknown report: %s (available: %v)", name, ReportNames)
	}
	return selected, title, nil
}
