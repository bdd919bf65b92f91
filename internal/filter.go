package internal

import (
	"strings"
	"time"
)

// Query is a conjunction of optional criteria. Zero dates, blank strings and a nil
// amount are ignored, so the zero Query matches everything.
type Query struct {
	Start       time.Time
	End         time.Time
	Description string // case-insensitive substring
	Vendor      string // case-insensitive substring
	Amount      *float64
}

// IsEmpty reports whether no criterion is set
func (q Query) IsEmpty() bool {
	return q.Start.IsZero() && q.End.IsZero() &&
		strings.TrimSpace(q.Description) == "" && strings.TrimSpace(q.Vendor) == "" &&
		q.Amount == nil
}

// Matches reports whether r satisfies every supplied criterion.
// Amount uses exact float equality; stored amounts carry two decimals so a value
// typed the same way compares equal, anything off by a rounding step does not.
func (q Query) Matches(r Record) bool {
	if !inRange(r.Date, q.Start, q.End) {
		return false
	}
	if d := strings.TrimSpace(q.Description); d != "" && !containsFold(r.Description, d) {
		return false
	}
	if v := strings.TrimSpace(q.Vendor); v != "" && !containsFold(r.Vendor, v) {
		return false
	}
	if q.Amount != nil && r.Amount != *q.Amount {
		return false
	}
	return true
}

// ByQuery returns the records matching q, in input order
func ByQuery(records []Record, q Query) []Record {
	return filter(records, q.Matches)
}

// ByDateRange returns records with start <= date <= end. A zero bound is open.
func ByDateRange(records []Record, start, end time.Time) []Record {
	return filter(records, func(r Record) bool {
		return inRange(r.Date, start, end)
	})
}

// ByVendor returns records whose vendor equals the trimmed name, ignoring case.
// Stored vendors are compared as written.
func ByVendor(records []Record, name string) []Record {
	name = strings.TrimSpace(name)
	return filter(records, func(r Record) bool {
		return strings.EqualFold(r.Vendor, name)
	})
}

// Deposits returns records with a positive amount
func Deposits(records []Record) []Record {
	return filter(records, Record.IsDeposit)
}

// Payments returns records with a negative amount
func Payments(records []Record) []Record {
	return filter(records, Record.IsPayment)
}

// NewestFirst returns a reversed copy of records, which are kept oldest first
func NewestFirst(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	return out
}

// Summary holds aggregate amounts over a set of records
type Summary struct {
	Count    int
	Deposits float64
	Payments float64 // negative or zero
	Balance  float64
}

// Summarize totals deposits and payments
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		s.Count++
		switch {
		case r.IsDeposit():
			s.Deposits += r.Amount
		case r.IsPayment():
			s.Payments += r.Amount
		}
	}
	s.Balance = s.Deposits + s.Payments
	return s
}

func filter(records []Record, keep func(Record) bool) []Record {
	var result []Record
	for _, r := range records {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}

func inRange(date, start, end time.Time) bool {
	if !start.IsZero() && date.Before(DateOf(start)) {
		return false
	}
	if !end.IsZero() && date.After(DateOf(end)) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
