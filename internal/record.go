package internal

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	DateFormat     = "2006-01-02"
	TimeFormat     = "15:04:05"
	DateTimeFormat = DateFormat + " " + TimeFormat
)

// FieldSeparator separates the five fields of a ledger line
const FieldSeparator = "|"

var (
	ErrInvalidField  = errors.New("invalid field")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Record is one ledger entry. Positive amounts are deposits, negative amounts are payments.
type Record struct {
	Date        time.Time // calendar date at midnight UTC
	Time        time.Time // time of day on 0000-01-01 UTC, second precision
	Description string
	Vendor      string
	Amount      float64
}

// NewRecord creates a record stamped with the date and time-of-day of at
func NewRecord(at time.Time, description, vendor string, amount float64) Record {
	return Record{
		Date:        DateOf(at),
		Time:        TimeOfDay(at),
		Description: description,
		Vendor:      vendor,
		Amount:      amount,
	}
}

// DateOf truncates t to its calendar date (midnight UTC), ignoring the location offset
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay keeps only the wall clock hour, minute and second of t
func TimeOfDay(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// ParseDate parses a yyyy-MM-dd date
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

// ParseTime parses a HH:mm:ss time of day
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", s, err)
	}
	return t, nil
}

func (r Record) IsDeposit() bool { return r.Amount > 0 }

func (r Record) IsPayment() bool { return r.Amount < 0 }

// At combines date and time of day into a single timestamp
func (r Record) At() time.Time {
	return time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(),
		r.Time.Hour(), r.Time.Minute(), r.Time.Second(), 0, time.UTC)
}

// Validate checks that the record can be written as a single ledger line.
// Free-text fields must not contain the separator or line breaks.
func (r Record) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidField)
	}
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
		return fmt.Errorf("%w: %v is not a finite number", ErrInvalidAmount, r.Amount)
	}
	for name, value := range map[string]string{"description": r.Description, "vendor": r.Vendor} {
		if strings.ContainsAny(value, FieldSeparator+"\r\n") {
			return fmt.Errorf("%w: %s must not contain %q or line breaks", ErrInvalidField, name, FieldSeparator)
		}
	}
	return nil
}
