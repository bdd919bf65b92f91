package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SimpleJSONFormat is a minimal JSON format for importing records. It is the
// same shape the JSON report output produces, so reports can be imported again.
// Example:
//
//	{
//	  "records": [
//	    {"date": "2025-01-15", "time": "09:00:00", "description": "Paycheck", "vendor": "Employer", "amount": 500.00},
//	    {"date": "2025-01-16", "description": "Groceries", "vendor": "Market", "amount": -42.10}
//	  ]
//	}
//
// time is optional and defaults to midnight.
type SimpleJSONFormat struct {
	Records []JSONRecord `json:"records"`
}

// ParseSimpleJSON parses a JSON file in the simple JSON format
func ParseSimpleJSON(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var jsonData SimpleJSONFormat
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	var records []Record
	for _, jr := range jsonData.Records {
		date, err := ParseDate(jr.Date)
		if err != nil {
			return nil, err
		}
		tod := TimeOfDay(date)
		if strings.TrimSpace(jr.Time) != "" {
			if tod, err = ParseTime(jr.Time); err != nil {
				return nil, err
			}
		}
		records = append(records, Record{
			Date:        date,
			Time:        tod,
			Description: jr.Description,
			Vendor:      jr.Vendor,
			Amount:      jr.Amount,
		})
	}
	return records, nil
}

func init() {
	RegisterParser("simple-json", ParserFunc(ParseSimpleJSON))
}
