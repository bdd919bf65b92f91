package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const fieldCount = 5

// LineError reports a ledger line that has the right shape but cannot be parsed.
// Loading stops at the first such line.
type LineError struct {
	Path string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Store owns the ledger records in file order (oldest first) and the file backing them
type Store struct {
	path    string
	records []Record
	log     zerolog.Logger
}

// LoadStore reads the ledger at path. A missing file is created empty.
// Lines without exactly five non-trailing-empty fields are skipped; any other parse
// failure aborts the load.
func LoadStore(path string, log zerolog.Logger) (*Store, error) {
	s := &Store{path: path, log: WithFields(log, map[string]any{"ledger": path})}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := createEmpty(path); err != nil {
			return nil, err
		}
		s.log.Info().Msg("ledger file not found, started a new one")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := splitLine(line)
		if len(fields) != fieldCount {
			skipped++
			s.log.Warn().Int("line", lineNo).Int("fields", len(fields)).Msg("skipping malformed ledger line")
			continue
		}
		r, err := parseFields(fields)
		if err != nil {
			return nil, &LineError{Path: path, Line: lineNo, Err: err}
		}
		s.records = append(s.records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	s.log.Debug().Int("records", len(s.records)).Int("skipped", skipped).Msg("ledger loaded")
	return s, nil
}

// splitLine splits on the separator and drops trailing empty fields, so a line
// ending in an empty amount counts as four fields and is skipped.
func splitLine(line string) []string {
	fields := strings.Split(line, FieldSeparator)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

func createEmpty(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	return f.Close()
}

func parseFields(fields []string) (Record, error) {
	date, err := ParseDate(fields[0])
	if err != nil {
		return Record{}, err
	}
	tod, err := ParseTime(fields[1])
	if err != nil {
		return Record{}, err
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return Record{}, fmt.Errorf("parsing amount %q: %w", fields[4], err)
	}
	return Record{
		Date:        date,
		Time:        tod,
		Description: fields[2],
		Vendor:      fields[3],
		Amount:      amount,
	}, nil
}

// FormatLine serializes a record as one ledger line, without the trailing newline
func FormatLine(r Record) string {
	return strings.Join([]string{
		r.Date.Format(DateFormat),
		r.Time.Format(TimeFormat),
		r.Description,
		r.Vendor,
		FormatAmount(r.Amount),
	}, FieldSeparator)
}

// Append writes r to the end of the ledger file and, once the write succeeded, to memory.
// On failure the in-memory records are left untouched.
func (s *Store) Append(r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.log.Error().Err(err).Msg("opening ledger for append")
		return fmt.Errorf("opening ledger for append: %w", err)
	}
	if _, err := f.WriteString(FormatLine(r) + "\n"); err != nil {
		f.Close()
		s.log.Error().Err(err).Msg("writing ledger line")
		return fmt.Errorf("writing ledger line: %w", err)
	}
	if err := f.Close(); err != nil {
		s.log.Error().Err(err).Msg("closing ledger")
		return fmt.Errorf("closing ledger: %w", err)
	}

	s.records = append(s.records, r)
	s.log.Debug().Time("at", r.At()).Str("vendor", r.Vendor).Float64("amount", r.Amount).Msg("record appended")
	return nil
}

// Records returns a copy of all records in file order
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int { return len(s.records) }

func (s *Store) Path() string { return s.path }
