package internal

import (
	"fmt"
	"sort"
	"strings"
)

// Parser reads records from an external file so they can be appended to the ledger
type Parser interface {
	Parse(path string) ([]Record, error)
}

// ParserFunc is a function that implements Parser
type ParserFunc func(path string) ([]Record, error)

func (f ParserFunc) Parse(path string) ([]Record, error) {
	return f(path)
}

// parsers is the registry of available import formats
var parsers = map[string]Parser{}

// RegisterParser registers a parser with the given name
func RegisterParser(name string, p Parser) {
	parsers[name] = p
}

// GetParser returns the parser for the given source type
func GetParser(source string) (Parser, error) {
	p, ok := parsers[source]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s (available: %v)", source, AvailableSources())
	}
	return p, nil
}

// AvailableSources returns the registered source types, sorted
func AvailableSources() []string {
	var sources []string
	for name := range parsers {
		sources = append(sources, name)
	}
	sort.Strings(sources)
	return sources
}

// IsKnownParser returns true if the name is a registered parser
func IsKnownParser(name string) bool {
	_, ok := parsers[name]
	return ok
}

// ParseFileArg parses a file argument that may have a format prefix.
// Returns (format, path). If no valid prefix, format is empty.
// Example: "simple-json:data.json" → ("simple-json", "data.json")
// Example: "C:\path\file.xlsx" → ("", "C:\path\file.xlsx")
func ParseFileArg(arg string) (format, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	prefix := arg[:idx]
	if IsKnownParser(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg
}

// DetectFormat guesses the import format from the file extension
func DetectFormat(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return "simple-json"
	case strings.HasSuffix(lower, ".xlsx"):
		return "ledger-xlsx"
	default:
		return ""
	}
}

// ImportFile parses arg ("format:path" or a path with a recognizable extension)
// and appends every parsed record to the store. It stops at the first record the
// store rejects and reports how many were appended before that.
func ImportFile(store *Store, arg string) (int, error) {
	format, path := ParseFileArg(arg)
	if format == "" {
		format = DetectFormat(path)
	}
	if format == "" {
		return 0, fmt.Errorf("cannot tell the format of %s, prefix it with one of %v", path, AvailableSources())
	}
	p, err := GetParser(format)
	if err != nil {
		return 0, err
	}

	records, err := p.Parse(path)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i, r := range records {
		if err := store.Append(r); err != nil {
			return i, fmt.Errorf("importing record %d (%s): %w", i+1, r.Vendor, err)
		}
	}
	return len(records), nil
}
