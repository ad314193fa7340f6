package reader

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vegasq/tabproc/table"
)

// naValues are cell texts read as missing values.
var naValues = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-NaN":     true,
	"-nan":     true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// textTable accumulates the string records of a text source before
// column types are inferred.
type textTable struct {
	columns   []string
	records   [][]string
	checkUTF8 bool
}

func newTextTable(header []string, line int, checkUTF8 bool) (*textTable, error) {
	if len(header) == 0 {
		return nil, ErrEmptySource
	}
	if checkUTF8 {
		if err := validUTF8(header, line); err != nil {
			return nil, err
		}
	}
	return &textTable{columns: headerNames(header), checkUTF8: checkUTF8}, nil
}

// add appends one record. Short records are padded with missing cells.
func (tt *textTable) add(fields []string, line int) error {
	if len(fields) > len(tt.columns) {
		return fmt.Errorf("%w: expected %d fields in line %d, saw %d", ErrFieldCount, len(tt.columns), line, len(fields))
	}
	if tt.checkUTF8 {
		if err := validUTF8(fields, line); err != nil {
			return err
		}
	}
	tt.records = append(tt.records, fields)
	return nil
}

// build infers a type for each column and converts the records to rows.
func (tt *textTable) build() *table.Table {
	rows := make([]table.Row, len(tt.records))
	for i := range rows {
		rows[i] = make(table.Row, len(tt.columns))
	}

	for col, name := range tt.columns {
		cells := make([]string, len(tt.records))
		present := make([]bool, len(tt.records))
		for i, rec := range tt.records {
			if col < len(rec) && !naValues[rec[col]] {
				cells[i] = rec[col]
				present[i] = true
			}
		}

		values := inferColumn(cells, present)
		for i := range rows {
			rows[i][name] = values[i]
		}
	}

	return table.New(tt.columns, rows)
}

func validUTF8(fields []string, line int) error {
	for _, f := range fields {
		if !utf8.ValidString(f) {
			return fmt.Errorf("%w: line %d is not valid utf-8", ErrInvalidEncoding, line)
		}
	}
	return nil
}

// headerNames fills in blank names and makes repeated names unique.
func headerNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	taken := make(map[string]bool, len(header))
	for _, h := range header {
		taken[strings.TrimSpace(h)] = true
	}

	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		if n, dup := seen[name]; dup {
			candidate := name
			for {
				n++
				candidate = fmt.Sprintf("%s.%d", name, n)
				if !taken[candidate] {
					break
				}
			}
			seen[name] = n
			taken[candidate] = true
			name = candidate
		} else {
			seen[name] = 0
		}
		names[i] = name
	}

	return names
}

// inferColumn converts the present cells of one column to the narrowest
// type every one of them parses as.
func inferColumn(cells []string, present []bool) []interface{} {
	values := make([]interface{}, len(cells))

	for _, parse := range []func(string) (interface{}, bool){parseInt, parseFloat, parseBool} {
		ok := true
		for i, cell := range cells {
			if !present[i] {
				continue
			}
			v, parsed := parse(cell)
			if !parsed {
				ok = false
				break
			}
			values[i] = v
		}
		if ok {
			return values
		}
	}

	for i, cell := range cells {
		if present[i] {
			values[i] = cell
		} else {
			values[i] = nil
		}
	}
	return values
}

func parseInt(s string) (interface{}, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return v, err == nil
}

func parseFloat(s string) (interface{}, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

func parseBool(s string) (interface{}, bool) {
	switch strings.TrimSpace(s) {
	case "True", "true", "TRUE":
		return true, true
	case "False", "false", "FALSE":
		return false, true
	default:
		return nil, false
	}
}
