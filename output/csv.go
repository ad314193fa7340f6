package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/tabproc/table"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header in table column order followed by every row.
// A nil table produces no output.
func (c *CSVFormatter) Format(t *table.Table) error {
	if t == nil {
		return nil
	}

	csvWriter := csv.NewWriter(c.writer)
	columns := t.Columns()

	if err := csvWriter.Write(columns); err != nil {
		return err
	}

	for _, row := range t.Rows() {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = sanitizeCell(formatValue(row[col]))
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// sanitizeCell neutralises values a spreadsheet would evaluate as a formula
func sanitizeCell(val string) string {
	if len(val) == 0 {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		if isNumber(val) {
			return val
		}
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}

func isNumber(val string) bool {
	if val[0] != '-' && val[0] != '+' {
		return false
	}
	digits := 0
	for _, r := range val[1:] {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == 'e' || r == 'E' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return digits > 0
}
