// Package output renders result tables.
//
// Currently supported formats:
//   - table: aligned console grid with a row index column
//   - csv: comma-separated values with header row
//   - jsonl: one JSON object per line
//
// Example usage:
//
//	formatter, err := output.NewFormatter("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(t); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/tabproc/table"
)

// ErrUnknownFormat is returned by NewFormatter for unsupported format names
var ErrUnknownFormat = errors.New("unknown output format")

// Format names accepted by NewFormatter
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a table in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(t *table.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatTable:
		return NewTableFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatJSONL, "json":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
