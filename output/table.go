package output

import (
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/tabproc/table"
)

// DefaultMaxWidth is the display width a grid cell is truncated to
const DefaultMaxWidth = 40

const ellipsis = "..."

// TableFormatter renders a console grid with a leading row index
type TableFormatter struct {
	writer io.Writer

	// MaxWidth limits each cell to this many display cells; zero or less disables truncation
	MaxWidth int
}

// NewTableFormatter creates a grid formatter with DefaultMaxWidth
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w, MaxWidth: DefaultMaxWidth}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the table. Index numbering restarts at zero, so rows
// appended from several runs are numbered consecutively.
func (f *TableFormatter) Format(t *table.Table) error {
	if t == nil {
		return nil
	}

	tw := tablewriter.NewWriter(f.writer)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	columns := t.Columns()
	header := make([]string, 0, len(columns)+1)
	header = append(header, "")
	for _, col := range columns {
		header = append(header, f.truncate(col))
	}
	tw.SetHeader(header)

	for i, row := range t.Rows() {
		record := make([]string, 0, len(columns)+1)
		record = append(record, strconv.Itoa(i))
		for _, col := range columns {
			record = append(record, f.truncate(formatValue(row[col])))
		}
		tw.Append(record)
	}

	tw.Render()
	return nil
}

func (f *TableFormatter) truncate(s string) string {
	if f.MaxWidth <= 0 || runewidth.StringWidth(s) <= f.MaxWidth {
		return s
	}
	if f.MaxWidth <= len(ellipsis) {
		return runewidth.Truncate(s, f.MaxWidth, "")
	}
	return runewidth.Truncate(s, f.MaxWidth, ellipsis)
}
