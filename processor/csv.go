package processor

import (
	"github.com/vegasq/tabproc/reader"
	"github.com/vegasq/tabproc/table"
)

// CSVProcessor handles ';'-separated text with a header row.
type CSVProcessor struct {
	Base
}

// NewCSVProcessor creates a processor for the delimited file at datasource
func NewCSVProcessor(datasource string, cfg Config) *CSVProcessor {
	return &CSVProcessor{Base: NewBase("CSV", reader.FormatDelimited, datasource, cfg)}
}

// Read parses the file with the configured separator, ';' by default.
func (p *CSVProcessor) Read() bool {
	return p.Load()
}

// Run drops dateAdded and sorts descending by directedBy, then by title.
func (p *CSVProcessor) Run() error {
	return p.Apply(func(t *table.Table) (*table.Table, error) {
		return dropAndSort(t, []string{ColDateAdded}, []string{ColDirectedBy, ColTitle}, false)
	})
}
